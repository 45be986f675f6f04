package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

const (
	roomsKey = "catalog:rooms"
	// versionKey растёт при каждом Invalidate; снимок пишется только при неизменной версии
	versionKey = "catalog:version"
)

var (
	// ErrCache возвращается при ошибках обращения к Redis
	ErrCache = errors.New("catalog.cache: redis error")

	// ErrDecode возвращается, если снимок в Redis повреждён
	ErrDecode = errors.New("catalog.cache: failed to decode snapshot")

	errStaleSnapshot = errors.New("catalog.cache: stale snapshot")
)

// Cache снимок каталога залов в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisClient создает клиент Redis
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// NewCache создает кэш каталога
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{
		client: client,
		ttl:    ttl,
	}
}

// GetRooms возвращает снимок всех залов
// Второе значение false, если снимка нет (промах кэша)
func (c *Cache) GetRooms(ctx context.Context) ([]*domain.Room, bool, error) {
	val, err := c.client.Get(ctx, roomsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: GetRooms: %v", ErrCache, err)
	}

	var rooms []*domain.Room
	if err := json.Unmarshal(val, &rooms); err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return rooms, true, nil
}

// Version возвращает текущую версию каталога (0, если ключа ещё нет)
// Читается до загрузки залов из БД и передаётся в SetRooms
func (c *Cache) Version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, versionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: Version: %v", ErrCache, err)
	}
	return version, nil
}

// SetRooms сохраняет снимок всех залов с TTL
// Если с момента чтения version каталог инвалидировали, снимок устарел и не сохраняется
func (c *Cache) SetRooms(ctx context.Context, rooms []*domain.Room, version int64) error {
	data, err := json.Marshal(rooms)
	if err != nil {
		return fmt.Errorf("%w: marshal rooms: %v", ErrCache, err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, versionKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != version {
			return errStaleSnapshot
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, roomsKey, data, c.ttl)
			return nil
		})
		return err
	}, versionKey)

	if errors.Is(err, errStaleSnapshot) || errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: SetRooms: %v", ErrCache, err)
	}

	return nil
}

// Invalidate удаляет снимок и поднимает версию (после изменения статуса зала)
func (c *Cache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, versionKey)
		pipe.Del(ctx, roomsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: Invalidate: %v", ErrCache, err)
	}
	return nil
}
