package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	roomRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-VenueBooking/internal/service/catalog/models"
)

// Service сервис каталога залов
// Снимок каталога читается из Redis (если кэш подключён), иначе из БД
type Service struct {
	roomRepo RoomRepository
	cache    RoomCache
	admins   AdminChecker
	rates    domain.RateTable
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога
// cache может быть nil
func NewService(
	roomRepo RoomRepository,
	cache RoomCache,
	admins AdminChecker,
	rates domain.RateTable,
	logger Logger,
) *Service {
	return &Service{
		roomRepo: roomRepo,
		cache:    cache,
		admins:   admins,
		rates:    rates,
		logger:   logger,
	}
}

// GetRooms возвращает все залы категории, включая неактивные
func (s *Service) GetRooms(ctx context.Context, category domain.Category) ([]*domain.Room, error) {
	rooms, err := s.loadRooms(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.Category == category {
			result = append(result, room)
		}
	}

	return result, nil
}

// ListHalls возвращает каталог: категории со ставками и активными залами
func (s *Service) ListHalls(ctx context.Context) (*models.HallListResponse, error) {
	rooms, err := s.loadRooms(ctx)
	if err != nil {
		return nil, err
	}

	active := make([]*domain.Room, 0, len(rooms))
	for _, room := range rooms {
		if room.IsActive() {
			active = append(active, room)
		}
	}

	return models.FromDomainHalls(domain.GroupRoomsByCategory(active, s.rates)), nil
}

// UpdateRoomStatus включает или выключает зал
// Доступно только администраторам; сбрасывает снимок каталога
func (s *Service) UpdateRoomStatus(ctx context.Context, req *models.UpdateRoomStatusRequest) (*models.RoomResponse, error) {
	s.logger.Info("UpdateRoomStatus: room=%s status=%s by user=%d", req.RoomID, req.Status, req.UserID)

	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("UpdateRoomStatus: user=%d is not an admin", req.UserID)
		return nil, ErrAccessDenied
	}

	status := domain.RoomStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("%w: invalid room status %q", ErrInvalidInput, req.Status)
	}
	if req.RoomID == "" {
		return nil, fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	room, err := s.roomRepo.UpdateStatus(ctx, req.RoomID, status)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("UpdateRoomStatus: room=%s not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("UpdateRoomStatus: repository error for room=%s: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: UpdateRoomStatus - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			// Снимок истечёт по TTL
			s.logger.Warn("UpdateRoomStatus: failed to invalidate catalog cache: %v", err)
		}
	}

	s.logger.Info("UpdateRoomStatus: room=%s is now %s", room.ID, room.Status)
	return models.FromDomainRoom(room), nil
}

func (s *Service) loadRooms(ctx context.Context) ([]*domain.Room, error) {
	useCache := s.cache != nil
	var version int64

	if useCache {
		rooms, found, err := s.cache.GetRooms(ctx)
		if err != nil {
			s.logger.Warn("loadRooms: catalog cache unavailable, falling back to database: %v", err)
		} else if found {
			return rooms, nil
		}

		// Версию читаем до БД: параллельный Invalidate не даст записать старый снимок
		version, err = s.cache.Version(ctx)
		if err != nil {
			s.logger.Warn("loadRooms: failed to read catalog version: %v", err)
			useCache = false
		}
	}

	rooms, err := s.roomRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("loadRooms: repository error: %v", err)
		return nil, fmt.Errorf("%w: loadRooms - repository error: %v", ErrInternal, err)
	}

	if useCache {
		if err := s.cache.SetRooms(ctx, rooms, version); err != nil {
			s.logger.Warn("loadRooms: failed to store catalog snapshot: %v", err)
		}
	}

	return rooms, nil
}
