package catalog

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// RoomRepository интерфейс репозитория залов
type RoomRepository interface {
	GetAll(ctx context.Context) ([]*domain.Room, error)
	UpdateStatus(ctx context.Context, id string, status domain.RoomStatus) (*domain.Room, error)
}

// RoomCache интерфейс кэша каталога (может отсутствовать)
type RoomCache interface {
	GetRooms(ctx context.Context) ([]*domain.Room, bool, error)
	Version(ctx context.Context) (int64, error)
	SetRooms(ctx context.Context, rooms []*domain.Room, version int64) error
	Invalidate(ctx context.Context) error
}

// AdminChecker определяет, является ли пользователь администратором
type AdminChecker interface {
	IsAdmin(userID int64) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
