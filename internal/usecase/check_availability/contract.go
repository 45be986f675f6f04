package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// RoomCatalog источник каталога залов
type RoomCatalog interface {
	GetRooms(ctx context.Context, category domain.Category) ([]*domain.Room, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetForDay получает неотменённые бронирования категории на календарный день
	GetForDay(ctx context.Context, category domain.Category, date time.Time) ([]*domain.Booking, error)
}

// OutcomeRecorder учитывает исходы движка в метриках
type OutcomeRecorder interface {
	ObserveEngine(operation, condition string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
