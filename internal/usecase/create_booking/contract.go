package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/engine"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetForDay(ctx context.Context, category domain.Category, date time.Time) ([]*domain.Booking, error)
}

// RoomCatalog источник каталога залов
type RoomCatalog interface {
	GetRooms(ctx context.Context, category domain.Category) ([]*domain.Room, error)
}

// CostCalculator расчёт стоимости бронирования
type CostCalculator interface {
	ComputeCost(category domain.Category, checkIn, checkOut types.TimeString, addons map[string]int) engine.Quote
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// OutcomeRecorder учитывает исходы движка в метриках
type OutcomeRecorder interface {
	ObserveEngine(operation, condition string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
