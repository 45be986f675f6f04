package get_quote

import (
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/engine"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// CostCalculator расчёт стоимости бронирования
type CostCalculator interface {
	ComputeCost(category domain.Category, checkIn, checkOut types.TimeString, addons map[string]int) engine.Quote
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
