package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
)

// BookingCanceller отменяет бронирование от имени владельца или администратора
// Возвращает ErrBookingNotFound, ErrAccessDenied или ErrCannotCancel из сервиса бронирований
type BookingCanceller interface {
	Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error
}

// Logger printf-логгер; Debug пишет входящие параметры запроса
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
