package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// Request модель запроса на перенос бронирования
type Request struct {
	BookingID int64
	UserID    int64 // Кто переносит (владелец или администратор)
	Date      time.Time
	CheckIn   types.TimeString
	CheckOut  types.TimeString
	RoomID    *string // Другой зал той же категории (по умолчанию текущий)
}
