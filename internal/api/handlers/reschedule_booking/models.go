package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	rescheduleBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/reschedule_booking"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// RescheduleRequest HTTP request model
type RescheduleRequest struct {
	Date     string  `json:"date"`
	CheckIn  string  `json:"checkIn"`
	CheckOut string  `json:"checkOut"`
	RoomID   *string `json:"roomId,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleRequest) ToUseCaseRequest(bookingID, userID int64) (*rescheduleBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		UserID:    userID,
		Date:      date,
		CheckIn:   types.TimeString(r.CheckIn),
		CheckOut:  types.TimeString(r.CheckOut),
		RoomID:    r.RoomID,
	}, nil
}
