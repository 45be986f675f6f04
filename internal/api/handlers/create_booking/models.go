package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	createBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/create_booking"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// CreateBookingRequest HTTP request model (форма бронирования)
type CreateBookingRequest struct {
	RoomID       string         `json:"roomId"`
	Category     string         `json:"category"`
	Date         string         `json:"date"`     // "2024-01-01"
	CheckIn      string         `json:"checkIn"`  // "10:00"
	CheckOut     string         `json:"checkOut"` // "12:00"
	FirstName    string         `json:"firstName"`
	LastName     string         `json:"lastName"`
	Email        string         `json:"email"`
	MobileNumber string         `json:"mobileNumber"`
	Address      string         `json:"address"`
	Purpose      string         `json:"purpose"`
	Beverages    map[string]int `json:"beverages,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Время передаётся как есть: формат проверяет калькулятор стоимости
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:       userID,
		RoomID:       r.RoomID,
		Category:     r.Category,
		Date:         date,
		CheckIn:      types.TimeString(r.CheckIn),
		CheckOut:     types.TimeString(r.CheckOut),
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		MobileNumber: r.MobileNumber,
		Address:      r.Address,
		Purpose:      r.Purpose,
		Beverages:    r.Beverages,
	}, nil
}
