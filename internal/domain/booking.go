package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusBooked    BookingStatus = "booked"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// IsValid проверяет, что статус известен
func (s BookingStatus) IsValid() bool {
	for _, known := range BookingStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// AddonQuantities выбранные дополнительные позиции: название -> количество
// Хранится в JSONB колонке
type AddonQuantities map[string]int

// Value реализует driver.Valuer
func (q AddonQuantities) Value() (driver.Value, error) {
	if q == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(q)
}

// Scan реализует sql.Scanner
func (q *AddonQuantities) Scan(src interface{}) error {
	var data []byte
	switch v := src.(type) {
	case nil:
		*q = AddonQuantities{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("domain: unsupported addon quantities type %T", src)
	}

	result := AddonQuantities{}
	if err := json.Unmarshal(data, &result); err != nil {
		return fmt.Errorf("domain: decode addon quantities: %w", err)
	}
	*q = result
	return nil
}

// Booking represents a venue reservation
type Booking struct {
	ID       int64
	UserID   int64
	RoomID   string
	Category Category
	Date     time.Time // Календарная дата (время не используется)
	CheckIn  types.TimeString
	CheckOut types.TimeString
	Status   BookingStatus

	// Контактные данные из формы бронирования
	FirstName    string
	LastName     string
	Email        string
	MobileNumber string
	Address      string
	Purpose      string

	// Стоимость фиксируется на момент бронирования (или переноса)
	Beverages   AddonQuantities
	BilledHours int
	HallCost    int64
	AddonCost   int64
	TotalCost   int64

	Rescheduled bool
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still blocks its room
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusBooked
}

// CanBeRescheduled returns true if the booking can be moved to another window
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusBooked
}

// CanTransitionTo проверяет переход статуса: из booked в completed или cancelled
// Завершённые и отменённые бронирования не меняются
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	if b.Status != StatusBooked {
		return false
	}
	return next == StatusCompleted || next == StatusCancelled
}

// IsCompleted returns true if the booking is in the past
func (b *Booking) IsCompleted() bool {
	return b.Status == StatusCompleted
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	UserID           *int64         // Бронирования пользователя (опционально)
	RoomID           *string        // Конкретный зал (опционально)
	Category         *Category      // Категория (опционально)
	StartDate        *time.Time     // Начало периода включительно (опционально)
	EndDate          *time.Time     // Конец периода включительно (опционально)
	Status           *BookingStatus // Конкретный статус (опционально)
	IncludeCancelled bool           // Включать ли отменённые бронирования
}
