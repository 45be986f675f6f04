package domain

// Business validation constants
const (
	MaxNameLength        = 100
	MaxAddressLength     = 300
	MaxPurposeLength     = 500
	MaxAddonQuantity     = 1000
	DefaultAdvanceDays   = 365
	MinMobileNumberDigit = 10
	MaxMobileNumberDigit = 15
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BookingStatuses все допустимые статусы бронирования
var BookingStatuses = []BookingStatus{
	StatusBooked,
	StatusCompleted,
	StatusCancelled,
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, bool) {
	status := BookingStatus(s)
	return status, status.IsValid()
}
