package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// validateRequest валидирует поля формы бронирования
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if strings.TrimSpace(req.RoomID) == "" {
		return fmt.Errorf("%w: roomId is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := validateName("firstName", req.FirstName); err != nil {
		return err
	}
	if err := validateName("lastName", req.LastName); err != nil {
		return err
	}

	if _, err := mail.ParseAddress(strings.TrimSpace(req.Email)); err != nil {
		return fmt.Errorf("%w: invalid email %q", ErrInvalidInput, req.Email)
	}

	if err := validateMobileNumber(req.MobileNumber); err != nil {
		return err
	}

	if utf8.RuneCountInString(req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is longer than %d characters", ErrInvalidInput, domain.MaxAddressLength)
	}

	if strings.TrimSpace(req.Purpose) == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(req.Purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose is longer than %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	for name, quantity := range req.Beverages {
		if quantity > domain.MaxAddonQuantity {
			return fmt.Errorf("%w: quantity of %q exceeds %d", ErrInvalidInput, name, domain.MaxAddonQuantity)
		}
	}

	return nil
}

func validateName(field, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, field)
	}
	if utf8.RuneCountInString(value) > domain.MaxNameLength {
		return fmt.Errorf("%w: %s is longer than %d characters", ErrInvalidInput, field, domain.MaxNameLength)
	}
	return nil
}

// validateMobileNumber допускает "+", пробелы и дефисы; считаются только цифры
func validateMobileNumber(number string) error {
	digits := 0
	for i, r := range strings.TrimSpace(number) {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '+' && i == 0:
		case r == ' ' || r == '-':
		default:
			return fmt.Errorf("%w: invalid mobile number %q", ErrInvalidInput, number)
		}
	}

	if digits < domain.MinMobileNumberDigit || digits > domain.MaxMobileNumberDigit {
		return fmt.Errorf("%w: mobile number must contain %d-%d digits",
			ErrInvalidInput, domain.MinMobileNumberDigit, domain.MaxMobileNumberDigit)
	}
	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(bookingDate time.Time, now time.Time, advanceBookingDays int) error {
	// Проверяем, что дата не в прошлом
	if isDateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// Если advanceBookingDays = 0, нет ограничений на дату
	if advanceBookingDays == 0 {
		return nil
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, advanceBookingDays)

	bookingDateOnly := time.Date(bookingDate.Year(), bookingDate.Month(), bookingDate.Day(), 0, 0, 0, 0, bookingDate.Location())

	if bookingDateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, advanceBookingDays)
	}

	return nil
}

// validateCheckIn проверяет, что на сегодняшнюю дату время заезда ещё не наступило
func validateCheckIn(bookingDate time.Time, checkIn types.TimeString, now time.Time) error {
	if !isSameDay(bookingDate, now) {
		return nil
	}

	if checkIn.IsBefore(types.NewTimeString(now)) {
		return fmt.Errorf("%w: %s", ErrTooLateToBook, checkIn)
	}
	return nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return dateOnly.Before(nowOnly)
}
