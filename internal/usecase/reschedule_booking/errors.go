package reschedule_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrAccessDenied возвращается, когда пользователь не владелец и не администратор
	ErrAccessDenied = errors.New("reschedule_booking: access denied")

	// ErrCannotReschedule возвращается для отменённых и завершённых бронирований
	ErrCannotReschedule = errors.New("reschedule_booking: only booked reservations can be rescheduled")

	// ErrInvalidTime возвращается, если время не в формате HH:MM
	ErrInvalidTime = errors.New("reschedule_booking: invalid time")

	// ErrInvalidDuration возвращается, если время выезда не позже времени заезда
	ErrInvalidDuration = errors.New("reschedule_booking: check-out must be after check-in")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("reschedule_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("reschedule_booking: date is too far in the future")

	// ErrTooLateToBook возвращается, когда время заезда сегодня уже прошло
	ErrTooLateToBook = errors.New("reschedule_booking: check-in time has already passed")

	// ErrRoomNotFound возвращается, если зала нет среди активных залов категории
	ErrRoomNotFound = errors.New("reschedule_booking: room not found in category")

	// ErrRoomNotAvailable возвращается, когда зал занят в новое окно
	ErrRoomNotAvailable = errors.New("reschedule_booking: room is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
