package create_booking

import "errors"

var (
	// ErrUnknownCategory возвращается для категории вне фиксированного набора
	ErrUnknownCategory = errors.New("create_booking: unknown category")

	// ErrInvalidTime возвращается, если время не в формате HH:MM
	ErrInvalidTime = errors.New("create_booking: invalid time")

	// ErrInvalidDuration возвращается, если время выезда не позже времени заезда
	ErrInvalidDuration = errors.New("create_booking: check-out must be after check-in")

	// ErrInvalidAddons возвращается при неизвестной позиции или отрицательном количестве
	ErrInvalidAddons = errors.New("create_booking: invalid addons")

	// ErrInvalidDate возвращается при дате в прошлом
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт бронирования
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrTooLateToBook возвращается, когда время заезда сегодня уже прошло
	ErrTooLateToBook = errors.New("create_booking: check-in time has already passed")

	// ErrRoomNotFound возвращается, если зала нет среди активных залов категории
	ErrRoomNotFound = errors.New("create_booking: room not found in category")

	// ErrRoomNotAvailable возвращается, когда зал занят в запрошенное окно
	ErrRoomNotAvailable = errors.New("create_booking: room is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
