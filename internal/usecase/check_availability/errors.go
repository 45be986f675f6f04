package check_availability

import "errors"

var (
	// ErrUnknownCategory возвращается для категории вне фиксированного набора
	ErrUnknownCategory = errors.New("check_availability: unknown category")

	// ErrInvalidTime возвращается, если время не в формате HH:MM
	ErrInvalidTime = errors.New("check_availability: invalid time")

	// ErrInvalidDuration возвращается, если время выезда не позже времени заезда
	ErrInvalidDuration = errors.New("check_availability: check-out must be after check-in")

	// ErrRoomNotFound возвращается, если запрошенного зала нет среди активных залов категории
	ErrRoomNotFound = errors.New("check_availability: room not found in category")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
