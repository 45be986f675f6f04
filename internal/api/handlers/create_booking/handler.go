package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	createBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные данные бронирования"
	msgInvalidDate        = "некорректный формат даты бронирования, ожидается YYYY-MM-DD"
	msgInvalidTime        = "некорректное время, ожидается HH:MM"
	msgInvalidDuration    = "время выезда должно быть позже времени заезда"
	msgUnknownCategory    = "неизвестная категория зала"
	msgInvalidAddons      = "некорректный выбор напитков и закусок"
	msgInvalidBookingDate = "дата бронирования в прошлом"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgTooLateToBook      = "время заезда уже прошло"
	msgRoomNotFound       = "зал не найден среди активных залов категории"
	msgRoomNotAvailable   = "зал занят в выбранное время"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, err, userID)
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, room=%s, total=%d",
		booking.ID, userID, booking.RoomID, booking.TotalCost)
	handlers.RespondJSON(w, http.StatusCreated, models.FromDomainBooking(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, userID int64) {
	switch {
	case errors.Is(err, createBooking.ErrInvalidInput):
		h.logger.Warn("POST /bookings - Invalid input: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, createBooking.ErrUnknownCategory):
		h.logger.Warn("POST /bookings - Unknown category: %v", err)
		handlers.RespondBadRequest(w, msgUnknownCategory)

	case errors.Is(err, createBooking.ErrInvalidTime):
		h.logger.Warn("POST /bookings - Invalid time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)

	case errors.Is(err, createBooking.ErrInvalidDuration):
		h.logger.Warn("POST /bookings - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)

	case errors.Is(err, createBooking.ErrInvalidAddons):
		h.logger.Warn("POST /bookings - Invalid addons: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAddons)

	case errors.Is(err, createBooking.ErrInvalidDate):
		h.logger.Warn("POST /bookings - Date in the past: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgInvalidBookingDate)

	case errors.Is(err, createBooking.ErrDateTooFarInFuture):
		h.logger.Warn("POST /bookings - Date too far: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgDateTooFar)

	case errors.Is(err, createBooking.ErrTooLateToBook):
		h.logger.Warn("POST /bookings - Too late to book: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgTooLateToBook)

	case errors.Is(err, createBooking.ErrRoomNotFound):
		h.logger.Warn("POST /bookings - Room not found: %v", err)
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, createBooking.ErrRoomNotAvailable):
		h.logger.Warn("POST /bookings - Room not available: user_id=%d", userID)
		handlers.RespondConflict(w, msgRoomNotAvailable)

	default:
		h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
	}
}
