package reschedule_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
	rescheduleBooking "github.com/m04kA/SMC-VenueBooking/internal/usecase/reschedule_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные параметры переноса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNotFound           = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgCannotReschedule   = "перенести можно только активное бронирование"
	msgInvalidTime        = "некорректное время, ожидается HH:MM"
	msgInvalidDuration    = "время выезда должно быть позже времени заезда"
	msgDateInPast         = "дата бронирования в прошлом"
	msgDateTooFar         = "дата бронирования слишком далеко в будущем"
	msgTooLateToBook      = "время заезда уже прошло"
	msgRoomNotFound       = "зал не найден среди активных залов категории"
	msgRoomNotAvailable   = "зал занят в выбранное время"
)

type Handler struct {
	useCase RescheduleBookingUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(bookingID, userID)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	booking, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		h.respondError(w, err, bookingID)
		return
	}

	h.logger.Info("PATCH /bookings/{id}/reschedule - Booking rescheduled: booking_id=%d, user_id=%d",
		bookingID, userID)
	handlers.RespondJSON(w, http.StatusOK, models.FromDomainBooking(booking))
}

func (h *Handler) respondError(w http.ResponseWriter, err error, bookingID int64) {
	switch {
	case errors.Is(err, rescheduleBooking.ErrBookingNotFound):
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Booking not found: booking_id=%d", bookingID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, rescheduleBooking.ErrAccessDenied):
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Access denied: booking_id=%d", bookingID)
		handlers.RespondForbidden(w, msgForbidden)

	case errors.Is(err, rescheduleBooking.ErrCannotReschedule):
		handlers.RespondBadRequest(w, msgCannotReschedule)

	case errors.Is(err, rescheduleBooking.ErrInvalidTime):
		handlers.RespondBadRequest(w, msgInvalidTime)

	case errors.Is(err, rescheduleBooking.ErrInvalidDuration):
		handlers.RespondBadRequest(w, msgInvalidDuration)

	case errors.Is(err, rescheduleBooking.ErrInvalidDate):
		handlers.RespondBadRequest(w, msgDateInPast)

	case errors.Is(err, rescheduleBooking.ErrDateTooFarInFuture):
		handlers.RespondBadRequest(w, msgDateTooFar)

	case errors.Is(err, rescheduleBooking.ErrTooLateToBook):
		handlers.RespondBadRequest(w, msgTooLateToBook)

	case errors.Is(err, rescheduleBooking.ErrInvalidInput):
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Invalid input: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, rescheduleBooking.ErrRoomNotFound):
		handlers.RespondNotFound(w, msgRoomNotFound)

	case errors.Is(err, rescheduleBooking.ErrRoomNotAvailable):
		h.logger.Warn("PATCH /bookings/{id}/reschedule - Room not available: booking_id=%d", bookingID)
		handlers.RespondConflict(w, msgRoomNotAvailable)

	default:
		h.logger.Error("PATCH /bookings/{id}/reschedule - Failed to reschedule: booking_id=%d, error=%v",
			bookingID, err)
		handlers.RespondInternalError(w)
	}
}
