package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	checkAvailability "github.com/m04kA/SMC-VenueBooking/internal/usecase/check_availability"
)

const (
	msgMissingParams    = "параметры category, date, checkIn и checkOut обязательны"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgUnknownCategory  = "неизвестная категория зала"
	msgInvalidTime      = "некорректное время, ожидается HH:MM"
	msgInvalidDuration  = "время выезда должно быть позже времени заезда"
	msgRoomNotInCatalog = "зал не найден среди активных залов категории"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: category, date (YYYY-MM-DD), checkIn, checkOut (HH:MM), roomId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		if errors.Is(err, errInvalidDate) {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		handlers.RespondBadRequest(w, msgMissingParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrUnknownCategory):
			h.logger.Warn("GET /availability - Unknown category: %s", useCaseReq.Category)
			handlers.RespondBadRequest(w, msgUnknownCategory)

		case errors.Is(err, checkAvailability.ErrInvalidTime):
			h.logger.Warn("GET /availability - Invalid time: %s-%s", useCaseReq.CheckIn, useCaseReq.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, checkAvailability.ErrInvalidDuration):
			h.logger.Warn("GET /availability - Invalid duration: %s-%s", useCaseReq.CheckIn, useCaseReq.CheckOut)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, checkAvailability.ErrRoomNotFound):
			h.logger.Warn("GET /availability - Room not in catalog: %v", err)
			handlers.RespondNotFound(w, msgRoomNotInCatalog)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /availability - Failed to check availability: category=%s, error=%v",
				useCaseReq.Category, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Availability checked: category=%s, date=%s, rooms=%d",
		result.Category, useCaseReq.Date.Format("2006-01-02"), len(result.Rooms))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
