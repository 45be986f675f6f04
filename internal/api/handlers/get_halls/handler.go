package get_halls

import (
	"net/http"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/halls
// Публичный endpoint - без авторизации
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListHalls(r.Context())
	if err != nil {
		h.logger.Error("GET /halls - Failed to list halls: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /halls - Halls retrieved successfully: categories=%d", len(result.Halls))
	handlers.RespondJSON(w, http.StatusOK, result)
}
