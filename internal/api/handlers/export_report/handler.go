package export_report

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/api/handlers"
	"github.com/m04kA/SMC-VenueBooking/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/reports"
	"github.com/m04kA/SMC-VenueBooking/internal/service/reports/models"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidPeriod = "некорректный период, ожидаются from и to в формате YYYY-MM-DD"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/reports/export?from=&to=
// Отдаёт файл .xlsx
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /admin/reports/export - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	from, errFrom := time.Parse(domain.DateFormat, r.URL.Query().Get("from"))
	to, errTo := time.Parse(domain.DateFormat, r.URL.Query().Get("to"))
	if errFrom != nil || errTo != nil {
		h.logger.Warn("GET /admin/reports/export - Invalid period: from=%q, to=%q",
			r.URL.Query().Get("from"), r.URL.Query().Get("to"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	result, err := h.service.Export(r.Context(), &models.SummaryRequest{UserID: userID, From: from, To: to})
	if err != nil {
		switch {
		case errors.Is(err, reports.ErrAccessDenied):
			h.logger.Warn("GET /admin/reports/export - Access denied: user_id=%d", userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, reports.ErrInvalidPeriod):
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /admin/reports/export - Failed to export: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Error("GET /admin/reports/export - Failed to write file: %v", err)
		return
	}

	h.logger.Info("GET /admin/reports/export - Report exported: file=%s, size=%d", result.FileName, len(result.Content))
}
