package export_report

import (
	"context"

	"github.com/m04kA/SMC-VenueBooking/internal/service/reports/models"
)

type ReportService interface {
	Export(ctx context.Context, req *models.SummaryRequest) (*models.ExportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
