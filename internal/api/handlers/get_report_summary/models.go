package get_report_summary

import (
	"errors"
	"net/url"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/reports/models"
)

var errMissingPeriod = errors.New("from and to are required")

// ToServiceRequest формирует запрос отчёта из query параметров from/to
func ToServiceRequest(userID int64, query url.Values) (*models.SummaryRequest, error) {
	fromStr, toStr := query.Get("from"), query.Get("to")
	if fromStr == "" || toStr == "" {
		return nil, errMissingPeriod
	}

	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, err
	}
	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, err
	}

	return &models.SummaryRequest{UserID: userID, From: from, To: to}, nil
}
