package get_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// from/to - период по дате бронирования включительно (YYYY-MM-DD)
func ToServiceRequest(userID int64, query url.Values) (*models.GetBookingsRequest, error) {
	req := &models.GetBookingsRequest{
		UserID:           userID,
		IncludeCancelled: false, // По умолчанию без отменённых
	}

	if from := query.Get("from"); from != "" {
		date, err := time.Parse(domain.DateFormat, from)
		if err != nil {
			return nil, fmt.Errorf("invalid from date: %w", err)
		}
		req.StartDate = &date
	}

	if to := query.Get("to"); to != "" {
		date, err := time.Parse(domain.DateFormat, to)
		if err != nil {
			return nil, fmt.Errorf("invalid to date: %w", err)
		}
		req.EndDate = &date
	}

	if category := query.Get("category"); category != "" {
		req.Category = &category
	}

	if roomID := query.Get("roomId"); roomID != "" {
		req.RoomID = &roomID
	}

	if status := query.Get("status"); status != "" {
		req.Status = &status
	}

	if includeCancelledStr := query.Get("includeCancelled"); includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeCancelled value: %w", err)
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
