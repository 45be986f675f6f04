package check_availability

import (
	"errors"
	"net/url"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	checkAvailability "github.com/m04kA/SMC-VenueBooking/internal/usecase/check_availability"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

var (
	errMissingParams = errors.New("category, date, checkIn and checkOut are required")
	errInvalidDate   = errors.New("invalid date")
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Category     string             `json:"category"`
	Date         string             `json:"date"`
	CheckIn      string             `json:"checkIn"`
	CheckOut     string             `json:"checkOut"`
	EmptyCatalog bool               `json:"emptyCatalog"`
	Rooms        []RoomAvailability `json:"rooms"`
}

// RoomAvailability доступность зала
type RoomAvailability struct {
	RoomID    string  `json:"roomId"`
	Name      string  `json:"name"`
	Tables    int     `json:"tables"`
	Chairs    int     `json:"chairs"`
	ImageURL  *string `json:"imageUrl,omitempty"`
	Available bool    `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметров
// Формат времени не проверяется здесь: это делает движок
func ToUseCaseRequest(query url.Values) (*checkAvailability.Request, error) {
	category := query.Get("category")
	dateStr := query.Get("date")
	checkIn := query.Get("checkIn")
	checkOut := query.Get("checkOut")

	if category == "" || dateStr == "" || checkIn == "" || checkOut == "" {
		return nil, errMissingParams
	}

	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, errInvalidDate
	}

	req := &checkAvailability.Request{
		Category: category,
		Date:     date,
		CheckIn:  types.TimeString(checkIn),
		CheckOut: types.TimeString(checkOut),
	}
	if roomID := query.Get("roomId"); roomID != "" {
		req.RoomID = &roomID
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	rooms := make([]RoomAvailability, len(resp.Rooms))
	for i, room := range resp.Rooms {
		rooms[i] = RoomAvailability{
			RoomID:    room.RoomID,
			Name:      room.Name,
			Tables:    room.Tables,
			Chairs:    room.Chairs,
			ImageURL:  room.ImageURL,
			Available: room.Available,
		}
	}

	return &AvailabilityResponse{
		Category:     resp.Category,
		Date:         resp.Date.Format(domain.DateFormat),
		CheckIn:      resp.CheckIn.String(),
		CheckOut:     resp.CheckOut.String(),
		EmptyCatalog: resp.EmptyCatalog,
		Rooms:        rooms,
	}
}
