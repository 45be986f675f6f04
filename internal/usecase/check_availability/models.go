package check_availability

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// Request модель запроса на проверку доступности
type Request struct {
	Category string           // Категория зала
	Date     time.Time        // Дата (без времени)
	CheckIn  types.TimeString // Время заезда "HH:MM"
	CheckOut types.TimeString // Время выезда "HH:MM"
	RoomID   *string          // Проверить только один зал (опционально)
}

// Response модель ответа
type Response struct {
	Category     string
	Date         time.Time
	CheckIn      types.TimeString
	CheckOut     types.TimeString
	EmptyCatalog bool // В категории нет активных залов
	Rooms        []RoomAvailability
}

// RoomAvailability доступность одного зала
type RoomAvailability struct {
	RoomID    string
	Name      string
	Tables    int
	Chairs    int
	ImageURL  *string
	Available bool
}
