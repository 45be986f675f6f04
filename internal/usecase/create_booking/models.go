package create_booking

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// Request модель запроса на создание бронирования (форма бронирования)
type Request struct {
	UserID   int64            // ID пользователя
	RoomID   string           // Выбранный зал, например "#005"
	Category string           // Категория зала
	Date     time.Time        // Дата бронирования (без времени)
	CheckIn  types.TimeString // Время заезда "HH:MM"
	CheckOut types.TimeString // Время выезда "HH:MM"

	FirstName    string
	LastName     string
	Email        string
	MobileNumber string
	Address      string
	Purpose      string

	Beverages map[string]int // Дополнительные позиции: название -> количество
}
