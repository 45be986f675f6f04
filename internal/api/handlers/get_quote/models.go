package get_quote

import (
	getQuote "github.com/m04kA/SMC-VenueBooking/internal/usecase/get_quote"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// QuoteRequest HTTP request model
type QuoteRequest struct {
	Category string         `json:"category"`
	CheckIn  string         `json:"checkIn"`
	CheckOut string         `json:"checkOut"`
	Addons   map[string]int `json:"addons,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос use case
func (r *QuoteRequest) ToUseCaseRequest() *getQuote.Request {
	return &getQuote.Request{
		Category: r.Category,
		CheckIn:  types.TimeString(r.CheckIn),
		CheckOut: types.TimeString(r.CheckOut),
		Addons:   r.Addons,
	}
}
