package get_quote

import "github.com/m04kA/SMC-VenueBooking/pkg/types"

// Request модель запроса на предварительный расчёт стоимости
type Request struct {
	Category string
	CheckIn  types.TimeString
	CheckOut types.TimeString
	Addons   map[string]int
}

// Response расчёт стоимости
// При некорректном входе все суммы нулевые, а Condition и Detail описывают причину
type Response struct {
	Category        string      `json:"category"`
	CheckIn         string      `json:"checkIn"`
	CheckOut        string      `json:"checkOut"`
	DurationMinutes int         `json:"durationMinutes"`
	BilledHours     int         `json:"billedHours"`
	HourlyRate      int64       `json:"hourlyRate"`
	HallCost        int64       `json:"hallCost"`
	AddonCost       int64       `json:"addonCost"`
	TotalCost       int64       `json:"totalCost"`
	Addons          []AddonLine `json:"addons"`
	Valid           bool        `json:"valid"`
	Condition       string      `json:"condition,omitempty"`
	Detail          string      `json:"detail,omitempty"`
}

// AddonLine строка расчёта по дополнительной позиции
type AddonLine struct {
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
	Amount    int64  `json:"amount"`
}
