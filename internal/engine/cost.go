package engine

import (
	"fmt"
	"sort"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

const (
	minutesPerHour = 60

	// graceMinutes остаток сверх полных часов, который не округляется вверх
	graceMinutes = 15
)

// AddonLine строка расчёта по дополнительной позиции
type AddonLine struct {
	Name      string
	Quantity  int
	UnitPrice int64
	Amount    int64
}

// Quote расчёт стоимости бронирования
// Не хранится и не кэшируется: пересчитывается на каждый запрос
type Quote struct {
	DurationMinutes int
	BilledHours     int
	HourlyRate      int64
	HallCost        int64
	AddonCost       int64
	TotalCost       int64
	Lines           []AddonLine
	Condition       Condition
	Detail          string // Пояснение к Condition
}

// Valid возвращает true, если расчёт выполнен без ошибок входа
func (q Quote) Valid() bool {
	return q.Condition.OK()
}

// Calculator считает стоимость бронирования по ставкам категорий и прайсу позиций
// Единственная реализация правила тарификации: ей пользуются и предпросмотр,
// и оформление брони, и перенос, и отчёты
type Calculator struct {
	rates  domain.RateTable
	addons domain.AddonPrices
}

// NewCalculator создает калькулятор; таблицы копируются
func NewCalculator(rates domain.RateTable, addons domain.AddonPrices) *Calculator {
	ratesCopy := make(domain.RateTable, len(rates))
	for category, rate := range rates {
		ratesCopy[category] = rate
	}
	addonsCopy := make(domain.AddonPrices, len(addons))
	for name, price := range addons {
		addonsCopy[name] = price
	}

	return &Calculator{
		rates:  ratesCopy,
		addons: addonsCopy,
	}
}

// Rates возвращает копию таблицы ставок
func (c *Calculator) Rates() domain.RateTable {
	result := make(domain.RateTable, len(c.rates))
	for category, rate := range c.rates {
		result[category] = rate
	}
	return result
}

// AddonPrices возвращает копию прайса дополнительных позиций
func (c *Calculator) AddonPrices() domain.AddonPrices {
	result := make(domain.AddonPrices, len(c.addons))
	for name, price := range c.addons {
		result[name] = price
	}
	return result
}

// ComputeCost считает стоимость бронирования
//
//	hallCost  = ставка категории * оплачиваемые часы
//	addonCost = сумма quantity * unitPrice по позициям с quantity > 0
//	totalCost = hallCost + addonCost
//
// При любой ошибке входа возвращается нулевой расчёт с выставленным Condition.
func (c *Calculator) ComputeCost(
	category domain.Category,
	checkIn types.TimeString,
	checkOut types.TimeString,
	addons map[string]int,
) Quote {
	if !category.IsValid() {
		return invalidQuote(ConditionUnknownCategory, fmt.Sprintf("unknown category %q", category))
	}

	rate, ok := c.rates.Rate(category)
	if !ok {
		return invalidQuote(ConditionUnknownCategory, fmt.Sprintf("no hourly rate for category %q", category))
	}

	start, end, condition := window(checkIn, checkOut)
	if !condition.OK() {
		if condition == ConditionInvalidDuration {
			return invalidQuote(condition, "check-out time must be after check-in time")
		}
		return invalidQuote(condition, fmt.Sprintf("invalid time window %q-%q", checkIn, checkOut))
	}

	lines, addonCost, condition, detail := c.addonLines(addons)
	if !condition.OK() {
		return invalidQuote(condition, detail)
	}

	duration := end - start
	billedHours := BilledHours(duration)
	hallCost := rate * int64(billedHours)

	return Quote{
		DurationMinutes: duration,
		BilledHours:     billedHours,
		HourlyRate:      rate,
		HallCost:        hallCost,
		AddonCost:       addonCost,
		TotalCost:       hallCost + addonCost,
		Lines:           lines,
		Condition:       ConditionNone,
	}
}

// BilledHours переводит длительность в оплачиваемые часы
//
//   - длительность <= 0: 0 часов
//   - до 60 минут включительно: 1 час (минимальная оплата)
//   - иначе полные часы, плюс один час, если остаток больше 15 минут
func BilledHours(durationMinutes int) int {
	if durationMinutes <= 0 {
		return 0
	}
	if durationMinutes <= minutesPerHour {
		return 1
	}

	fullHours := durationMinutes / minutesPerHour
	remainder := durationMinutes % minutesPerHour
	if remainder <= graceMinutes {
		return fullHours
	}
	return fullHours + 1
}

// addonLines считает позиции в детерминированном порядке (по названию)
func (c *Calculator) addonLines(addons map[string]int) ([]AddonLine, int64, Condition, string) {
	names := make([]string, 0, len(addons))
	for name := range addons {
		names = append(names, name)
	}
	sort.Strings(names)

	lines := make([]AddonLine, 0, len(names))
	var total int64

	for _, name := range names {
		quantity := addons[name]
		if quantity < 0 {
			return nil, 0, ConditionInvalidQuantity, fmt.Sprintf("negative quantity %d for %q", quantity, name)
		}
		if quantity == 0 {
			continue
		}

		price, ok := c.addons.Price(name)
		if !ok {
			return nil, 0, ConditionUnknownAddon, fmt.Sprintf("unknown addon %q", name)
		}

		amount := int64(quantity) * price
		lines = append(lines, AddonLine{
			Name:      name,
			Quantity:  quantity,
			UnitPrice: price,
			Amount:    amount,
		})
		total += amount
	}

	return lines, total, ConditionNone, ""
}

func invalidQuote(condition Condition, detail string) Quote {
	return Quote{
		Lines:     []AddonLine{},
		Condition: condition,
		Detail:    detail,
	}
}
