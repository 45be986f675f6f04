package domain

// RateTable почасовые ставки по категориям (в рупиях)
type RateTable map[Category]int64

// Rate возвращает ставку категории
func (t RateTable) Rate(category Category) (int64, bool) {
	rate, ok := t[category]
	return rate, ok
}

// AddonPrices прайс дополнительных позиций (напитки, закуски), цена за единицу в рупиях
type AddonPrices map[string]int64

// Price возвращает цену позиции
func (p AddonPrices) Price(name string) (int64, bool) {
	price, ok := p[name]
	return price, ok
}

// DefaultRateTable ставки по умолчанию
func DefaultRateTable() RateTable {
	return RateTable{
		CategoryCompact: 1500,
		CategoryClassic: 2500,
		CategoryGrand:   4000,
	}
}

// DefaultAddonPrices прайс по умолчанию
func DefaultAddonPrices() AddonPrices {
	return AddonPrices{
		"tea":    15,
		"coffee": 25,
		"juice":  35,
		"snacks": 45,
		"water":  10,
	}
}
