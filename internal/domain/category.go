package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory возвращается для категории вне фиксированного набора
var ErrUnknownCategory = errors.New("domain: unknown venue category")

// Category категория зала (определяет почасовую ставку и вместимость)
type Category string

const (
	CategoryCompact Category = "compact"
	CategoryClassic Category = "classic"
	CategoryGrand   Category = "grand"
)

// Categories все категории в порядке возрастания ставки
var Categories = []Category{
	CategoryCompact,
	CategoryClassic,
	CategoryGrand,
}

// IsValid возвращает true для одной из трёх категорий
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// String реализует fmt.Stringer
func (c Category) String() string {
	return string(c)
}

// ParseCategory конвертирует строку в Category с валидацией
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return c, nil
}
