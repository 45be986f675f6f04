package engine

// Condition признак некорректного входа, который движок возвращает вместо ошибки
// Пустое значение означает корректный результат
type Condition string

const (
	ConditionNone            Condition = ""
	ConditionInvalidDuration Condition = "invalid_duration"
	ConditionInvalidTime     Condition = "invalid_time"
	ConditionUnknownCategory Condition = "unknown_category"
	ConditionEmptyCatalog    Condition = "empty_catalog"
	ConditionInvalidQuantity Condition = "invalid_quantity"
	ConditionUnknownAddon    Condition = "unknown_addon"
)

// OK возвращает true, если условие не выставлено
func (c Condition) OK() bool {
	return c == ConditionNone
}

// String реализует fmt.Stringer
func (c Condition) String() string {
	if c == ConditionNone {
		return "ok"
	}
	return string(c)
}
