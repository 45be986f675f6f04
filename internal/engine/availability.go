package engine

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

// AvailabilityRequest запрошенное окно бронирования
type AvailabilityRequest struct {
	Category domain.Category
	Date     time.Time // Сравнивается только календарный день
	CheckIn  types.TimeString
	CheckOut types.TimeString

	// ExcludeBookingID бронирование, которое не учитывается (перенос существующей брони)
	// 0 - не исключать ничего
	ExcludeBookingID int64
}

// Availability доступность залов категории на запрошенное окно
type Availability struct {
	Rooms     map[string]bool // ID зала -> свободен ли он
	Condition Condition
}

// IsAvailable возвращает true, если зал есть в каталоге категории и свободен
func (a Availability) IsAvailable(roomID string) bool {
	return a.Rooms[roomID]
}

// Contains возвращает true, если зал участвовал в проверке (активный зал категории)
func (a Availability) Contains(roomID string) bool {
	_, ok := a.Rooms[roomID]
	return ok
}

// RoomIDs возвращает ID всех проверенных залов в отсортированном порядке
func (a Availability) RoomIDs() []string {
	ids := make([]string, 0, len(a.Rooms))
	for id := range a.Rooms {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// CheckAvailability определяет, какие залы категории свободны в запрошенное окно
//
// Учитываются только активные залы категории; неактивные в результат не попадают.
// Зал занят, если на тот же календарный день в той же категории есть неотменённое
// бронирование этого зала, пересекающееся с окном. Интервалы полуоткрытые [начало, конец):
// бронирование 10:00-12:00 и запрос 12:00-13:00 не пересекаются.
//
// Функция чистая: входные данные не изменяются, порядок бронирований не влияет на результат.
// Некорректный вход не приводит к панике или ошибке, а отражается в Condition:
//   - неизвестная категория - пустая карта;
//   - некорректное время или окно нулевой/отрицательной длины - все залы заняты,
//     даже если активных залов нет;
//   - пустой каталог при корректном окне - пустая карта.
func CheckAvailability(req AvailabilityRequest, reservations []*domain.Booking, catalog []*domain.Room) Availability {
	if !req.Category.IsValid() {
		return Availability{Rooms: map[string]bool{}, Condition: ConditionUnknownCategory}
	}

	rooms := make(map[string]bool)
	for _, room := range catalog {
		if room == nil || room.Category != req.Category || !room.IsActive() {
			continue
		}
		rooms[room.ID] = true
	}

	// Некорректное окно важнее пустого каталога
	start, end, condition := window(req.CheckIn, req.CheckOut)
	if !condition.OK() {
		for id := range rooms {
			rooms[id] = false
		}
		return Availability{Rooms: rooms, Condition: condition}
	}

	if len(rooms) == 0 {
		return Availability{Rooms: rooms, Condition: ConditionEmptyCatalog}
	}

	for _, booking := range reservations {
		if !blocks(booking, req) {
			continue
		}
		if _, known := rooms[booking.RoomID]; !known {
			continue
		}

		bookingStart, errStart := booking.CheckIn.Minutes()
		bookingEnd, errEnd := booking.CheckOut.Minutes()
		if errStart != nil || errEnd != nil {
			// Бронирование с битым временем не может ничего заблокировать
			continue
		}

		if Overlaps(start, end, bookingStart, bookingEnd) {
			rooms[booking.RoomID] = false
		}
	}

	return Availability{Rooms: rooms, Condition: ConditionNone}
}

// Overlaps проверяет пересечение полуоткрытых интервалов [a, b) и [c, d)
func Overlaps(a, b, c, d int) bool {
	return a < d && c < b
}

// blocks возвращает true, если бронирование относится к запрошенному дню и категории
// и всё ещё занимает зал
func blocks(booking *domain.Booking, req AvailabilityRequest) bool {
	if booking == nil || !booking.IsActive() {
		return false
	}
	if req.ExcludeBookingID != 0 && booking.ID == req.ExcludeBookingID {
		return false
	}
	return booking.Category == req.Category && isSameDay(booking.Date, req.Date)
}

// window переводит окно в минуты от начала суток и проверяет его корректность
func window(checkIn, checkOut types.TimeString) (int, int, Condition) {
	start, err := checkIn.Minutes()
	if err != nil {
		return 0, 0, ConditionInvalidTime
	}
	end, err := checkOut.Minutes()
	if err != nil {
		return 0, 0, ConditionInvalidTime
	}
	if end-start <= 0 {
		return start, end, ConditionInvalidDuration
	}
	return start, end, ConditionNone
}

// isSameDay проверяет, что две даты относятся к одному календарному дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
