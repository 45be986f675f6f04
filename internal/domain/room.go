package domain

import "time"

// RoomStatus статус зала в каталоге
type RoomStatus string

const (
	RoomStatusActive   RoomStatus = "active"
	RoomStatusInactive RoomStatus = "inactive"
)

// IsValid проверяет, что статус известен
func (s RoomStatus) IsValid() bool {
	return s == RoomStatusActive || s == RoomStatusInactive
}

// Room зал из каталога площадок
type Room struct {
	ID        string // Номер зала, например "#001"
	Category  Category
	Name      string
	Tables    int
	Chairs    int
	Status    RoomStatus
	ImageURL  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive возвращает true, если зал можно предлагать для бронирования
func (r *Room) IsActive() bool {
	return r.Status == RoomStatusActive
}

// Hall категория вместе с её залами и ставкой (представление каталога для клиента)
type Hall struct {
	Category   Category
	HourlyRate int64
	Rooms      []*Room
}

// GroupRoomsByCategory раскладывает залы по категориям, сохраняя порядок Categories
func GroupRoomsByCategory(rooms []*Room, rates RateTable) []Hall {
	byCategory := make(map[Category][]*Room, len(Categories))
	for _, room := range rooms {
		byCategory[room.Category] = append(byCategory[room.Category], room)
	}

	halls := make([]Hall, 0, len(Categories))
	for _, category := range Categories {
		rate, _ := rates.Rate(category)
		categoryRooms := byCategory[category]
		if categoryRooms == nil {
			categoryRooms = []*Room{}
		}
		halls = append(halls, Hall{
			Category:   category,
			HourlyRate: rate,
			Rooms:      categoryRooms,
		})
	}
	return halls
}
