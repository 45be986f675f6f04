package models

import (
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

// UpdateRoomStatusRequest запрос на смену статуса зала
type UpdateRoomStatusRequest struct {
	UserID int64  `json:"userId"`
	RoomID string `json:"roomId"`
	Status string `json:"status"`
}

// RoomResponse зал каталога
type RoomResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Name      string    `json:"name"`
	Tables    int       `json:"tables"`
	Chairs    int       `json:"chairs"`
	Status    string    `json:"status"`
	ImageURL  *string   `json:"imageUrl,omitempty"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HallResponse категория залов со ставкой
type HallResponse struct {
	Category   string         `json:"category"`
	HourlyRate int64          `json:"hourlyRate"`
	Rooms      []RoomResponse `json:"rooms"`
}

// HallListResponse каталог площадок
type HallListResponse struct {
	Halls []HallResponse `json:"halls"`
}

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(r *domain.Room) *RoomResponse {
	if r == nil {
		return nil
	}

	return &RoomResponse{
		ID:        r.ID,
		Category:  string(r.Category),
		Name:      r.Name,
		Tables:    r.Tables,
		Chairs:    r.Chairs,
		Status:    string(r.Status),
		ImageURL:  r.ImageURL,
		UpdatedAt: r.UpdatedAt,
	}
}

// FromDomainHalls конвертирует каталог в DTO
func FromDomainHalls(halls []domain.Hall) *HallListResponse {
	resp := &HallListResponse{
		Halls: make([]HallResponse, 0, len(halls)),
	}

	for _, hall := range halls {
		rooms := make([]RoomResponse, 0, len(hall.Rooms))
		for _, room := range hall.Rooms {
			rooms = append(rooms, *FromDomainRoom(room))
		}
		resp.Halls = append(resp.Halls, HallResponse{
			Category:   string(hall.Category),
			HourlyRate: hall.HourlyRate,
			Rooms:      rooms,
		})
	}

	return resp
}
