package update_room_status

import "github.com/m04kA/SMC-VenueBooking/internal/service/catalog/models"

// UpdateRoomStatusRequest HTTP request model
type UpdateRoomStatusRequest struct {
	RoomID string `json:"roomId"`
	Status string `json:"status"` // active | inactive
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateRoomStatusRequest) ToServiceRequest(userID int64) *models.UpdateRoomStatusRequest {
	return &models.UpdateRoomStatusRequest{
		UserID: userID,
		RoomID: r.RoomID,
		Status: r.Status,
	}
}
