package models

import (
	"errors"
	"sort"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidCategory возвращается при некорректной категории
	ErrInvalidCategory = errors.New("invalid category")
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// UpdateStatusRequest запрос на обновление статуса бронирования (администратор)
type UpdateStatusRequest struct {
	UserID int64  `json:"userId"`
	Status string `json:"status"`
}

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	RequesterID int64   `json:"requesterId"` // Кто запрашивает (владелец или администратор)
	UserID      int64   `json:"userId"`
	Status      *string `json:"status,omitempty"`
}

// GetBookingsRequest запрос администратора на выборку бронирований
type GetBookingsRequest struct {
	UserID           int64      `json:"userId"`
	StartDate        *time.Time `json:"startDate,omitempty"`
	EndDate          *time.Time `json:"endDate,omitempty"`
	Category         *string    `json:"category,omitempty"`
	RoomID           *string    `json:"roomId,omitempty"`
	Status           *string    `json:"status,omitempty"`
	IncludeCancelled bool       `json:"includeCancelled,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *GetBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		RoomID:           r.RoomID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}

	if r.Category != nil {
		category, err := domain.ParseCategory(*r.Category)
		if err != nil {
			return filter, ErrInvalidCategory
		}
		filter.Category = &category
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// AddonResponse выбранная дополнительная позиция
type AddonResponse struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID       int64  `json:"id"`
	UserID   int64  `json:"userId"`
	RoomID   string `json:"roomId"`
	Category string `json:"category"`
	Date     string `json:"date"`     // "2024-01-01"
	CheckIn  string `json:"checkIn"`  // "10:00"
	CheckOut string `json:"checkOut"` // "12:00"
	Status   string `json:"status"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	MobileNumber string `json:"mobileNumber"`
	Address      string `json:"address"`
	Purpose      string `json:"purpose"`

	Addons      []AddonResponse `json:"addons"`
	BilledHours int             `json:"billedHours"`
	HallCost    int64           `json:"hallCost"`
	AddonCost   int64           `json:"addonCost"`
	TotalCost   int64           `json:"totalCost"`

	Rescheduled bool    `json:"rescheduled"`
	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		RoomID:       b.RoomID,
		Category:     string(b.Category),
		Date:         b.Date.Format(domain.DateFormat),
		CheckIn:      b.CheckIn.String(),
		CheckOut:     b.CheckOut.String(),
		Status:       string(b.Status),
		FirstName:    b.FirstName,
		LastName:     b.LastName,
		Email:        b.Email,
		MobileNumber: b.MobileNumber,
		Address:      b.Address,
		Purpose:      b.Purpose,
		Addons:       FromAddonQuantities(b.Beverages),
		BilledHours:  b.BilledHours,
		HallCost:     b.HallCost,
		AddonCost:    b.AddonCost,
		TotalCost:    b.TotalCost,
		Rescheduled:  b.Rescheduled,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromAddonQuantities конвертирует выбранные позиции в отсортированный список
func FromAddonQuantities(q domain.AddonQuantities) []AddonResponse {
	result := make([]AddonResponse, 0, len(q))
	for name, quantity := range q {
		if quantity <= 0 {
			continue
		}
		result = append(result, AddonResponse{Name: name, Quantity: quantity})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}
