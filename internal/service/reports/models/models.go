package models

import "time"

// SummaryRequest запрос отчёта за период (даты включительно)
type SummaryRequest struct {
	UserID int64
	From   time.Time
	To     time.Time
}

// CategorySummary показатели по категории
type CategorySummary struct {
	Category    string `json:"category"`
	Bookings    int    `json:"bookings"`
	BilledHours int    `json:"billedHours"`
	Revenue     int64  `json:"revenue"`
}

// DailyRevenue выручка за день
type DailyRevenue struct {
	Date     string `json:"date"`
	Bookings int    `json:"bookings"`
	Revenue  int64  `json:"revenue"`
}

// SummaryResponse сводный отчёт
// Отменённые бронирования учитываются только в ByStatus
type SummaryResponse struct {
	From          string            `json:"from"`
	To            string            `json:"to"`
	TotalBookings int               `json:"totalBookings"`
	TotalRevenue  int64             `json:"totalRevenue"`
	ByStatus      map[string]int    `json:"byStatus"`
	ByCategory    []CategorySummary `json:"byCategory"`
	ByDate        []DailyRevenue    `json:"byDate"`
}

// ExportResponse сформированная выгрузка
type ExportResponse struct {
	FileName string
	Content  []byte
}
