package reports

import (
	"context"
	"fmt"
	"sort"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/engine"
	"github.com/m04kA/SMC-VenueBooking/internal/service/reports/models"
)

// Service сервис отчётов для администратора
type Service struct {
	bookingRepo BookingRepository
	admins      AdminChecker
	logger      Logger
}

// NewService создает новый экземпляр сервиса отчётов
func NewService(bookingRepo BookingRepository, admins AdminChecker, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		admins:      admins,
		logger:      logger,
	}
}

// Summary считает сводку за период: количество по статусам и категориям,
// выручку по дням и категориям, оплаченные часы по категориям
func (s *Service) Summary(ctx context.Context, req *models.SummaryRequest) (*models.SummaryResponse, error) {
	bookings, err := s.load(ctx, "Summary", req)
	if err != nil {
		return nil, err
	}

	summary := summarize(req, bookings)
	s.logger.Info("Summary: period %s..%s, bookings=%d, revenue=%d",
		summary.From, summary.To, summary.TotalBookings, summary.TotalRevenue)
	return summary, nil
}

func (s *Service) load(ctx context.Context, op string, req *models.SummaryRequest) ([]*domain.Booking, error) {
	if !s.admins.IsAdmin(req.UserID) {
		s.logger.Warn("%s: user=%d is not an admin", op, req.UserID)
		return nil, ErrAccessDenied
	}
	if req.From.IsZero() || req.To.IsZero() || req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: from=%s to=%s", ErrInvalidPeriod,
			req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
	}

	bookings, err := s.bookingRepo.GetWithFilter(ctx, domain.BookingsFilter{
		StartDate:        &req.From,
		EndDate:          &req.To,
		IncludeCancelled: true,
	})
	if err != nil {
		s.logger.Error("%s: repository error: %v", op, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	return bookings, nil
}

func summarize(req *models.SummaryRequest, bookings []*domain.Booking) *models.SummaryResponse {
	resp := &models.SummaryResponse{
		From:          req.From.Format(domain.DateFormat),
		To:            req.To.Format(domain.DateFormat),
		TotalBookings: len(bookings),
		ByStatus:      make(map[string]int, len(domain.BookingStatuses)),
		ByCategory:    make([]models.CategorySummary, 0, len(domain.Categories)),
		ByDate:        make([]models.DailyRevenue, 0),
	}

	for _, status := range domain.BookingStatuses {
		resp.ByStatus[string(status)] = 0
	}

	byCategory := make(map[domain.Category]*models.CategorySummary, len(domain.Categories))
	for _, category := range domain.Categories {
		byCategory[category] = &models.CategorySummary{Category: string(category)}
	}
	byDate := make(map[string]*models.DailyRevenue)

	for _, booking := range bookings {
		resp.ByStatus[string(booking.Status)]++

		if !booking.IsActive() {
			continue
		}

		hours := billedHours(booking)

		if summary, ok := byCategory[booking.Category]; ok {
			summary.Bookings++
			summary.BilledHours += hours
			summary.Revenue += booking.TotalCost
		}

		day := booking.Date.Format(domain.DateFormat)
		daily, ok := byDate[day]
		if !ok {
			daily = &models.DailyRevenue{Date: day}
			byDate[day] = daily
		}
		daily.Bookings++
		daily.Revenue += booking.TotalCost

		resp.TotalRevenue += booking.TotalCost
	}

	for _, category := range domain.Categories {
		resp.ByCategory = append(resp.ByCategory, *byCategory[category])
	}

	for _, daily := range byDate {
		resp.ByDate = append(resp.ByDate, *daily)
	}
	sort.Slice(resp.ByDate, func(i, j int) bool { return resp.ByDate[i].Date < resp.ByDate[j].Date })

	return resp
}

// billedHours пересчитывает оплаченные часы по окну бронирования
// тем же правилом, что и калькулятор стоимости
func billedHours(booking *domain.Booking) int {
	start, errStart := booking.CheckIn.Minutes()
	end, errEnd := booking.CheckOut.Minutes()
	if errStart != nil || errEnd != nil {
		return booking.BilledHours
	}
	return engine.BilledHours(end - start)
}
