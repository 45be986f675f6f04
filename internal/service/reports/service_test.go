package reports

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/service/reports/models"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

const adminID = int64(1)

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	bookings, _ := args.Get(0).([]*domain.Booking)
	return bookings, args.Error(1)
}

type adminList []int64

func (a adminList) IsAdmin(userID int64) bool {
	for _, id := range a {
		if id == userID {
			return true
		}
	}
	return false
}

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func reportBookings() []*domain.Booking {
	return []*domain.Booking{
		{ID: 1, RoomID: "#001", Category: domain.CategoryCompact, Date: day(2), CheckIn: "10:00", CheckOut: "10:45",
			Status: domain.StatusCompleted, BilledHours: 1, HallCost: 1500, AddonCost: 55, TotalCost: 1555,
			Beverages: domain.AddonQuantities{"tea": 2, "coffee": 1}, FirstName: "Asha", LastName: "Rao"},
		{ID: 2, RoomID: "#005", Category: domain.CategoryClassic, Date: day(1), CheckIn: "10:00", CheckOut: "11:10",
			Status: domain.StatusBooked, BilledHours: 1, HallCost: 2500, TotalCost: 2500},
		{ID: 3, RoomID: "#009", Category: domain.CategoryGrand, Date: day(1), CheckIn: "10:00", CheckOut: "11:20",
			Status: domain.StatusBooked, BilledHours: 2, HallCost: 8000, TotalCost: 8000},
		{ID: 4, RoomID: "#010", Category: domain.CategoryGrand, Date: day(2), CheckIn: "09:00", CheckOut: "17:00",
			Status: domain.StatusCancelled, BilledHours: 8, HallCost: 32000, TotalCost: 32000},
	}
}

func newTestService(bookings []*domain.Booking, err error) *Service {
	repo := new(mockBookingRepository)
	repo.On("GetWithFilter", mock.Anything, mock.MatchedBy(func(f domain.BookingsFilter) bool {
		return f.IncludeCancelled && f.StartDate != nil && f.EndDate != nil
	})).Return(bookings, err)
	return NewService(repo, adminList{adminID}, logger.Nop())
}

func TestService_Summary(t *testing.T) {
	svc := newTestService(reportBookings(), nil)

	resp, err := svc.Summary(context.Background(), &models.SummaryRequest{UserID: adminID, From: day(1), To: day(31)})
	require.NoError(t, err)

	assert.Equal(t, "2024-01-01", resp.From)
	assert.Equal(t, "2024-01-31", resp.To)
	assert.Equal(t, 4, resp.TotalBookings)
	assert.Equal(t, int64(1555+2500+8000), resp.TotalRevenue, "cancelled bookings are excluded from revenue")
	assert.Equal(t, map[string]int{"booked": 2, "completed": 1, "cancelled": 1}, resp.ByStatus)

	assert.Equal(t, []models.CategorySummary{
		{Category: "compact", Bookings: 1, BilledHours: 1, Revenue: 1555},
		{Category: "classic", Bookings: 1, BilledHours: 1, Revenue: 2500},
		{Category: "grand", Bookings: 1, BilledHours: 2, Revenue: 8000},
	}, resp.ByCategory)

	assert.Equal(t, []models.DailyRevenue{
		{Date: "2024-01-01", Bookings: 2, Revenue: 10500},
		{Date: "2024-01-02", Bookings: 1, Revenue: 1555},
	}, resp.ByDate)
}

func TestService_Summary_Empty(t *testing.T) {
	svc := newTestService([]*domain.Booking{}, nil)

	resp, err := svc.Summary(context.Background(), &models.SummaryRequest{UserID: adminID, From: day(1), To: day(1)})
	require.NoError(t, err)

	assert.Zero(t, resp.TotalRevenue)
	assert.Len(t, resp.ByCategory, 3)
	assert.NotNil(t, resp.ByDate)
	assert.Empty(t, resp.ByDate)
}

func TestService_Summary_Errors(t *testing.T) {
	ctx := context.Background()

	_, err := newTestService(nil, nil).Summary(ctx, &models.SummaryRequest{UserID: 99, From: day(1), To: day(2)})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = newTestService(nil, nil).Summary(ctx, &models.SummaryRequest{UserID: adminID, From: day(5), To: day(2)})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = newTestService(nil, errors.New("db down")).Summary(ctx, &models.SummaryRequest{UserID: adminID, From: day(1), To: day(2)})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Export(t *testing.T) {
	svc := newTestService(reportBookings(), nil)

	resp, err := svc.Export(context.Background(), &models.SummaryRequest{UserID: adminID, From: day(1), To: day(31)})
	require.NoError(t, err)
	assert.Equal(t, "bookings_2024-01-01_to_2024-01-31.xlsx", resp.FileName)

	f, err := excelize.OpenReader(bytes.NewReader(resp.Content))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{bookingsSheet, summarySheet}, f.GetSheetList())

	rows, err := f.GetRows(bookingsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "#001", rows[1][2])
	assert.Equal(t, "coffee x1, tea x2", rows[1][11])
	assert.Equal(t, "1555", rows[1][15])

	revenue, err := f.GetCellValue(summarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "12055", revenue)
}
