package reschedule_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/engine"
	bookingRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
	"github.com/m04kA/SMC-VenueBooking/pkg/ptr"
)

const (
	ownerID = int64(10)
	adminID = int64(1)
	otherID = int64(20)
)

type mockBookingRepository struct {
	mock.Mock
}

func (m *mockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	booking, _ := args.Get(0).(*domain.Booking)
	return booking, args.Error(1)
}

func (m *mockBookingRepository) GetForDay(ctx context.Context, category domain.Category, date time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, category, date)
	bookings, _ := args.Get(0).([]*domain.Booking)
	return bookings, args.Error(1)
}

func (m *mockBookingRepository) Reschedule(ctx context.Context, booking *domain.Booking) error {
	return m.Called(ctx, booking).Error(0)
}

type mockCatalog struct {
	mock.Mock
}

func (m *mockCatalog) GetRooms(ctx context.Context, category domain.Category) ([]*domain.Room, error) {
	args := m.Called(ctx, category)
	rooms, _ := args.Get(0).([]*domain.Room)
	return rooms, args.Error(1)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopOutcomes struct{}

func (noopOutcomes) ObserveEngine(string, string) {}

type adminList []int64

func (a adminList) IsAdmin(userID int64) bool {
	for _, id := range a {
		if id == userID {
			return true
		}
	}
	return false
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

var (
	now     = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	oldDay  = time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	newDay  = time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)
	catalog = []*domain.Room{
		{ID: "#005", Category: domain.CategoryClassic, Status: domain.RoomStatusActive},
		{ID: "#006", Category: domain.CategoryClassic, Status: domain.RoomStatusActive},
	}
)

func storedBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          5,
		UserID:      ownerID,
		RoomID:      "#005",
		Category:    domain.CategoryClassic,
		Date:        oldDay,
		CheckIn:     "10:00",
		CheckOut:    "12:00",
		Status:      status,
		Beverages:   domain.AddonQuantities{"tea": 2, "coffee": 1},
		BilledHours: 2,
		HallCost:    5000,
		AddonCost:   55,
		TotalCost:   5055,
	}
}

func newTestUseCase(repo *mockBookingRepository, rooms *mockCatalog) *UseCase {
	calculator := engine.NewCalculator(domain.DefaultRateTable(), domain.DefaultAddonPrices())
	uc := NewUseCase(repo, rooms, calculator, inlineTx{}, adminList{adminID}, noopOutcomes{}, logger.Nop())
	uc.timeProvider = fixedTime{now: now}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()

	repo := &mockBookingRepository{}
	rooms := &mockCatalog{}
	repo.On("GetByID", ctx, int64(5)).Return(storedBooking(domain.StatusBooked), nil)
	rooms.On("GetRooms", ctx, domain.CategoryClassic).Return(catalog, nil)
	// Сама бронь попадает в снимок и не должна блокировать перенос на пересекающееся время
	repo.On("GetForDay", ctx, domain.CategoryClassic, oldDay).Return([]*domain.Booking{storedBooking(domain.StatusBooked)}, nil)
	repo.On("Reschedule", ctx, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.ID == 5 && b.CheckIn == "11:00" && b.CheckOut == "14:10" && b.Rescheduled
	})).Return(nil)

	uc := newTestUseCase(repo, rooms)

	moved, err := uc.Execute(ctx, &Request{
		BookingID: 5,
		UserID:    ownerID,
		Date:      oldDay,
		CheckIn:   "11:00",
		CheckOut:  "14:10",
	})
	require.NoError(t, err)

	assert.Equal(t, "#005", moved.RoomID)
	assert.Equal(t, 3, moved.BilledHours)
	assert.Equal(t, int64(7500), moved.HallCost)
	assert.Equal(t, int64(55), moved.AddonCost)
	assert.Equal(t, int64(7555), moved.TotalCost)
	assert.True(t, moved.Rescheduled)
	repo.AssertExpectations(t)
}

func TestUseCase_Execute_AdminMovesToOtherRoom(t *testing.T) {
	ctx := context.Background()

	repo := &mockBookingRepository{}
	rooms := &mockCatalog{}
	repo.On("GetByID", ctx, int64(5)).Return(storedBooking(domain.StatusBooked), nil)
	rooms.On("GetRooms", ctx, domain.CategoryClassic).Return(catalog, nil)
	repo.On("GetForDay", ctx, domain.CategoryClassic, newDay).Return([]*domain.Booking{}, nil)
	repo.On("Reschedule", ctx, mock.Anything).Return(nil)

	uc := newTestUseCase(repo, rooms)

	moved, err := uc.Execute(ctx, &Request{
		BookingID: 5,
		UserID:    adminID,
		Date:      newDay,
		CheckIn:   "10:00",
		CheckOut:  "12:00",
		RoomID:    ptr.Ptr("#006"),
	})
	require.NoError(t, err)
	assert.Equal(t, "#006", moved.RoomID)
	assert.Equal(t, newDay, moved.Date)
	assert.Equal(t, int64(5055), moved.TotalCost)
}

func TestUseCase_Execute_Busy(t *testing.T) {
	ctx := context.Background()

	repo := &mockBookingRepository{}
	rooms := &mockCatalog{}
	repo.On("GetByID", ctx, int64(5)).Return(storedBooking(domain.StatusBooked), nil)
	rooms.On("GetRooms", ctx, domain.CategoryClassic).Return(catalog, nil)
	repo.On("GetForDay", ctx, domain.CategoryClassic, newDay).Return([]*domain.Booking{
		{ID: 9, RoomID: "#005", Category: domain.CategoryClassic, Date: newDay, CheckIn: "11:00", CheckOut: "13:00", Status: domain.StatusBooked},
	}, nil)

	uc := newTestUseCase(repo, rooms)

	_, err := uc.Execute(ctx, &Request{BookingID: 5, UserID: ownerID, Date: newDay, CheckIn: "12:00", CheckOut: "14:00"})
	assert.ErrorIs(t, err, ErrRoomNotAvailable)
	repo.AssertNotCalled(t, "Reschedule", mock.Anything, mock.Anything)
}

func TestUseCase_Execute_CompletedDuringReschedule(t *testing.T) {
	ctx := context.Background()

	repo := &mockBookingRepository{}
	rooms := &mockCatalog{}
	repo.On("GetByID", ctx, int64(5)).Return(storedBooking(domain.StatusBooked), nil)
	rooms.On("GetRooms", ctx, domain.CategoryClassic).Return(catalog, nil)
	repo.On("GetForDay", ctx, domain.CategoryClassic, newDay).Return([]*domain.Booking{}, nil)
	// воркер завершил бронь между чтением и обновлением
	repo.On("Reschedule", ctx, mock.Anything).Return(bookingRepo.ErrStatusChanged)

	uc := newTestUseCase(repo, rooms)

	_, err := uc.Execute(ctx, &Request{BookingID: 5, UserID: ownerID, Date: newDay, CheckIn: "10:00", CheckOut: "12:00"})
	assert.ErrorIs(t, err, ErrCannotReschedule)
	assert.NotErrorIs(t, err, ErrInternal)
}

func TestUseCase_Execute_Rejections(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		stored  *domain.Booking
		repoErr error
		req     *Request
		wantErr error
	}{
		{
			name:    "not found",
			repoErr: bookingRepo.ErrBookingNotFound,
			req:     &Request{BookingID: 5, UserID: ownerID, Date: newDay, CheckIn: "10:00", CheckOut: "11:00"},
			wantErr: ErrBookingNotFound,
		},
		{
			name:    "foreign booking",
			stored:  storedBooking(domain.StatusBooked),
			req:     &Request{BookingID: 5, UserID: otherID, Date: newDay, CheckIn: "10:00", CheckOut: "11:00"},
			wantErr: ErrAccessDenied,
		},
		{
			name:    "cancelled",
			stored:  storedBooking(domain.StatusCancelled),
			req:     &Request{BookingID: 5, UserID: ownerID, Date: newDay, CheckIn: "10:00", CheckOut: "11:00"},
			wantErr: ErrCannotReschedule,
		},
		{
			name:    "completed",
			stored:  storedBooking(domain.StatusCompleted),
			req:     &Request{BookingID: 5, UserID: adminID, Date: newDay, CheckIn: "10:00", CheckOut: "11:00"},
			wantErr: ErrCannotReschedule,
		},
		{
			name:    "zero duration",
			stored:  storedBooking(domain.StatusBooked),
			req:     &Request{BookingID: 5, UserID: ownerID, Date: newDay, CheckIn: "10:00", CheckOut: "10:00"},
			wantErr: ErrInvalidDuration,
		},
		{
			name:    "past date",
			stored:  storedBooking(domain.StatusBooked),
			req:     &Request{BookingID: 5, UserID: ownerID, Date: now.AddDate(0, 0, -3), CheckIn: "10:00", CheckOut: "11:00"},
			wantErr: ErrInvalidDate,
		},
		{
			name:    "missing date",
			req:     &Request{BookingID: 5, UserID: ownerID, CheckIn: "10:00", CheckOut: "11:00"},
			wantErr: ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockBookingRepository{}
			repo.On("GetByID", ctx, int64(5)).Return(tt.stored, tt.repoErr)

			uc := newTestUseCase(repo, &mockCatalog{})

			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "Reschedule", mock.Anything, mock.Anything)
		})
	}
}
