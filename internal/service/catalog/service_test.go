package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	roomRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/room"
	"github.com/m04kA/SMC-VenueBooking/internal/service/catalog/models"
	"github.com/m04kA/SMC-VenueBooking/pkg/logger"
)

type mockRoomRepository struct {
	mock.Mock
}

func (m *mockRoomRepository) GetAll(ctx context.Context) ([]*domain.Room, error) {
	args := m.Called(ctx)
	rooms, _ := args.Get(0).([]*domain.Room)
	return rooms, args.Error(1)
}

func (m *mockRoomRepository) UpdateStatus(ctx context.Context, id string, status domain.RoomStatus) (*domain.Room, error) {
	args := m.Called(ctx, id, status)
	room, _ := args.Get(0).(*domain.Room)
	return room, args.Error(1)
}

type mockRoomCache struct {
	mock.Mock
}

func (m *mockRoomCache) GetRooms(ctx context.Context) ([]*domain.Room, bool, error) {
	args := m.Called(ctx)
	rooms, _ := args.Get(0).([]*domain.Room)
	return rooms, args.Bool(1), args.Error(2)
}

func (m *mockRoomCache) Version(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRoomCache) SetRooms(ctx context.Context, rooms []*domain.Room, version int64) error {
	return m.Called(ctx, rooms, version).Error(0)
}

func (m *mockRoomCache) Invalidate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
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

func seedRooms() []*domain.Room {
	return []*domain.Room{
		{ID: "#001", Category: domain.CategoryCompact, Status: domain.RoomStatusActive},
		{ID: "#005", Category: domain.CategoryClassic, Status: domain.RoomStatusActive},
		{ID: "#006", Category: domain.CategoryClassic, Status: domain.RoomStatusInactive},
		{ID: "#009", Category: domain.CategoryGrand, Status: domain.RoomStatusActive},
	}
}

func TestService_GetRooms_CacheHit(t *testing.T) {
	repo := new(mockRoomRepository)
	cache := new(mockRoomCache)
	cache.On("GetRooms", mock.Anything).Return(seedRooms(), true, nil)

	svc := NewService(repo, cache, adminList{1}, domain.DefaultRateTable(), logger.Nop())

	rooms, err := svc.GetRooms(context.Background(), domain.CategoryClassic)
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.Equal(t, "#005", rooms[0].ID)
	assert.Equal(t, "#006", rooms[1].ID)

	repo.AssertNotCalled(t, "GetAll", mock.Anything)
}

func TestService_GetRooms_CacheMissStoresSnapshot(t *testing.T) {
	repo := new(mockRoomRepository)
	repo.On("GetAll", mock.Anything).Return(seedRooms(), nil).Once()

	cache := new(mockRoomCache)
	cache.On("GetRooms", mock.Anything).Return(nil, false, nil)
	cache.On("Version", mock.Anything).Return(int64(3), nil).Once()
	cache.On("SetRooms", mock.Anything, mock.Anything, int64(3)).Return(nil).Once()

	svc := NewService(repo, cache, adminList{1}, domain.DefaultRateTable(), logger.Nop())

	rooms, err := svc.GetRooms(context.Background(), domain.CategoryGrand)
	require.NoError(t, err)
	require.Len(t, rooms, 1)

	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestService_GetRooms_CacheErrorFallsBack(t *testing.T) {
	repo := new(mockRoomRepository)
	repo.On("GetAll", mock.Anything).Return(seedRooms(), nil)

	cache := new(mockRoomCache)
	cache.On("GetRooms", mock.Anything).Return(nil, false, errors.New("connection refused"))
	cache.On("Version", mock.Anything).Return(int64(0), errors.New("connection refused"))

	svc := NewService(repo, cache, adminList{1}, domain.DefaultRateTable(), logger.Nop())

	rooms, err := svc.GetRooms(context.Background(), domain.CategoryCompact)
	require.NoError(t, err)
	assert.Len(t, rooms, 1)
	cache.AssertNotCalled(t, "SetRooms", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_GetRooms_VersionReadBeforeDatabase(t *testing.T) {
	var order []string

	repo := new(mockRoomRepository)
	repo.On("GetAll", mock.Anything).Return(seedRooms(), nil).Run(func(mock.Arguments) {
		order = append(order, "GetAll")
	})

	cache := new(mockRoomCache)
	cache.On("GetRooms", mock.Anything).Return(nil, false, nil)
	cache.On("Version", mock.Anything).Return(int64(7), nil).Run(func(mock.Arguments) {
		order = append(order, "Version")
	})
	cache.On("SetRooms", mock.Anything, mock.Anything, int64(7)).Return(nil).Run(func(mock.Arguments) {
		order = append(order, "SetRooms")
	})

	svc := NewService(repo, cache, adminList{1}, domain.DefaultRateTable(), logger.Nop())

	_, err := svc.GetRooms(context.Background(), domain.CategoryClassic)
	require.NoError(t, err)
	assert.Equal(t, []string{"Version", "GetAll", "SetRooms"}, order)
}

func TestService_GetRooms_WithoutCache(t *testing.T) {
	repo := new(mockRoomRepository)
	repo.On("GetAll", mock.Anything).Return(nil, errors.New("db down"))

	svc := NewService(repo, nil, adminList{1}, domain.DefaultRateTable(), logger.Nop())

	_, err := svc.GetRooms(context.Background(), domain.CategoryCompact)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_ListHalls(t *testing.T) {
	repo := new(mockRoomRepository)
	repo.On("GetAll", mock.Anything).Return(seedRooms(), nil)

	svc := NewService(repo, nil, adminList{1}, domain.DefaultRateTable(), logger.Nop())

	resp, err := svc.ListHalls(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Halls, 3)

	assert.Equal(t, "compact", resp.Halls[0].Category)
	assert.Equal(t, int64(1500), resp.Halls[0].HourlyRate)
	assert.Equal(t, "classic", resp.Halls[1].Category)
	assert.Equal(t, int64(2500), resp.Halls[1].HourlyRate)
	require.Len(t, resp.Halls[1].Rooms, 1, "inactive room is hidden")
	assert.Equal(t, "#005", resp.Halls[1].Rooms[0].ID)
	assert.Equal(t, int64(4000), resp.Halls[2].HourlyRate)
}

func TestService_UpdateRoomStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("admin updates and invalidates cache", func(t *testing.T) {
		repo := new(mockRoomRepository)
		repo.On("UpdateStatus", mock.Anything, "#005", domain.RoomStatusInactive).
			Return(&domain.Room{ID: "#005", Category: domain.CategoryClassic, Status: domain.RoomStatusInactive}, nil)

		cache := new(mockRoomCache)
		cache.On("Invalidate", mock.Anything).Return(nil).Once()

		svc := NewService(repo, cache, adminList{1}, domain.DefaultRateTable(), logger.Nop())

		resp, err := svc.UpdateRoomStatus(ctx, &models.UpdateRoomStatusRequest{UserID: 1, RoomID: "#005", Status: "inactive"})
		require.NoError(t, err)
		assert.Equal(t, "inactive", resp.Status)
		cache.AssertExpectations(t)
	})

	t.Run("non admin", func(t *testing.T) {
		svc := NewService(new(mockRoomRepository), nil, adminList{1}, domain.DefaultRateTable(), logger.Nop())

		_, err := svc.UpdateRoomStatus(ctx, &models.UpdateRoomStatusRequest{UserID: 2, RoomID: "#005", Status: "inactive"})
		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("invalid status", func(t *testing.T) {
		svc := NewService(new(mockRoomRepository), nil, adminList{1}, domain.DefaultRateTable(), logger.Nop())

		_, err := svc.UpdateRoomStatus(ctx, &models.UpdateRoomStatusRequest{UserID: 1, RoomID: "#005", Status: "broken"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown room", func(t *testing.T) {
		repo := new(mockRoomRepository)
		repo.On("UpdateStatus", mock.Anything, "#099", domain.RoomStatusActive).Return(nil, roomRepo.ErrRoomNotFound)

		svc := NewService(repo, nil, adminList{1}, domain.DefaultRateTable(), logger.Nop())

		_, err := svc.UpdateRoomStatus(ctx, &models.UpdateRoomStatusRequest{UserID: 1, RoomID: "#099", Status: "active"})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})
}
