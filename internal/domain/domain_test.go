package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory(" Classic ")
	require.NoError(t, err)
	assert.Equal(t, CategoryClassic, c)

	_, err = ParseCategory("royal")
	assert.ErrorIs(t, err, ErrUnknownCategory)
}

func TestBooking_StatusHelpers(t *testing.T) {
	b := &Booking{Status: StatusBooked}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.CanBeRescheduled())

	b.Status = StatusCompleted
	assert.True(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())
	assert.True(t, b.IsCompleted())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.False(t, b.CanBeRescheduled())
}

func TestBooking_CanTransitionTo(t *testing.T) {
	booked := &Booking{Status: StatusBooked}
	assert.True(t, booked.CanTransitionTo(StatusCompleted))
	assert.True(t, booked.CanTransitionTo(StatusCancelled))
	assert.False(t, booked.CanTransitionTo(StatusBooked))

	completed := &Booking{Status: StatusCompleted}
	assert.False(t, completed.CanTransitionTo(StatusCancelled))

	cancelled := &Booking{Status: StatusCancelled}
	assert.False(t, cancelled.CanTransitionTo(StatusCompleted))
}

func TestAddonQuantities_ValueScan(t *testing.T) {
	value, err := AddonQuantities{"tea": 2}.Value()
	require.NoError(t, err)

	var scanned AddonQuantities
	require.NoError(t, scanned.Scan(value))
	assert.Equal(t, AddonQuantities{"tea": 2}, scanned)

	require.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	assert.Error(t, scanned.Scan(12))
}

func TestGroupRoomsByCategory(t *testing.T) {
	rooms := []*Room{
		{ID: "#009", Category: CategoryGrand},
		{ID: "#001", Category: CategoryCompact},
		{ID: "#002", Category: CategoryCompact},
	}

	halls := GroupRoomsByCategory(rooms, DefaultRateTable())

	require.Len(t, halls, 3)
	assert.Equal(t, CategoryCompact, halls[0].Category)
	assert.Equal(t, int64(1500), halls[0].HourlyRate)
	assert.Len(t, halls[0].Rooms, 2)
	assert.Empty(t, halls[1].Rooms)
	assert.Equal(t, "#009", halls[2].Rooms[0].ID)
}
