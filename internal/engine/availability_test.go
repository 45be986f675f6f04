package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

var testDate = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func classicCatalog() []*domain.Room {
	return []*domain.Room{
		{ID: "#005", Category: domain.CategoryClassic, Status: domain.RoomStatusActive},
		{ID: "#006", Category: domain.CategoryClassic, Status: domain.RoomStatusActive},
		{ID: "#007", Category: domain.CategoryClassic, Status: domain.RoomStatusInactive},
		{ID: "#001", Category: domain.CategoryCompact, Status: domain.RoomStatusActive},
	}
}

func reservation(id int64, roomID string, checkIn, checkOut types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:       id,
		RoomID:   roomID,
		Category: domain.CategoryClassic,
		Date:     testDate,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Status:   status,
	}
}

func classicRequest(checkIn, checkOut types.TimeString) AvailabilityRequest {
	return AvailabilityRequest{
		Category: domain.CategoryClassic,
		Date:     testDate,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

func TestCheckAvailability_Overlap(t *testing.T) {
	existing := []*domain.Booking{reservation(1, "#005", "10:00", "12:00", domain.StatusBooked)}

	tests := []struct {
		name      string
		checkIn   types.TimeString
		checkOut  types.TimeString
		status    domain.BookingStatus
		available bool
	}{
		{name: "partial overlap", checkIn: "11:30", checkOut: "12:30", status: domain.StatusBooked, available: false},
		{name: "back to back is free", checkIn: "12:00", checkOut: "13:00", status: domain.StatusBooked, available: true},
		{name: "ends at existing start", checkIn: "09:00", checkOut: "10:00", status: domain.StatusBooked, available: true},
		{name: "contains existing", checkIn: "09:00", checkOut: "13:00", status: domain.StatusBooked, available: false},
		{name: "inside existing", checkIn: "10:30", checkOut: "11:00", status: domain.StatusBooked, available: false},
		{name: "cancelled does not block", checkIn: "11:30", checkOut: "12:30", status: domain.StatusCancelled, available: true},
		{name: "completed still blocks", checkIn: "11:30", checkOut: "12:30", status: domain.StatusCompleted, available: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing[0].Status = tt.status

			result := CheckAvailability(classicRequest(tt.checkIn, tt.checkOut), existing, classicCatalog())

			require.True(t, result.Condition.OK())
			assert.Equal(t, tt.available, result.IsAvailable("#005"))
			assert.True(t, result.IsAvailable("#006"), "other rooms are unaffected")
		})
	}
}

func TestCheckAvailability_ExcludesInactiveAndOtherCategories(t *testing.T) {
	result := CheckAvailability(classicRequest("10:00", "11:00"), nil, classicCatalog())

	assert.Equal(t, []string{"#005", "#006"}, result.RoomIDs())
	assert.False(t, result.Contains("#007"), "inactive room is never offered")
	assert.False(t, result.Contains("#001"), "compact room is not in classic result")
}

func TestCheckAvailability_IgnoresOtherDayAndCategory(t *testing.T) {
	otherDay := reservation(1, "#005", "10:00", "12:00", domain.StatusBooked)
	otherDay.Date = testDate.AddDate(0, 0, 1)

	otherCategory := reservation(2, "#005", "10:00", "12:00", domain.StatusBooked)
	otherCategory.Category = domain.CategoryGrand

	result := CheckAvailability(classicRequest("10:00", "11:00"), []*domain.Booking{otherDay, otherCategory}, classicCatalog())

	assert.True(t, result.IsAvailable("#005"))
}

func TestCheckAvailability_ComparesCalendarDayOnly(t *testing.T) {
	existing := reservation(1, "#005", "10:00", "12:00", domain.StatusBooked)
	existing.Date = time.Date(2024, 1, 1, 18, 30, 0, 0, time.UTC)

	result := CheckAvailability(classicRequest("11:00", "11:30"), []*domain.Booking{existing}, classicCatalog())

	assert.False(t, result.IsAvailable("#005"))
}

func TestCheckAvailability_ExcludeBookingID(t *testing.T) {
	existing := []*domain.Booking{reservation(42, "#005", "10:00", "12:00", domain.StatusBooked)}

	req := classicRequest("11:00", "13:00")
	req.ExcludeBookingID = 42

	result := CheckAvailability(req, existing, classicCatalog())
	assert.True(t, result.IsAvailable("#005"))
}

func TestCheckAvailability_Conditions(t *testing.T) {
	t.Run("unknown category", func(t *testing.T) {
		req := classicRequest("10:00", "11:00")
		req.Category = "royal"

		result := CheckAvailability(req, nil, classicCatalog())
		assert.Equal(t, ConditionUnknownCategory, result.Condition)
		assert.Empty(t, result.Rooms)
	})

	t.Run("empty catalog", func(t *testing.T) {
		req := classicRequest("10:00", "11:00")
		req.Category = domain.CategoryGrand

		result := CheckAvailability(req, nil, classicCatalog())
		assert.Equal(t, ConditionEmptyCatalog, result.Condition)
		assert.NotNil(t, result.Rooms)
		assert.Empty(t, result.Rooms)
	})

	t.Run("zero duration", func(t *testing.T) {
		result := CheckAvailability(classicRequest("09:00", "09:00"), nil, classicCatalog())
		assert.Equal(t, ConditionInvalidDuration, result.Condition)
		assert.Len(t, result.Rooms, 2)
		assert.False(t, result.IsAvailable("#005"))
		assert.False(t, result.IsAvailable("#006"))
	})

	t.Run("malformed time", func(t *testing.T) {
		result := CheckAvailability(classicRequest("9am", "11:00"), nil, classicCatalog())
		assert.Equal(t, ConditionInvalidTime, result.Condition)
		assert.False(t, result.IsAvailable("#005"))
	})

	t.Run("invalid window without active rooms", func(t *testing.T) {
		zero := CheckAvailability(classicRequest("09:00", "09:00"), nil, nil)
		assert.Equal(t, ConditionInvalidDuration, zero.Condition)
		assert.Empty(t, zero.Rooms)

		malformed := CheckAvailability(classicRequest("25:99", "xx"), nil, nil)
		assert.Equal(t, ConditionInvalidTime, malformed.Condition)
		assert.Empty(t, malformed.Rooms)
	})
}

func TestCheckAvailability_OrderIndependent(t *testing.T) {
	existing := []*domain.Booking{
		reservation(1, "#005", "10:00", "12:00", domain.StatusBooked),
		reservation(2, "#006", "08:00", "09:00", domain.StatusBooked),
		reservation(3, "#006", "11:00", "11:30", domain.StatusCancelled),
		reservation(4, "#005", "13:00", "14:00", domain.StatusBooked),
		reservation(5, "#006", "12:59", "15:00", domain.StatusBooked),
	}
	req := classicRequest("11:00", "13:00")
	expected := CheckAvailability(req, existing, classicCatalog())

	rnd := rand.New(rand.NewSource(7))
	for i := 0; i < 20; i++ {
		shuffled := append([]*domain.Booking(nil), existing...)
		rnd.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })

		assert.Equal(t, expected, CheckAvailability(req, shuffled, classicCatalog()))
	}
}

func TestCheckAvailability_DoesNotMutateInput(t *testing.T) {
	existing := []*domain.Booking{reservation(1, "#005", "10:00", "12:00", domain.StatusBooked)}
	catalog := classicCatalog()

	before := *existing[0]
	CheckAvailability(classicRequest("11:00", "12:00"), existing, catalog)

	assert.Equal(t, before, *existing[0])
	assert.Len(t, catalog, 4)
}

func TestCheckAvailability_SkipsMalformedReservations(t *testing.T) {
	existing := []*domain.Booking{
		reservation(1, "#005", "bad", "12:00", domain.StatusBooked),
		nil,
	}

	result := CheckAvailability(classicRequest("10:00", "11:00"), existing, classicCatalog())
	assert.True(t, result.IsAvailable("#005"))
}

func TestOverlaps(t *testing.T) {
	assert.True(t, Overlaps(600, 720, 690, 750))
	assert.False(t, Overlaps(600, 720, 720, 780))
	assert.False(t, Overlaps(720, 780, 600, 720))
}
