package check_availability

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/engine"
)

const operation = "availability"

// UseCase use case проверки доступности залов категории
type UseCase struct {
	catalog     RoomCatalog
	bookingRepo BookingRepository
	outcomes    OutcomeRecorder
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalog RoomCatalog,
	bookingRepo BookingRepository,
	outcomes OutcomeRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalog:     catalog,
		bookingRepo: bookingRepo,
		outcomes:    outcomes,
		logger:      logger,
	}
}

// Execute выполняет use case проверки доступности
// Снимок залов и бронирований читается без блокировок: результат носит справочный характер
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: category=%s, date=%s, window=%s-%s",
		req.Category, req.Date.Format(domain.DateFormat), req.CheckIn, req.CheckOut)

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	category := domain.Category(strings.ToLower(strings.TrimSpace(req.Category)))

	var (
		rooms    []*domain.Room
		bookings []*domain.Booking
		err      error
	)

	if category.IsValid() {
		rooms, err = uc.catalog.GetRooms(ctx, category)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to load rooms for category=%s: %v", category, err)
			return nil, fmt.Errorf("%w: failed to load rooms: %v", ErrInternal, err)
		}

		bookings, err = uc.bookingRepo.GetForDay(ctx, category, req.Date)
		if err != nil {
			uc.logger.Error("CheckAvailability: failed to load bookings for category=%s: %v", category, err)
			return nil, fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
		}
	}

	availability := engine.CheckAvailability(engine.AvailabilityRequest{
		Category: category,
		Date:     req.Date,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	}, bookings, rooms)
	uc.outcomes.ObserveEngine(operation, availability.Condition.String())

	switch availability.Condition {
	case engine.ConditionUnknownCategory:
		uc.logger.Warn("CheckAvailability: unknown category %q", req.Category)
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, req.Category)
	case engine.ConditionInvalidTime:
		uc.logger.Warn("CheckAvailability: invalid time window %s-%s", req.CheckIn, req.CheckOut)
		return nil, ErrInvalidTime
	case engine.ConditionInvalidDuration:
		uc.logger.Warn("CheckAvailability: empty or negative window %s-%s", req.CheckIn, req.CheckOut)
		return nil, ErrInvalidDuration
	}

	resp := &Response{
		Category:     string(category),
		Date:         req.Date,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		EmptyCatalog: availability.Condition == engine.ConditionEmptyCatalog,
		Rooms:        make([]RoomAvailability, 0, len(availability.Rooms)),
	}

	if req.RoomID != nil && !availability.Contains(*req.RoomID) {
		uc.logger.Warn("CheckAvailability: room %s is not an active %s room", *req.RoomID, category)
		return nil, fmt.Errorf("%w: %s", ErrRoomNotFound, *req.RoomID)
	}

	for _, room := range rooms {
		if !availability.Contains(room.ID) {
			continue
		}
		if req.RoomID != nil && room.ID != *req.RoomID {
			continue
		}
		resp.Rooms = append(resp.Rooms, RoomAvailability{
			RoomID:    room.ID,
			Name:      room.Name,
			Tables:    room.Tables,
			Chairs:    room.Chairs,
			ImageURL:  room.ImageURL,
			Available: availability.IsAvailable(room.ID),
		})
	}

	uc.logger.Info("CheckAvailability: category=%s, %d rooms checked", category, len(resp.Rooms))
	return resp, nil
}
