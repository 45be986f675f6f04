package reschedule_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/engine"
	bookingRepo "github.com/m04kA/SMC-VenueBooking/internal/infra/storage/booking"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

const (
	quoteOperation        = "quote"
	availabilityOperation = "availability"
)

// UseCase use case переноса бронирования в новое окно
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      RoomCatalog
	calculator   CostCalculator
	txManager    TransactionManager
	admins       AdminChecker
	outcomes     OutcomeRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalog RoomCatalog,
	calculator CostCalculator,
	txManager TransactionManager,
	admins AdminChecker,
	outcomes OutcomeRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		calculator:   calculator,
		txManager:    txManager,
		admins:       admins,
		outcomes:     outcomes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переносит бронирование
// Стоимость пересчитывается по сохранённым позициям, само бронирование в проверке
// доступности не участвует. Блокировок нет, как и при создании брони.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("RescheduleBooking: booking=%d, user=%d, date=%s, window=%s-%s",
		req.BookingID, req.UserID, req.Date.Format(domain.DateFormat), req.CheckIn, req.CheckOut)

	if req.BookingID <= 0 || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: bookingID and userID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if booking.UserID != req.UserID && !uc.admins.IsAdmin(req.UserID) {
		uc.logger.Warn("RescheduleBooking: user=%d is not allowed to move booking id=%d", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking id=%d has status %s", booking.ID, booking.Status)
		return nil, fmt.Errorf("%w: current status is %s", ErrCannotReschedule, booking.Status)
	}

	quote := uc.calculator.ComputeCost(booking.Category, req.CheckIn, req.CheckOut, booking.Beverages)
	uc.outcomes.ObserveEngine(quoteOperation, quote.Condition.String())
	if err := conditionError(quote.Condition, quote.Detail); err != nil {
		uc.logger.Warn("RescheduleBooking: quote rejected: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()
	if err := validateWindow(req.Date, req.CheckIn, now); err != nil {
		uc.logger.Warn("RescheduleBooking: date validation failed: %v", err)
		return nil, err
	}

	roomID := booking.RoomID
	if req.RoomID != nil && *req.RoomID != "" {
		roomID = *req.RoomID
	}

	moved := *booking
	moved.RoomID = roomID
	moved.Date = req.Date
	moved.CheckIn = req.CheckIn
	moved.CheckOut = req.CheckOut
	moved.BilledHours = quote.BilledHours
	moved.HallCost = quote.HallCost
	moved.AddonCost = quote.AddonCost
	moved.TotalCost = quote.TotalCost
	moved.Rescheduled = true

	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		rooms, err := uc.catalog.GetRooms(txCtx, booking.Category)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to load rooms: %v", err)
			return fmt.Errorf("%w: failed to load rooms: %v", ErrInternal, err)
		}

		bookings, err := uc.bookingRepo.GetForDay(txCtx, booking.Category, req.Date)
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to load bookings: %v", err)
			return fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
		}

		availability := engine.CheckAvailability(engine.AvailabilityRequest{
			Category:         booking.Category,
			Date:             req.Date,
			CheckIn:          req.CheckIn,
			CheckOut:         req.CheckOut,
			ExcludeBookingID: booking.ID,
		}, bookings, rooms)
		uc.outcomes.ObserveEngine(availabilityOperation, availability.Condition.String())

		if !availability.Contains(roomID) {
			uc.logger.Warn("RescheduleBooking: room %s is not an active %s room", roomID, booking.Category)
			return fmt.Errorf("%w: %s", ErrRoomNotFound, roomID)
		}
		if !availability.IsAvailable(roomID) {
			uc.logger.Warn("RescheduleBooking: room %s is busy on %s %s-%s",
				roomID, req.Date.Format(domain.DateFormat), req.CheckIn, req.CheckOut)
			return ErrRoomNotAvailable
		}

		if err := uc.bookingRepo.Reschedule(txCtx, &moved); err != nil {
			if errors.Is(err, bookingRepo.ErrStatusChanged) {
				uc.logger.Warn("RescheduleBooking: booking id=%d changed status during reschedule", booking.ID)
				return fmt.Errorf("%w: booking is no longer booked", ErrCannotReschedule)
			}
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to update booking id=%d: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to update booking: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrRoomNotFound) || errors.Is(err, ErrRoomNotAvailable) ||
			errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrCannotReschedule) ||
			errors.Is(err, ErrInternal) {
			return nil, err
		}
		uc.logger.Error("RescheduleBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("RescheduleBooking: booking id=%d moved to %s %s %s-%s, total=%d",
		moved.ID, moved.RoomID, moved.Date.Format(domain.DateFormat), moved.CheckIn, moved.CheckOut, moved.TotalCost)
	return &moved, nil
}

// validateWindow проверяет, что новое окно не в прошлом и не дальше горизонта бронирования
func validateWindow(date time.Time, checkIn types.TimeString, now time.Time) error {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if day.Before(today) {
		return ErrInvalidDate
	}
	if day.After(today.AddDate(0, 0, domain.DefaultAdvanceDays)) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, domain.DefaultAdvanceDays)
	}
	if day.Equal(today) && checkIn.IsBefore(types.NewTimeString(now)) {
		return fmt.Errorf("%w: %s", ErrTooLateToBook, checkIn)
	}
	return nil
}

// conditionError переводит условие движка в ошибку use case
func conditionError(condition engine.Condition, detail string) error {
	switch condition {
	case engine.ConditionNone:
		return nil
	case engine.ConditionInvalidTime:
		return fmt.Errorf("%w: %s", ErrInvalidTime, detail)
	case engine.ConditionInvalidDuration:
		return fmt.Errorf("%w: %s", ErrInvalidDuration, detail)
	default:
		// Категория и позиции берутся из уже сохранённой брони
		return fmt.Errorf("%w: stored booking cannot be priced: %s", ErrInternal, detail)
	}
}
