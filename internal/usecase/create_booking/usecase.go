package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/internal/engine"
)

const (
	quoteOperation        = "quote"
	availabilityOperation = "availability"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalog      RoomCatalog
	calculator   CostCalculator
	txManager    TransactionManager
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
	outcomes OutcomeRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalog:      catalog,
		calculator:   calculator,
		txManager:    txManager,
		outcomes:     outcomes,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
//
// Проверка доступности и вставка идут в одной транзакции READ COMMITTED без блокировок,
// а в схеме нет ограничения исключения на пересечение интервалов. Два одновременных
// запроса на один зал и окно могут оба пройти проверку и оба сохраниться.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*domain.Booking, error) {
	uc.logger.Info("CreateBooking: user=%d, room=%s, category=%s, date=%s, window=%s-%s",
		req.UserID, req.RoomID, req.Category, req.Date.Format(domain.DateFormat), req.CheckIn, req.CheckOut)

	// 1. Валидация формы
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	category := domain.Category(strings.ToLower(strings.TrimSpace(req.Category)))

	// 2. Расчёт стоимости (тот же расчёт, что показывается в предпросмотре)
	quote := uc.calculator.ComputeCost(category, req.CheckIn, req.CheckOut, req.Beverages)
	uc.outcomes.ObserveEngine(quoteOperation, quote.Condition.String())
	if err := conditionError(quote.Condition, quote.Detail); err != nil {
		uc.logger.Warn("CreateBooking: quote rejected: %v", err)
		return nil, err
	}

	// 3. Проверка даты и времени
	now := uc.timeProvider.Now()
	if err := validateDate(req.Date, now, domain.DefaultAdvanceDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}
	if err := validateCheckIn(req.Date, req.CheckIn, now); err != nil {
		uc.logger.Warn("CreateBooking: check-in validation failed: %v", err)
		return nil, err
	}

	var result *domain.Booking

	// 4. Проверка доступности и сохранение
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		rooms, err := uc.catalog.GetRooms(txCtx, category)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load rooms: %v", err)
			return fmt.Errorf("%w: failed to load rooms: %v", ErrInternal, err)
		}

		bookings, err := uc.bookingRepo.GetForDay(txCtx, category, req.Date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load bookings: %v", err)
			return fmt.Errorf("%w: failed to load bookings: %v", ErrInternal, err)
		}

		availability := engine.CheckAvailability(engine.AvailabilityRequest{
			Category: category,
			Date:     req.Date,
			CheckIn:  req.CheckIn,
			CheckOut: req.CheckOut,
		}, bookings, rooms)
		uc.outcomes.ObserveEngine(availabilityOperation, availability.Condition.String())

		if !availability.Contains(req.RoomID) {
			uc.logger.Warn("CreateBooking: room %s is not an active %s room", req.RoomID, category)
			return fmt.Errorf("%w: %s", ErrRoomNotFound, req.RoomID)
		}
		if !availability.IsAvailable(req.RoomID) {
			uc.logger.Warn("CreateBooking: room %s is busy on %s %s-%s",
				req.RoomID, req.Date.Format(domain.DateFormat), req.CheckIn, req.CheckOut)
			return ErrRoomNotAvailable
		}

		booking := newBooking(req, category, quote)

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		if isUsecaseError(err) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, total=%d", result.ID, result.TotalCost)
	return result, nil
}

// newBooking собирает бронирование; стоимость сохраняется ровно такой, какой её посчитал калькулятор
func newBooking(req *Request, category domain.Category, quote engine.Quote) *domain.Booking {
	beverages := make(domain.AddonQuantities, len(quote.Lines))
	for _, line := range quote.Lines {
		beverages[line.Name] = line.Quantity
	}

	return &domain.Booking{
		UserID:       req.UserID,
		RoomID:       req.RoomID,
		Category:     category,
		Date:         req.Date,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Status:       domain.StatusBooked,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		MobileNumber: strings.TrimSpace(req.MobileNumber),
		Address:      strings.TrimSpace(req.Address),
		Purpose:      strings.TrimSpace(req.Purpose),
		Beverages:    beverages,
		BilledHours:  quote.BilledHours,
		HallCost:     quote.HallCost,
		AddonCost:    quote.AddonCost,
		TotalCost:    quote.TotalCost,
	}
}

// conditionError переводит условие движка в ошибку use case
func conditionError(condition engine.Condition, detail string) error {
	switch condition {
	case engine.ConditionNone:
		return nil
	case engine.ConditionUnknownCategory:
		return fmt.Errorf("%w: %s", ErrUnknownCategory, detail)
	case engine.ConditionInvalidTime:
		return fmt.Errorf("%w: %s", ErrInvalidTime, detail)
	case engine.ConditionInvalidDuration:
		return fmt.Errorf("%w: %s", ErrInvalidDuration, detail)
	case engine.ConditionInvalidQuantity, engine.ConditionUnknownAddon:
		return fmt.Errorf("%w: %s", ErrInvalidAddons, detail)
	default:
		return fmt.Errorf("%w: %s", ErrInvalidInput, detail)
	}
}

func isUsecaseError(err error) bool {
	for _, target := range []error{ErrRoomNotFound, ErrRoomNotAvailable, ErrInternal} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
