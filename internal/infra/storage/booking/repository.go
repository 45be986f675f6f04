package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/psqlbuilder"
	"github.com/m04kA/SMC-VenueBooking/pkg/types"
)

var bookingColumns = []string{
	"id",
	"user_id",
	"room_id",
	"category",
	"booking_date",
	"check_in",
	"check_out",
	"status",
	"first_name",
	"last_name",
	"email",
	"mobile_number",
	"address",
	"purpose",
	"beverages",
	"billed_hours",
	"hall_cost",
	"addon_cost",
	"total_cost",
	"rescheduled",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
// Стоимость сохраняется ровно такой, какой её посчитал калькулятор.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"room_id",
			"category",
			"booking_date",
			"check_in",
			"check_out",
			"status",
			"first_name",
			"last_name",
			"email",
			"mobile_number",
			"address",
			"purpose",
			"beverages",
			"billed_hours",
			"hall_cost",
			"addon_cost",
			"total_cost",
		).
		Values(
			booking.UserID,
			booking.RoomID,
			string(booking.Category),
			booking.Date,
			booking.CheckIn,
			booking.CheckOut,
			string(booking.Status),
			booking.FirstName,
			booking.LastName,
			booking.Email,
			booking.MobileNumber,
			booking.Address,
			booking.Purpose,
			booking.Beverages,
			booking.BilledHours,
			booking.HallCost,
			booking.AddonCost,
			booking.TotalCost,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetForDay возвращает неотменённые бронирования категории на календарный день
// Это снимок, по которому движок считает доступность залов
func (r *Repository) GetForDay(ctx context.Context, category domain.Category, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"category": string(category)}).
		Where(squirrel.Eq{"booking_date": date.Format(domain.DateFormat)}).
		Where(squirrel.NotEq{"status": string(domain.StatusCancelled)}).
		OrderBy("room_id ASC, check_in ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForDay - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetForDay - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetWithFilter получает бронирования с гибкой фильтрацией
// Поддерживает фильтрацию по:
// - пользователю (UserID)
// - залу (RoomID) и категории (Category)
// - периоду (StartDate, EndDate)
// - статусу (Status); без статуса отменённые исключаются, если не задан IncludeCancelled
//
// Пример: все бронирования зала #005 на 2024-01-01
//
//	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
//	room := "#005"
//	filter := domain.BookingsFilter{RoomID: &room, StartDate: &date, EndDate: &date}
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).From("bookings")

	if filter.UserID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"user_id": *filter.UserID})
	}
	if filter.RoomID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"room_id": *filter.RoomID})
	}
	if filter.Category != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"category": string(*filter.Category)})
	}

	// Фильтрация по периоду
	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"booking_date": filter.StartDate.Format(domain.DateFormat)})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"booking_date": filter.EndDate.Format(domain.DateFormat)})
	}

	// Фильтрация по статусу
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": string(*filter.Status)})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": string(domain.StatusCancelled)})
	}

	// Для конкретной даты сортируем по времени заезда, для периода сначала новые
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.Equal(*filter.EndDate) {
		selectBuilder = selectBuilder.OrderBy("check_in ASC", "room_id ASC")
	} else {
		selectBuilder = selectBuilder.OrderBy("booking_date DESC", "check_in DESC")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus переводит бронирование из booked в status
// Если бронирование уже не booked, возвращает ErrStatusChanged
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": string(domain.StatusBooked)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOnBooked(ctx, executor, "UpdateStatus", query, args)
}

// Cancel отменяет бронирование в статусе booked и фиксирует время отмены
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(domain.StatusCancelled)).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id, "status": string(domain.StatusBooked)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOnBooked(ctx, executor, "Cancel", query, args)
}

// Reschedule переносит бронирование в новое окно и сохраняет пересчитанную стоимость
func (r *Repository) Reschedule(ctx context.Context, booking *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("room_id", booking.RoomID).
		Set("booking_date", booking.Date).
		Set("check_in", booking.CheckIn).
		Set("check_out", booking.CheckOut).
		Set("billed_hours", booking.BilledHours).
		Set("hall_cost", booking.HallCost).
		Set("addon_cost", booking.AddonCost).
		Set("total_cost", booking.TotalCost).
		Set("rescheduled", true).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": booking.ID, "status": string(domain.StatusBooked)}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Reschedule - build update query: %v", ErrBuildQuery, err)
	}

	return r.execOnBooked(ctx, executor, "Reschedule", query, args)
}

// CompletePast переводит в completed все бронирования в статусе booked,
// окно которых закончилось к моменту now. Возвращает количество обновлённых записей.
func (r *Repository) CompletePast(ctx context.Context, now time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	today := now.Format(domain.DateFormat)
	query, args, err := psqlbuilder.Update("bookings").
		Set("status", string(domain.StatusCompleted)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": string(domain.StatusBooked)}).
		Where(squirrel.Or{
			squirrel.Lt{"booking_date": today},
			squirrel.And{
				squirrel.Eq{"booking_date": today},
				squirrel.LtOrEq{"check_out": string(types.NewTimeString(now))},
			},
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CompletePast - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

// execOnBooked выполняет UPDATE, ограниченный статусом booked
// Бронирования не удаляются, поэтому ноль затронутых строк означает смену статуса
func (r *Repository) execOnBooked(ctx context.Context, executor DBExecutor, op string, query string, args []interface{}) error {
	err := r.execAffectingOne(ctx, executor, op, query, args)
	if errors.Is(err, ErrBookingNotFound) {
		return ErrStatusChanged
	}
	return err
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op string, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		booking              domain.Booking
		category, status     string
		cancelledAt          sql.NullTime
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.RoomID,
		&category,
		&booking.Date,
		&booking.CheckIn,
		&booking.CheckOut,
		&status,
		&booking.FirstName,
		&booking.LastName,
		&booking.Email,
		&booking.MobileNumber,
		&booking.Address,
		&booking.Purpose,
		&booking.Beverages,
		&booking.BilledHours,
		&booking.HallCost,
		&booking.AddonCost,
		&booking.TotalCost,
		&booking.Rescheduled,
		&cancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Category = domain.Category(category)
	booking.Status = domain.BookingStatus(status)
	if cancelledAt.Valid {
		booking.CancelledAt = &cancelledAt.Time
	}
	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}
