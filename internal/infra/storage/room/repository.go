package room

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueBooking/internal/domain"
	"github.com/m04kA/SMC-VenueBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-VenueBooking/pkg/psqlbuilder"
)

var roomColumns = []string{
	"id",
	"category",
	"name",
	"tables",
	"chairs",
	"status",
	"image_url",
	"created_at",
	"updated_at",
}

// Repository репозиторий каталога залов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория залов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает все залы (включая неактивные), упорядоченные по ID
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Room, error) {
	query, args, err := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	return r.queryRooms(ctx, "GetAll", query, args)
}

// UpdateStatus меняет статус зала и возвращает обновлённую запись
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.RoomStatus) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rooms").
		Set("status", string(status)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(roomColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	return room, nil
}

func (r *Repository) queryRooms(ctx context.Context, op string, query string, args []interface{}) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %v", ErrExecQuery, op, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return rooms, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var (
		room                 domain.Room
		category, status     string
		imageURL             sql.NullString
		createdAt, updatedAt sql.NullTime
	)

	err := row.Scan(
		&room.ID,
		&category,
		&room.Name,
		&room.Tables,
		&room.Chairs,
		&status,
		&imageURL,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.Category = domain.Category(category)
	room.Status = domain.RoomStatus(status)
	if imageURL.Valid {
		room.ImageURL = &imageURL.String
	}
	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}
