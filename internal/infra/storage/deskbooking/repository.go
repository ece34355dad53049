package deskbooking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	"github.com/inalogystics/DeskBookingService/pkg/dbmetrics"
	"github.com/inalogystics/DeskBookingService/pkg/psqlbuilder"
)

const (
	uniqueViolation = "23505"

	constraintDeskSlot = "uniq_desk_booking_slot"
	constraintUserDate = "uniq_user_booking_date"
)

// Repository репозиторий бронирований столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование стола. Конфликты по частичным уникальным
// индексам превращаются в доменные ошибки ErrDeskSlotTaken / ErrUserDateTaken.
func (r *Repository) Create(ctx context.Context, b *domain.DeskBooking) (*domain.DeskBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("desk_bookings").
		Columns("user_id", "desk_id", "booking_date", "start_time", "end_time", "status").
		Values(b.UserID, b.DeskID, b.Date, b.StartTime, b.EndTime, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			switch pqErr.Constraint {
			case constraintDeskSlot:
				return nil, ErrDeskSlotTaken
			case constraintUserDate:
				return nil, ErrUserDateTaken
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID получает бронирование по ID вместе с данными стола
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.DeskBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithDesk().
		Where(squirrel.Eq{"b.id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows, "GetByID")
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// FindActiveByDeskAndDate ищет активное бронирование стола на дату
func (r *Repository) FindActiveByDeskAndDate(ctx context.Context, deskID int64, date time.Time) (*domain.DeskBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithDesk().
		Where(squirrel.Eq{
			"b.desk_id":      deskID,
			"b.booking_date": domain.DateOnly(date),
			"b.status":       domain.StatusActive,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByDeskAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByDeskAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows, "FindActiveByDeskAndDate")
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// FindActiveByUserAndDate ищет активное бронирование пользователя на дату
func (r *Repository) FindActiveByUserAndDate(ctx context.Context, userID int64, date time.Time) (*domain.DeskBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithDesk().
		Where(squirrel.Eq{
			"b.user_id":      userID,
			"b.booking_date": domain.DateOnly(date),
			"b.status":       domain.StatusActive,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByUserAndDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindActiveByUserAndDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows, "FindActiveByUserAndDate")
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

// ListActiveByDate получает все активные бронирования на дату
func (r *Repository) ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.DeskBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithDesk().
		Where(squirrel.Eq{
			"b.booking_date": domain.DateOnly(date),
			"b.status":       domain.StatusActive,
		}).
		OrderBy("d.desk_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows, "ListActiveByDate")
}

// ListByUserBetween получает бронирования пользователя в диапазоне дат
// (включительно), независимо от статуса, кроме отмененных.
func (r *Repository) ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]*domain.DeskBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithDesk().
		Where(squirrel.Eq{"b.user_id": userID}).
		Where(squirrel.NotEq{"b.status": domain.StatusCancelled}).
		Where(squirrel.GtOrEq{"b.booking_date": domain.DateOnly(from)}).
		Where(squirrel.LtOrEq{"b.booking_date": domain.DateOnly(to)}).
		OrderBy("b.booking_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUserBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows, "ListByUserBetween")
}

// ListActiveByUserFrom получает активные бронирования пользователя начиная с даты
func (r *Repository) ListActiveByUserFrom(ctx context.Context, userID int64, from time.Time) ([]*domain.DeskBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithDesk().
		Where(squirrel.Eq{
			"b.user_id": userID,
			"b.status":  domain.StatusActive,
		}).
		Where(squirrel.GtOrEq{"b.booking_date": domain.DateOnly(from)}).
		OrderBy("b.booking_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByUserFrom - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByUserFrom - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows, "ListActiveByUserFrom")
}

// UpdateStatus меняет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("desk_bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// FindConfirmedOverlap ищет подтвержденное бронирование стола на дату,
// пересекающееся по времени с интервалом [startTime, endTime).
func (r *Repository) FindConfirmedOverlap(ctx context.Context, deskID int64, date time.Time, startTime, endTime string) (*domain.DeskBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := r.selectWithDesk().
		Where(squirrel.Eq{
			"b.desk_id":      deskID,
			"b.booking_date": domain.DateOnly(date),
			"b.status":       domain.StatusConfirmed,
		}).
		Where(squirrel.Lt{"b.start_time": endTime}).
		Where(squirrel.Gt{"b.end_time": startTime}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindConfirmedOverlap - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindConfirmedOverlap - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings, err := r.scanBookings(rows, "FindConfirmedOverlap")
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return nil, ErrBookingNotFound
	}

	return bookings[0], nil
}

func (r *Repository) selectWithDesk() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"b.id",
		"b.user_id",
		"b.desk_id",
		"b.booking_date",
		"b.start_time",
		"b.end_time",
		"b.status",
		"d.desk_number",
		"d.zone",
		"b.created_at",
		"b.updated_at",
	).
		From("desk_bookings b").
		Join("desks d ON d.id = b.desk_id")
}

func (r *Repository) scanBookings(rows *sql.Rows, op string) ([]*domain.DeskBooking, error) {
	bookings := make([]*domain.DeskBooking, 0)

	for rows.Next() {
		var b domain.DeskBooking
		var date time.Time
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.DeskID,
			&date,
			&b.StartTime,
			&b.EndTime,
			&b.Status,
			&b.DeskNumber,
			&b.Zone,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}

		b.Date = date
		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return bookings, nil
}
