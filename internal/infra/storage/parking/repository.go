package parking

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
	"github.com/inalogystics/DeskBookingService/pkg/types"
)

const (
	uniqueViolation = "23505"

	constraintParkingSlot = "uniq_parking_booking_slot"
)

// Repository репозиторий парковочных мест и их бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория парковки
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListSpaces получает все парковочные места, упорядоченные по расположению и номеру
func (r *Repository) ListSpaces(ctx context.Context) ([]*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "spot_number", "location", "is_accessible", "has_charger", "created_at",
	).
		From("parking_spaces").
		OrderBy("location ASC", "spot_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListSpaces - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListSpaces - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	spaces := make([]*domain.ParkingSpace, 0)
	for rows.Next() {
		var s domain.ParkingSpace
		var createdAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.SpotNumber,
			&s.Location,
			&s.IsAccessible,
			&s.HasCharger,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListSpaces - scan row: %v", ErrScanRow, err)
		}

		s.CreatedAt = createdAt.Time
		spaces = append(spaces, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListSpaces - rows error: %v", ErrScanRow, err)
	}

	return spaces, nil
}

// GetSpaceByID получает парковочное место по ID
func (r *Repository) GetSpaceByID(ctx context.Context, id int64) (*domain.ParkingSpace, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "spot_number", "location", "is_accessible", "has_charger", "created_at",
	).
		From("parking_spaces").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetSpaceByID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.ParkingSpace
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.SpotNumber,
		&s.Location,
		&s.IsAccessible,
		&s.HasCharger,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrSpaceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpaceByID - scan space: %v", ErrScanRow, err)
	}

	s.CreatedAt = createdAt.Time

	return &s, nil
}

// FindBookedSpaceIDs возвращает ID мест, занятых активными бронированиями
// ровно на эту дату и время начала.
func (r *Repository) FindBookedSpaceIDs(ctx context.Context, date time.Time, startTime types.TimeString) (map[int64]struct{}, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("parking_space_id").
		From("parking_bookings").
		Where(squirrel.Eq{
			"booking_date": domain.DateOnly(date),
			"start_time":   startTime,
			"status":       domain.StatusActive,
		}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: FindBookedSpaceIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindBookedSpaceIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	booked := make(map[int64]struct{})
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: FindBookedSpaceIDs - scan row: %v", ErrScanRow, err)
		}
		booked[id] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: FindBookedSpaceIDs - rows error: %v", ErrScanRow, err)
	}

	return booked, nil
}

// CreateBooking создает бронирование парковочного места. Конфликт по
// uniq_parking_booking_slot превращается в ErrSpotTaken.
func (r *Repository) CreateBooking(ctx context.Context, b *domain.ParkingBooking) (*domain.ParkingBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("parking_bookings").
		Columns("user_id", "parking_space_id", "booking_date", "start_time", "end_time", "status").
		Values(b.UserID, b.ParkingSpaceID, b.Date, b.StartTime, b.EndTime, b.Status).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: CreateBooking - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint == constraintParkingSlot {
			return nil, ErrSpotTaken
		}
		return nil, fmt.Errorf("%w: CreateBooking - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// ListActiveByUserBetween получает активные бронирования парковки пользователя
// в диапазоне дат (включительно), вместе с данными места.
func (r *Repository) ListActiveByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]*domain.ParkingBooking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"b.id",
		"b.user_id",
		"b.parking_space_id",
		"b.booking_date",
		"b.start_time",
		"b.end_time",
		"b.status",
		"s.spot_number",
		"s.location",
		"b.created_at",
		"b.updated_at",
	).
		From("parking_bookings b").
		Join("parking_spaces s ON s.id = b.parking_space_id").
		Where(squirrel.Eq{
			"b.user_id": userID,
			"b.status":  domain.StatusActive,
		}).
		Where(squirrel.GtOrEq{"b.booking_date": domain.DateOnly(from)}).
		Where(squirrel.LtOrEq{"b.booking_date": domain.DateOnly(to)}).
		OrderBy("b.booking_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByUserBetween - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveByUserBetween - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.ParkingBooking, 0)
	for rows.Next() {
		var b domain.ParkingBooking
		var date time.Time
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.UserID,
			&b.ParkingSpaceID,
			&date,
			&b.StartTime,
			&b.EndTime,
			&b.Status,
			&b.SpotNumber,
			&b.Location,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActiveByUserBetween - scan row: %v", ErrScanRow, err)
		}

		b.Date = date
		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActiveByUserBetween - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// CancelActiveByUserAndDate отменяет все активные бронирования парковки
// пользователя на дату. Возвращает число отмененных строк.
func (r *Repository) CancelActiveByUserAndDate(ctx context.Context, userID int64, date time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("parking_bookings").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"user_id":      userID,
			"booking_date": domain.DateOnly(date),
			"status":       domain.StatusActive,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CancelActiveByUserAndDate - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: CancelActiveByUserAndDate - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: CancelActiveByUserAndDate - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}
