package desk

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	"github.com/inalogystics/DeskBookingService/pkg/dbmetrics"
	"github.com/inalogystics/DeskBookingService/pkg/psqlbuilder"
)

const uniqueViolation = "23505"

var deskColumns = []string{
	"id",
	"desk_number",
	"floor",
	"zone",
	"x",
	"y",
	"has_monitor",
	"has_standing_desk",
	"is_shared",
	"is_active",
	"created_at",
	"updated_at",
}

// Repository репозиторий столов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория столов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый стол (используется при посеве и админском добавлении)
func (r *Repository) Create(ctx context.Context, d *domain.Desk) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("desks").
		Columns(
			"desk_number",
			"floor",
			"zone",
			"x",
			"y",
			"has_monitor",
			"has_standing_desk",
			"is_shared",
			"is_active",
		).
		Values(
			d.DeskNumber,
			d.Floor,
			d.Zone,
			d.X,
			d.Y,
			d.HasMonitor,
			d.HasStandingDesk,
			d.IsShared,
			d.IsActive,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateDeskNumber
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return d, nil
}

// GetByNumber получает стол по его номеру (например, "D10")
func (r *Repository) GetByNumber(ctx context.Context, deskNumber string) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deskColumns...).
		From("desks").
		Where(squirrel.Eq{"desk_number": deskNumber}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByNumber - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanDesk(executor.QueryRowContext(ctx, query, args...), "GetByNumber")
}

// GetByID получает стол по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deskColumns...).
		From("desks").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanDesk(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// ListActive получает все активные столы в порядке номеров
func (r *Repository) ListActive(ctx context.Context) ([]*domain.Desk, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(deskColumns...).
		From("desks").
		Where(squirrel.Eq{"is_active": true}).
		OrderBy("desk_number ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActive - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	desks := make([]*domain.Desk, 0)
	for rows.Next() {
		var d domain.Desk
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&d.ID,
			&d.DeskNumber,
			&d.Floor,
			&d.Zone,
			&d.X,
			&d.Y,
			&d.HasMonitor,
			&d.HasStandingDesk,
			&d.IsShared,
			&d.IsActive,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListActive - scan row: %v", ErrScanRow, err)
		}

		d.CreatedAt = createdAt.Time
		d.UpdatedAt = updatedAt.Time
		desks = append(desks, &d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListActive - rows error: %v", ErrScanRow, err)
	}

	return desks, nil
}

func (r *Repository) scanDesk(row *sql.Row, op string) (*domain.Desk, error) {
	var d domain.Desk
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&d.ID,
		&d.DeskNumber,
		&d.Floor,
		&d.Zone,
		&d.X,
		&d.Y,
		&d.HasMonitor,
		&d.HasStandingDesk,
		&d.IsShared,
		&d.IsActive,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrDeskNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan desk: %v", ErrScanRow, op, err)
	}

	d.CreatedAt = createdAt.Time
	d.UpdatedAt = updatedAt.Time

	return &d, nil
}
