package user

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

var userColumns = []string{
	"id",
	"email",
	"name",
	"image",
	"role",
	"department",
	"created_at",
	"updated_at",
}

// Repository репозиторий пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает нового пользователя
func (r *Repository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("email", "name", "image", "role", "department").
		Values(u.Email, u.Name, u.Image, u.Role, u.Department).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time

	return u, nil
}

// Upsert создает пользователя или обновляет имя и аватар существующего.
// Используется при входе через внешнего провайдера.
func (r *Repository) Upsert(ctx context.Context, u *domain.User) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("users").
		Columns("email", "name", "image", "role", "department").
		Values(u.Email, u.Name, u.Image, u.Role, u.Department).
		Suffix(`ON CONFLICT (email) DO UPDATE
			SET name = COALESCE(EXCLUDED.name, users.name),
			    image = COALESCE(EXCLUDED.image, users.image),
			    updated_at = NOW()
			RETURNING id, role, department, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&u.ID,
		&u.Role,
		&u.Department,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time

	return u, nil
}

// GetByEmail получает пользователя по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"email": email}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanUser(executor.QueryRowContext(ctx, query, args...), "GetByEmail")
}

// GetByID получает пользователя по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanUser(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// List получает всех пользователей в порядке email
func (r *Repository) List(ctx context.Context) ([]*domain.User, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(userColumns...).
		From("users").
		OrderBy("email ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	users := make([]*domain.User, 0)
	for rows.Next() {
		var u domain.User
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&u.ID,
			&u.Email,
			&u.Name,
			&u.Image,
			&u.Role,
			&u.Department,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		u.CreatedAt = createdAt.Time
		u.UpdatedAt = updatedAt.Time
		users = append(users, &u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return users, nil
}

func (r *Repository) scanUser(row *sql.Row, op string) (*domain.User, error) {
	var u domain.User
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.Name,
		&u.Image,
		&u.Role,
		&u.Department,
		&createdAt,
		&updatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan user: %v", ErrScanRow, op, err)
	}

	u.CreatedAt = createdAt.Time
	u.UpdatedAt = updatedAt.Time

	return &u, nil
}
