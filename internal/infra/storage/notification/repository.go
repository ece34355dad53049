package notification

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	"github.com/inalogystics/DeskBookingService/pkg/dbmetrics"
	"github.com/inalogystics/DeskBookingService/pkg/psqlbuilder"
)

// Repository репозиторий уведомлений
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория уведомлений
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает уведомление для пользователя
func (r *Repository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("notifications").
		Columns("user_id", "type", "title", "message", "is_read").
		Values(n.UserID, n.Type, n.Title, n.Message, n.IsRead).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&n.ID,
		&createdAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	n.CreatedAt = createdAt.Time

	return n, nil
}

// ListByUser получает уведомления пользователя, свежие первыми
func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id", "user_id", "type", "title", "message", "is_read", "read_at", "created_at",
	).
		From("notifications").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByUser - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	notifications := make([]*domain.Notification, 0)
	for rows.Next() {
		var n domain.Notification
		var readAt sql.NullTime
		var createdAt sql.NullTime

		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Type,
			&n.Title,
			&n.Message,
			&n.IsRead,
			&readAt,
			&createdAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByUser - scan row: %v", ErrScanRow, err)
		}

		if readAt.Valid {
			t := readAt.Time
			n.ReadAt = &t
		}
		n.CreatedAt = createdAt.Time
		notifications = append(notifications, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByUser - rows error: %v", ErrScanRow, err)
	}

	return notifications, nil
}

// MarkRead помечает уведомление пользователя прочитанным
func (r *Repository) MarkRead(ctx context.Context, id, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Set("read_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":      id,
			"user_id": userID,
		}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: MarkRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkRead - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkRead - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead помечает все уведомления пользователя прочитанными
func (r *Repository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("notifications").
		Set("is_read", true).
		Set("read_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"user_id": userID,
			"is_read": false,
		}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: MarkAllRead - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: MarkAllRead - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: MarkAllRead - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}
