package notifications

import (
	"context"

	"github.com/inalogystics/DeskBookingService/internal/domain"
)

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	ListByUser(ctx context.Context, userID int64) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID int64) error
	MarkAllRead(ctx context.Context, userID int64) (int64, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
