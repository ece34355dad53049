package mark_notification_read

import (
	"context"

	"github.com/inalogystics/DeskBookingService/internal/service/notifications/models"
)

type NotificationService interface {
	MarkRead(ctx context.Context, email string, notificationID int64) error
	MarkAllRead(ctx context.Context, email string) (*models.MarkAllReadResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
