package get_notifications

import (
	"context"

	"github.com/inalogystics/DeskBookingService/internal/service/notifications/models"
)

type NotificationService interface {
	ListForUser(ctx context.Context, email string) (*models.NotificationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
