package get_week_bookings

import (
	"context"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetWeek(ctx context.Context, email string, weekStart time.Time) ([]models.WeekDay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
