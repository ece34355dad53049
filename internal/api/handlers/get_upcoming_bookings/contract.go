package get_upcoming_bookings

import (
	"context"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetUpcoming(ctx context.Context, email string, from time.Time) ([]models.UpcomingBooking, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
