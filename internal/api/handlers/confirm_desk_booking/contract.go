package confirm_desk_booking

import (
	"context"

	"github.com/inalogystics/DeskBookingService/internal/service/bookings/models"
)

type BookingService interface {
	ConfirmDeskBooking(ctx context.Context, email string, req *models.ConfirmDeskRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
