package get_parking_availability

import (
	"context"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/service/parking/models"
	"github.com/inalogystics/DeskBookingService/pkg/types"
)

type ParkingService interface {
	Availability(ctx context.Context, date time.Time, startTime types.TimeString) (*models.AvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
