package parking

import (
	"context"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	"github.com/inalogystics/DeskBookingService/pkg/types"
)

// ParkingRepository интерфейс репозитория парковки
type ParkingRepository interface {
	ListSpaces(ctx context.Context) ([]*domain.ParkingSpace, error)
	FindBookedSpaceIDs(ctx context.Context, date time.Time, startTime types.TimeString) (map[int64]struct{}, error)
	CreateBooking(ctx context.Context, b *domain.ParkingBooking) (*domain.ParkingBooking, error)
	CancelActiveByUserAndDate(ctx context.Context, userID int64, date time.Time) (int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
