package create_booking

import (
	"context"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/domain"
	parkingModels "github.com/inalogystics/DeskBookingService/internal/service/parking/models"
	"github.com/inalogystics/DeskBookingService/pkg/types"
)

// DeskRepository интерфейс репозитория столов
type DeskRepository interface {
	GetByNumber(ctx context.Context, deskNumber string) (*domain.Desk, error)
}

// DeskBookingRepository интерфейс репозитория бронирований столов
type DeskBookingRepository interface {
	Create(ctx context.Context, b *domain.DeskBooking) (*domain.DeskBooking, error)
	FindActiveByDeskAndDate(ctx context.Context, deskID int64, date time.Time) (*domain.DeskBooking, error)
	FindActiveByUserAndDate(ctx context.Context, userID int64, date time.Time) (*domain.DeskBooking, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ParkingAssigner интерфейс сервиса подбора парковки
type ParkingAssigner interface {
	AssignSpace(ctx context.Context, userID int64, date time.Time, startTime, endTime types.TimeString, preferredSpaceID *int64) (*parkingModels.Assignment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
