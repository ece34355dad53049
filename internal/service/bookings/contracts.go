package bookings

import (
	"context"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/domain"
)

// DeskBookingRepository интерфейс репозитория бронирований столов
type DeskBookingRepository interface {
	Create(ctx context.Context, b *domain.DeskBooking) (*domain.DeskBooking, error)
	GetByID(ctx context.Context, id int64) (*domain.DeskBooking, error)
	ListByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]*domain.DeskBooking, error)
	ListActiveByUserFrom(ctx context.Context, userID int64, from time.Time) ([]*domain.DeskBooking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	FindConfirmedOverlap(ctx context.Context, deskID int64, date time.Time, startTime, endTime string) (*domain.DeskBooking, error)
}

// ParkingRepository интерфейс репозитория парковки
type ParkingRepository interface {
	ListActiveByUserBetween(ctx context.Context, userID int64, from, to time.Time) ([]*domain.ParkingBooking, error)
	CancelActiveByUserAndDate(ctx context.Context, userID int64, date time.Time) (int64, error)
}

// DeskRepository интерфейс репозитория столов
type DeskRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Desk, error)
}

// UserRepository интерфейс репозитория пользователей
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// NotificationRepository интерфейс репозитория уведомлений
type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
