package get_desk_availability

import (
	"context"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/domain"
)

// DeskRepository интерфейс репозитория столов
type DeskRepository interface {
	ListActive(ctx context.Context) ([]*domain.Desk, error)
}

// DeskBookingRepository интерфейс репозитория бронирований столов
type DeskBookingRepository interface {
	ListActiveByDate(ctx context.Context, date time.Time) ([]*domain.DeskBooking, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
