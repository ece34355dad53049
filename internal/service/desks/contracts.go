package desks

import (
	"context"

	"github.com/inalogystics/DeskBookingService/internal/domain"
)

// DeskRepository интерфейс репозитория столов
type DeskRepository interface {
	Create(ctx context.Context, d *domain.Desk) (*domain.Desk, error)
	ListActive(ctx context.Context) ([]*domain.Desk, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
