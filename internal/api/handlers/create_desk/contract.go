package create_desk

import (
	"context"

	"github.com/inalogystics/DeskBookingService/internal/service/desks/models"
)

type DeskService interface {
	Create(ctx context.Context, req *models.CreateDeskRequest) (*models.DeskResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
