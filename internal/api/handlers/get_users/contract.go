package get_users

import (
	"context"

	"github.com/inalogystics/DeskBookingService/internal/service/users/models"
)

type UserService interface {
	List(ctx context.Context) (*models.UserListResponse, error)
	GetByEmail(ctx context.Context, email string) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
