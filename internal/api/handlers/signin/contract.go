package signin

import (
	"context"

	"github.com/inalogystics/DeskBookingService/internal/integrations/identity"
	"github.com/inalogystics/DeskBookingService/internal/service/users/models"
)

type IdentityClient interface {
	GetUserInfo(ctx context.Context, accessToken string) (*identity.UserInfo, error)
}

type UserService interface {
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
