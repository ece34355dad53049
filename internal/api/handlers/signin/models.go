package signin

import "github.com/inalogystics/DeskBookingService/internal/service/users/models"

// SignInRequest HTTP request model: токен доступа внешнего провайдера
type SignInRequest struct {
	AccessToken string `json:"accessToken"`
}

// SessionResponse сессионный токен сервиса и профиль пользователя.
// User может быть nil, если профиль не удалось сохранить: вход при этом
// все равно считается успешным.
type SessionResponse struct {
	Token     string               `json:"token"`
	ExpiresAt string               `json:"expiresAt"`
	User      *models.UserResponse `json:"user,omitempty"`
}
