package signin

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/api/middleware"
	"github.com/inalogystics/DeskBookingService/internal/integrations/identity"
	userModels "github.com/inalogystics/DeskBookingService/internal/service/users/models"
	"github.com/inalogystics/DeskBookingService/pkg/ptr"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgTokenRejected      = "access token rejected by identity provider"
)

type Handler struct {
	identityClient IdentityClient
	userService    UserService
	jwtSecret      []byte
	tokenTTL       time.Duration
	logger         Logger
}

func NewHandler(identityClient IdentityClient, userService UserService, jwtSecret []byte, tokenTTL time.Duration, logger Logger) *Handler {
	return &Handler{
		identityClient: identityClient,
		userService:    userService,
		jwtSecret:      jwtSecret,
		tokenTTL:       tokenTTL,
		logger:         logger,
	}
}

// Handle POST /api/v1/auth/session
// Обменивает токен доступа провайдера идентификации на сессионный токен
// сервиса. Ошибка сохранения профиля в БД не блокирует вход.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.AccessToken == "" {
		h.logger.Warn("POST /auth/session - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	info, err := h.identityClient.GetUserInfo(r.Context(), req.AccessToken)
	if err != nil {
		if errors.Is(err, identity.ErrUnauthorized) {
			h.logger.Warn("POST /auth/session - Token rejected by provider")
			handlers.RespondUnauthorized(w, msgTokenRejected)
			return
		}
		h.logger.Error("POST /auth/session - Identity provider error: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	signInReq := &userModels.SignInRequest{Email: info.Email}
	if info.Name != "" {
		signInReq.Name = ptr.Ptr(info.Name)
	}
	if info.Picture != "" {
		signInReq.Image = ptr.Ptr(info.Picture)
	}

	user, err := h.userService.SignIn(r.Context(), signInReq)
	if err != nil {
		// Вход не блокируется проблемами с БД: профиль досохранится в другой раз
		h.logger.Error("POST /auth/session - Failed to persist user profile: email=%s, error=%v", info.Email, err)
		user = nil
	}

	expiresAt := time.Now().Add(h.tokenTTL)
	claims := &middleware.SessionClaims{
		Email: info.Email,
		Name:  info.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(h.jwtSecret)
	if err != nil {
		h.logger.Error("POST /auth/session - Failed to sign session token: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/session - Session issued: email=%s", info.Email)
	handlers.RespondJSON(w, http.StatusOK, &SessionResponse{
		Token:     token,
		ExpiresAt: expiresAt.Format(time.RFC3339),
		User:      user,
	})
}
