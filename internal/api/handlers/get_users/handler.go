package get_users

import (
	"errors"
	"net/http"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/service/users"
)

const msgUserNotFound = "user not found"

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users
// С параметром email возвращает одного пользователя вместо списка.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if email := r.URL.Query().Get("email"); email != "" {
		result, err := h.service.GetByEmail(r.Context(), email)
		if err != nil {
			if errors.Is(err, users.ErrUserNotFound) {
				handlers.RespondNotFound(w, msgUserNotFound)
				return
			}
			h.logger.Error("GET /users - Failed to get user by email=%s: %v", email, err)
			handlers.RespondInternalError(w)
			return
		}
		handlers.RespondJSON(w, http.StatusOK, result)
		return
	}

	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /users - Failed to list users: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
