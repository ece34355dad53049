package get_notifications

import (
	"errors"
	"net/http"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/api/middleware"
	"github.com/inalogystics/DeskBookingService/internal/service/notifications"
)

const msgUserNotFound = "user not found"

type Handler struct {
	service NotificationService
	logger  Logger
}

func NewHandler(service NotificationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmail(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	result, err := h.service.ListForUser(r.Context(), email)
	if err != nil {
		if errors.Is(err, notifications.ErrUserNotFound) {
			h.logger.Warn("GET /notifications - User not found: email=%s", email)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /notifications - Failed: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
