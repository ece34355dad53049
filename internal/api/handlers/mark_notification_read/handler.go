package mark_notification_read

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/api/middleware"
	"github.com/inalogystics/DeskBookingService/internal/service/notifications"
)

const (
	msgInvalidNotificationID = "invalid notification id"
	msgUserNotFound          = "user not found"
	msgNotificationNotFound  = "notification not found"
)

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

// HandleOne PATCH /api/v1/notifications/{notificationId}/read
func (h *Handler) HandleOne(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmail(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	notificationID, err := strconv.ParseInt(mux.Vars(r)["notificationId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /notifications/{id}/read - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidNotificationID)
		return
	}

	err = h.service.MarkRead(r.Context(), email, notificationID)
	if err != nil {
		switch {
		case errors.Is(err, notifications.ErrUserNotFound):
			h.logger.Warn("PATCH /notifications/%d/read - User not found: email=%s", notificationID, email)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, notifications.ErrNotificationNotFound):
			h.logger.Warn("PATCH /notifications/%d/read - Notification not found", notificationID)
			handlers.RespondNotFound(w, msgNotificationNotFound)

		default:
			h.logger.Error("PATCH /notifications/%d/read - Failed: email=%s, error=%v", notificationID, email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"read": true})
}

// HandleAll PATCH /api/v1/notifications/read-all
func (h *Handler) HandleAll(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmail(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	result, err := h.service.MarkAllRead(r.Context(), email)
	if err != nil {
		if errors.Is(err, notifications.ErrUserNotFound) {
			h.logger.Warn("PATCH /notifications/read-all - User not found: email=%s", email)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("PATCH /notifications/read-all - Failed: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
