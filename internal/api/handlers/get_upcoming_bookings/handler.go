package get_upcoming_bookings

import (
	"errors"
	"net/http"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/api/middleware"
	"github.com/inalogystics/DeskBookingService/internal/service/bookings"
)

const msgUserNotFound = "user not found"

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/upcoming
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmail(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	upcoming, err := h.service.GetUpcoming(r.Context(), email, time.Now())
	if err != nil {
		if errors.Is(err, bookings.ErrUserNotFound) {
			h.logger.Warn("GET /bookings/upcoming - User not found: email=%s", email)
			handlers.RespondNotFound(w, msgUserNotFound)
			return
		}
		h.logger.Error("GET /bookings/upcoming - Failed: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, upcoming)
}
