package get_week_bookings

import (
	"net/http"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/api/middleware"
	"github.com/inalogystics/DeskBookingService/internal/domain"
)

const msgInvalidWeekStart = "invalid weekStart format, expected YYYY-MM-DD"

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

// Handle GET /api/v1/bookings/user
// Без параметра weekStart неделя начинается с понедельника текущей недели.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmail(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	weekStart := mondayOf(time.Now())
	if raw := r.URL.Query().Get("weekStart"); raw != "" {
		parsed, err := domain.ParseLocalDate(raw)
		if err != nil {
			h.logger.Warn("GET /bookings/user - Invalid weekStart %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidWeekStart)
			return
		}
		weekStart = parsed
	}

	week, err := h.service.GetWeek(r.Context(), email, weekStart)
	if err != nil {
		h.logger.Error("GET /bookings/user - Failed: email=%s, error=%v", email, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, week)
}

func mondayOf(t time.Time) time.Time {
	t = domain.DateOnly(t)
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}
