package get_parking_availability

import (
	"net/http"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/domain"
	"github.com/inalogystics/DeskBookingService/pkg/types"
)

const (
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
	msgInvalidTime = "invalid startTime format, expected HH:MM"

	defaultStartTime = types.TimeString("09:00")
)

type Handler struct {
	service ParkingService
	logger  Logger
}

func NewHandler(service ParkingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/parking-availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	date := domain.DateOnly(time.Now())
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := domain.ParseLocalDate(raw)
		if err != nil {
			h.logger.Warn("GET /parking-availability - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		date = parsed
	}

	startTime := defaultStartTime
	if raw := r.URL.Query().Get("startTime"); raw != "" {
		parsed, err := types.NewTimeStringFromString(raw)
		if err != nil {
			h.logger.Warn("GET /parking-availability - Invalid startTime %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidTime)
			return
		}
		startTime = parsed
	}

	result, err := h.service.Availability(r.Context(), date, startTime)
	if err != nil {
		h.logger.Error("GET /parking-availability - Failed: date=%s, error=%v", domain.FormatDate(date), err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
