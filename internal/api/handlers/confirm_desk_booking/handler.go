package confirm_desk_booking

import (
	"errors"
	"net/http"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/api/middleware"
	"github.com/inalogystics/DeskBookingService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgInvalidTimeRange   = "startTime must be before endTime"
	msgUserNotFound       = "user not found"
	msgDeskNotFound       = "desk not found"
	msgTimeSlotTaken      = "this time slot is already taken for the selected desk"
)

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

// Handle POST /api/v1/bookings/desk
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmail(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	var req ConfirmDeskBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/desk - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/desk - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.service.ConfirmDeskBooking(r.Context(), email, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings/desk - Invalid time range: %s-%s", req.StartTime, req.EndTime)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("POST /bookings/desk - User not found: email=%s", email)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, bookings.ErrDeskNotFound):
			h.logger.Warn("POST /bookings/desk - Desk not found: desk_id=%d", req.DeskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, bookings.ErrTimeSlotTaken):
			h.logger.Warn("POST /bookings/desk - Slot taken: desk_id=%d date=%s", req.DeskID, req.Date)
			handlers.RespondConflict(w, msgTimeSlotTaken)

		default:
			h.logger.Error("POST /bookings/desk - Failed to confirm booking: email=%s, desk_id=%d, error=%v",
				email, req.DeskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/desk - Booking confirmed: booking_id=%d, email=%s", result.ID, email)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
