package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/api/middleware"
	"github.com/inalogystics/DeskBookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID = "invalid booking id"
	msgUserNotFound     = "user not found"
	msgBookingNotFound  = "booking not found"
	msgAccessDenied     = "you can only cancel your own bookings"
	msgAlreadyCancelled = "booking is already cancelled"
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

// Handle DELETE /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmail(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /bookings/{id} - Invalid booking id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	err = h.service.Cancel(r.Context(), email, bookingID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrUserNotFound):
			h.logger.Warn("DELETE /bookings/%d - User not found: email=%s", bookingID, email)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("DELETE /bookings/%d - Booking not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("DELETE /bookings/%d - Access denied: email=%s", bookingID, email)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrAlreadyCancelled):
			h.logger.Warn("DELETE /bookings/%d - Already cancelled", bookingID)
			handlers.RespondBadRequest(w, msgAlreadyCancelled)

		default:
			h.logger.Error("DELETE /bookings/%d - Failed to cancel: email=%s, error=%v", bookingID, email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /bookings/%d - Booking cancelled: email=%s", bookingID, email)
	handlers.RespondJSON(w, http.StatusOK, map[string]bool{"cancelled": true})
}
