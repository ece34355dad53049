package create_booking

import (
	"errors"
	"net/http"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/api/middleware"
	createBooking "github.com/inalogystics/DeskBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateOrTime  = "invalid date or time format, expected YYYY-MM-DD and HH:MM"
	msgUserNotFound       = "user not found"
	msgDeskNotFound       = "desk not found"
	msgDeskNotBookable    = "this desk is not available for booking"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	email, ok := middleware.GetEmail(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "authentication required")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(email)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: email=%s", email)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrDeskNotFound):
			h.logger.Warn("POST /bookings - Desk not found: desk=%s", req.DeskID)
			handlers.RespondNotFound(w, msgDeskNotFound)

		case errors.Is(err, createBooking.ErrDeskNotBookable):
			h.logger.Warn("POST /bookings - Desk not bookable: desk=%s", req.DeskID)
			handlers.RespondBadRequest(w, msgDeskNotBookable)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /bookings - Failed to create booking: email=%s, desk=%s, error=%v",
				email, req.DeskID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Processed: email=%s desk=%s booked=%d failed=%d",
		email, req.DeskID, len(result.Bookings), len(result.Failed))

	// Полный отказ по всем датам не создает ничего, поэтому не 201
	status := http.StatusCreated
	if len(result.Bookings) == 0 {
		status = http.StatusOK
	}
	handlers.RespondJSON(w, status, result)
}
