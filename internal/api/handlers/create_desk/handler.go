package create_desk

import (
	"errors"
	"net/http"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/service/desks"
	"github.com/inalogystics/DeskBookingService/internal/service/desks/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgDeskExists         = "desk with this number already exists"
)

type Handler struct {
	service DeskService
	logger  Logger
}

func NewHandler(service DeskService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/desks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateDeskRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /desks - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, desks.ErrDeskExists):
			h.logger.Warn("POST /desks - Desk number taken: %s", req.DeskNumber)
			handlers.RespondConflict(w, msgDeskExists)

		case errors.Is(err, desks.ErrInvalidInput):
			h.logger.Warn("POST /desks - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /desks - Failed to create desk: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /desks - Desk created: id=%d number=%s", result.ID, result.DeskNumber)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
