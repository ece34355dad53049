package create_user

import (
	"errors"
	"net/http"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/service/users"
	"github.com/inalogystics/DeskBookingService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgUserExists         = "user with this email already exists"
)

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

// Handle POST /api/v1/users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserExists):
			h.logger.Warn("POST /users - Email taken: %s", req.Email)
			handlers.RespondConflict(w, msgUserExists)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /users - Invalid input: %v", err)
			handlers.RespondBadRequest(w, err.Error())

		default:
			h.logger.Error("POST /users - Failed to register user: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /users - User registered: id=%d email=%s", result.ID, result.Email)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
