package get_desks

import (
	"net/http"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
	"github.com/inalogystics/DeskBookingService/internal/domain"
	getDeskAvailability "github.com/inalogystics/DeskBookingService/internal/usecase/get_desk_availability"
)

const msgInvalidDate = "invalid date format, expected YYYY-MM-DD"

type Handler struct {
	useCase GetDeskAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetDeskAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/desks
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &getDeskAvailability.Request{}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := domain.ParseLocalDate(raw)
		if err != nil {
			h.logger.Warn("GET /desks - Invalid date %q: %v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /desks - Failed to get availability: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
