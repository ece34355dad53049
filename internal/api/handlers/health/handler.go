package health

import (
	"context"
	"net/http"
	"time"

	"github.com/inalogystics/DeskBookingService/internal/api/handlers"
)

// Pinger проверка соединения с базой данных
type Pinger interface {
	PingContext(ctx context.Context) error
}

type Handler struct {
	db Pinger
}

func NewHandler(db Pinger) *Handler {
	return &Handler{db: db}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		handlers.RespondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unhealthy",
			"error":  "database unreachable",
		})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
