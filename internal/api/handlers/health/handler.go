package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
)

const (
	msgNotReady = "база данных недоступна"

	defaultPingTimeout = 2 * time.Second
)

type statusResponse struct {
	Status string `json:"status"`
}

type Handler struct {
	db          Pinger
	pingTimeout time.Duration
	logger      Logger
}

func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:          db,
		pingTimeout: defaultPingTimeout,
		logger:      logger,
	}
}

// Live GET /healthz
func (h *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, statusResponse{Status: "ok"})
}

// Ready GET /readyz
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("GET /readyz - Database ping failed: %v", err)
		handlers.RespondServiceUnavailable(w, msgNotReady)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, statusResponse{Status: "ready"})
}
