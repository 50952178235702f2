package handlers

import (
	"log/slog"
	"net/http"
)

// HealthHandler provides the liveness endpoint
type HealthHandler struct {
	log *slog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(log *slog.Logger) *HealthHandler {
	return &HealthHandler{
		log: log,
	}
}

// ServeHTTP handles GET /healthz. The payload is fixed and the handler has
// no side effects.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.log)
}
