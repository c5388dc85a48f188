package api

import (
	"net/http"
	"time"

	"github.com/tonearm/tonearm/internal/api/respond"
)

// HealthHandler reports aggregated service health.
type HealthHandler struct {
	isHealthy func() bool
}

// NewHealthHandler creates a health handler backed by the given probe.
// A nil probe reports healthy, for wiring before the checker starts.
func NewHealthHandler(isHealthy func() bool) *HealthHandler {
	if isHealthy == nil {
		isHealthy = func() bool { return true }
	}
	return &HealthHandler{isHealthy: isHealthy}
}

// CheckHealth handles GET /v1/health.
// Always returns 200; body reports healthy/unhealthy. 500 indicates handler failure only.
func (h *HealthHandler) CheckHealth(w http.ResponseWriter, r *http.Request) {
	status := "unhealthy"
	if h.isHealthy() {
		status = "healthy"
	}
	respond.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":    status,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
