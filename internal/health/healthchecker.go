// Package health tracks whether the service's dependencies are usable. The
// store is the only component checker today; the aggregator exists so the
// health endpoint keeps one answer when more are added.
package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// HealthChecker is one component's probe loop.
type HealthChecker interface {
	Name() string
	IsHealthy() bool
	Start(ctx context.Context, interval time.Duration)
}

// ServiceHealthChecker folds component checkers into the single flag the
// health endpoint reports. The service is healthy only when every component
// is.
type ServiceHealthChecker struct {
	healthy atomic.Bool
	deps    []HealthChecker
	log     zerolog.Logger
}

// NewServiceHealthChecker builds the aggregator. It reports unhealthy until
// the first evaluation runs.
func NewServiceHealthChecker(log zerolog.Logger, deps ...HealthChecker) *ServiceHealthChecker {
	return &ServiceHealthChecker{deps: deps, log: log}
}

// IsHealthy returns the cached aggregate flag.
func (h *ServiceHealthChecker) IsHealthy() bool { return h.healthy.Load() }

// Start re-evaluates the components on every tick until ctx is cancelled.
// Transitions are logged once, not on every tick.
func (h *ServiceHealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		was := h.healthy.Load()
		now := h.evaluate()
		h.healthy.Store(now)
		if now != was {
			if now {
				h.log.Info().Msg("service healthy")
			} else {
				h.log.Error().Msg("service unhealthy")
			}
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (h *ServiceHealthChecker) evaluate() bool {
	for _, c := range h.deps {
		if !c.IsHealthy() {
			return false
		}
	}
	return true
}
