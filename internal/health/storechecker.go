package health

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// HealthPinger is the probe a backend exposes. Every store driver answers it,
// either with a live round trip or a constant nil for in-memory data.
type HealthPinger interface {
	HealthPing(ctx context.Context) error
}

// StoreHealthChecker probes the backing store through its HealthPinger.
type StoreHealthChecker struct {
	pinger       HealthPinger
	healthy      atomic.Int32
	log          zerolog.Logger
	probeTimeout time.Duration
}

// NewStoreHealthChecker creates a store health checker. The checker starts
// unhealthy until the first successful probe.
func NewStoreHealthChecker(p HealthPinger, log zerolog.Logger, probeTimeout time.Duration) *StoreHealthChecker {
	hc := &StoreHealthChecker{pinger: p, log: log, probeTimeout: probeTimeout}
	hc.healthy.Store(0)
	return hc
}

func (hc *StoreHealthChecker) Name() string    { return "store" }
func (hc *StoreHealthChecker) IsHealthy() bool { return hc.healthy.Load() == 1 }

func (hc *StoreHealthChecker) Start(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	run := func() {
		to := hc.probeTimeout
		if to <= 0 {
			to = 2 * time.Second
		}
		checkCtx, cancel := context.WithTimeout(ctx, to)
		defer cancel()

		if err := hc.pinger.HealthPing(checkCtx); err != nil {
			hc.healthy.Store(0)
			hc.log.Error().Stack().Str("checker", hc.Name()).Err(err).Msg("store health check failed")
			return
		}
		hc.healthy.Store(1)
	}

	run()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			run()
		}
	}
}
