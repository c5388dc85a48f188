// Package adminservice boots the admin HTTP service and owns its lifecycle.
package adminservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/tonearm/tonearm/internal/api"
	"github.com/tonearm/tonearm/internal/config"
	"github.com/tonearm/tonearm/internal/factory"
	"github.com/tonearm/tonearm/internal/health"
	"github.com/tonearm/tonearm/internal/logger"
	"github.com/tonearm/tonearm/internal/metrics"
	"github.com/tonearm/tonearm/internal/store/notify"
)

const (
	healthInterval     = 15 * time.Second
	healthProbeTimeout = 2 * time.Second
)

// Run starts the admin service HTTP server and blocks until shutdown or error.
func Run() error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	log := logger.New("tonearm-admin", cfg.LogLevel)

	log.Info().
		Str("store_driver", cfg.StoreDriver).
		Int("http_port", cfg.HTTPPort).
		Msg("Admin service starting")

	ctx, stop := newServerContext()
	defer stop()

	inner, err := factory.NewStore(ctx, cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("store unavailable")
		return err
	}
	st := notify.New(inner)

	promHandler, err := metrics.Register(nil)
	if err != nil {
		log.Error().Stack().Err(err).Msg("metrics registration failed")
		return err
	}
	st.Subscribe(metrics.ObserveStoreEvent)

	svcHealth := startHealthCheckers(ctx, log, st)

	router := api.NewRouter(api.RouterDeps{
		Store:     st,
		IsHealthy: svcHealth.IsHealthy,
		Metrics:   promHandler,
	})

	server := newHTTPServer(ctx, cfg, router)
	errCh := serveHTTP(server, log, cfg)

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// startHealthCheckers starts the store checker and the service aggregator.
func startHealthCheckers(ctx context.Context, log zerolog.Logger, st *notify.Store) *health.ServiceHealthChecker {
	var checkers []health.HealthChecker
	if p := factory.StorePinger(st); p != nil {
		storeChecker := health.NewStoreHealthChecker(p, log, healthProbeTimeout)
		go storeChecker.Start(ctx, healthInterval)
		checkers = append(checkers, storeChecker)
	}
	svcHealth := health.NewServiceHealthChecker(log, checkers...)
	go svcHealth.Start(ctx, healthInterval)
	return svcHealth
}

func newHTTPServer(ctx context.Context, cfg *config.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
}

func serveHTTP(server *http.Server, log zerolog.Logger, cfg *config.Config) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()
	return errCh
}

// newServerContext returns a cancellable context that is cancelled on SIGINT/SIGTERM.
func newServerContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
