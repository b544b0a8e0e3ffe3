// cmd/worker/startup.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"crowdfund-backoffice/internal/config"
	infraCache "crowdfund-backoffice/internal/infrastructure/cache"
)

const healthAddr = ":9999"

// HealthChecker performs startup health checks
type HealthChecker struct {
	redis *infraCache.RedisClient
}

// startServices performs health checks and starts the health endpoint
func startServices(redisClient *infraCache.RedisClient, cfg *config.Config) error {
	log.Info().Str("app", cfg.App.Name).Msg("Worker starting")

	checker := &HealthChecker{redis: redisClient}
	if err := checker.checkAll(); err != nil {
		return err
	}

	go startHealthCheckServer(checker)
	return nil
}

// checkAll runs all health checks
func (h *HealthChecker) checkAll() error {
	checks := []struct {
		name string
		fn   func() error
	}{
		{"Redis Connection", h.checkRedis},
	}

	for _, check := range checks {
		if err := check.fn(); err != nil {
			log.Error().Err(err).Str("check", check.name).Msg("Health check failed")
			return fmt.Errorf("%s failed: %w", check.name, err)
		}
		log.Info().Str("check", check.name).Msg("Health check OK")
	}
	return nil
}

func (h *HealthChecker) checkRedis() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return h.redis.Client.Ping(ctx).Err()
}

func startHealthCheckServer(checker *HealthChecker) {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"UP","service":"crowdfund-worker"}`))
	})
	// readiness: Redis phải ping được
	mux.HandleFunc("/ready", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := checker.checkRedis(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(`{"status":"NOT_READY"}`))
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"READY"}`))
	})

	log.Info().Str("addr", healthAddr).Msg("[Health] Starting health check server")
	if err := http.ListenAndServe(healthAddr, mux); err != nil {
		log.Error().Err(err).Msg("[Health] Failed to start")
	}
}
