// cmd/worker/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"crowdfund-backoffice/internal/config"
	infraCache "crowdfund-backoffice/internal/infrastructure/cache"
	"crowdfund-backoffice/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	app := config.LoadApp()
	logger.Init(app.Environment, app.LogLevel)

	cfg := loadConfig()

	// Redis dùng cho cache invalidation; asynq có connection riêng
	redisClient := infraCache.NewRedisClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	defer redisClient.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := redisClient.Connect(ctx); err != nil {
		cancel()
		log.Fatal().Err(err).Msg("[Startup] Redis unavailable")
	}
	cancel()

	handlers := initializeHandlers(cfg, infraCache.NewRedisCache(redisClient.Client))

	srv := setupAsynqServer(cfg, handlers)

	if err := startServices(redisClient, cfg); err != nil {
		log.Fatal().Err(err).Msg("[Startup] Health check failed")
	}

	waitForShutdown(srv)
}

func waitForShutdown(srv *asynqServer) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info().Msg("[Shutdown] Gracefully stopping...")
	srv.Shutdown()
	log.Info().Msg("[Shutdown] Stopped")
}
