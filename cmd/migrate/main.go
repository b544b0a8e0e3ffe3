// cmd/migrate/main.go - áp dụng schema: go run ./cmd/migrate [up|down]
package main

import (
	"context"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"crowdfund-backoffice/internal/config"
	"crowdfund-backoffice/internal/infrastructure/database"
	"crowdfund-backoffice/migrations"
	"crowdfund-backoffice/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	logger.Init("development", os.Getenv("LOG_LEVEL"))

	dir := migrations.Up
	if len(os.Args) > 1 {
		dir = migrations.Direction(os.Args[1])
	}

	steps, err := migrations.Load(dir)
	if err != nil {
		logger.Fatal("Failed to load migrations", err)
	}

	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		logger.Fatal("Failed to load database config", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	db := database.NewPostgresDB(dbConfig)
	if err := db.Connect(ctx); err != nil {
		logger.Fatal("Failed to connect to database", err)
	}
	defer db.Close()

	for _, step := range steps {
		// Exec không có args → simple protocol, chạy được nhiều statement
		if _, err := db.Pool.Exec(ctx, step.SQL); err != nil {
			log.Fatal().Err(err).Str("migration", step.Name).Str("direction", string(dir)).Msg("Migration failed")
		}
		logger.Info("Migration applied", map[string]interface{}{"migration": step.Name, "direction": dir})
	}
}
