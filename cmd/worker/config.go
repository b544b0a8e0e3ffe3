package main

import (
	"github.com/rs/zerolog/log"

	"crowdfund-backoffice/internal/config"
)

// loadConfig dùng chung config với API: Redis, SMTP, danh sách reviewer
func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("[Config] Failed to load")
	}

	log.Info().
		Str("redis", cfg.Redis.Host).
		Str("smtp", cfg.Email.SMTPHost+":"+cfg.Email.SMTPPort).
		Int("reviewers", len(cfg.Review.NotifyEmails)).
		Msg("[Config] Loaded")

	return cfg
}
