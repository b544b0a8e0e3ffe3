package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App    AppConfig
	Redis  RedisConfig
	JWT    JWTConfig
	Email  EmailConfig
	Review ReviewConfig
	CORS   CORSConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type JWTConfig struct {
	Secret            string
	AccessTokenExpiry int // minutes
}

type EmailConfig struct {
	SMTPHost string
	SMTPPort string
	From     string
}

// ReviewConfig: ai nhận mail khi có draft mới submit
type ReviewConfig struct {
	NotifyEmails []string
	BaseURL      string
}

type CORSConfig struct {
	AllowedOrigins []string
}

// LoadApp chỉ đọc APP_*; dùng trước khi logger được init
func LoadApp() AppConfig {
	return AppConfig{
		Name:        getEnv("APP_NAME", "Crowdfund Backoffice API"),
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnv("APP_PORT", "8080"),
		Version:     getEnv("APP_VERSION", "1.0.0"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: LoadApp(),
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		JWT: JWTConfig{
			Secret:            getEnv("JWT_SECRET", defaultJWTSecret),
			AccessTokenExpiry: getEnvInt("JWT_ACCESS_EXPIRY", 60),
		},
		Email: EmailConfig{
			SMTPHost: getEnv("SMTP_HOST", "localhost"),
			SMTPPort: getEnv("SMTP_PORT", "1025"),
			From:     getEnv("EMAIL_FROM", "noreply@backoffice.dev"),
		},
		Review: ReviewConfig{
			NotifyEmails: getEnvList("REVIEW_NOTIFY_EMAIL"),
			BaseURL:      getEnv("REVIEW_BASE_URL", "http://localhost:8080"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvList("CORS_ALLOWED_ORIGINS"),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	if c.JWT.AccessTokenExpiry <= 0 {
		return fmt.Errorf("JWT_ACCESS_EXPIRY must be positive")
	}

	// Production environment phải có JWT secret
	if c.App.Environment == "production" {
		if c.JWT.Secret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
		if len(c.CORS.AllowedOrigins) == 0 {
			return fmt.Errorf("CORS_ALLOWED_ORIGINS must be set in production")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvList: "a@x.com, b@x.com" → [a@x.com b@x.com]
func getEnvList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
