package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"crowdfund-backoffice/internal/infrastructure/database"
)

// envParser gom lỗi parse để báo hết một lần thay vì dừng ở biến đầu tiên
type envParser struct {
	errs []error
}

func (p *envParser) int(key, fallback string) int {
	v, err := strconv.Atoi(getEnv(key, fallback))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
	}
	return v
}

func (p *envParser) duration(key, fallback string) time.Duration {
	v, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
	}
	return v
}

// LoadDatabaseConfig đọc DB_* env và trả về DBConfig cho pgxpool
func LoadDatabaseConfig() (*database.DBConfig, error) {
	p := &envParser{}

	cfg := &database.DBConfig{
		Host:              getEnv("DB_HOST", "localhost"),
		Port:              p.int("DB_PORT", "5432"),
		Username:          getEnv("DB_USER", "backoffice"),
		Password:          getEnv("DB_PASSWORD", ""),
		DBName:            getEnv("DB_NAME", "crowdfund_dev"),
		SSLMode:           getEnv("DB_SSLMODE", "disable"),
		MaxConns:          int32(p.int("DB_MAX_CONNECTIONS", "25")),
		MinConns:          int32(p.int("DB_MIN_CONNECTIONS", "5")),
		MaxConnLifetime:   p.duration("DB_MAX_CONN_LIFETIME", "5m"),
		MaxConnIdleTime:   p.duration("DB_MAX_CONN_IDLE_TIME", "1m"),
		HealthCheckPeriod: p.duration("DB_HEALTH_CHECK_PERIOD", "1m"),
		MaxRetries:        p.int("DB_MAX_RETRIES", "5"),
		RetryDelay:        p.duration("DB_RETRY_DELAY", "1s"),
		ConnectTimeout:    p.duration("DB_CONNECT_TIMEOUT", "10s"),
	}

	if len(p.errs) > 0 {
		return nil, errors.Join(p.errs...)
	}
	if cfg.MinConns > cfg.MaxConns {
		return nil, fmt.Errorf("DB_MIN_CONNECTIONS (%d) exceeds DB_MAX_CONNECTIONS (%d)", cfg.MinConns, cfg.MaxConns)
	}
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	return cfg, nil
}
