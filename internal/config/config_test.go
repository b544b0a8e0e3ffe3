package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "development")
	t.Setenv("REVIEW_NOTIFY_EMAIL", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, 60, cfg.JWT.AccessTokenExpiry)
	assert.Empty(t, cfg.Review.NotifyEmails)
}

func TestLoad_ReviewRecipients(t *testing.T) {
	t.Setenv("REVIEW_NOTIFY_EMAIL", " ops@fund.io, ,review@fund.io ")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"ops@fund.io", "review@fund.io"}, cfg.Review.NotifyEmails)
}

func TestValidate_Production(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://admin.fund.io")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET")

	t.Setenv("JWT_SECRET", "s3cret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://admin.fund.io"}, cfg.CORS.AllowedOrigins)
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Setenv("DB_PORT", "abc")
	_, err := LoadDatabaseConfig()
	assert.ErrorContains(t, err, "DB_PORT")

	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_MIN_CONNECTIONS", "30")
	_, err = LoadDatabaseConfig()
	assert.Error(t, err)

	t.Setenv("DB_MIN_CONNECTIONS", "2")
	cfg, err := LoadDatabaseConfig()
	require.NoError(t, err)
	assert.Equal(t, 6543, cfg.Port)
	assert.Equal(t, int32(2), cfg.MinConns)
}
