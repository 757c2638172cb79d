package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, "development", cfg.Environment)
	require.Equal(t, 24*time.Hour, cfg.TokenTTL)
	require.Equal(t, "s3cret", cfg.JWTSecret)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("APP_ENV", "production")
	t.Setenv("TOKEN_TTL_HOURS", "1")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.ServerPort)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, time.Hour, cfg.TokenTTL)
}

func TestLoad_BadPort(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
}
