package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("ECOEVENTOS_DATABASE_URL", "postgres://localhost:5432/eventos")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "EcoEventos API", cfg.AppName)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, 5*time.Minute, cfg.FaqCacheTTL)
	require.Equal(t, "anónimo", cfg.DefaultCommentAuthor)
	require.True(t, cfg.IsDevelopment())
}

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("ECOEVENTOS_DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ECOEVENTOS_DATABASE_URL", "postgres://localhost:5432/eventos")
	t.Setenv("ECOEVENTOS_APP_ENV", "production")
	t.Setenv("ECOEVENTOS_FAQ_CACHE_TTL", "30s")
	t.Setenv("ECOEVENTOS_COMMENTS_DEFAULT_AUTHOR", "moderación")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "production", cfg.AppEnv)
	require.False(t, cfg.IsDevelopment())
	require.Equal(t, 30*time.Second, cfg.FaqCacheTTL)
	require.Equal(t, "moderación", cfg.DefaultCommentAuthor)
}

func TestHTTPAddress(t *testing.T) {
	require.Equal(t, ":9090", Config{AppPort: "9090"}.HTTPAddress())
	require.Equal(t, ":9090", Config{AppPort: ":9090"}.HTTPAddress())
}
