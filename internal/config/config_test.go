package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("missing database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		_, err := Load()
		require.Error(t, err)
	})

	t.Run("defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/adboard")
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, "postgres://localhost/adboard", cfg.DatabaseURL)
		require.Equal(t, ":8080", cfg.ListenAddr)
	})

	t.Run("explicit listen addr", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/adboard")
		t.Setenv("LISTEN_ADDR", ":9090")
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, ":9090", cfg.ListenAddr)
	})
}
