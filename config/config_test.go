package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"STORE_DRIVER", "STORE_PATH", "ADMIN_PASSWORD", "ADMIN_PASSWORD_HASH",
		"MAX_LOGIN_ATTEMPTS", "LOCKOUT_MINUTES", "LOG_MODE", "LOG_FILE",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "data/storefront.db", cfg.StorePath)
	assert.Equal(t, "0805", cfg.AdminPassword)
	assert.Equal(t, 3, cfg.MaxLoginAttempts)
	assert.Equal(t, 5*time.Minute, cfg.LockoutDuration)
	assert.Equal(t, "development", cfg.LogMode)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_DRIVER", "bolt")
	t.Setenv("STORE_PATH", "/tmp/x.db")
	t.Setenv("MAX_LOGIN_ATTEMPTS", "5")
	t.Setenv("LOCKOUT_MINUTES", "10")
	t.Setenv("LOG_FILE", "/tmp/storefront.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "bolt", cfg.StoreDriver)
	assert.Equal(t, "/tmp/x.db", cfg.StorePath)
	assert.Equal(t, 5, cfg.MaxLoginAttempts)
	assert.Equal(t, 10*time.Minute, cfg.LockoutDuration)
	assert.Equal(t, "/tmp/storefront.log", cfg.LogFile)
}

func TestLoadRejectsBadNumbers(t *testing.T) {
	t.Run("not a number", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAX_LOGIN_ATTEMPTS", "three")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("zero lockout", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LOCKOUT_MINUTES", "0")
		_, err := Load()
		assert.Error(t, err)
	})
}
