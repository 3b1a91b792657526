package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, 5*time.Minute, cfg.CacheStalenessWindow)
	assert.Equal(t, 15*time.Second, cfg.StoreCallTimeout)
	assert.True(t, cfg.SeedCatalog)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.OAuthConfigured())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SANGAM_ENV", "production")
	t.Setenv("SANGAM_STORE_DRIVER", "postgres")
	t.Setenv("SANGAM_DATABASE_URL", "postgres://localhost/sangam")
	t.Setenv("SANGAM_CACHE_STALENESS_WINDOW", "90s")
	t.Setenv("SANGAM_SEED_CATALOG", "false")
	t.Setenv("SANGAM_USER_ID", "user-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, 90*time.Second, cfg.CacheStalenessWindow)
	assert.False(t, cfg.SeedCatalog)
	assert.Equal(t, "user-1", cfg.UserID)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	t.Setenv("SANGAM_STORE_DRIVER", "mongodb")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid store driver")
}

func TestValidateRequiresDatabaseURLForPostgres(t *testing.T) {
	t.Setenv("SANGAM_STORE_DRIVER", "postgres")
	t.Setenv("SANGAM_DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SANGAM_DATABASE_URL")
}

func TestInvalidDurationFallsBack(t *testing.T) {
	t.Setenv("SANGAM_CACHE_STALENESS_WINDOW", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 5*time.Minute, cfg.CacheStalenessWindow)
}

func TestOAuthConfigured(t *testing.T) {
	t.Setenv("SANGAM_OAUTH_TOKEN_URL", "https://auth.example.com/token")
	t.Setenv("SANGAM_OAUTH_CLIENT_ID", "cid")
	t.Setenv("SANGAM_OAUTH_CLIENT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.OAuthConfigured())
}
