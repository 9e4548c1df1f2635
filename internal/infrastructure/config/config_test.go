package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"hpp_gateway/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ADYEN_SKIN_CODE", "abc123")
	t.Setenv("ADYEN_MERCHANT_ACCOUNT", "account")
	t.Setenv("ADYEN_SKIN_SECRET", "secret")
	t.Setenv("ADYEN_PAYMENT_FLOW", "multipage")
	t.Setenv("REDIS_LOCK_TTL", "10s")
	t.Setenv("PORT", "8081")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com,https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, 100, cfg.Notifications.BatchSize)
	assert.Equal(t, 10*time.Second, cfg.Redis.LockTTL)
	assert.Equal(t, 5*time.Minute, cfg.HPP.SecretCacheTTL)

	creds := cfg.StaticCredentials()
	cred, err := creds.DefaultCredential(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc123", cred.SkinCode)
	assert.Equal(t, []byte("secret"), cred.Secret)
	assert.Equal(t, entities.PaymentFlowMultiPage, cred.PaymentFlow)
}

func TestLoad_FromFileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
port: "9000"
hpp:
  skin_code: fromfile
  notification_user: adyen
notifications:
  batch_size: 5
`), 0o600))
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("ADYEN_NOTIFICATION_USER", "override")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "fromfile", cfg.HPP.SkinCode)
	assert.Equal(t, "override", cfg.HPP.NotificationUser)
	assert.Equal(t, 5, cfg.Notifications.BatchSize)
}

func TestLoad_MissingFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yml"))
	_, err := Load()
	assert.Error(t, err)
}
