package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfcastilho/payment-gateway-go/internal/pkg/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PAYMENT_PROVIDER_URL", "http://provider.local")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "payment-gateway", cfg.ServiceName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, config.StoreMemory, cfg.Store)
	assert.Equal(t, 5*time.Second, cfg.ProviderTimeout)
}

func TestLoadRequiresProviderURL(t *testing.T) {
	t.Setenv("PAYMENT_PROVIDER_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadPostgresRequiresDatabaseURL(t *testing.T) {
	t.Setenv("PAYMENT_PROVIDER_URL", "http://provider.local")
	t.Setenv("PAYMENT_STORE", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("PAYMENT_PROVIDER_URL", "http://provider.local")
	t.Setenv("PAYMENT_STORE", "redis")

	_, err := config.Load()
	assert.Error(t, err)
}
