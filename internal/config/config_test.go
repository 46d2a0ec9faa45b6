package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "ridebooking", cfg.Database.Name)
	assert.Equal(t, "2.50", cfg.Pricing.Economy.BaseFare)
	assert.Equal(t, "1.50", cfg.Pricing.Economy.PerDistanceRate)
	assert.Equal(t, "3.50", cfg.Pricing.Premium.BaseFare)
	assert.Equal(t, "5.00", cfg.Pricing.Luxury.BaseFare)
	assert.InDelta(t, 0.95, cfg.Gateway.SuccessRate, 0.0001)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("BASE_FARE_ECONOMY", "3.00")
	t.Setenv("GATEWAY_SUCCESS_RATE", "0.5")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "3.00", cfg.Pricing.Economy.BaseFare)
	assert.InDelta(t, 0.5, cfg.Gateway.SuccessRate, 0.0001)
}

func TestValidate_RejectsBadSuccessRate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Gateway.SuccessRate = 1.5
	assert.Error(t, cfg.Validate())

	cfg.Gateway.SuccessRate = -0.1
	assert.Error(t, cfg.Validate())
}
