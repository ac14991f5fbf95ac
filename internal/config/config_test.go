package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	for _, key := range []string{"PORT", "DATABASE_URL", "JWT_TTL_MINUTES", "FINE_RATE", "SUSPENSION_THRESHOLD_DAYS",
		"LOAN_PERIOD_DAYS", "OVERDUE_SCAN_MINUTES", "SEED", "CORS_ALLOWED_ORIGINS", "APP_ENV", "LIBRARY_TIMEZONE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 60*time.Minute, cfg.JWTTTL)
	assert.Equal(t, "10", cfg.FineRate.String())
	assert.Equal(t, 7, cfg.SuspensionThreshold)
	assert.Equal(t, 14, cfg.LoanPeriodDays)
	assert.Equal(t, time.Hour, cfg.OverdueScanInterval)
	assert.Equal(t, int64(1), cfg.Seed)
	assert.Equal(t, time.UTC, cfg.Location)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.Development())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PORT", "9000")
	t.Setenv("FINE_RATE", "2.5")
	t.Setenv("SUSPENSION_THRESHOLD_DAYS", "3")
	t.Setenv("JWT_TTL_MINUTES", "-4")
	t.Setenv("SEED", "42")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("APP_ENV", "development")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.HTTPAddress())
	assert.Equal(t, "2.5", cfg.FineRate.String())
	assert.Equal(t, 3, cfg.SuspensionThreshold)
	assert.Equal(t, 60*time.Minute, cfg.JWTTTL)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.Development())
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("FINE_RATE", "")
	t.Setenv("SEED", "")
	t.Setenv("LIBRARY_TIMEZONE", "")
	t.Setenv("JWT_SECRET", "")
	_, err := Load()
	assert.EqualError(t, err, "JWT_SECRET is required")

	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("FINE_RATE", "-1")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("FINE_RATE", "10")
	t.Setenv("SEED", "abc")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("SEED", "1")
	t.Setenv("LIBRARY_TIMEZONE", "Mars/Olympus_Mons")
	_, err = Load()
	assert.Error(t, err)
}
