package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("STORE_DRIVER", "memory")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, DriverMemory, cfg.Store.Driver)
	assert.Equal(t, 10, cfg.Store.MaxOpenConns)
	assert.Equal(t, time.Duration(0), cfg.Store.QueryTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "Europe/London", cfg.Clock.DefaultZone)
	assert.Empty(t, cfg.Clock.Zones)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/northwind?sslmode=disable")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("HTTP_ADDR", "127.0.0.1:8080")
	t.Setenv("CLOCK_ZONES", "UTC;Asia/Tokyo")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DriverPostgres, cfg.Store.Driver)
	assert.Equal(t, 2*time.Second, cfg.Store.QueryTimeout)
	assert.Equal(t, "127.0.0.1:8080", cfg.HTTP.Addr)
	assert.Equal(t, []string{"UTC", "Asia/Tokyo"}, cfg.Clock.Zones)
}

func TestFromEnv_PostgresNeedsURL(t *testing.T) {
	t.Setenv("STORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestFromEnv_UnknownDriver(t *testing.T) {
	t.Setenv("STORE_DRIVER", "mongo")

	_, err := FromEnv()
	assert.ErrorContains(t, err, "mongo")
}

func TestValidate_NegativePool(t *testing.T) {
	cfg := Config{
		HTTP:  HTTPConfig{Addr: ":9090"},
		Store: StoreConfig{Driver: DriverMemory, MaxOpenConns: -1},
	}
	assert.Error(t, cfg.Validate())
}
