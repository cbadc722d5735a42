// internal/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	// Empty values are treated as unset.
	for _, key := range []string{"ENVIRONMENT", "SERVER_PORT", "SERVER_READ_TIMEOUT", "DB_HOST", "DB_PORT", "DB_NAME", "DB_MAX_OPEN_CONNS"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "ordersys", cfg.Database.Database)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
}

func TestLoadReadsEnvironment(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_NAME", "ordersys_test")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "ordersys_test", cfg.Database.Database)
	assert.Equal(t, 50, cfg.Database.MaxOpenConns)
}

func TestLoadIgnoresMalformedInt(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "fifteen")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15, cfg.Server.ReadTimeout)
}

func TestDatabaseDSN(t *testing.T) {
	db := DatabaseConfig{
		Host:     "db.internal",
		Port:     "5433",
		User:     "orders",
		Password: "secret",
		Database: "ordersys",
		SSLMode:  "require",
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=orders password=secret dbname=ordersys sslmode=require",
		db.DSN(),
	)
}
