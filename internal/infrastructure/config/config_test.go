package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv_Defaults(t *testing.T) {
	cfg := LoadFromEnv()

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "bankimport.db", cfg.Storage.DatabasePath)
	assert.Equal(t, 2, cfg.Duplicates.DateToleranceDays)
	assert.Equal(t, 0.01, cfg.Duplicates.AmountTolerance)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("BANKIMPORT_PORT", "9090")
	t.Setenv("DUPLICATE_DATE_TOLERANCE_DAYS", "3")
	t.Setenv("DUPLICATE_AMOUNT_TOLERANCE", "0.05")

	cfg := LoadFromEnv()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Duplicates.DateToleranceDays)
	assert.Equal(t, 0.05, cfg.Duplicates.AmountTolerance)
}

func TestLoad_YAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 9191
storage:
  database_path: ${TEST_DB_PATH}
duplicates:
  date_tolerance_days: 4
  amount_tolerance: 0.02
observability:
  logging:
    level: debug
`
	t.Setenv("TEST_DB_PATH", "/tmp/test.db")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, "/tmp/test.db", cfg.Storage.DatabasePath)
	assert.Equal(t, 4, cfg.Duplicates.DateToleranceDays)
	assert.Equal(t, 0.02, cfg.Duplicates.AmountTolerance)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
}

func TestLoad_SparseFileGetsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: 7000\n"), 0o600))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 2, cfg.Duplicates.DateToleranceDays)
	assert.Equal(t, 0.01, cfg.Duplicates.AmountTolerance)
}

func TestLoadOrEnvWithPath_MissingFileFallsBack(t *testing.T) {
	cfg := LoadOrEnvWithPath(filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	assert.Equal(t, 8080, cfg.Server.Port)
}
