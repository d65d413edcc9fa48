package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points every lookup at a scratch directory and clears the
// variables Load reads.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	for _, k := range []string{EnvDB, EnvLogUseCases, EnvMetricsTextfile, EnvLegacyNameMatch} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	t.Setenv(EnvEnvFile, filepath.Join(dir, "absent.env"))
	os.Unsetenv(EnvEnvFile)
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	home := isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".stockpile", "stockpile.db"), cfg.DBPath)
	assert.False(t, cfg.LogUseCases)
	assert.Empty(t, cfg.MetricsTextfile)
	assert.True(t, cfg.LegacyNameMatch)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvDB, "/tmp/pantry.db")
	t.Setenv(EnvLogUseCases, "true")
	t.Setenv(EnvMetricsTextfile, "/var/lib/node_exporter/stockpile.prom")
	t.Setenv(EnvLegacyNameMatch, "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/pantry.db", cfg.DBPath)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, "/var/lib/node_exporter/stockpile.prom", cfg.MetricsTextfile)
	assert.False(t, cfg.LegacyNameMatch)
}

func TestLoad_InvalidBoolsKeepDefaults(t *testing.T) {
	isolate(t)
	t.Setenv(EnvLogUseCases, "loud")
	t.Setenv(EnvLegacyNameMatch, "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.LogUseCases)
	assert.True(t, cfg.LegacyNameMatch)
}

func TestLoad_DotEnvInWorkingDirectory(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("STOCKPILE_DB=/data/from-dotenv.db\nSTOCKPILE_LOG_USE_CASES=1\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv(EnvDB)
		os.Unsetenv(EnvLogUseCases)
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-dotenv.db", cfg.DBPath)
	assert.True(t, cfg.LogUseCases)
}

func TestLoad_ProcessEnvWinsOverDotEnv(t *testing.T) {
	dir := isolate(t)
	envFile := filepath.Join(dir, "custom.env")
	require.NoError(t, os.WriteFile(envFile, []byte("STOCKPILE_DB=/data/from-file.db\n"), 0o600))
	t.Setenv(EnvEnvFile, envFile)
	t.Setenv(EnvDB, "/data/from-process.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/data/from-process.db", cfg.DBPath)
}

func TestLoad_MissingExplicitEnvFile(t *testing.T) {
	dir := isolate(t)
	t.Setenv(EnvEnvFile, filepath.Join(dir, "nope.env"))

	_, err := Load()
	assert.ErrorContains(t, err, "loading env file")
}
