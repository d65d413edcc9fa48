// Package config resolves runtime settings from the environment, after
// loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

const (
	EnvDB              = "STOCKPILE_DB"
	EnvLogUseCases     = "STOCKPILE_LOG_USE_CASES"
	EnvMetricsTextfile = "STOCKPILE_METRICS_TEXTFILE"
	EnvEnvFile         = "STOCKPILE_ENV_FILE"
	EnvLegacyNameMatch = "STOCKPILE_LEGACY_NAME_MATCH"

	defaultEnvFile = ".env"
)

type Config struct {
	DBPath          string
	LogUseCases     bool
	MetricsTextfile string // empty disables the export
	LegacyNameMatch bool
}

// DefaultConfig keeps the database under ~/.stockpile.
func DefaultConfig() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	return Config{
		DBPath:          filepath.Join(home, ".stockpile", "stockpile.db"),
		LegacyNameMatch: true,
	}, nil
}

// Load reads the env file named by STOCKPILE_ENV_FILE (default ./.env) and
// then the environment. Variables already set win over the file. A missing
// default .env is not an error; a missing explicitly named one is.
func Load() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return Config{}, err
	}

	cfg, err := DefaultConfig()
	if err != nil {
		return Config{}, err
	}

	if v := os.Getenv(EnvDB); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvLogUseCases); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv(EnvMetricsTextfile); v != "" {
		cfg.MetricsTextfile = v
	}
	if v := os.Getenv(EnvLegacyNameMatch); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.LegacyNameMatch = b
		}
	}
	return cfg, nil
}

func loadEnvFile() error {
	path, explicit := os.LookupEnv(EnvEnvFile)
	if !explicit || path == "" {
		path = defaultEnvFile
	}
	err := godotenv.Load(path)
	if err == nil {
		return nil
	}
	if !explicit && errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading env file %s: %w", path, err)
}
