// SPDX-License-Identifier: MIT
// Package config loads matcalc's runtime settings from the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/katalvlaran/matcalc/logger"
)

// Environment variable names.
const (
	EnvWidth       = "MATCALC_WIDTH"
	EnvPrecision   = "MATCALC_PRECISION"
	EnvWorkspace   = "MATCALC_WORKSPACE"
	EnvKeepResults = "MATCALC_KEEP_RESULTS"
	EnvLogLevel    = "MATCALC_LOG_LEVEL"
)

// Defaults.
const (
	DefaultWidth     = 5
	DefaultPrecision = 5
	DefaultLogLevel  = "warn"
)

// maxEnvDepth is how many directories (start included) are searched for .env.
const maxEnvDepth = 5

// ErrInvalidValue marks a setting that parsed but is out of range.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds all application configuration.
type Config struct {
	Width         int
	Precision     int
	WorkspaceFile string
	KeepResults   bool
	LogLevel      logger.Level
}

// Load reads configuration, looking for a .env file in the working directory
// or its parents. Variables already set in the process environment win over
// the file.
func Load() (*Config, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("config: getwd: %w", err)
	}

	return LoadFrom(dir)
}

// LoadFrom is Load with an explicit starting directory for the .env search.
func LoadFrom(dir string) (*Config, error) {
	file, err := readEnvFile(dir)
	if err != nil {
		return nil, err
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := file[key]
		return v, ok
	}

	cfg := &Config{}
	if cfg.Width, err = intSetting(lookup, EnvWidth, DefaultWidth, 1); err != nil {
		return nil, err
	}
	if cfg.Precision, err = intSetting(lookup, EnvPrecision, DefaultPrecision, 1); err != nil {
		return nil, err
	}
	if v, ok := lookup(EnvWorkspace); ok {
		cfg.WorkspaceFile = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvKeepResults); ok && strings.TrimSpace(v) != "" {
		if cfg.KeepResults, err = strconv.ParseBool(strings.TrimSpace(v)); err != nil {
			return nil, fmt.Errorf("config: %s: %w", EnvKeepResults, err)
		}
	}
	level := DefaultLogLevel
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		level = v
	}
	if cfg.LogLevel, err = logger.ParseLevel(level); err != nil {
		return nil, fmt.Errorf("config: %s: %w", EnvLogLevel, err)
	}

	return cfg, nil
}

func intSetting(lookup func(string) (string, bool), key string, def, floor int) (int, error) {
	v, ok := lookup(key)
	if !ok || strings.TrimSpace(v) == "" {
		return def, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	if n < floor {
		return 0, fmt.Errorf("config: %s=%d must be >= %d: %w", key, n, floor, ErrInvalidValue)
	}

	return n, nil
}

// readEnvFile walks up from dir looking for .env. A missing file is not an error.
func readEnvFile(dir string) (map[string]string, error) {
	for i := 0; i < maxEnvDepth; i++ {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			vars, err := godotenv.Read(envPath)
			if err != nil {
				return nil, fmt.Errorf("config: read %s: %w", envPath, err)
			}
			return vars, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return nil, nil
}
