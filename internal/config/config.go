// SPDX-License-Identifier: MIT

// Package config loads application settings from a .env file and LVMCDM_*
// environment variables.
package config

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment keys.
const (
	KeyAddr      = "LVMCDM_ADDR"
	KeyDB        = "LVMCDM_DB"
	KeyLogLevel  = "LVMCDM_LOG_LEVEL"
	KeyStrict    = "LVMCDM_STRICT"
	KeyRateLimit = "LVMCDM_RATE_LIMIT"
	KeyRateBurst = "LVMCDM_RATE_BURST"
)

// Defaults.
const (
	DefaultAddr      = ":8080"
	DefaultDB        = "lvmcdm.db"
	DefaultLogLevel  = "info"
	DefaultRateLimit = 20.0
	DefaultRateBurst = 40
)

// DefaultEnvPaths are tried in order; the first readable file wins.
var DefaultEnvPaths = []string{".env", "../.env", "../../.env"}

// Config is the resolved application configuration.
type Config struct {
	Addr      string  // HTTP listen address
	DB        string  // SQLite path or postgres:// DSN
	LogLevel  string  // debug, info, warn, error
	Strict    bool    // PolicyStrict for every ranking
	RateLimit float64 // requests per second; ≤ 0 disables limiting
	RateBurst int
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Addr:      DefaultAddr,
		DB:        DefaultDB,
		LogLevel:  DefaultLogLevel,
		RateLimit: DefaultRateLimit,
		RateBurst: DefaultRateBurst,
	}
}

// Load reads the first existing file of envPaths (DefaultEnvPaths when none
// are given) into the process environment, then resolves Config from it.
// Variables already set in the environment win over the file.
func Load(envPaths ...string) (Config, error) {
	if len(envPaths) == 0 {
		envPaths = DefaultEnvPaths
	}
	if err := LoadEnv(envPaths...); err != nil {
		return Config{}, err
	}

	return FromEnv(), nil
}

// FromEnv resolves Config from the current environment over Default.
func FromEnv() Config {
	def := Default()

	return Config{
		Addr:      GetEnv(KeyAddr, def.Addr),
		DB:        GetEnv(KeyDB, def.DB),
		LogLevel:  GetEnv(KeyLogLevel, def.LogLevel),
		Strict:    GetEnvBool(KeyStrict, def.Strict),
		RateLimit: GetEnvFloat(KeyRateLimit, def.RateLimit),
		RateBurst: GetEnvInt(KeyRateBurst, def.RateBurst),
	}
}

// LoadEnv applies KEY=VALUE lines of the first readable path to the
// environment. Blank lines and # comments are skipped; surrounding quotes
// are stripped. Missing files are not an error.
func LoadEnv(paths ...string) error {
	for _, path := range paths {
		f, err := os.Open(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("config: open %s: %w", path, err)
		}
		err = applyEnv(f)
		f.Close()
		if err != nil {
			return fmt.Errorf("config: read %s: %w", path, err)
		}

		return nil
	}

	return nil
}

func applyEnv(f *os.File) error {
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.Trim(strings.TrimSpace(value), `"'`)
		if _, set := os.LookupEnv(key); set {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			return err
		}
	}

	return sc.Err()
}

// GetEnv returns the variable or def when unset or empty.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

// GetEnvInt returns the variable parsed as int, or def.
func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}

	return def
}

// GetEnvFloat returns the variable parsed as float64, or def.
func GetEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}

	return def
}

// GetEnvBool accepts true/1/yes/on and false/0/no/off; anything else is def.
func GetEnvBool(key string, def bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	}

	return def
}

// IsPostgres reports whether dsn selects the PostgreSQL store.
func IsPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
