// Package config assembles runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/quizchat/internal/llm"
	"github.com/abhisek/quizchat/internal/store"
	"github.com/abhisek/quizchat/internal/translate"
)

const envPrefix = "QUIZCHAT_"

// DefaultUserID is used when no user is configured.
const DefaultUserID = "default"

// Config holds everything the CLI needs to wire the application.
type Config struct {
	// DBPath is the SQLite file. Empty means store.DefaultDBPath.
	DBPath string

	UserID   string
	Language string

	LogLevel string
	LogFile  string

	LLM llm.Config

	// TranslationTimeout bounds a single translation request.
	TranslationTimeout time.Duration
}

// Load reads .env from the working directory when present, then overlays
// QUIZCHAT_* variables on the defaults. Variables already set in the
// environment win over .env entries.
func Load() (Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are skipped.
func LoadFiles(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg := Config{
		DBPath:             getEnv("DB", ""),
		UserID:             getEnv("USER_ID", DefaultUserID),
		Language:           getEnv("LANG", translate.English),
		LogLevel:           getEnv("LOG_LEVEL", "warn"),
		LogFile:            getEnv("LOG_FILE", ""),
		LLM:                llm.ConfigFromEnv(),
		TranslationTimeout: 15 * time.Second,
	}

	if v := getEnv("TRANSLATION_TIMEOUT", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse %sTRANSLATION_TIMEOUT: %w", envPrefix, err)
		}
		cfg.TranslationTimeout = d
	}

	// Fall back to a provider's standard key variable when the configured
	// provider has no key of its own.
	if !cfg.LLM.Enabled() {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg.LLM = discovered
		}
	}

	if !translate.Supported(cfg.Language) {
		return Config{}, fmt.Errorf("%sLANG: %w: %q", envPrefix, translate.ErrUnsupportedLanguage, cfg.Language)
	}
	return cfg, nil
}

// ResolveDBPath returns DBPath with its directory created, or the default
// location when unset.
func (c Config) ResolveDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, store.EnsureDir(c.DBPath)
	}
	return store.DefaultDBPath()
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(envPrefix + key); v != "" {
		return v
	}
	return fallback
}
