package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hanchen-dev/go-gongwen/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // GONGWEN_CONFIG: config file path
	InputDir   string // GONGWEN_INPUT_DIR: default input directory
	OutputDir  string // GONGWEN_OUTPUT_DIR: default output directory
	Signer     string // GONGWEN_SIGNER: signing authority
	Date       string // GONGWEN_DATE: issue date ("auto" = today)
	Workers    int    // GONGWEN_WORKERS: parallel workers
}

// knownEnvVars lists valid GONGWEN_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"GONGWEN_CONFIG":     true,
	"GONGWEN_INPUT_DIR":  true,
	"GONGWEN_OUTPUT_DIR": true,
	"GONGWEN_SIGNER":     true,
	"GONGWEN_DATE":       true,
	"GONGWEN_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("GONGWEN_CONFIG"),
		InputDir:   os.Getenv("GONGWEN_INPUT_DIR"),
		OutputDir:  os.Getenv("GONGWEN_OUTPUT_DIR"),
		Signer:     os.Getenv("GONGWEN_SIGNER"),
		Date:       os.Getenv("GONGWEN_DATE"),
	}

	if workers := os.Getenv("GONGWEN_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized GONGWEN_* variables.
// Helps catch typos like GONGWEN_SINGER instead of GONGWEN_SIGNER.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "GONGWEN_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via overrides).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Signer != "" && cfg.Issuer.Signer == "" {
		cfg.Issuer.Signer = env.Signer
	}
	if env.Date != "" && cfg.Issuer.Date == "" {
		cfg.Issuer.Date = env.Date
	}
}
