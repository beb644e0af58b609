// Package config loads the optional CLI configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hanchen-dev/go-gongwen/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field length limits.
const (
	MaxFontLength   = 100  // Font family name
	MaxSignerLength = 100  // Signing authority name
	MaxDateLength   = 30   // "auto" or a literal like "2026年8月24日"
	MaxPathLength   = 4096 // Directory paths
)

// Config holds all configuration for document generation.
type Config struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Fonts  FontsConfig  `yaml:"fonts"`
	Issuer IssuerConfig `yaml:"issuer"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (empty = must specify)
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// FontsConfig overrides the standard 公文 font families, for systems
// where the 方正/仿宋 faces are unavailable.
type FontsConfig struct {
	Title      string `yaml:"title"`      // Default: 方正小标宋简体
	Heading    string `yaml:"heading"`    // Default: 黑体
	Subheading string `yaml:"subheading"` // Default: 楷体_GB2312
	Body       string `yaml:"body"`       // Default: 仿宋_GB2312
	PageNumber string `yaml:"pageNumber"` // Default: 宋体
}

// IssuerConfig supplies default signer and date for documents whose
// front matter omits them.
type IssuerConfig struct {
	Signer string `yaml:"signer"`
	Date   string `yaml:"date"` // Literal or "auto"
}

// Validate checks field lengths. Called automatically by LoadConfig,
// but available for consumers who construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("input.defaultDir", c.Input.DefaultDir, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.defaultDir", c.Output.DefaultDir, MaxPathLength); err != nil {
		return err
	}

	fonts := map[string]string{
		"fonts.title":      c.Fonts.Title,
		"fonts.heading":    c.Fonts.Heading,
		"fonts.subheading": c.Fonts.Subheading,
		"fonts.body":       c.Fonts.Body,
		"fonts.pageNumber": c.Fonts.PageNumber,
	}
	for name, font := range fonts {
		if err := validateFieldLength(name, font, MaxFontLength); err != nil {
			return err
		}
	}

	if err := validateFieldLength("issuer.signer", c.Issuer.Signer, MaxSignerLength); err != nil {
		return err
	}
	return validateFieldLength("issuer.date", c.Issuer.Date, MaxDateLength)
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns a neutral configuration: standard fonts, no
// default directories, no issuer.
func DefaultConfig() *Config {
	return &Config{}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-gongwen/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-gongwen", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
