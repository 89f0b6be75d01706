// Package config assembles Tincture's settings from defaults, .env files and
// the environment.
package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jmylchreest/tincture/internal/colour"
	"github.com/jmylchreest/tincture/internal/hue"
)

// Environment variables read by WithEnvConfig.
const (
	EnvBlackPoint      = "TINCTURE_BLACK_POINT"
	EnvWhitePoint      = "TINCTURE_WHITE_POINT"
	EnvGreyThreshold   = "TINCTURE_GREY_THRESHOLD"
	EnvPrimaryVariance = "TINCTURE_PRIMARY_VARIANCE"
	EnvHueCatalog      = "TINCTURE_HUE_CATALOG"
)

// Config holds classification settings.
type Config struct {
	// Thresholds drive the black, white and grey checks.
	Thresholds colour.Thresholds `json:"thresholds"`

	// PrimaryVariance is how close a hue must be to a primary hue.
	PrimaryVariance float64 `json:"primary_variance"`

	// CatalogPath optionally names a hue catalog file to load at startup.
	CatalogPath string `json:"catalog_path,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Thresholds:      colour.DefaultThresholds(),
		PrimaryVariance: hue.PrimaryVariance,
	}
}

// Builder provides a fluent interface for constructing a Config.
// Later sources override earlier ones: base config, then .env file, then
// process environment.
type Builder struct {
	config     Config
	dotEnvPath string
	useEnv     bool
	lookupEnv  func(string) (string, bool)
}

// NewBuilder creates a Builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{
		config:    Default(),
		lookupEnv: os.LookupEnv,
	}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithDotEnv reads TINCTURE_* settings from a .env style file. A missing file
// is ignored; the process environment is not modified.
func (b *Builder) WithDotEnv(path string) *Builder {
	b.dotEnvPath = path
	return b
}

// WithEnvConfig reads TINCTURE_* settings from the process environment.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// Build resolves every configured source into a Config.
func (b *Builder) Build() (Config, error) {
	config := b.config

	if b.dotEnvPath != "" {
		values, err := godotenv.Read(b.dotEnvPath)
		if err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read %s: %w", b.dotEnvPath, err)
		}
		if err := apply(&config, func(key string) (string, bool) {
			v, ok := values[key]
			return v, ok
		}); err != nil {
			return Config{}, fmt.Errorf("%s: %w", b.dotEnvPath, err)
		}
	}

	if b.useEnv {
		if err := apply(&config, b.lookupEnv); err != nil {
			return Config{}, fmt.Errorf("environment: %w", err)
		}
	}

	return config, nil
}

// apply overlays every setting lookup knows about onto config.
func apply(config *Config, lookup func(string) (string, bool)) error {
	fields := []struct {
		key string
		dst *float64
	}{
		{EnvBlackPoint, &config.Thresholds.BlackPoint},
		{EnvWhitePoint, &config.Thresholds.WhitePoint},
		{EnvGreyThreshold, &config.Thresholds.GreyThreshold},
		{EnvPrimaryVariance, &config.PrimaryVariance},
	}
	for _, f := range fields {
		raw, ok := lookup(f.key)
		if !ok || strings.TrimSpace(raw) == "" {
			continue
		}
		v, err := parseUnit(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", f.key, err)
		}
		if f.key == EnvPrimaryVariance && v <= 0 {
			return fmt.Errorf("%s: must be greater than zero", f.key)
		}
		*f.dst = v
	}

	if path, ok := lookup(EnvHueCatalog); ok && strings.TrimSpace(path) != "" {
		config.CatalogPath = strings.TrimSpace(path)
	}
	return nil
}

// parseUnit parses a float and clips it to [0, 1].
func parseUnit(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", s, err)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid number %q: not finite", s)
	}
	return colour.Clip(v, 0, 1), nil
}

// Classifier builds a colour.Classifier from the configuration over hues.
func (c Config) Classifier(hues *hue.Registry) *colour.Classifier {
	return &colour.Classifier{
		Thresholds: c.Thresholds,
		Hues:       hues,
		Variance:   c.PrimaryVariance,
	}
}
