// Package config defines the portfolio's runtime and build settings.
package config

import (
	"fmt"
	"strings"

	"github.com/tharindu1999/portfolio/internal/logger"
	"github.com/tharindu1999/portfolio/internal/section"
)

// Config is the process configuration.
type Config struct {
	// Addr is the listen address for serve, e.g. ":8080".
	Addr string `koanf:"addr"`

	// BasePath is the subdirectory the site is deployed under.
	BasePath string `koanf:"base_path"`

	// ReferenceY is the viewport line, in px from the top, used to pick
	// the active section.
	ReferenceY float64 `koanf:"reference_y"`

	// HeroSection is the element whose scroll progress drives the hero
	// animation.
	HeroSection string `koanf:"hero_section"`

	// OutputDir is where build writes the static site.
	OutputDir string `koanf:"output_dir"`

	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// GinMode is debug, release or test.
	GinMode string `koanf:"gin_mode"`
}

// New returns the defaults.
func New() *Config {
	return &Config{
		Addr:        ":8080",
		BasePath:    "/portfolio/",
		ReferenceY:  section.DefaultReferenceY,
		HeroSection: string(section.Home),
		OutputDir:   "dist",
		LogLevel:    "info",
		GinMode:     "release",
	}
}

// Validate normalises the base path and checks every field.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Addr) == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if c.ReferenceY < 0 {
		return fmt.Errorf("%w: reference_y must not be negative", ErrInvalidConfig)
	}
	if _, err := section.Parse(c.HeroSection); err != nil {
		return fmt.Errorf("%w: hero_section: %v", ErrInvalidConfig, err)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("%w: unknown gin_mode %q", ErrInvalidConfig, c.GinMode)
	}
	if c.OutputDir == "" {
		return fmt.Errorf("%w: output_dir must not be empty", ErrInvalidConfig)
	}
	c.BasePath = NormalizeBasePath(c.BasePath)
	return nil
}

// NormalizeBasePath returns p with exactly one leading and one trailing
// slash. Empty input means the domain root.
func NormalizeBasePath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return "/"
	}
	return "/" + p + "/"
}
