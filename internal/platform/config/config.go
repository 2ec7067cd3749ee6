// Copyright (c) 2026 Roundhouse. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles module-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to the logger and the catalog service via constructors.
  - Zero Hidden State: No global variables are used to store config.
*/
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// DuplicatePolicy decides what the catalog does when two items share the same
// business key (brand and item number).
type DuplicatePolicy string

const (
	// DuplicateKeepFirst keeps the item seen first and ignores later ones.
	DuplicateKeepFirst DuplicatePolicy = "keep_first"

	// DuplicateKeepLast replaces the stored item with the one seen last.
	DuplicateKeepLast DuplicatePolicy = "keep_last"

	// DuplicateReject fails the insertion with a CONFLICT error.
	DuplicateReject DuplicatePolicy = "reject"
)

// IsValid reports whether p is a recognised [DuplicatePolicy] value.
func (p DuplicatePolicy) IsValid() bool {
	switch p {
	case DuplicateKeepFirst, DuplicateKeepLast, DuplicateReject:
		return true
	}
	return false
}

// # Configuration Schema

// Config holds all runtime configuration for the catalog.
type Config struct {

	// Runtime settings
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL"   envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT"  envDefault:"json"`

	// Catalog behaviour
	DuplicatePolicy DuplicatePolicy `env:"CATALOG_DUPLICATE_POLICY" envDefault:"keep_first"`
	PageSize        int             `env:"CATALOG_PAGE_SIZE"        envDefault:"20"`
	MaxPageSize     int             `env:"CATALOG_MAX_PAGE_SIZE"    envDefault:"100"`
}

// # Configuration Loading

// Load parses the process environment into a [Config] struct.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment.
// It is mainly used by tests.
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if !c.DuplicatePolicy.IsValid() {
		return fmt.Errorf("unknown duplicate policy %q", c.DuplicatePolicy)
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.PageSize < 1 || c.MaxPageSize < c.PageSize {
		return fmt.Errorf("invalid page sizes (page=%d, max=%d)", c.PageSize, c.MaxPageSize)
	}
	return nil
}

// IsDevelopment reports whether the module is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the module is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
