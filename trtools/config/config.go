package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/github/go-config"
)

// Config holds application configuration: processing defaults and output settings.
type Config struct {
	Verbose bool

	Tolerance         float64 `config:"10,env=TRAIL_TOLERANCE"`
	ClusterRadius     float64 `config:"50,env=TRAIL_CLUSTER_RADIUS"`
	ClusterIterations int     `config:"100,env=TRAIL_CLUSTER_ITERATIONS"`
	ClusterMaxJump    float64 `config:"1000,env=TRAIL_CLUSTER_MAX_JUMP"`
	MergeMaxDistance  float64 `config:"15,env=TRAIL_MERGE_MAX_DISTANCE"`
	TimeZone          string  `config:"UTC,env=TRAIL_TIMEZONE"`
	Creator           string  `config:"trail-tools,env=TRAIL_CREATOR"`
}

// Load parses configuration from the environment and places it in a newly
// allocated Config struct.
func Load() (*Config, error) {
	verbose := flag.Bool("verbose", false, "print debug logs")

	flag.Parse()

	cfg := &Config{
		Verbose: *verbose,
	}

	if err := config.Load(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values are usable
func (c *Config) Validate() error {
	if c.Tolerance < 0 || c.ClusterRadius < 0 || c.ClusterMaxJump < 0 || c.MergeMaxDistance < 0 {
		return errors.New("distances must be positive")
	}
	if c.ClusterIterations <= 0 {
		return errors.New("cluster iterations must be strictly positive")
	}
	if _, err := time.LoadLocation(c.TimeZone); err != nil {
		return fmt.Errorf("invalid time zone '%s': %w", c.TimeZone, err)
	}
	return nil
}

// Location returns the time zone timestamps are converted to
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}
