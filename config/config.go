// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package config loads runtime configuration from an optional YAML file
// with environment-variable overrides.
package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the tunable parameters of a scan run. Zero values are
// replaced by the documented defaults at load time.
type Config struct {
	// BatchSize is the number of files processed together before an
	// inter-batch yield.
	BatchSize int `yaml:"batch_size" env:"DOCSCOUT_BATCH_SIZE" env-default:"50"`

	// BatchPause is the cooperative pause between batches.
	BatchPause time.Duration `yaml:"batch_pause" env:"DOCSCOUT_BATCH_PAUSE" env-default:"100ms"`

	// PoolSize is the worker pool size; 0 means one worker per file of a
	// batch.
	PoolSize int `yaml:"pool_size" env:"DOCSCOUT_POOL_SIZE" env-default:"0"`

	// PageSize is the fixed page size of the result view.
	PageSize int `yaml:"page_size" env:"DOCSCOUT_PAGE_SIZE" env-default:"20"`

	// Include and Exclude are doublestar glob patterns applied to
	// tree-relative paths during enumeration.
	Include []string `yaml:"include" env:"DOCSCOUT_INCLUDE" env-separator:","`
	Exclude []string `yaml:"exclude" env:"DOCSCOUT_EXCLUDE" env-separator:","`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"DOCSCOUT_LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from the given YAML file, then applies
// environment overrides. An empty path loads from the environment alone.
func Load(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("reading config from environment: %w", err)
		}
	} else {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the loaded values are usable.
func (c *Config) Validate() error {
	if c.BatchSize < 1 {
		return fmt.Errorf("%w: batch_size %d", ErrInvalidConfig, c.BatchSize)
	}
	if c.BatchPause < 0 {
		return fmt.Errorf("%w: batch_pause %s", ErrInvalidConfig, c.BatchPause)
	}
	if c.PoolSize < 0 {
		return fmt.Errorf("%w: pool_size %d", ErrInvalidConfig, c.PoolSize)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("%w: page_size %d", ErrInvalidConfig, c.PageSize)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return nil
}
