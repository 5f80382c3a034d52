// Copyright 2025 Loupe Search
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


// Package config loads and validates engine configuration from YAML files
// with LOUPE_* environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level engine configuration.
type Config struct {
	Index   IndexConfig   `yaml:"index"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// IndexConfig controls in-memory index behavior: the query result cache,
// the extraction worker pool, and the BM25 ranking parameters.
type IndexConfig struct {
	CacheCapacity int     `yaml:"cacheCapacity"`
	PoolSize      int     `yaml:"poolSize"`
	BM25K1        float64 `yaml:"bm25K1"`
	BM25B         float64 `yaml:"bm25B"`
}

// StorageConfig holds the on-disk snapshot store location.
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads a YAML config file (if provided) and applies environment
// overrides. Missing values keep their defaults; the result is validated
// before being returned.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a Config suitable for local use without any file.
func Default() *Config {
	return &Config{
		Index: IndexConfig{
			CacheCapacity: 100,
			PoolSize:      4,
			BM25K1:        1.2,
			BM25B:         0.75,
		},
		Storage: StorageConfig{
			Path: defaultStoragePath(),
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".loupe"
	}
	return home + string(os.PathSeparator) + ".loupe"
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Index.CacheCapacity < 1 {
		return fmt.Errorf("config: cacheCapacity must be at least 1, got %d", c.Index.CacheCapacity)
	}
	if c.Index.PoolSize < 1 {
		return fmt.Errorf("config: poolSize must be at least 1, got %d", c.Index.PoolSize)
	}
	if c.Index.BM25K1 < 0 {
		return fmt.Errorf("config: bm25K1 must be non-negative, got %g", c.Index.BM25K1)
	}
	if c.Index.BM25B < 0 || c.Index.BM25B > 1 {
		return fmt.Errorf("config: bm25B must be within [0, 1], got %g", c.Index.BM25B)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("config: storage path is required")
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown logging level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown logging format %q", c.Logging.Format)
	}
	return nil
}

// applyEnvOverrides reads LOUPE_* environment variables and overrides the
// corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOUPE_CACHE_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Index.CacheCapacity = n
		}
	}
	if v := os.Getenv("LOUPE_POOL_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Index.PoolSize = n
		}
	}
	if v := os.Getenv("LOUPE_BM25_K1"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Index.BM25K1 = f
		}
	}
	if v := os.Getenv("LOUPE_BM25_B"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Index.BM25B = f
		}
	}
	if v := os.Getenv("LOUPE_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("LOUPE_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("LOUPE_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
}
