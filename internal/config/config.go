// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for review-relay with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// The package supports YAML configuration files and provides automatic
// discovery of configuration in standard locations. It's designed to work
// seamlessly with GitHub Enterprise deployments through custom endpoints.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .review-relay.yaml (current directory)
//   - .review-relay.yml (current directory)
//   - ~/.review-relay/config.yaml
//   - ~/.review-relay/config.yml
//
// Environment variables are applied after loading the config file, allowing
// runtime overrides.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	// Start with defaults
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".review-relay.yaml",
			".review-relay.yml",
			filepath.Join(os.Getenv("HOME"), ".review-relay", "config.yaml"),
			filepath.Join(os.Getenv("HOME"), ".review-relay", "config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	// GitHub endpoints
	if endpoint := os.Getenv("GITHUB_API_ENDPOINT"); endpoint != "" {
		cfg.GitHub.APIEndpoint = endpoint
	}
	if endpoint := os.Getenv("GITHUB_GRAPHQL_ENDPOINT"); endpoint != "" {
		cfg.GitHub.GraphQLEndpoint = endpoint
	}

	// Review settings
	if maxWait := os.Getenv("REVIEW_RELAY_MAX_WAIT_HOURS"); maxWait != "" {
		if hours, err := parsePositiveInt(maxWait); err == nil {
			cfg.Review.MaxWaitHours = hours
		}
	}

	// Discussion settings
	if category := os.Getenv("REVIEW_RELAY_CATEGORY"); category != "" {
		cfg.Discussion.Category = category
	}
	if title := os.Getenv("REVIEW_RELAY_DISCUSSION"); title != "" {
		cfg.Discussion.Title = title
	}
	if retention := os.Getenv("REVIEW_RELAY_RETENTION_DAYS"); retention != "" {
		if days, err := parsePositiveInt(retention); err == nil {
			cfg.Discussion.RetentionDays = days
		}
	}
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// Token resolves the GitHub token from the configured environment variable.
// Returns the empty string when unset; clients reject empty tokens before
// issuing any request.
func (c *Config) Token() string {
	env := c.GitHub.TokenEnv
	if env == "" {
		env = "GITHUB_TOKEN"
	}
	return strings.TrimSpace(os.Getenv(env))
}

// Validate checks if the configuration contains valid values. It ensures
// thresholds are positive, endpoints are not empty, and other constraints
// are met. This should be called after loading configuration to catch
// invalid settings early.
func (c *Config) Validate() error {
	if c.Review.MaxWaitHours <= 0 {
		return fmt.Errorf("max wait hours must be positive, got: %d", c.Review.MaxWaitHours)
	}
	if c.Discussion.RetentionDays <= 0 {
		return fmt.Errorf("retention days must be positive, got: %d", c.Discussion.RetentionDays)
	}
	if c.GitHub.APIEndpoint == "" {
		return fmt.Errorf("GitHub API endpoint cannot be empty")
	}
	if c.GitHub.GraphQLEndpoint == "" {
		return fmt.Errorf("GitHub GraphQL endpoint cannot be empty")
	}
	return nil
}
