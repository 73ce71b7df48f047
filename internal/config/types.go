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

// Package config types define the configuration structures used throughout
// review-relay. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for review-relay.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	GitHub     GitHubConfig     `yaml:"github"`
	Review     ReviewConfig     `yaml:"review"`
	Discussion DiscussionConfig `yaml:"discussion"`
}

// GitHubConfig contains GitHub-specific settings including API endpoints
// and authentication configuration. This allows easy configuration for
// GitHub Enterprise deployments by specifying custom endpoints.
type GitHubConfig struct {
	APIEndpoint     string `yaml:"api_endpoint"`
	GraphQLEndpoint string `yaml:"graphql_endpoint"`
	TokenEnv        string `yaml:"token_env"`
}

// ReviewConfig controls the overdue-reviewer scan.
type ReviewConfig struct {
	// MaxWaitHours is the review-wait threshold: a reviewer whose
	// assignment is at least this old is overdue.
	MaxWaitHours int `yaml:"max_wait_hours"`
}

// DiscussionConfig identifies the discussion that receives notifications
// and controls the comment retention window.
type DiscussionConfig struct {
	Category      string `yaml:"category"`
	Title         string `yaml:"title"`
	RetentionDays int    `yaml:"retention_days"`
}

// DefaultConfig returns a Config with sensible defaults suitable for most
// use cases. These defaults are optimized for public GitHub.com usage but
// can be overridden for GitHub Enterprise or special requirements.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIEndpoint:     "https://api.github.com",
			GraphQLEndpoint: "https://api.github.com/graphql",
			TokenEnv:        "GITHUB_TOKEN",
		},
		Review: ReviewConfig{
			MaxWaitHours: 24,
		},
		Discussion: DiscussionConfig{
			RetentionDays: 60,
		},
	}
}
