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

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GitHub.APIEndpoint != "https://api.github.com" {
		t.Errorf("unexpected API endpoint: %s", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.GraphQLEndpoint != "https://api.github.com/graphql" {
		t.Errorf("unexpected GraphQL endpoint: %s", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GITHUB_TOKEN" {
		t.Errorf("unexpected token env: %s", cfg.GitHub.TokenEnv)
	}
	if cfg.Review.MaxWaitHours != 24 {
		t.Errorf("expected 24 max wait hours, got %d", cfg.Review.MaxWaitHours)
	}
	if cfg.Discussion.RetentionDays != 60 {
		t.Errorf("expected 60 retention days, got %d", cfg.Discussion.RetentionDays)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}

func TestLoadConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
github:
  api_endpoint: https://github.example.com/api/v3
  graphql_endpoint: https://github.example.com/api/graphql
  token_env: GHE_TOKEN
review:
  max_wait_hours: 48
discussion:
  category: Announcements
  title: Pending reviews
  retention_days: 30
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.GitHub.APIEndpoint != "https://github.example.com/api/v3" {
		t.Errorf("unexpected API endpoint: %s", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GHE_TOKEN" {
		t.Errorf("unexpected token env: %s", cfg.GitHub.TokenEnv)
	}
	if cfg.Review.MaxWaitHours != 48 {
		t.Errorf("expected 48 max wait hours, got %d", cfg.Review.MaxWaitHours)
	}
	if cfg.Discussion.Category != "Announcements" || cfg.Discussion.Title != "Pending reviews" {
		t.Errorf("unexpected discussion settings: %+v", cfg.Discussion)
	}
	if cfg.Discussion.RetentionDays != 30 {
		t.Errorf("expected 30 retention days, got %d", cfg.Discussion.RetentionDays)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
review:
  max_wait_hours: 12
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Review.MaxWaitHours != 12 {
		t.Errorf("expected 12 max wait hours, got %d", cfg.Review.MaxWaitHours)
	}
	if cfg.GitHub.APIEndpoint != "https://api.github.com" {
		t.Errorf("expected default API endpoint, got %s", cfg.GitHub.APIEndpoint)
	}
	if cfg.Discussion.RetentionDays != 60 {
		t.Errorf("expected default retention, got %d", cfg.Discussion.RetentionDays)
	}
}

func TestLoadConfig_MissingFileErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadConfig_InvalidYAMLErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("github: [not a map"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	_, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("GITHUB_API_ENDPOINT", "https://ghe.internal/api/v3")
	t.Setenv("GITHUB_GRAPHQL_ENDPOINT", "https://ghe.internal/api/graphql")
	t.Setenv("REVIEW_RELAY_MAX_WAIT_HOURS", "72")
	t.Setenv("REVIEW_RELAY_CATEGORY", "General")
	t.Setenv("REVIEW_RELAY_DISCUSSION", "Review queue")
	t.Setenv("REVIEW_RELAY_RETENTION_DAYS", "14")

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("review:\n  max_wait_hours: 48\n"), 0o644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.GitHub.APIEndpoint != "https://ghe.internal/api/v3" {
		t.Errorf("env should override API endpoint, got %s", cfg.GitHub.APIEndpoint)
	}
	if cfg.Review.MaxWaitHours != 72 {
		t.Errorf("env should override file value, got %d", cfg.Review.MaxWaitHours)
	}
	if cfg.Discussion.Category != "General" || cfg.Discussion.Title != "Review queue" {
		t.Errorf("unexpected discussion overrides: %+v", cfg.Discussion)
	}
	if cfg.Discussion.RetentionDays != 14 {
		t.Errorf("env should override retention, got %d", cfg.Discussion.RetentionDays)
	}
}

func TestLoadConfig_IgnoresInvalidEnvNumbers(t *testing.T) {
	t.Setenv("REVIEW_RELAY_MAX_WAIT_HOURS", "not-a-number")
	t.Setenv("REVIEW_RELAY_RETENTION_DAYS", "-5")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Review.MaxWaitHours != 24 {
		t.Errorf("invalid env value should keep default, got %d", cfg.Review.MaxWaitHours)
	}
	if cfg.Discussion.RetentionDays != 60 {
		t.Errorf("negative env value should keep default, got %d", cfg.Discussion.RetentionDays)
	}
}

func TestToken(t *testing.T) {
	t.Run("default env var", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "  ghp_abc123  ")
		cfg := DefaultConfig()
		if got := cfg.Token(); got != "ghp_abc123" {
			t.Errorf("expected trimmed token, got %q", got)
		}
	})

	t.Run("custom env var", func(t *testing.T) {
		t.Setenv("GHE_TOKEN", "ghe_secret")
		cfg := DefaultConfig()
		cfg.GitHub.TokenEnv = "GHE_TOKEN"
		if got := cfg.Token(); got != "ghe_secret" {
			t.Errorf("expected token from custom env, got %q", got)
		}
	})

	t.Run("unset env var", func(t *testing.T) {
		t.Setenv("GITHUB_TOKEN", "")
		cfg := DefaultConfig()
		if got := cfg.Token(); got != "" {
			t.Errorf("expected empty token, got %q", got)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(cfg *Config) {}, false},
		{"zero max wait", func(cfg *Config) { cfg.Review.MaxWaitHours = 0 }, true},
		{"negative retention", func(cfg *Config) { cfg.Discussion.RetentionDays = -1 }, true},
		{"empty api endpoint", func(cfg *Config) { cfg.GitHub.APIEndpoint = "" }, true},
		{"empty graphql endpoint", func(cfg *Config) { cfg.GitHub.GraphQLEndpoint = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
