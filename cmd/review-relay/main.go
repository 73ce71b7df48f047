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

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	relayerrors "github.com/sirseerhq/review-relay/internal/errors"
	"github.com/sirseerhq/review-relay/pkg/version"
	"github.com/spf13/cobra"
)

func main() {
	// A local .env may carry GITHUB_TOKEN; absence is not an error.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "review-relay",
		Short: "Notify overdue pull-request reviewers via GitHub Discussions",
		Long: `Review Relay watches a GitHub repository for pull requests whose assigned
reviewers have been waiting longer than a configured threshold, and posts
notifications to a GitHub Discussion. It also maintains a rolling window of
discussion comments by pruning comments older than the retention period.`,
		Version:       version.Version,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
	}

	rootCmd.AddCommand(newNotifyCommand())
	rootCmd.AddCommand(newPruneCommand())
	rootCmd.AddCommand(newPostCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(mapErrorToExitCode(err))
	}
}

// mapErrorToExitCode maps internal errors to appropriate exit codes
func mapErrorToExitCode(err error) int {
	if err == nil {
		return 0
	}

	if errors.Is(err, relayerrors.ErrNoToken) ||
		errors.Is(err, relayerrors.ErrInvalidToken) ||
		errors.Is(err, relayerrors.ErrRepoNotFound) ||
		errors.Is(err, relayerrors.ErrCategoryNotFound) ||
		errors.Is(err, relayerrors.ErrDiscussionNotFound) ||
		errors.Is(err, relayerrors.ErrRateLimit) {
		return 2 // Authentication/authorization/lookup errors
	}

	if errors.Is(err, relayerrors.ErrNetworkFailure) {
		return 3 // Network errors
	}

	return 1 // General error
}

// parseRepository parses an org/repo string into owner and repo components
func parseRepository(repoArg string) (owner, repo string, err error) {
	parts := strings.Split(repoArg, "/")
	if len(parts) != 2 {
		return "", "", fmt.Errorf("invalid repository format. Expected: <org>/<repo>, got: %s", repoArg)
	}

	owner = strings.TrimSpace(parts[0])
	repo = strings.TrimSpace(parts[1])

	if owner == "" || repo == "" {
		return "", "", fmt.Errorf("invalid repository format. Expected: <org>/<repo>, got: %s", repoArg)
	}

	return owner, repo, nil
}

// resolveToken returns the token from the flag or the configured
// environment variable. The returned value may be empty; client
// constructors reject empty tokens before any network call.
func resolveToken(flagToken, envToken string) string {
	if flagToken != "" {
		return flagToken
	}
	return envToken
}

// newLogger builds the operation logger. Verbose switches on debug level.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
