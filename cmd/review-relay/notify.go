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
	"context"
	"fmt"
	"os"
	"time"

	"github.com/sirseerhq/review-relay/internal/config"
	"github.com/sirseerhq/review-relay/internal/discussion"
	"github.com/sirseerhq/review-relay/internal/github"
	"github.com/sirseerhq/review-relay/internal/output"
	"github.com/sirseerhq/review-relay/internal/review"
	"github.com/spf13/cobra"
)

// notifyOptions carries the notify command's flag values.
type notifyOptions struct {
	token        string
	configPath   string
	maxWaitHours int
	category     string
	title        string
	outputFile   string
	dryRun       bool
	verbose      bool
}

func newNotifyCommand() *cobra.Command {
	var opts notifyOptions

	cmd := &cobra.Command{
		Use:   "notify <org>/<repo>",
		Short: "Scan for overdue reviewers and post a notification comment",
		Long: `Scan a repository's open pull requests for reviewers whose assignment is
older than the wait threshold, and post a notification comment to the
configured GitHub Discussion.

The repository must be specified in the format: <org>/<repo>
For example: golang/go, kubernetes/kubernetes

Authentication is required via GitHub token:
  - Use --token flag to provide token directly
  - Or set GITHUB_TOKEN environment variable

With --dry-run (or --output) the notification is not posted; instead the
overdue notices are written as NDJSON, one record per reviewer.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runNotify(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.Flags().IntVar(&opts.maxWaitHours, "max-wait-hours", 0, "Review wait threshold in hours (default from config: 24)")
	cmd.Flags().StringVar(&opts.category, "category", "", "Discussion category name")
	cmd.Flags().StringVar(&opts.title, "discussion", "", "Discussion title")
	cmd.Flags().StringVar(&opts.outputFile, "output", "", "Write NDJSON notices to this file instead of posting")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Write NDJSON notices to stdout instead of posting")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

// runNotify executes the notify command
func runNotify(ctx context.Context, repoArg string, opts notifyOptions) error {
	owner, repo, err := parseRepository(repoArg)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(opts.configPath, func(cfg *config.Config) {
		if opts.maxWaitHours > 0 {
			cfg.Review.MaxWaitHours = opts.maxWaitHours
		}
		if opts.category != "" {
			cfg.Discussion.Category = opts.category
		}
		if opts.title != "" {
			cfg.Discussion.Title = opts.title
		}
	})
	if err != nil {
		return err
	}

	token := resolveToken(opts.token, cfg.Token())
	restClient, err := github.NewRESTClient(token, cfg.GitHub.APIEndpoint)
	if err != nil {
		return err
	}

	log := newLogger(opts.verbose)
	maxWait := time.Duration(cfg.Review.MaxWaitHours) * time.Hour

	overdue, err := review.NewService(restClient, log).OverdueReviewers(ctx, owner, repo, maxWait)
	if err != nil {
		return err
	}

	if opts.dryRun || opts.outputFile != "" {
		return writeNotices(overdue, opts.outputFile)
	}

	if len(overdue) == 0 {
		fmt.Fprintf(os.Stderr, "No overdue reviewers in %s/%s\n", owner, repo)
		return nil
	}

	if cfg.Discussion.Category == "" || cfg.Discussion.Title == "" {
		return fmt.Errorf("discussion category and title must be set (via flags, config file, or environment) to post notifications")
	}

	gqlClient, err := github.NewGraphQLClient(token, cfg.GitHub.GraphQLEndpoint)
	if err != nil {
		return err
	}

	body := review.FormatComment(overdue, maxWait)
	if err := discussion.NewService(gqlClient, log).PostComment(ctx, owner, repo,
		cfg.Discussion.Category, cfg.Discussion.Title, body); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Notified %d overdue reviewer(s) in %s/%s\n", len(overdue), owner, repo)
	return nil
}

// writeNotices writes the overdue map as NDJSON, one record per reviewer,
// to the given file or to stdout when the path is empty.
func writeNotices(overdue map[string][]review.PullRequest, outputFile string) error {
	var writer output.OutputWriter
	if outputFile == "" {
		writer = output.NewWriter(os.Stdout)
	} else {
		fileWriter, err := output.NewFileWriter(outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		writer = fileWriter
	}
	defer writer.Close()

	for _, notice := range review.Notices(overdue) {
		if err := writer.Write(notice); err != nil {
			return fmt.Errorf("failed to write notice: %w", err)
		}
	}
	return nil
}

// loadConfig loads the configuration, applies flag overrides, and validates.
func loadConfig(path string, override func(*config.Config)) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if override != nil {
		override(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
