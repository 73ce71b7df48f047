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
	"github.com/spf13/cobra"
)

// discussionOptions carries the flags shared by the comment commands.
type discussionOptions struct {
	token         string
	configPath    string
	category      string
	title         string
	retentionDays int
	message       string
	verbose       bool
}

func newPruneCommand() *cobra.Command {
	var opts discussionOptions

	cmd := &cobra.Command{
		Use:   "prune-comments <org>/<repo>",
		Short: "Delete stale comments from the notification discussion",
		Long: `Delete comments older than the retention period (default 60 days) from the
configured GitHub Discussion. Deletions are issued one by one, oldest first;
the first failure aborts the remaining deletions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPrune(cmd.Context(), args[0], opts)
		},
	}

	addDiscussionFlags(cmd, &opts)
	cmd.Flags().IntVar(&opts.retentionDays, "retention-days", 0, "Delete comments older than this many days (default from config: 60)")

	return cmd
}

func newPostCommand() *cobra.Command {
	var opts discussionOptions

	cmd := &cobra.Command{
		Use:   "post-comment <org>/<repo>",
		Short: "Post a comment to the notification discussion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.message == "" {
				return fmt.Errorf("--message is required")
			}
			return runPost(cmd.Context(), args[0], opts)
		},
	}

	addDiscussionFlags(cmd, &opts)
	cmd.Flags().StringVar(&opts.message, "message", "", "Comment body to post")

	return cmd
}

// addDiscussionFlags registers the flags common to both comment commands.
func addDiscussionFlags(cmd *cobra.Command, opts *discussionOptions) {
	cmd.Flags().StringVar(&opts.token, "token", "", "GitHub personal access token (overrides GITHUB_TOKEN env var)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to config file")
	cmd.Flags().StringVar(&opts.category, "category", "", "Discussion category name")
	cmd.Flags().StringVar(&opts.title, "discussion", "", "Discussion title")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
}

// newDiscussionService builds the discussion service shared by the comment
// commands, applying flag overrides on top of the loaded configuration.
func newDiscussionService(opts discussionOptions) (*discussion.Service, *config.Config, error) {
	cfg, err := loadConfig(opts.configPath, func(cfg *config.Config) {
		if opts.category != "" {
			cfg.Discussion.Category = opts.category
		}
		if opts.title != "" {
			cfg.Discussion.Title = opts.title
		}
		if opts.retentionDays > 0 {
			cfg.Discussion.RetentionDays = opts.retentionDays
		}
	})
	if err != nil {
		return nil, nil, err
	}

	if cfg.Discussion.Category == "" || cfg.Discussion.Title == "" {
		return nil, nil, fmt.Errorf("discussion category and title must be set (via flags, config file, or environment)")
	}

	token := resolveToken(opts.token, cfg.Token())
	gqlClient, err := github.NewGraphQLClient(token, cfg.GitHub.GraphQLEndpoint)
	if err != nil {
		return nil, nil, err
	}

	return discussion.NewService(gqlClient, newLogger(opts.verbose)), cfg, nil
}

// runPrune executes the prune-comments command
func runPrune(ctx context.Context, repoArg string, opts discussionOptions) error {
	owner, repo, err := parseRepository(repoArg)
	if err != nil {
		return err
	}

	svc, cfg, err := newDiscussionService(opts)
	if err != nil {
		return err
	}

	retention := time.Duration(cfg.Discussion.RetentionDays) * 24 * time.Hour
	deleted, err := svc.PruneComments(ctx, owner, repo, cfg.Discussion.Category, cfg.Discussion.Title, retention)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Deleted %d stale comment(s)\n", deleted)
	return nil
}

// runPost executes the post-comment command
func runPost(ctx context.Context, repoArg string, opts discussionOptions) error {
	owner, repo, err := parseRepository(repoArg)
	if err != nil {
		return err
	}

	svc, cfg, err := newDiscussionService(opts)
	if err != nil {
		return err
	}

	if err := svc.PostComment(ctx, owner, repo, cfg.Discussion.Category, cfg.Discussion.Title, opts.message); err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Comment posted\n")
	return nil
}
