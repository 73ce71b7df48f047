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

package discussion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sirseerhq/review-relay/internal/github"
)

// StaleComments returns the comments on the discussion created strictly
// before now minus retention, oldest first.
//
// The scan relies on the API returning comments in ascending creation
// order: it takes the stale prefix and stops at the first comment inside
// the retention window. If that ordering guarantee were ever violated,
// stale comments created after a non-stale one would be missed. The scan is
// cursor-aware, so when an entire page is stale the next page is fetched
// and the prefix continues.
func (s *Service) StaleComments(ctx context.Context, owner, repo string, number int, retention time.Duration) ([]github.DiscussionComment, error) {
	cutoff := s.now().Add(-retention)

	var stale []github.DiscussionComment
	after := ""
	for {
		page, err := s.client.DiscussionComments(ctx, owner, repo, number, after)
		if err != nil {
			return nil, fmt.Errorf("failed to list discussion comments: %w", err)
		}

		for _, c := range page.Items {
			if !c.CreatedAt.Before(cutoff) {
				return stale, nil
			}
			stale = append(stale, c)
		}

		if !page.HasNextPage || len(page.Items) == 0 {
			return stale, nil
		}
		after = page.EndCursor
	}
}

// PruneComments deletes every stale comment on the discussion identified by
// (category, title) and returns how many were deleted. Deletions are issued
// sequentially; the first failure aborts the remaining deletions, with no
// report of which prior deletions succeeded and no rollback.
func (s *Service) PruneComments(ctx context.Context, owner, repo, category, title string, retention time.Duration) (int, error) {
	ref, err := s.Locate(ctx, owner, repo, category, title)
	if err != nil {
		return 0, err
	}

	stale, err := s.StaleComments(ctx, owner, repo, ref.Number, retention)
	if err != nil {
		return 0, err
	}
	s.log.Info("pruning stale discussion comments",
		slog.Int("discussion", ref.Number),
		slog.Int("stale", len(stale)))

	for i, c := range stale {
		if err := s.client.DeleteDiscussionComment(ctx, c.ID); err != nil {
			return i, fmt.Errorf("failed to delete comment %s: %w", c.ID, err)
		}
	}
	return len(stale), nil
}

// PostComment posts body as a new comment on the discussion identified by
// (category, title). There is no confirmation of content; success is the
// absence of an error.
func (s *Service) PostComment(ctx context.Context, owner, repo, category, title, body string) error {
	ref, err := s.Locate(ctx, owner, repo, category, title)
	if err != nil {
		return err
	}

	if err := s.client.AddDiscussionComment(ctx, ref.ID, body); err != nil {
		return err
	}
	s.log.Info("posted discussion comment", slog.Int("discussion", ref.Number))
	return nil
}
