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

package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sirseerhq/review-relay/internal/github"
)

// Service orchestrates the overdue-reviewer scan: list open pull requests,
// reconcile each PR's reviewer assignment times from its timeline, and
// evaluate waits against the threshold. All fetching is sequential; each
// network call blocks until complete, and any failure aborts the scan.
type Service struct {
	client github.Client
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a review service around the given client.
func NewService(client github.Client, log *slog.Logger) *Service {
	return &Service{
		client: client,
		log:    log,
		now:    time.Now,
	}
}

// OverdueReviewers fetches every open pull request in owner/repo and returns
// the reviewers that have waited at least maxWait, mapped to the pull
// requests they are overdue on. Pull requests with no assignees are skipped
// without a timeline fetch.
func (s *Service) OverdueReviewers(ctx context.Context, owner, repo string, maxWait time.Duration) (map[string][]PullRequest, error) {
	prs, err := github.CollectAll(ctx, func(ctx context.Context, page int) ([]github.PullRequest, error) {
		s.log.Info("fetching pull requests", slog.String("repo", owner+"/"+repo), slog.Int("page", page))
		return s.client.ListOpenPullRequests(ctx, owner, repo, page)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list open pull requests: %w", err)
	}

	reconciled := make([]PullRequest, 0, len(prs))
	for _, pr := range prs {
		if len(pr.Assignees) == 0 {
			continue
		}

		events, err := github.CollectAll(ctx, func(ctx context.Context, page int) ([]github.TimelineEvent, error) {
			s.log.Info("fetching PR timeline", slog.Int("pr", pr.Number), slog.Int("page", page))
			return s.client.ListTimelineEvents(ctx, owner, repo, pr.Number, page)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to fetch timeline for PR #%d: %w", pr.Number, err)
		}

		reconciled = append(reconciled, newPullRequest(pr, assignmentTimes(events)))
	}

	overdue := Evaluate(reconciled, maxWait, s.now())
	s.log.Info("overdue scan complete",
		slog.Int("open_prs", len(prs)),
		slog.Int("overdue_reviewers", len(overdue)))
	return overdue, nil
}
