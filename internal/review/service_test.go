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
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	relayerrors "github.com/sirseerhq/review-relay/internal/errors"
	"github.com/sirseerhq/review-relay/internal/github"
)

func newTestService(client github.Client, now time.Time) *Service {
	svc := NewService(client, slog.New(slog.NewTextHandler(io.Discard, nil)))
	svc.now = func() time.Time { return now }
	return svc
}

func TestOverdueReviewers_EndToEnd(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	assignedAt := now.Add(-26 * time.Hour)

	mock := &github.MockClient{
		PullRequestPages: [][]github.PullRequest{
			{
				{Number: 42, Title: "Add feature", Author: "alice", Assignees: []string{"bob"}},
				{Number: 43, Title: "Fix bug", Author: "bob", Assignees: nil},
			},
		},
		TimelinePages: map[int][][]github.TimelineEvent{
			42: {
				{
					{Event: "assigned", Assignee: "bob", CreatedAt: assignedAt.Add(-2 * time.Hour)},
					{Event: "assigned", Assignee: "bob", CreatedAt: assignedAt},
				},
			},
		},
	}

	svc := newTestService(mock, now)
	overdue, err := svc.OverdueReviewers(context.Background(), "acme", "widgets", 24*time.Hour)

	require.NoError(t, err)
	require.Len(t, overdue, 1)
	require.Len(t, overdue["bob"], 1)
	assert.Equal(t, 42, overdue["bob"][0].Number)

	assert.Equal(t, "acme", mock.LastOwner)
	assert.Equal(t, "widgets", mock.LastRepo)
	// PR #43 has no assignees, so only #42 triggers timeline fetches:
	// one page of events plus the empty terminator.
	assert.Equal(t, 2, mock.TimelineCalls)
}

func TestOverdueReviewers_PaginatesAllPullRequestPages(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	mock := &github.MockClient{
		PullRequestPages: [][]github.PullRequest{
			{{Number: 1, Author: "alice", Assignees: []string{"bob"}}},
			{{Number: 2, Author: "alice", Assignees: []string{"bob"}}},
		},
		TimelinePages: map[int][][]github.TimelineEvent{
			1: {{{Event: "assigned", Assignee: "bob", CreatedAt: now.Add(-48 * time.Hour)}}},
			2: {{{Event: "assigned", Assignee: "bob", CreatedAt: now.Add(-48 * time.Hour)}}},
		},
	}

	svc := newTestService(mock, now)
	overdue, err := svc.OverdueReviewers(context.Background(), "acme", "widgets", 24*time.Hour)

	require.NoError(t, err)
	require.Len(t, overdue["bob"], 2)
	// Two data pages plus the empty terminator.
	assert.Equal(t, 3, mock.ListCalls)
}

func TestOverdueReviewers_NoOpenPullRequests(t *testing.T) {
	mock := &github.MockClient{}

	svc := newTestService(mock, time.Now())
	overdue, err := svc.OverdueReviewers(context.Background(), "acme", "widgets", 24*time.Hour)

	require.NoError(t, err)
	assert.Empty(t, overdue)
	assert.Equal(t, 0, mock.TimelineCalls)
}

func TestOverdueReviewers_AuthFailurePropagates(t *testing.T) {
	mock := &github.MockClient{ShouldFailAuth: true}

	svc := newTestService(mock, time.Now())
	_, err := svc.OverdueReviewers(context.Background(), "acme", "widgets", 24*time.Hour)

	require.Error(t, err)
	assert.ErrorIs(t, err, relayerrors.ErrInvalidToken)
}

func TestOverdueReviewers_MissingTimelineDataIsNotAnError(t *testing.T) {
	mock := &github.MockClient{
		PullRequestPages: [][]github.PullRequest{
			{{Number: 1, Author: "alice", Assignees: []string{"bob"}}},
		},
	}

	svc := newTestService(mock, time.Now())
	overdue, err := svc.OverdueReviewers(context.Background(), "acme", "widgets", 24*time.Hour)

	require.NoError(t, err)
	assert.Empty(t, overdue, "assignee with no timeline event is not evaluable")
}

func TestOverdueReviewers_TimelineFailureAbortsScan(t *testing.T) {
	boom := errors.New("boom")
	mock := &github.MockClient{
		PullRequestPages: [][]github.PullRequest{
			{{Number: 1, Author: "alice", Assignees: []string{"bob"}}},
		},
	}

	svc := newTestService(&failingTimelineClient{MockClient: mock, err: boom}, time.Now())
	_, err := svc.OverdueReviewers(context.Background(), "acme", "widgets", 24*time.Hour)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "PR #1")
}

// failingTimelineClient succeeds on PR listing but fails timeline fetches.
type failingTimelineClient struct {
	*github.MockClient
	err error
}

func (f *failingTimelineClient) ListTimelineEvents(ctx context.Context, owner, repo string, number, page int) ([]github.TimelineEvent, error) {
	return nil, f.err
}

func TestOverdueReviewers_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := &github.MockClient{
		PullRequestPages: [][]github.PullRequest{{{Number: 1}}},
	}

	svc := newTestService(mock, time.Now())
	_, err := svc.OverdueReviewers(ctx, "acme", "widgets", 24*time.Hour)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
