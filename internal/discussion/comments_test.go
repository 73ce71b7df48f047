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
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sirseerhq/review-relay/internal/github"
)

// commentsAged builds a single comment page where comment i is ages[i] old
// relative to now.
func commentsAged(now time.Time, ages ...time.Duration) github.CursorPage[github.DiscussionComment] {
	comments := make([]github.DiscussionComment, 0, len(ages))
	for i, age := range ages {
		comments = append(comments, github.DiscussionComment{
			ID:        fmt.Sprintf("DC_%d", i+1),
			CreatedAt: now.Add(-age),
		})
	}
	return github.CursorPage[github.DiscussionComment]{Items: comments}
}

func TestStaleComments_PrefixOfStaleComments(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	// 5 comments older than 60 days followed by recent ones; the scan must
	// return the stale prefix and stop at the first recent comment.
	mock := &github.MockDiscussionClient{
		CommentPages: []github.CursorPage[github.DiscussionComment]{
			commentsAged(now,
				90*24*time.Hour,
				85*24*time.Hour,
				80*24*time.Hour,
				70*24*time.Hour,
				61*24*time.Hour,
				10*24*time.Hour,
				1*24*time.Hour,
			),
		},
	}

	svc := newTestService(mock, now)
	stale, err := svc.StaleComments(context.Background(), "acme", "widgets", 7, DefaultRetention)

	require.NoError(t, err)
	require.Len(t, stale, 5)
	assert.Equal(t, "DC_1", stale[0].ID)
	assert.Equal(t, "DC_5", stale[4].ID)
}

func TestStaleComments_StopsAtFirstRecentComment(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	// A stale comment after a recent one is never reached: the scan assumes
	// ascending creation order and takes only the leading prefix.
	mock := &github.MockDiscussionClient{
		CommentPages: []github.CursorPage[github.DiscussionComment]{
			commentsAged(now,
				90*24*time.Hour,
				1*24*time.Hour,
				80*24*time.Hour,
			),
		},
	}

	svc := newTestService(mock, now)
	stale, err := svc.StaleComments(context.Background(), "acme", "widgets", 7, DefaultRetention)

	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "DC_1", stale[0].ID)
}

func TestStaleComments_BoundaryIsExclusive(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	// A comment exactly at the cutoff is not stale: only comments strictly
	// older than the retention window qualify.
	mock := &github.MockDiscussionClient{
		CommentPages: []github.CursorPage[github.DiscussionComment]{
			{Items: []github.DiscussionComment{
				{ID: "DC_old", CreatedAt: now.Add(-DefaultRetention - time.Second)},
				{ID: "DC_edge", CreatedAt: now.Add(-DefaultRetention)},
			}},
		},
	}

	svc := newTestService(mock, now)
	stale, err := svc.StaleComments(context.Background(), "acme", "widgets", 7, DefaultRetention)

	require.NoError(t, err)
	require.Len(t, stale, 1)
	assert.Equal(t, "DC_old", stale[0].ID)
}

func TestStaleComments_SpansPages(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	mock := &github.MockDiscussionClient{
		CommentPages: []github.CursorPage[github.DiscussionComment]{
			{Items: []github.DiscussionComment{
				{ID: "DC_1", CreatedAt: now.Add(-100 * 24 * time.Hour)},
				{ID: "DC_2", CreatedAt: now.Add(-90 * 24 * time.Hour)},
			}},
			{Items: []github.DiscussionComment{
				{ID: "DC_3", CreatedAt: now.Add(-80 * 24 * time.Hour)},
				{ID: "DC_4", CreatedAt: now.Add(-1 * 24 * time.Hour)},
			}},
		},
	}

	svc := newTestService(mock, now)
	stale, err := svc.StaleComments(context.Background(), "acme", "widgets", 7, DefaultRetention)

	require.NoError(t, err)
	require.Len(t, stale, 3)
	assert.Equal(t, []string{"DC_1", "DC_2", "DC_3"},
		[]string{stale[0].ID, stale[1].ID, stale[2].ID})
}

func TestStaleComments_EmptyDiscussion(t *testing.T) {
	mock := &github.MockDiscussionClient{}

	svc := newTestService(mock, time.Now())
	stale, err := svc.StaleComments(context.Background(), "acme", "widgets", 7, DefaultRetention)

	require.NoError(t, err)
	assert.Empty(t, stale)
}

func newLocatableMock() *github.MockDiscussionClient {
	return &github.MockDiscussionClient{
		Categories: []github.DiscussionCategory{
			{ID: "DIC_2", Name: "Announcements"},
		},
		Discussions: []github.Discussion{
			{ID: "D_2", Title: "Pending reviews", Number: 7},
		},
	}
}

func TestPruneComments(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	mock := newLocatableMock()
	mock.CommentPages = []github.CursorPage[github.DiscussionComment]{
		commentsAged(now,
			90*24*time.Hour,
			70*24*time.Hour,
			5*24*time.Hour,
		),
	}

	svc := newTestService(mock, now)
	deleted, err := svc.PruneComments(context.Background(), "acme", "widgets", "Announcements", "Pending reviews", DefaultRetention)

	require.NoError(t, err)
	assert.Equal(t, 2, deleted)
	assert.Equal(t, []string{"DC_1", "DC_2"}, mock.Deleted, "deletions run oldest first")
}

func TestPruneComments_NothingStale(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)

	mock := newLocatableMock()
	mock.CommentPages = []github.CursorPage[github.DiscussionComment]{
		commentsAged(now, 24*time.Hour),
	}

	svc := newTestService(mock, now)
	deleted, err := svc.PruneComments(context.Background(), "acme", "widgets", "Announcements", "Pending reviews", DefaultRetention)

	require.NoError(t, err)
	assert.Equal(t, 0, deleted)
	assert.Empty(t, mock.Deleted)
}

func TestPruneComments_DeleteFailureAbortsRemaining(t *testing.T) {
	now := time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC)
	boom := errors.New("boom")

	mock := newLocatableMock()
	mock.CommentPages = []github.CursorPage[github.DiscussionComment]{
		commentsAged(now,
			90*24*time.Hour,
			80*24*time.Hour,
			70*24*time.Hour,
		),
	}
	mock.DeleteErr = boom
	mock.DeleteErrAfter = 2 // second delete fails

	svc := newTestService(mock, now)
	deleted, err := svc.PruneComments(context.Background(), "acme", "widgets", "Announcements", "Pending reviews", DefaultRetention)

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, deleted)
	assert.Equal(t, []string{"DC_1"}, mock.Deleted, "failure must abort the remaining deletions")
}

func TestPruneComments_LocateFailurePreventsDeletion(t *testing.T) {
	mock := newLocatableMock()
	mock.Discussions = nil

	svc := newTestService(mock, time.Now())
	_, err := svc.PruneComments(context.Background(), "acme", "widgets", "Announcements", "Pending reviews", DefaultRetention)

	require.Error(t, err)
	assert.Empty(t, mock.Deleted)
}

func TestPostComment(t *testing.T) {
	mock := newLocatableMock()

	svc := newTestService(mock, time.Now())
	err := svc.PostComment(context.Background(), "acme", "widgets", "Announcements", "Pending reviews", "reviewers are waiting")

	require.NoError(t, err)
	require.Len(t, mock.Posted, 1)
	assert.Equal(t, "reviewers are waiting", mock.Posted[0])
}

func TestPostComment_AddFailurePropagates(t *testing.T) {
	boom := errors.New("boom")
	mock := newLocatableMock()
	mock.AddErr = boom

	svc := newTestService(mock, time.Now())
	err := svc.PostComment(context.Background(), "acme", "widgets", "Announcements", "Pending reviews", "body")

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, mock.Posted)
}
