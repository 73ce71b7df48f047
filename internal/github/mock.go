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

package github

import (
	"context"
	"fmt"

	relayerrors "github.com/sirseerhq/review-relay/internal/errors"
)

// MockClient is a mock implementation of the Client interface for testing.
// PullRequestPages and TimelinePages hold the successive pages each listing
// returns; pages past the configured data come back empty, terminating
// pagination the same way the live API does.
type MockClient struct {
	// PullRequestPages to return, one slice per page.
	PullRequestPages [][]PullRequest

	// TimelinePages to return per PR number, one slice per page.
	TimelinePages map[int][][]TimelineEvent

	// Error to return from every call.
	Err error

	// Behavior flags
	ShouldFailAuth bool

	// Track calls for verification
	ListCalls     int
	TimelineCalls int
	LastOwner     string
	LastRepo      string
}

// ListOpenPullRequests implements the Client interface.
func (m *MockClient) ListOpenPullRequests(ctx context.Context, owner, repo string, page int) ([]PullRequest, error) {
	m.ListCalls++
	m.LastOwner = owner
	m.LastRepo = repo

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return nil, fmt.Errorf("authentication failed: %w", relayerrors.ErrInvalidToken)
	}
	if m.Err != nil {
		return nil, m.Err
	}

	if page < 1 || page > len(m.PullRequestPages) {
		return nil, nil
	}
	return m.PullRequestPages[page-1], nil
}

// ListTimelineEvents implements the Client interface.
func (m *MockClient) ListTimelineEvents(ctx context.Context, owner, repo string, number, page int) ([]TimelineEvent, error) {
	m.TimelineCalls++

	if m.Err != nil {
		return nil, m.Err
	}

	pages := m.TimelinePages[number]
	if page < 1 || page > len(pages) {
		return nil, nil
	}
	return pages[page-1], nil
}

// MockDiscussionClient is a mock implementation of the DiscussionClient
// interface for testing.
type MockDiscussionClient struct {
	Categories   []DiscussionCategory
	Discussions  []Discussion
	CommentPages []CursorPage[DiscussionComment]

	// Errors per operation; nil means success.
	QueryErr  error
	AddErr    error
	DeleteErr error

	// DeleteErrAfter, when > 0, fails the Nth delete call (1-based) with
	// DeleteErr while letting earlier ones succeed.
	DeleteErrAfter int

	// Track calls for verification
	Posted  []string
	Deleted []string
}

// DiscussionCategories implements the DiscussionClient interface.
func (m *MockDiscussionClient) DiscussionCategories(ctx context.Context, owner, repo string) ([]DiscussionCategory, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return m.Categories, nil
}

// DiscussionsInCategory implements the DiscussionClient interface.
func (m *MockDiscussionClient) DiscussionsInCategory(ctx context.Context, owner, repo, categoryID string) ([]Discussion, error) {
	if m.QueryErr != nil {
		return nil, m.QueryErr
	}
	return m.Discussions, nil
}

// DiscussionComments implements the DiscussionClient interface. The after
// cursor is the stringified index into CommentPages.
func (m *MockDiscussionClient) DiscussionComments(ctx context.Context, owner, repo string, number int, after string) (CursorPage[DiscussionComment], error) {
	if m.QueryErr != nil {
		return CursorPage[DiscussionComment]{}, m.QueryErr
	}

	idx := 0
	if after != "" {
		if _, err := fmt.Sscanf(after, "page-%d", &idx); err != nil {
			return CursorPage[DiscussionComment]{}, fmt.Errorf("unknown cursor %q", after)
		}
	}
	if idx >= len(m.CommentPages) {
		return CursorPage[DiscussionComment]{}, nil
	}

	page := m.CommentPages[idx]
	page.EndCursor = fmt.Sprintf("page-%d", idx+1)
	page.HasNextPage = idx+1 < len(m.CommentPages)
	return page, nil
}

// AddDiscussionComment implements the DiscussionClient interface.
func (m *MockDiscussionClient) AddDiscussionComment(ctx context.Context, discussionID, body string) error {
	if m.AddErr != nil {
		return m.AddErr
	}
	m.Posted = append(m.Posted, body)
	return nil
}

// DeleteDiscussionComment implements the DiscussionClient interface.
func (m *MockDiscussionClient) DeleteDiscussionComment(ctx context.Context, commentID string) error {
	if m.DeleteErr != nil && (m.DeleteErrAfter == 0 || len(m.Deleted)+1 == m.DeleteErrAfter) {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, commentID)
	return nil
}
