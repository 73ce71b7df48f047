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

import "context"

// Client defines the REST operations the review pipeline depends on.
// This interface allows for easy mocking in tests.
type Client interface {
	// ListOpenPullRequests retrieves one page of open pull requests from the
	// repository. Pages are 1-based; an empty result marks the end of the
	// collection. Closed and merged pull requests are never returned.
	ListOpenPullRequests(ctx context.Context, owner, repo string, page int) ([]PullRequest, error)

	// ListTimelineEvents retrieves one page of a pull request's issue
	// timeline. Pages are 1-based; an empty result marks the end of the
	// collection.
	ListTimelineEvents(ctx context.Context, owner, repo string, number, page int) ([]TimelineEvent, error)
}

// DiscussionClient defines the GraphQL operations against GitHub Discussions.
type DiscussionClient interface {
	// DiscussionCategories lists the repository's discussion categories.
	// Only the first 10 categories are fetched; this fixed window is a
	// deliberate simplification shared with the lookup in Discussions.
	DiscussionCategories(ctx context.Context, owner, repo string) ([]DiscussionCategory, error)

	// DiscussionsInCategory lists the 10 most recently created discussions
	// in the given category.
	DiscussionsInCategory(ctx context.Context, owner, repo, categoryID string) ([]Discussion, error)

	// DiscussionComments retrieves one page of a discussion's comments in
	// ascending creation order, 50 per page. An empty after cursor requests
	// the first (oldest) page.
	DiscussionComments(ctx context.Context, owner, repo string, number int, after string) (CursorPage[DiscussionComment], error)

	// AddDiscussionComment posts a comment to the discussion identified by
	// its opaque id. Success is signaled only by a nil error.
	AddDiscussionComment(ctx context.Context, discussionID, body string) error

	// DeleteDiscussionComment deletes a single comment by id.
	DeleteDiscussionComment(ctx context.Context, commentID string) error
}
