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
	"time"

	"github.com/shurcooL/graphql"
	relayerrors "github.com/sirseerhq/review-relay/internal/errors"
	"github.com/sirseerhq/review-relay/internal/giterror"
)

// DefaultGraphQLEndpoint is the GraphQL URL for public GitHub.
const DefaultGraphQLEndpoint = "https://api.github.com/graphql"

// GraphQLClient implements the DiscussionClient interface using GitHub's
// GraphQL API. Discussions have no REST surface, so category lookup,
// discussion lookup, comment listing and the comment mutations all go
// through GraphQL.
type GraphQLClient struct {
	client    *graphql.Client
	inspector giterror.Inspector
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided
// token and endpoint. As with NewRESTClient, an empty token is rejected
// before any request is issued. Pass DefaultGraphQLEndpoint (or "") for
// public GitHub.
func NewGraphQLClient(token, endpoint string) (*GraphQLClient, error) {
	if token == "" {
		return nil, fmt.Errorf("must provide a valid GitHub personal access token: %w", relayerrors.ErrNoToken)
	}
	if endpoint == "" {
		endpoint = DefaultGraphQLEndpoint
	}

	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, newHTTPClient(token)),
		inspector: giterror.NewInspector(),
	}, nil
}

// DiscussionCategories lists the repository's discussion categories.
func (c *GraphQLClient) DiscussionCategories(ctx context.Context, owner, repo string) ([]DiscussionCategory, error) {
	var query struct {
		Repository struct {
			DiscussionCategories struct {
				Nodes []struct {
					ID   graphql.String `graphql:"id"`
					Name graphql.String
				}
			} `graphql:"discussionCategories(first: $first)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	variables := map[string]interface{}{
		"owner": graphql.String(owner),
		"repo":  graphql.String(repo),
		"first": graphql.Int(categoryLookupWindow),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err, owner, repo)
	}

	categories := make([]DiscussionCategory, 0, len(query.Repository.DiscussionCategories.Nodes))
	for _, node := range query.Repository.DiscussionCategories.Nodes {
		categories = append(categories, DiscussionCategory{
			ID:   string(node.ID),
			Name: string(node.Name),
		})
	}
	return categories, nil
}

// DiscussionsInCategory lists the 10 most recently created discussions in
// the given category.
func (c *GraphQLClient) DiscussionsInCategory(ctx context.Context, owner, repo, categoryID string) ([]Discussion, error) {
	var query struct {
		Repository struct {
			Discussions struct {
				Nodes []struct {
					ID     graphql.String `graphql:"id"`
					Title  graphql.String
					Number graphql.Int
				}
			} `graphql:"discussions(categoryId: $categoryId, last: $last)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	variables := map[string]interface{}{
		"owner":      graphql.String(owner),
		"repo":       graphql.String(repo),
		"categoryId": graphql.ID(categoryID),
		"last":       graphql.Int(discussionLookupWindow),
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return nil, c.mapError(err, owner, repo)
	}

	discussions := make([]Discussion, 0, len(query.Repository.Discussions.Nodes))
	for _, node := range query.Repository.Discussions.Nodes {
		discussions = append(discussions, Discussion{
			ID:     string(node.ID),
			Title:  string(node.Title),
			Number: int(node.Number),
		})
	}
	return discussions, nil
}

// DiscussionComments retrieves one page of a discussion's comments,
// oldest first, 50 per page.
func (c *GraphQLClient) DiscussionComments(ctx context.Context, owner, repo string, number int, after string) (CursorPage[DiscussionComment], error) {
	var query struct {
		Repository struct {
			Discussion struct {
				Comments struct {
					PageInfo struct {
						HasNextPage graphql.Boolean
						EndCursor   graphql.String
					}
					Nodes []struct {
						ID        graphql.String `graphql:"id"`
						CreatedAt time.Time
					}
				} `graphql:"comments(first: $first, after: $after)"`
			} `graphql:"discussion(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $repo)"`
	}

	variables := map[string]interface{}{
		"owner":  graphql.String(owner),
		"repo":   graphql.String(repo),
		"number": graphql.Int(int32(number)), // #nosec G115 - discussion numbers fit int32
		"first":  graphql.Int(commentPageSize),
		"after":  (*graphql.String)(nil),
	}
	if after != "" {
		variables["after"] = graphql.String(after)
	}

	if err := c.client.Query(ctx, &query, variables); err != nil {
		return CursorPage[DiscussionComment]{}, c.mapError(err, owner, repo)
	}

	comments := query.Repository.Discussion.Comments
	page := CursorPage[DiscussionComment]{
		Items:       make([]DiscussionComment, 0, len(comments.Nodes)),
		EndCursor:   string(comments.PageInfo.EndCursor),
		HasNextPage: bool(comments.PageInfo.HasNextPage),
	}
	for _, node := range comments.Nodes {
		page.Items = append(page.Items, DiscussionComment{
			ID:        string(node.ID),
			CreatedAt: node.CreatedAt,
		})
	}
	return page, nil
}

// AddDiscussionComment posts a comment with the given body to the
// discussion identified by discussionID. There is no confirmation of
// content; success is the absence of an error.
func (c *GraphQLClient) AddDiscussionComment(ctx context.Context, discussionID, body string) error {
	var mutation struct {
		AddDiscussionComment struct {
			Comment struct {
				ID graphql.String `graphql:"id"`
			}
		} `graphql:"addDiscussionComment(input: {discussionId: $discussionId, body: $body})"`
	}

	variables := map[string]interface{}{
		"discussionId": graphql.ID(discussionID),
		"body":         graphql.String(body),
	}

	if err := c.client.Mutate(ctx, &mutation, variables); err != nil {
		return fmt.Errorf("failed to post discussion comment: %w", c.mapError(err, "", ""))
	}
	return nil
}

// DeleteDiscussionComment deletes a single discussion comment by id.
func (c *GraphQLClient) DeleteDiscussionComment(ctx context.Context, commentID string) error {
	var mutation struct {
		DeleteDiscussionComment struct {
			ClientMutationID graphql.String `graphql:"clientMutationId"`
		} `graphql:"deleteDiscussionComment(input: {id: $id})"`
	}

	variables := map[string]interface{}{
		"id": graphql.ID(commentID),
	}

	if err := c.client.Mutate(ctx, &mutation, variables); err != nil {
		return fmt.Errorf("failed to delete discussion comment %s: %w", commentID, c.mapError(err, "", ""))
	}
	return nil
}

// mapError maps GraphQL errors to our domain errors with actionable messages.
func (c *GraphQLClient) mapError(err error, owner, repo string) error {
	return classifyAPIError(c.inspector, err, owner, repo)
}

// classifyAPIError translates a raw API error into the sentinel taxonomy.
// Shared by the REST and GraphQL clients.
func classifyAPIError(inspector giterror.Inspector, err error, owner, repo string) error {
	if err == nil {
		return nil
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded. Please wait before retrying: %w", relayerrors.ErrRateLimit)
	}

	if inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed. Please provide a valid token via --token flag or GITHUB_TOKEN environment variable: %w", relayerrors.ErrInvalidToken)
	}

	if inspector.IsNotFoundError(err) {
		if owner != "" || repo != "" {
			return fmt.Errorf("repository '%s/%s' not found. Please check the repository name and your access permissions: %w", owner, repo, relayerrors.ErrRepoNotFound)
		}
		return fmt.Errorf("requested resource not found: %w", err)
	}

	if inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to GitHub API. Please check your internet connection and try again: %w", relayerrors.ErrNetworkFailure)
	}

	return err
}
