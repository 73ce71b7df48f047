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

// Package github provides clients for the two GitHub API surfaces this tool
// consumes: the REST API for pull request listings and issue timelines, and
// the GraphQL API for Discussions (category lookup, discussion lookup,
// comment listing and the add/delete comment mutations).
//
// The package includes:
//   - Client and DiscussionClient interfaces for the two surfaces
//   - A REST implementation built on google/go-github
//   - A GraphQL implementation built on shurcooL/graphql
//   - Generic pagination helpers (CollectAll for page/per_page collections,
//     CollectCursor for cursor-paginated GraphQL collections)
//   - Mock clients for testing
//
// Both implementations share a transport that sets the bearer token, paces
// requests, caps response sizes and enforces a fixed 15 second timeout.
// Failures are never retried; every error aborts the enclosing operation.
//
// Basic usage:
//
//	client, err := github.NewRESTClient(token, github.DefaultAPIEndpoint)
//	if err != nil {
//	    // Handle missing token
//	}
//	prs, err := github.CollectAll(ctx, func(ctx context.Context, page int) ([]github.PullRequest, error) {
//	    return client.ListOpenPullRequests(ctx, "golang", "go", page)
//	})
package github
