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
	"net/url"
	"strings"

	gogithub "github.com/google/go-github/v71/github"
	relayerrors "github.com/sirseerhq/review-relay/internal/errors"
	"github.com/sirseerhq/review-relay/internal/giterror"
)

// DefaultAPIEndpoint is the REST base URL for public GitHub.
const DefaultAPIEndpoint = "https://api.github.com"

// RESTClient implements the Client interface against GitHub's REST API.
// It fetches open pull requests and issue timelines page by page; pagination
// policy (when to stop, how to advance) lives with the callers via CollectAll.
type RESTClient struct {
	client    *gogithub.Client
	inspector giterror.Inspector
}

// NewRESTClient creates a REST client authenticated with the given token.
// An empty token is rejected immediately, before any request is issued:
// holding a *RESTClient is the guarantee that a credential is configured.
// endpoint overrides the API base URL for GitHub Enterprise; pass
// DefaultAPIEndpoint (or "") for public GitHub.
func NewRESTClient(token, endpoint string) (*RESTClient, error) {
	if token == "" {
		return nil, fmt.Errorf("must provide a valid GitHub personal access token: %w", relayerrors.ErrNoToken)
	}

	gh := gogithub.NewClient(newHTTPClient(token))
	if endpoint != "" && endpoint != DefaultAPIEndpoint {
		base, err := url.Parse(strings.TrimSuffix(endpoint, "/") + "/")
		if err != nil {
			return nil, fmt.Errorf("invalid API endpoint %q: %w", endpoint, err)
		}
		gh.BaseURL = base
	}

	return &RESTClient{
		client:    gh,
		inspector: giterror.NewInspector(),
	}, nil
}

// ListOpenPullRequests retrieves one page of open pull requests.
func (c *RESTClient) ListOpenPullRequests(ctx context.Context, owner, repo string, page int) ([]PullRequest, error) {
	opts := &gogithub.PullRequestListOptions{
		State: "open",
		ListOptions: gogithub.ListOptions{
			Page:    page,
			PerPage: restPageSize,
		},
	}

	prs, _, err := c.client.PullRequests.List(ctx, owner, repo, opts)
	if err != nil {
		return nil, c.mapError(err, owner, repo)
	}

	out := make([]PullRequest, 0, len(prs))
	for _, pr := range prs {
		assignees := make([]string, 0, len(pr.Assignees))
		for _, a := range pr.Assignees {
			assignees = append(assignees, a.GetLogin())
		}
		out = append(out, PullRequest{
			Number:    pr.GetNumber(),
			Title:     pr.GetTitle(),
			URL:       pr.GetHTMLURL(),
			Author:    pr.GetUser().GetLogin(),
			Assignees: assignees,
			CreatedAt: pr.GetCreatedAt().Time,
		})
	}
	return out, nil
}

// ListTimelineEvents retrieves one page of a pull request's issue timeline.
// Pull requests are issues to the timeline endpoint, so the PR number is
// used as the issue number.
func (c *RESTClient) ListTimelineEvents(ctx context.Context, owner, repo string, number, page int) ([]TimelineEvent, error) {
	opts := &gogithub.ListOptions{
		Page:    page,
		PerPage: restPageSize,
	}

	events, _, err := c.client.Issues.ListIssueTimeline(ctx, owner, repo, number, opts)
	if err != nil {
		return nil, c.mapError(err, owner, repo)
	}

	out := make([]TimelineEvent, 0, len(events))
	for _, ev := range events {
		out = append(out, TimelineEvent{
			Event:     ev.GetEvent(),
			Assignee:  ev.GetAssignee().GetLogin(),
			CreatedAt: ev.GetCreatedAt().Time,
		})
	}
	return out, nil
}

// mapError maps REST errors to our domain errors with actionable messages.
func (c *RESTClient) mapError(err error, owner, repo string) error {
	return classifyAPIError(c.inspector, err, owner, repo)
}
