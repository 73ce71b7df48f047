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

// Package github provides types and interfaces for interacting with the GitHub API.
package github

import "time"

// PullRequest is the raw pull request record as fetched from the REST API,
// before any timeline reconciliation. Only the fields the review pipeline
// reads are carried; everything else stays on the wire.
type PullRequest struct {
	Number    int       `json:"number"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	Author    string    `json:"author"`
	Assignees []string  `json:"assignees"`
	CreatedAt time.Time `json:"created_at"`
}

// TimelineEvent is a single recorded state change on a pull request,
// as returned by the issue timeline endpoint. For "assigned" events the
// Assignee field names the reviewer the event attached to the PR.
type TimelineEvent struct {
	Event     string
	Assignee  string
	CreatedAt time.Time
}

// DiscussionCategory is a named grouping of GitHub Discussions within a repository.
type DiscussionCategory struct {
	ID   string
	Name string
}

// Discussion identifies a single GitHub Discussion within a category.
type Discussion struct {
	ID     string
	Title  string
	Number int
}

// DiscussionRef is the resolved (id, number) pair for a discussion.
// The ID drives comment mutations; the Number drives comment queries.
// It is resolved once per run and never cached across runs.
type DiscussionRef struct {
	ID     string
	Number int
}

// DiscussionComment is an ephemeral view of a discussion comment,
// carrying just enough to filter by age and delete by id.
type DiscussionComment struct {
	ID        string
	CreatedAt time.Time
}

// Page size constants. REST collections page at GitHub's maximum; the
// GraphQL lookup windows are deliberately small fixed sizes — discussion
// categories and recent discussions per category are short lists, and the
// comment sweep assumes runs frequent enough that 50 comments per page
// suffice (the cursor loop still drains further pages when they exist).
const (
	restPageSize           = 100
	categoryLookupWindow   = 10
	discussionLookupWindow = 10
	commentPageSize        = 50
)
