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
	"time"

	"github.com/sirseerhq/review-relay/internal/github"
)

// ReviewerAssignment pairs a reviewer with the instant they were attached
// to a pull request. AssignedAt is the creation time of the most recent
// "assigned" timeline event for that reviewer; it is the zero time when no
// such event was found, in which case the reviewer is not evaluable.
type ReviewerAssignment struct {
	Reviewer   string    `json:"reviewer"`
	AssignedAt time.Time `json:"assigned_at"`
}

// PullRequest is an open pull request with reconciled reviewer assignments.
// Immutable once constructed; built fresh each run and discarded at the end.
type PullRequest struct {
	Number      int                  `json:"number"`
	Title       string               `json:"title"`
	URL         string               `json:"url"`
	Author      string               `json:"author"`
	Assignments []ReviewerAssignment `json:"assignments"`
}

// newPullRequest builds a reconciled PullRequest from a raw API record and
// the per-reviewer assignment times recovered from its timeline. Assignees
// without a recovered timestamp keep a zero AssignedAt.
func newPullRequest(pr github.PullRequest, assignedAt map[string]time.Time) PullRequest {
	assignments := make([]ReviewerAssignment, 0, len(pr.Assignees))
	for _, login := range pr.Assignees {
		assignments = append(assignments, ReviewerAssignment{
			Reviewer:   login,
			AssignedAt: assignedAt[login],
		})
	}
	return PullRequest{
		Number:      pr.Number,
		Title:       pr.Title,
		URL:         pr.URL,
		Author:      pr.Author,
		Assignments: assignments,
	}
}
