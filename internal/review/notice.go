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
	"fmt"
	"sort"
	"strings"
	"time"
)

// Notice is one reviewer's overdue report, suitable for NDJSON output.
type Notice struct {
	Reviewer     string        `json:"reviewer"`
	PullRequests []PullRequest `json:"pull_requests"`
}

// Notices flattens an overdue map into a deterministic, reviewer-sorted
// slice. Per-reviewer PR order is preserved as discovered.
func Notices(overdue map[string][]PullRequest) []Notice {
	reviewers := make([]string, 0, len(overdue))
	for reviewer := range overdue {
		reviewers = append(reviewers, reviewer)
	}
	sort.Strings(reviewers)

	notices := make([]Notice, 0, len(reviewers))
	for _, reviewer := range reviewers {
		notices = append(notices, Notice{Reviewer: reviewer, PullRequests: overdue[reviewer]})
	}
	return notices
}

// FormatComment renders the overdue map as a Markdown discussion comment.
// Reviewers are listed alphabetically, each with the pull requests awaiting
// their review. Returns the empty string when nobody is overdue.
func FormatComment(overdue map[string][]PullRequest, maxWait time.Duration) string {
	notices := Notices(overdue)
	if len(notices) == 0 {
		return ""
	}

	var b strings.Builder
	fmt.Fprintf(&b, "The following reviewers have pull requests waiting on them for more than %d hours:\n",
		int(maxWait.Hours()))
	for _, n := range notices {
		fmt.Fprintf(&b, "\n@%s\n", n.Reviewer)
		for _, pr := range n.PullRequests {
			if pr.URL != "" {
				fmt.Fprintf(&b, "- [#%d](%s): %s\n", pr.Number, pr.URL, pr.Title)
			} else {
				fmt.Fprintf(&b, "- #%d: %s\n", pr.Number, pr.Title)
			}
		}
	}
	return b.String()
}
