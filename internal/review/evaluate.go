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

import "time"

// Evaluate computes which reviewer/PR pairs have waited at least maxWait as
// of now. The result maps reviewer login to the pull requests they are
// overdue on, in discovery order.
//
// A pull request's author is never counted as a reviewer of their own PR.
// Elapsed time exactly equal to maxWait counts as overdue. Reviewers with a
// zero AssignedAt are skipped: a missing "assigned" event means the wait
// cannot be measured, so no notification is produced for that pair. (An
// assignment whose event fell outside the fetched timeline window is
// therefore never reported.)
func Evaluate(prs []PullRequest, maxWait time.Duration, now time.Time) map[string][]PullRequest {
	overdue := make(map[string][]PullRequest)
	for _, pr := range prs {
		for _, a := range pr.Assignments {
			if a.Reviewer == pr.Author || a.AssignedAt.IsZero() {
				continue
			}
			if now.Sub(a.AssignedAt) >= maxWait {
				overdue[a.Reviewer] = append(overdue[a.Reviewer], pr)
			}
		}
	}
	return overdue
}
