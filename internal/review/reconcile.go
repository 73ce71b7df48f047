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

// eventAssigned is the timeline event kind that attaches a reviewer to a PR.
const eventAssigned = "assigned"

// assignmentTimes folds timeline events in arrival order into a
// last-write-wins map from reviewer login to assignment time. A reviewer
// assigned, unassigned and reassigned ends up with the timestamp of the
// final "assigned" event, so waiting time is measured from the latest
// assignment rather than the first.
func assignmentTimes(events []github.TimelineEvent) map[string]time.Time {
	times := make(map[string]time.Time)
	for _, ev := range events {
		if ev.Event != eventAssigned || ev.Assignee == "" {
			continue
		}
		times[ev.Assignee] = ev.CreatedAt
	}
	return times
}
