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

// Package discussion resolves GitHub Discussions and manages the rolling
// window of comments on them: locating a discussion by category and title,
// pruning comments older than the retention period, and posting new ones.
package discussion

import (
	"log/slog"
	"time"

	"github.com/sirseerhq/review-relay/internal/github"
)

// DefaultRetention is how long a comment stays before it is considered
// stale and eligible for deletion.
const DefaultRetention = 60 * 24 * time.Hour

// Service wraps a DiscussionClient with the locate/prune/post operations.
// Operations are independent and sequential; each resolves the discussion
// afresh (nothing is cached across runs).
type Service struct {
	client github.DiscussionClient
	log    *slog.Logger
	now    func() time.Time
}

// NewService creates a discussion service around the given client.
func NewService(client github.DiscussionClient, log *slog.Logger) *Service {
	return &Service{
		client: client,
		log:    log,
		now:    time.Now,
	}
}
