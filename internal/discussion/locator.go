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

package discussion

import (
	"context"
	"fmt"

	relayerrors "github.com/sirseerhq/review-relay/internal/errors"
	"github.com/sirseerhq/review-relay/internal/github"
)

// Locate resolves a (category name, discussion title) pair to the
// discussion's id and number via two dependent lookups: first the category
// among the repository's first 10 discussion categories, then the
// discussion among the 10 most recently created in that category. Both
// matches are exact string equality. A match outside those fixed windows is
// reported as not found.
func (s *Service) Locate(ctx context.Context, owner, repo, category, title string) (github.DiscussionRef, error) {
	categories, err := s.client.DiscussionCategories(ctx, owner, repo)
	if err != nil {
		return github.DiscussionRef{}, fmt.Errorf("failed to list discussion categories: %w", err)
	}

	var categoryID string
	for _, c := range categories {
		if c.Name == category {
			categoryID = c.ID
			break
		}
	}
	if categoryID == "" {
		return github.DiscussionRef{}, fmt.Errorf("category %q is missing in GitHub Discussions: %w",
			category, relayerrors.ErrCategoryNotFound)
	}

	discussions, err := s.client.DiscussionsInCategory(ctx, owner, repo, categoryID)
	if err != nil {
		return github.DiscussionRef{}, fmt.Errorf("failed to list discussions in category %q: %w", category, err)
	}

	for _, d := range discussions {
		if d.Title == title {
			return github.DiscussionRef{ID: d.ID, Number: d.Number}, nil
		}
	}
	return github.DiscussionRef{}, fmt.Errorf("discussion with title %q not found, please create a discussion with that title: %w",
		title, relayerrors.ErrDiscussionNotFound)
}
