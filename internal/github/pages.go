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

import "context"

// PageFunc fetches one page of a REST-style collection. Pages are 1-based.
type PageFunc[T any] func(ctx context.Context, page int) ([]T, error)

// CollectAll drains a paginated REST collection by requesting consecutive
// pages until the API returns an empty page. An empty page terminates the
// drain regardless of how many pages were already fetched. Any fetch error
// aborts the whole collection; no partial results are returned.
func CollectAll[T any](ctx context.Context, fetch PageFunc[T]) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		items, err := fetch(ctx, page)
		if err != nil {
			return nil, err
		}
		if len(items) == 0 {
			return all, nil
		}
		all = append(all, items...)
	}
}

// CursorPage is one page of a cursor-paginated GraphQL collection.
type CursorPage[T any] struct {
	Items       []T
	EndCursor   string
	HasNextPage bool
}

// CursorPageFunc fetches one page of a GraphQL collection. An empty after
// cursor requests the first page.
type CursorPageFunc[T any] func(ctx context.Context, after string) (CursorPage[T], error)

// CollectCursor drains a cursor-paginated GraphQL collection. Typical
// payloads here fit a single page, but the loop follows hasNextPage so
// collections larger than one page are still fully drained. As with
// CollectAll, an empty page or a fetch error ends the collection.
func CollectCursor[T any](ctx context.Context, fetch CursorPageFunc[T]) ([]T, error) {
	var (
		all   []T
		after string
	)
	for {
		page, err := fetch(ctx, after)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Items...)
		if !page.HasNextPage || len(page.Items) == 0 {
			return all, nil
		}
		after = page.EndCursor
	}
}
