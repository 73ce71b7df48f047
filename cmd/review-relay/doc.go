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

// Command review-relay notifies overdue pull-request reviewers via GitHub
// Discussions and maintains a rolling window of discussion comments.
//
// Usage:
//
//	review-relay notify <org>/<repo> [--max-wait-hours N] [--category C --discussion T]
//	review-relay prune-comments <org>/<repo> [--retention-days N]
//	review-relay post-comment <org>/<repo> --message "..."
//
// Exit codes:
//
//	0 - Success
//	1 - General error
//	2 - Authentication, authorization, or lookup error
//	3 - Network error
//
// Each run recomputes from live API data: no state is cached or persisted
// between invocations, and every network call is sequential with a fixed
// 15 second timeout and no retries.
package main
