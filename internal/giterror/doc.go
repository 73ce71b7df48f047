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

// Package giterror classifies errors returned by the GitHub REST and GraphQL
// APIs into the categories the rest of the application cares about:
// authentication failures, missing resources, rate limiting, and network
// connectivity problems.
//
// GitHub surfaces most failures as free-form messages rather than typed
// errors, so the default Inspector matches on message content. The
// ErrorChainInspector decorator additionally honors typed errors that
// implement the corresponding Is*Error predicates anywhere in the chain.
package giterror
