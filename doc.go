// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sidebyside compares two text files line by line and provides the model for showing them
// next to each other in two synchronized panes.
//
// The building blocks are:
//
//   - [Split] splits a text buffer into [Lines] without copying it.
//   - [Align] computes a minimal edit script between two line sequences.
//   - [Build] merges an edit script into [Record]s, the rows of a side-by-side view.
//   - A [Session] ties these together for two documents and can be reloaded.
//   - A [Controller] keeps the scroll offsets of both panes of a view in sync.
//
// Performance: Align runs in O(ND) time, where N is the total number of lines and D is the number
// of differences. Memory is O(N) plus O(ND) bits, the latter capped at 16 MiB. Use [MaxCost] to
// bound the runtime for very different inputs.
//
// Note: For rendering a session to a terminal, please see [znkr.io/sidebyside/textview].
//
// [znkr.io/sidebyside/textview]: https://pkg.go.dev/znkr.io/sidebyside/textview
package sidebyside
