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

package sidebyside

import "math"

// Pane identifies one of the two panes of a side-by-side view.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Pane
type Pane int

const (
	Left Pane = iota
	Right
)

// Sibling returns the other pane.
func (p Pane) Sibling() Pane { return 1 - p }

// PaneState is the scroll state of a pane. Offset and Rows are measured in rows of the merged
// record sequence, fractional offsets describe a partially visible top row.
type PaneState struct {
	Offset  float64
	Rows    float64 // Viewport height, 0 if unknown
	Focused bool
}

// TopRow returns the index of the topmost, possibly partially visible, row.
func (s PaneState) TopRow() int { return int(math.Floor(s.Offset)) }
