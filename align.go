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

import (
	"errors"
	"fmt"

	"znkr.io/sidebyside/internal/config"
	"znkr.io/sidebyside/internal/impl"
	"znkr.io/sidebyside/internal/rvecs"
)

// Op describes an edit operation.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Op
type Op int

const (
	Equal  Op = iota // The left and the right line are identical
	Delete           // A line on the left without counterpart on the right
	Insert           // A line on the right without counterpart on the left
	Modify           // A changed line, the left and right line are shown next to each other
)

// Edit describes a single edit of an edit script. Left and Right are line indices, an absent index
// is -1.
//
//   - For Equal, both Left and Right are set.
//   - For Delete, Left is set and Right is -1.
//   - For Insert, Right is set and Left is -1.
type Edit struct {
	Op          Op
	Left, Right int
}

// ErrAlignmentOverflow is returned if the minimal edit script exceeds the configured maximum cost.
var ErrAlignmentOverflow = errors.New("alignment overflow")

// Align compares two line sequences and returns the minimal edit script that transforms left into
// right. Two lines are equal if their content is byte-identical, line terminators are ignored.
//
// Among all minimal edit scripts, Align picks the one that, reading both sequences from the start,
// keeps equal lines and otherwise deletes a line whenever the script can still be minimal after
// the deletion. For "a b" and "b a" this is Delete a, Equal b, Insert a. The result is therefore
// fully determined by the inputs. Align only produces Equal, Delete, and Insert edits.
//
// For very large inputs with many changes, where this choice would need more than 16 MiB of
// memory, Align only guarantees that deletions come before insertions within each block of
// changes.
//
// If [MaxCost] is set and the minimal edit script needs more deletions and insertions, Align returns
// an error wrapping [ErrAlignmentOverflow].
//
// The following option is supported: [sidebyside.MaxCost]
func Align(left, right Lines, opts ...Option) ([]Edit, error) {
	cfg := config.FromOptions(opts, config.MaxCost)
	rx, ry, ok := impl.Diff(left.texts(), right.texts(), cfg.MaxCost)
	if !ok {
		return nil, fmt.Errorf("%w: more than %d changes between %d and %d lines", ErrAlignmentOverflow, cfg.MaxCost, left.Len(), right.Len())
	}
	return edits(rx, ry), nil
}

func edits(rx, ry []bool) []Edit {
	// Counting the steps is cheap and allows us to preallocate the return value.
	n := rvecs.Count(rx, ry)
	if n == 0 {
		return nil
	}
	out := make([]Edit, 0, n)
	for step := range rvecs.Walk(rx, ry) {
		switch step.Kind {
		case rvecs.Match:
			out = append(out, Edit{Op: Equal, Left: step.S, Right: step.T})
		case rvecs.Delete:
			out = append(out, Edit{Op: Delete, Left: step.S, Right: -1})
		case rvecs.Insert:
			out = append(out, Edit{Op: Insert, Left: -1, Right: step.T})
		default:
			panic("never reached")
		}
	}
	return out
}

// Cost returns the number of edits that are not Equal.
func Cost(edits []Edit) int {
	n := 0
	for _, e := range edits {
		if e.Op != Equal {
			n++
		}
	}
	return n
}
