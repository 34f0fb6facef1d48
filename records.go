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

import "znkr.io/sidebyside/internal/config"

// Record is one row of a side-by-side view. Row i of a record sequence is at the same vertical
// position in both panes. Left and Right are line indices, an absent index is -1 and renders as a
// gap on that side.
//
//   - For Equal and Modify, both Left and Right are set.
//   - For Delete, Left is set and Right is -1.
//   - For Insert, Right is set and Left is -1.
type Record struct {
	Op          Op
	Left, Right int
}

// Build merges an edit script into a sequence of rows.
//
// A run of deletions that is directly followed by a run of insertions is paired line by line into
// Modify rows, the surplus of the longer run follows as Delete or Insert rows. An insertion run
// followed by a deletion run is left as is. Pairing is purely positional, lines that are unrelated
// apart from their position are paired as well.
//
// With [SplitChanges], every pair is emitted as a Delete row followed by an Insert row instead.
//
// The following option is supported: [sidebyside.SplitChanges]
func Build(edits []Edit, opts ...Option) []Record {
	cfg := config.FromOptions(opts, config.SplitChanges)
	if len(edits) == 0 {
		return nil
	}

	out := make([]Record, 0, len(edits))
	for i := 0; i < len(edits); {
		if edits[i].Op != Delete {
			out = append(out, Record(edits[i]))
			i++
			continue
		}

		// Find the delete run edits[i:j] and the insert run edits[j:k] that follows it.
		j := i
		for j < len(edits) && edits[j].Op == Delete {
			j++
		}
		k := j
		for k < len(edits) && edits[k].Op == Insert {
			k++
		}

		n := min(j-i, k-j)
		for p := range n {
			del, ins := edits[i+p], edits[j+p]
			if cfg.SplitChanges {
				out = append(out, Record(del), Record(ins))
			} else {
				out = append(out, Record{Op: Modify, Left: del.Left, Right: ins.Right})
			}
		}
		for _, e := range edits[i+n : j] {
			out = append(out, Record(e))
		}
		for _, e := range edits[j+n : k] {
			out = append(out, Record(e))
		}
		i = k
	}
	return out
}

// NextChange returns the first row of the next block of changes after row, or -1 if there is none.
// Use row = -1 to find the first change.
func NextChange(records []Record, row int) int {
	for i := max(row+1, 0); i < len(records); i++ {
		if startsChange(records, i) {
			return i
		}
	}
	return -1
}

// PrevChange returns the first row of the closest block of changes that starts before row, or -1
// if there is none.
func PrevChange(records []Record, row int) int {
	for i := min(row, len(records)) - 1; i >= 0; i-- {
		if startsChange(records, i) {
			return i
		}
	}
	return -1
}

func startsChange(records []Record, i int) bool {
	return records[i].Op != Equal && (i == 0 || records[i-1].Op == Equal)
}
