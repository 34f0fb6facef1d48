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

// Package rvecs works with result vectors, the representation of a diff between x and y used
// inside this module. rx[s] is true if x[s] is deleted and ry[t] is true if y[t] is inserted, all
// other elements are matched in order. Both vectors have a trailing false sentinel, this way a
// walk over both never needs a bounds check before looking at the next element.
//
// [Walk] turns the vectors into a sequence of steps, the order in which edits are reported.
package rvecs

import "iter"

// Make allocates zeroed result vectors for x and y, including the sentinels. Both share a single
// allocation.
func Make[T any](x, y []T) (rx, ry []bool) {
	r := make([]bool, len(x)+1+len(y)+1)
	return r[: len(x)+1 : len(x)+1], r[len(x)+1:]
}

// Kind is the kind of a step.
type Kind int

const (
	Match Kind = iota
	Delete
	Insert
)

// Step is a single step through the result vectors. S is the index into x and T the index into y,
// for deletions T is the position in y where the deletion happens and for insertions S is the
// position in x.
type Step struct {
	Kind Kind
	S, T int
}

// Walk iterates over the result vectors in edit order. Inside of every block of changes all
// deletions are reported before all insertions.
func Walk(rx, ry []bool) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		n, m := len(rx)-1, len(ry)-1
		for s, t := 0, 0; s < n || t < m; {
			for s < n && rx[s] {
				if !yield(Step{Delete, s, t}) {
					return
				}
				s++
			}
			for t < m && ry[t] {
				if !yield(Step{Insert, s, t}) {
					return
				}
				t++
			}
			for s < n && t < m && !rx[s] && !ry[t] {
				if !yield(Step{Match, s, t}) {
					return
				}
				s++
				t++
			}
		}
	}
}

// Count returns the number of steps Walk is going to yield.
func Count(rx, ry []bool) int {
	n, m := len(rx)-1, len(ry)-1
	nsteps := 0
	for s, t := 0, 0; s < n || t < m; {
		for s < n && rx[s] {
			nsteps++
			s++
		}
		for t < m && ry[t] {
			nsteps++
			t++
		}
		for s < n && t < m && !rx[s] && !ry[t] {
			nsteps++
			s++
			t++
		}
	}
	return nsteps
}
