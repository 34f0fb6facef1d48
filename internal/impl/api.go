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

// Package impl contains the alignment algorithm used by this module.
//
// The algorithm is Myers' algorithm in its linear space variant (section 4.2 of the paper). In
// contrast to most diff implementations, no heuristics are applied that trade optimality for
// speed. The result is always a minimal diff. To bound the runtime for pathological inputs, the
// search can instead be limited by a maximum cost, in which case Diff fails.
//
// Without a limit, the runtime is O(ND) where N is the sum of the length of both inputs and D is
// the number of differences. The search needs O(N) memory, normalizing the result O(ND) bits up to
// a fixed bound.
//
// # Myers Algorithm
//
// The algorithm is a graph search on the graph modelling all possible edits that transform x to y.
// For simplicity, let's say that T is the []byte representation of string and the inputs are x =
// "ABCABBA" and y = "CBABAC". Then we can represent all possible edits from x to y with the graph:
//
//	(0,0)   A   B   C   A   B   B   A
//	    ┌───┬───┬───┬───┬───┬───┬───┐ 0
//	    │   │   │ ╲ │   │   │   │   │
//	 C  ├───┼───┼───┼───┼───┼───┼───┤ 1
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 2
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 3
//	    │   │ ╲ │   │   │ ╲ │ ╲ │   │
//	 B  ├───┼───┼───┼───┼───┼───┼───┤ 4
//	    │ ╲ │   │   │ ╲ │   │   │ ╲ │
//	 A  ├───┼───┼───┼───┼───┼───┼───┤ 5
//	    │   │   │ ╲ │   │   │   │   │
//	 C  └───┴───┴───┴───┴───┴───┴───┘
//	    0   1   2   3   4   5   6     (7,6)
//
// Every edge represents an edit. A step to the right represents a deletion of an element and a
// step down represents an insertion. When both elements are identical, we also have diagonal edges
// representing a match. An optimal diff is a minimum-cost path from the top left to the bottom
// right where horizontal and vertical edges have a cost of 1 and diagonal edges have a cost of 0.
//
// A D-path is a path with exactly D non-diagonal edges. A D-path is furthest reaching in diagonal k
// if its end point has the greatest s-coordinate of all D-paths ending on diagonal k. A furthest
// reaching D-path on diagonal k is a furthest reaching (D-1)-path on diagonal k-1 or k+1 followed
// by a horizontal or vertical edge and then by the longest possible sequence of diagonals. There
// is a D-path from (0,0) to (N,M) if and only if there is a ⌈D/2⌉-path from (0,0) and a
// ⌊D/2⌋-path to (N,M) that overlap on a diagonal. This lets us search from both ends at once and
// split the problem in two at the overlap.
//
// Whenever a horizontal and a vertical edge reach equally far, the horizontal edge (a deletion) is
// preferred. This doesn't make the search prefer deletions across matches, though. Many inputs
// have several minimal diffs and the search picks one depending on where the paths from both ends
// meet. Afterwards, the result is therefore normalized to the minimal diff that takes a deletion
// whenever that is still optimal, walking from the start. This makes the result a pure function of
// the input that doesn't depend on the search, even when elements are repeated.
//
// ## References:
//
// Myers, E.W. An O(ND) difference algorithm and its variations. Algorithmica 1, 251-266 (1986).
// https://doi.org/10.1007/BF01840446
package impl

import (
	"znkr.io/sidebyside/internal/rvecs"
)

// Diff compares the contents of x and y and returns the changes necessary to convert from one to
// the other as result vectors.
//
// The result is always minimal. Among all minimal diffs, Diff returns the one that, walking from
// the start, deletes whenever a deletion is still optimal (see normalize). If maxCost > 0 and a
// minimal diff requires more than maxCost deletions and insertions, ok is false and the content of
// the result vectors is unspecified.
func Diff[T comparable](x, y []T, maxCost int) (rx, ry []bool, ok bool) {
	rx, ry = rvecs.Make(x, y)
	if !search(x, y, rx, ry, maxCost) {
		return rx, ry, false
	}
	normalize(x, y, rx, ry)
	return rx, ry, true
}

// search finds a minimal diff using Myers' algorithm. It reports false if the diff is more
// expensive than maxCost.
func search[T comparable](x, y []T, rx, ry []bool, maxCost int) bool {
	smin, smax, tmin, tmax := findChangeBounds(x, y)
	if handleTrivialBounds(rx, ry, smin, smax, tmin, tmax) {
		return withinBudget(rx, ry, maxCost)
	}

	// Preprocess x and y to reduce the problem size and to work with integer IDs instead of Ts.
	x0, y0, xidx, yidx := preprocess(rx, ry, smin, smax, tmin, tmax, x, y)

	// Elements only in x or y are always changes, the search only has what's left of the budget.
	limit := -1
	if maxCost > 0 {
		limit = maxCost - cost(rx, ry)
		if limit < 0 {
			return false
		}
	}

	var m myers
	m.xidx, m.yidx = xidx, yidx
	m.rx, m.ry = rx, ry
	m.limit = limit
	smin0, smax0, tmin0, tmax0 := m.init(x0, y0)
	m.compare(smin0, smax0, tmin0, tmax0)
	if m.overflow {
		return false
	}
	return withinBudget(rx, ry, maxCost)
}

// findChangeBounds returns the upper and lower bounds for the changed portion of the inputs.
func findChangeBounds[T comparable](x, y []T) (smin, smax, tmin, tmax int) {
	smin, tmin = 0, 0
	smax, tmax = len(x), len(y)

	// Strip common prefix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}

	// Strip common suffix.
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	return
}

// handleTrivialBounds handles trivial bounds. It returns true if the bounds are trivial.
func handleTrivialBounds(rx, ry []bool, smin, smax, tmin, tmax int) bool {
	switch {
	case smin != smax && tmin == tmax:
		for s := smin; s < smax; s++ {
			rx[s] = true
		}
		return true
	case smin == smax && tmin != tmax:
		for t := tmin; t < tmax; t++ {
			ry[t] = true
		}
		return true
	case smin == smax && tmin == tmax:
		return true
	default:
		return false
	}
}

// preprocess significantly reduces the problem size.
//
// It assigns a unique ID to every element in x[smin:smax] and uses the IDs to drop all elements
// that only appear in x or only in y. These are always deletions and insertions respectively,
// dropping them doesn't change the length of the longest common subsequence. In practice, large
// diffs have many lines unique to x or y and this dramatically reduces the runtime.
//
// The results are the following slices:
//   - x0:   x[smin:smax] as IDs except for elements that appear only in x
//   - y0:   y[tmin:tmax] as IDs except for elements that appear only in y
//   - xidx: A mapping from x0 to x: x0[s] corresponds to x[xidx[s]]
//   - yidx: A mapping from y0 to y: y0[t] corresponds to y[yidx[t]]
func preprocess[T comparable](rx, ry []bool, smin, smax, tmin, tmax int, x, y []T) (x0, y0, xidx, yidx []int) {
	idx := make(map[T]int, smax-smin) // temporary map from element to ID
	buf := make([]int, 2*(smax-smin)+2*(tmax-tmin))
	x0, buf = buf[:0:smax-smin], buf[smax-smin:]
	xidx, buf = buf[:0:smax-smin], buf[smax-smin:]
	y0, buf = buf[:0:tmax-tmin], buf[tmax-tmin:]
	yidx, buf = buf[:0:tmax-tmin], buf[tmax-tmin:]
	if len(buf) != 0 && cap(buf) != 0 {
		panic("something went wrong during buffer assignments")
	}

	// Step 1: Create an ID for every element in x[smin:smax].
	for _, e := range x[smin:smax] {
		id, ok := idx[e]
		if !ok {
			id = len(idx)
			idx[e] = id
		}
		x0 = append(x0, id)
	}

	// Step 2: Do the same for y, but drop everything that's not in x.
	iny := make([]bool, len(idx))
	for i, e := range y[tmin:tmax] {
		id, ok := idx[e]
		if !ok {
			ry[i+tmin] = true // always an insertion
			continue
		}
		iny[id] = true
		yidx = append(yidx, i+tmin)
		y0 = append(y0, id)
	}

	// Step 3: Filter out elements from x0 that are not in y.
	i := 0
	for j, id := range x0 {
		if !iny[id] {
			rx[j+smin] = true // always a deletion
			continue
		}
		xidx = append(xidx, j+smin)
		x0[i] = id
		i++
	}
	x0 = x0[:i]
	return
}

// cost returns the number of deletions and insertions in the result vectors.
func cost(rx, ry []bool) int {
	n := 0
	for _, r := range rx {
		if r {
			n++
		}
	}
	for _, r := range ry {
		if r {
			n++
		}
	}
	return n
}

func withinBudget(rx, ry []bool, maxCost int) bool {
	return maxCost <= 0 || cost(rx, ry) <= maxCost
}
