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

package impl

import "math"

// maxNormalizeCells bounds the table built by normalize. At one bit per cell, the table is at most
// 16 MiB.
const maxNormalizeCells = 1 << 27

// normalize replaces the minimal diff in rx and ry by the one found by walking x and y from the
// start and taking, at every point,
//
//   - a match if the elements are equal,
//   - otherwise a deletion if a minimal diff is still possible after it,
//   - otherwise an insertion.
//
// The search only prefers deletions within a block of changes. Across a match, it can pick an
// insertion first: For x = "ab" and y = "ba" it finds I M D where normalize picks D M I.
//
// All minimal diffs have the same number of deletions del and insertions ins, their paths never
// leave the diagonals k = s - t with -ins <= k <= del. normalize computes the remaining cost for
// every point on these diagonals, starting at the end, and remembers where a deletion keeps the
// cost minimal. This takes O(N·D) time and O(N·D) bits. Larger inputs than maxNormalizeCells
// permits are left as they are.
func normalize[T comparable](x, y []T, rx, ry []bool) {
	// Matching equal elements is always optimal, every walk starts with the common prefix.
	p := 0
	for p < len(x) && p < len(y) && x[p] == y[p] {
		p++
	}
	x, y = x[p:], y[p:]
	n, m := len(x), len(y)
	rx, ry = rx[p:p+n], ry[p:p+m]

	del, ins := 0, 0
	for _, r := range rx {
		if r {
			del++
		}
	}
	for _, r := range ry {
		if r {
			ins++
		}
	}
	w := del + ins + 1 // number of diagonals
	if w == 1 || int64(n+1)*int64(w) > maxNormalizeCells {
		return
	}

	// Point (s, t) is stored in column c = t - s + del of row s.
	const inf = math.MaxInt32 / 2
	opt := make([]uint64, ((n+1)*w+63)/64) // deletion is optimal at (s, t)
	next, cur := make([]int32, w), make([]int32, w)
	for s := n; s >= 0; s-- {
		for c := w - 1; c >= 0; c-- {
			t := s - del + c
			if t < 0 || t > m {
				cur[c] = inf
				continue
			}
			if s == n && t == m {
				cur[c] = 0
				continue
			}
			v := int32(inf)
			if s < n && t < m && x[s] == y[t] {
				v = next[c]
			}
			if s < n && c > 0 {
				v = min(v, next[c-1]+1)
			}
			if t < m && c+1 < w {
				v = min(v, cur[c+1]+1)
			}
			cur[c] = v
			if s < n && c > 0 && v < inf && next[c-1]+1 == v {
				i := s*w + c
				opt[i/64] |= 1 << (i % 64)
			}
		}
		next, cur = cur, next
	}

	clear(rx)
	clear(ry)
	for s, t := 0, 0; s < n || t < m; {
		i := s*w + t - s + del
		switch {
		case s < n && t < m && x[s] == y[t]:
			s++
			t++
		case s < n && opt[i/64]&(1<<(i%64)) != 0:
			rx[s] = true
			s++
		case t < m:
			ry[t] = true
			t++
		default:
			panic("never reached")
		}
	}
}
