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

import (
	"math"
)

type myers struct {
	// Inputs to compare.
	x, y []int

	// v-arrays for forwards and backwards iteration respectively. A v-array stores the furthest
	// reaching endpoint of a d-path in diagonal k in v[v0+k] where v0 is the offset that
	// translates k in [-d, d] to k0 = v0+k in [0, 2*d]. The endpoints only store the s-coordinate
	// since t = s - k.
	vf, vb []int
	v0     int

	// Maximum number of differences the search may find, < 0 for no limit. If the limit is
	// exceeded, overflow is set and the search stops.
	limit    int
	overflow bool

	// Mapping of s, t indices the location in the result vectors.
	xidx, yidx []int

	// Result vectors.
	rx, ry []bool
}

func (m *myers) init(x, y []int) (smin, smax, tmin, tmax int) {
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

	N, M := smax-smin, tmax-tmin
	diagonals := N + M
	vlen := 2*diagonals + 3    // +1 for the middle point and +2 for the borders
	buf := make([]int, 2*vlen) // allocate space for vf and vb with a single allocation

	m.x = x
	m.y = y
	m.vf = buf[:vlen]
	m.vb = buf[vlen:]
	m.v0 = diagonals + 1 // +1 for the middle point

	if m.xidx == nil || m.yidx == nil {
		idx := make([]int, max(len(x), len(y)))
		for i := range idx {
			idx[i] = i
		}
		m.xidx = idx[:len(x)]
		m.yidx = idx[:len(y)]
	}

	if m.rx == nil || m.ry == nil {
		// For the result we add a simple border of one element that makes it easier to iterate over
		// the results.
		r := make([]bool, (len(x) + len(y) + 2))
		m.rx = r[: len(x)+1 : len(x)+1]
		m.ry = r[len(x)+1:]
	}
	return
}

// compare finds an optimal d-path from (smin, tmin) to (smax, tmax).
func (m *myers) compare(smin, smax, tmin, tmax int) {
	if m.overflow {
		return
	}

	x, y := m.x, m.y

	// split requires that there's neither a common prefix nor a common suffix.
	for smin < smax && tmin < tmax && x[smin] == y[tmin] {
		smin++
		tmin++
	}
	for smax > smin && tmax > tmin && x[smax-1] == y[tmax-1] {
		smax--
		tmax--
	}

	if smin == smax {
		// s is empty, therefore everything in tmin to tmax is an insertion.
		for t := tmin; t < tmax; t++ {
			m.ry[m.yidx[t]] = true
		}
	} else if tmin == tmax {
		// t is empty, therefore everything in smin to smax is a deletion.
		for s := smin; s < smax; s++ {
			m.rx[m.xidx[s]] = true
		}
	} else {
		// Use split to divide the input into three pieces:
		//
		//   (1) A, possibly empty, rect (smin, tmin) to (s0, t0)
		//   (2) A, possibly empty, sequence of diagonals (matches) (s0, t0) to (s1, t1)
		//   (3) A, possibly empty, rect (s1, t1) to (smax, tmax)
		s0, s1, t0, t1 := m.split(smin, smax, tmin, tmax)
		if m.overflow {
			return
		}

		// Recurse into (1) and (3).
		m.compare(smin, s0, tmin, t0)
		m.compare(s1, smax, t1, tmax)
	}
}

// split finds the endpoints of a, potentially empty, sequence of diagonals in the middle of an
// optimal path from (smin, tmin) to (smax, tmax).
//
// Important: x[smin:smax] and y[tmin:tmax] must not have a common prefix or a common suffix and
// they may not both be empty.
func (m *myers) split(smin, smax, tmin, tmax int) (s0, s1, t0, t1 int) {
	N, M := smax-smin, tmax-tmin
	x, y := m.x, m.y
	vf, vb := m.vf, m.vb
	v0 := m.v0

	// Bounds for k. Since t = s - k, we can determine the min and max for k using: k = s - t.
	kmin, kmax := smin-tmax, smax-tmin

	// We number all diagonals with consistent k's by centering the forwards and backwards searches
	// around different midpoints. This way, we don't need to convert k's when checking for overlap.
	fmid, bmid := smin-tmin, smax-tmax
	fmin, fmax := fmid, fmid
	bmin, bmax := bmid, bmid

	// The optimal diff length is going to be odd or even as (N-M) is odd or even. We're going to
	// use this below to decide on when to check for path overlaps.
	odd := (N-M)%2 != 0

	// Since there's no common prefix or suffix, there is no 0-path and we can start at d=1 after
	// setting up the trivial result of the d=0 iteration.
	vf[v0+fmid] = smin
	vb[v0+bmid] = smax

	// There's always a d-path with d = ⌈N + M⌉/2, the loop terminates without a condition.
	for d := 1; ; d++ {
		// Forwards iteration.
		//
		// Instead of searching k = [fmid-d, fmid+d], we put tighter bounds on k so that we never
		// leave the edit grid. We're searching in steps of 2, this requires changing the min and
		// max for k when outside the boundary. The border elements of the v-array are initialized
		// such that the k-loop below handles them like any other value.
		if fmin > kmin {
			fmin--
			vf[v0+fmin-1] = math.MinInt
		} else {
			fmin++
		}
		if fmax < kmax {
			fmax++
			vf[v0+fmax+1] = math.MinInt
		} else {
			fmax--
		}
		for k := fmin; k <= fmax; k += 2 {
			k0 := k + v0 // k as an index into vf

			// There are two possible furthest reaching d-paths: One on diagonal k-1, followed by
			// a horizontal edge and one on diagonal k+1, followed by a vertical edge.
			var s int
			if vf[k0-1] < vf[k0+1] {
				// Vertical edge, implied by t = s - k.
				s = vf[k0+1]
			} else {
				// Horizontal edge. Handling the v[k-1] == v[k+1] case here prioritizes deletions
				// over insertions.
				s = vf[k0-1] + 1
			}
			t := s - k

			// Then follow the diagonals as long as possible.
			s0, t0 := s, t
			for s < smax && t < tmax && x[s] == y[t] {
				s++
				t++
			}

			vf[k0] = s

			// Check for an overlap with a backwards d-path. We're done when we found it.
			if odd && bmin <= k && k <= bmax && s >= vb[k0] {
				return s0, s, t0, t
			}
		}

		// Backwards iteration.
		//
		// This is mostly analogous to the forward iteration.
		if bmin > kmin {
			bmin--
			vb[v0+bmin-1] = math.MaxInt
		} else {
			bmin++
		}
		if bmax < kmax {
			bmax++
			vb[v0+bmax+1] = math.MaxInt
		} else {
			bmax--
		}
		for k := bmin; k <= bmax; k += 2 {
			k0 := k + v0
			var s int
			if vb[k0-1] < vb[k0+1] {
				s = vb[k0-1]
			} else {
				s = vb[k0+1] - 1
			}
			t := s - k

			s0, t0 := s, t
			for s > smin && t > tmin && x[s-1] == y[t-1] {
				s--
				t--
			}

			vb[k0] = s

			if !odd && fmin <= k && k <= fmax && s <= vf[v0+k] {
				return s, s0, t, t0
			}
		}

		// No overlap after d forwards and d backwards steps means there are at least 2d+1
		// differences.
		if m.limit >= 0 && 2*d >= m.limit {
			m.overflow = true
			return smin, smin, tmin, tmin
		}
	}
}
