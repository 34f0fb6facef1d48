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

package rvecs

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWalk(t *testing.T) {
	tests := []struct {
		name   string
		rx, ry []bool // without border
		want   []Step
	}{
		{
			name: "empty",
			want: nil,
		},
		{
			name: "all-match",
			rx:   []bool{false, false},
			ry:   []bool{false, false},
			want: []Step{{Match, 0, 0}, {Match, 1, 1}},
		},
		{
			name: "x-empty",
			ry:   []bool{true, true},
			want: []Step{{Insert, 0, 0}, {Insert, 0, 1}},
		},
		{
			name: "y-empty",
			rx:   []bool{true, true},
			want: []Step{{Delete, 0, 0}, {Delete, 1, 0}},
		},
		{
			// ABCABBA -> CBABAC
			name: "deletions-before-insertions",
			rx:   []bool{true, false, true, false, false, true, false},
			ry:   []bool{true, false, false, false, false, true},
			want: []Step{
				{Delete, 0, 0},
				{Insert, 1, 0},
				{Match, 1, 1},
				{Delete, 2, 2},
				{Match, 3, 2},
				{Match, 4, 3},
				{Delete, 5, 4},
				{Match, 6, 4},
				{Insert, 7, 5},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := make([]int, len(tt.rx)), make([]int, len(tt.ry))
			rx, ry := Make(x, y)
			copy(rx, tt.rx)
			copy(ry, tt.ry)

			got := slices.Collect(Walk(rx, ry))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Walk(...) result is different [-want,+got]:\n%s", diff)
			}
			if n := Count(rx, ry); n != len(tt.want) {
				t.Errorf("Count(...) = %v, want %v", n, len(tt.want))
			}
		})
	}
}

func TestWalkStopsEarly(t *testing.T) {
	rx, ry := Make(make([]int, 3), make([]int, 3))
	n := 0
	for range Walk(rx, ry) {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("Walk(...) yielded %v steps before break, want 2", n)
	}
}

func TestMake(t *testing.T) {
	rx, ry := Make([]string{"a", "b"}, []string{"c"})
	if diff := cmp.Diff([]bool{false, false, false}, rx); diff != "" {
		t.Errorf("Make(...) rx is different [-want,+got]:\n%s", diff)
	}
	if diff := cmp.Diff([]bool{false, false}, ry); diff != "" {
		t.Errorf("Make(...) ry is different [-want,+got]:\n%s", diff)
	}

	// Growing rx must not overwrite ry.
	rx = append(rx, true)
	if ry[0] {
		t.Errorf("appending to rx changed ry")
	}
}
