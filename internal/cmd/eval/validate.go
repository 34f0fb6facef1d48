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

package main

import (
	"fmt"

	"znkr.io/sidebyside"
)

// validate checks that the records of s walk both documents in order and that comparing the
// documents in the opposite direction results in the same cost.
func validate(s *sidebyside.Session) error {
	left, right := s.Lines(sidebyside.Left), s.Lines(sidebyside.Right)

	nextL, nextR := 0, 0
	for row, rec := range s.Records() {
		hasL, hasR := rec.Left >= 0, rec.Right >= 0
		switch rec.Op {
		case sidebyside.Equal, sidebyside.Modify:
			if !hasL || !hasR {
				return fmt.Errorf("row %d: %v record without two lines: %+v", row, rec.Op, rec)
			}
		case sidebyside.Delete:
			if !hasL || hasR {
				return fmt.Errorf("row %d: invalid delete record: %+v", row, rec)
			}
		case sidebyside.Insert:
			if hasL || !hasR {
				return fmt.Errorf("row %d: invalid insert record: %+v", row, rec)
			}
		default:
			return fmt.Errorf("row %d: unknown op: %+v", row, rec)
		}
		if hasL {
			if rec.Left != nextL {
				return fmt.Errorf("row %d: left line %d out of order, want %d", row, rec.Left, nextL)
			}
			nextL++
		}
		if hasR {
			if rec.Right != nextR {
				return fmt.Errorf("row %d: right line %d out of order, want %d", row, rec.Right, nextR)
			}
			nextR++
		}
		if hasL && hasR {
			same := left.Text(rec.Left) == right.Text(rec.Right)
			if rec.Op == sidebyside.Equal && !same {
				return fmt.Errorf("row %d: equal record for different lines: %+v", row, rec)
			}
			if rec.Op == sidebyside.Modify && same {
				return fmt.Errorf("row %d: modify record for identical lines: %+v", row, rec)
			}
		}
	}
	if nextL != left.Len() || nextR != right.Len() {
		return fmt.Errorf("records cover %d/%d left lines and %d/%d right lines", nextL, left.Len(), nextR, right.Len())
	}

	mirror, err := sidebyside.Align(right, left)
	if err != nil {
		return fmt.Errorf("comparing in opposite direction: %v", err)
	}
	if got, want := sidebyside.Cost(mirror), sidebyside.Cost(s.Edits()); got != want {
		return fmt.Errorf("cost in opposite direction is %d, want %d", got, want)
	}
	return nil
}
