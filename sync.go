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

// Surface is the presentation of a side-by-side view. The [Controller] tells the surface to scroll
// a pane whenever it changes an offset on its own. The surface may report the resulting scroll back
// to the controller, these reports are recognized and don't trigger another compensation.
type Surface interface {
	ScrollPane(p Pane, offset float64)
}

type state int

const (
	idle        state = iota
	scrolling         // Handling a user scroll
	positioning       // Setting offsets programmatically
)

// Controller keeps the scroll offsets of two panes in sync. Both panes scroll against the rows of
// the session's records, the controller makes sure that the same row is at the top of both panes.
//
// A Controller is not safe for concurrent use. The session and the pane states are only ever
// replaced together.
type Controller struct {
	session *Session
	panes   [2]PaneState
	surface Surface

	state  state
	source Pane // Only valid while scrolling
}

// NewController creates a controller for a session. Initially, both panes are at the top and the
// left pane has the focus. The surface may be nil.
func NewController(s *Session, surface Surface) *Controller {
	c := &Controller{session: s, surface: surface}
	c.panes[Left].Focused = true
	return c
}

// Session returns the current session.
func (c *Controller) Session() *Session { return c.session }

// Pane returns the state of pane p.
func (c *Controller) Pane(p Pane) PaneState { return c.panes[p] }

// Focused returns the pane that has the focus.
func (c *Controller) Focused() Pane {
	if c.panes[Right].Focused {
		return Right
	}
	return Left
}

// Scrolling returns the pane that is scrolled by the user right now. This is only ever true while
// the controller is calling into the surface.
func (c *Controller) Scrolling() (source Pane, ok bool) {
	return c.source, c.state == scrolling
}

// Scroll scrolls pane p by delta rows and scrolls the sibling to the same row.
func (c *Controller) Scroll(p Pane, delta float64) {
	c.ScrollTo(p, c.panes[p].Offset+delta)
}

// ScrollTo scrolls pane p to offset and scrolls the sibling to the same row. The offset is clamped
// to the scrollable range.
//
// Calls made while the controller is changing offsets itself are treated as reports of that change:
// They update the offset of p but the sibling isn't touched.
func (c *Controller) ScrollTo(p Pane, offset float64) {
	target := c.clamp(offset)
	if c.state != idle {
		c.panes[p].Offset = target
		return
	}

	c.state, c.source = scrolling, p
	defer func() { c.state = idle }()

	c.panes[p].Offset = target
	if target != offset {
		c.notify(p, target)
	}
	c.set(p.Sibling(), target)
}

// RequestVisible scrolls both panes so that row is the topmost row. Near the end of the records,
// the panes are scrolled as far as possible instead and the row is further down.
func (c *Controller) RequestVisible(row int) {
	row = min(max(row, 0), max(c.rows()-1, 0))
	target := c.clamp(float64(row))

	prev := c.state
	c.state = positioning
	defer func() { c.state = prev }()

	c.set(Left, target)
	c.set(Right, target)
}

// Focus gives the focus to pane p. Offsets are not affected.
func (c *Controller) Focus(p Pane) {
	c.panes[p].Focused = true
	c.panes[p.Sibling()].Focused = false
}

// Resize sets the viewport height of pane p in rows. This changes the scrollable range, both
// offsets are clamped to the new range.
func (c *Controller) Resize(p Pane, rows float64) {
	c.panes[p].Rows = max(rows, 0)

	prev := c.state
	c.state = positioning
	defer func() { c.state = prev }()

	c.set(Left, c.clamp(c.panes[Left].Offset))
	c.set(Right, c.clamp(c.panes[Right].Offset))
}

// SetSession replaces the session, for example after a reload. The top row of the focused pane is
// kept if the new session is long enough.
func (c *Controller) SetSession(s *Session) {
	top := c.panes[c.Focused()].TopRow()
	c.session = s
	c.RequestVisible(top)
}

// set changes the offset of pane p and informs the surface.
func (c *Controller) set(p Pane, offset float64) {
	if c.panes[p].Offset == offset {
		return
	}
	c.panes[p].Offset = offset
	c.notify(p, offset)
}

func (c *Controller) notify(p Pane, offset float64) {
	if c.surface != nil {
		c.surface.ScrollPane(p, offset)
	}
}

func (c *Controller) rows() int {
	if c.session == nil {
		return 0
	}
	return len(c.session.records)
}

// maxOffset returns the largest offset for both panes. The range is shared so that both panes
// can always show the same top row. A pane with an unknown height counts as one row high.
func (c *Controller) maxOffset() float64 {
	visible := math.Max(1, math.Min(height(c.panes[Left]), height(c.panes[Right])))
	return math.Max(0, float64(c.rows())-visible)
}

func height(s PaneState) float64 {
	if s.Rows <= 0 {
		return 1
	}
	return s.Rows
}

func (c *Controller) clamp(offset float64) float64 {
	if math.IsNaN(offset) {
		return 0
	}
	return math.Min(math.Max(offset, 0), c.maxOffset())
}
