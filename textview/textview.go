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

// Package textview renders a comparison session as side-by-side text for terminals.
//
// Every row of the session's records is rendered as one line, the left document on the left and
// the right document on the right. A line starts with the line number and a marker for the
// operation:
//
//	' ' for equal lines
//	'-' for deleted lines
//	'+' for inserted lines
//	'~' for changed lines
//
// Lines are truncated to fit into the configured width, tabs are expanded.
package textview

import (
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"znkr.io/sidebyside"
	"znkr.io/sidebyside/internal/byteview"
	"znkr.io/sidebyside/internal/config"
)

const (
	separator      = " | "
	ellipsis       = "…"
	missingNewline = `\ No newline at end of file`
)

// SideBySide renders all rows of s.
//
// The following options are supported: [textview.Width], [textview.TabWidth],
// [textview.TerminalColors]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func SideBySide(s *sidebyside.Session, opts ...sidebyside.Option) string {
	return Window(s, 0, len(s.Records()), opts...)
}

// Window renders the header and at most height rows of s, starting at row top. If the window
// includes the last row, a note for missing newlines at the end of a document follows.
//
// The following options are supported: [textview.Width], [textview.TabWidth],
// [textview.TerminalColors]
//
// Important: The output is not guaranteed to be stable and may change with minor version upgrades.
// DO NOT rely on the output being stable.
func Window(s *sidebyside.Session, top, height int, opts ...sidebyside.Option) string {
	cfg := config.FromOptions(opts, config.Width|config.TabWidth|config.Colors)
	r := newRenderer(s, cfg)

	records := s.Records()
	top = min(max(top, 0), len(records))
	end := min(top+max(height, 0), len(records))

	var b byteview.Builder[string]
	b.Grow((end - top + 2) * (cfg.Width + 1))
	r.header(&b)
	for _, rec := range records[top:end] {
		r.row(&b, rec)
	}
	if end == len(records) {
		r.footer(&b)
	}
	return b.Build()
}

type renderer struct {
	s      *sidebyside.Session
	colors *config.ColorConfig
	cond   *runewidth.Condition

	tabWidth int
	numWidth int // width of the line numbers
	colWidth int // width of the text of a line
}

func newRenderer(s *sidebyside.Session, cfg config.Config) *renderer {
	// Widths must not depend on the locale of the environment.
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	cond.StrictEmojiNeutral = true

	numWidth := len(strconv.Itoa(max(s.Lines(sidebyside.Left).Len(), s.Lines(sidebyside.Right).Len())))
	colWidth := (cfg.Width-len(separator))/2 - numWidth - 3
	return &renderer{
		s:        s,
		colors:   cfg.Colors,
		cond:     cond,
		tabWidth: cfg.TabWidth,
		numWidth: numWidth,
		colWidth: max(1, colWidth),
	}
}

// sideWidth returns the width of one side of the view.
func (r *renderer) sideWidth() int { return r.numWidth + 3 + r.colWidth }

func (r *renderer) header(b *byteview.Builder[string]) {
	left := r.fit(r.s.Document(sidebyside.Left).DisplayLabel(), r.sideWidth())
	right := r.fit(r.s.Document(sidebyside.Right).DisplayLabel(), r.sideWidth())
	r.line(b, r.paint(r.headerColor(), left), r.paint(r.headerColor(), right))
}

func (r *renderer) row(b *byteview.Builder[string], rec sidebyside.Record) {
	r.line(b, r.side(sidebyside.Left, rec.Left, rec.Op), r.side(sidebyside.Right, rec.Right, rec.Op))
}

func (r *renderer) footer(b *byteview.Builder[string]) {
	var sides [2]string
	missing := false
	for _, p := range []sidebyside.Pane{sidebyside.Left, sidebyside.Right} {
		if r.s.Lines(p).Terminated() {
			sides[p] = strings.Repeat(" ", r.sideWidth())
			continue
		}
		sides[p] = r.fit(missingNewline, r.sideWidth())
		missing = true
	}
	if missing {
		r.line(b, sides[sidebyside.Left], sides[sidebyside.Right])
	}
}

// line writes a line, trailing whitespace is removed.
func (r *renderer) line(b *byteview.Builder[string], left, right string) {
	b.WriteString(strings.TrimRight(left+separator+right, " "))
	b.WriteByte('\n')
}

// side renders line i of pane p, a negative i renders a gap.
func (r *renderer) side(p sidebyside.Pane, i int, op sidebyside.Op) string {
	if i < 0 {
		return strings.Repeat(" ", r.sideWidth())
	}
	var sb strings.Builder
	num := strconv.Itoa(i + 1)
	sb.WriteString(r.paint(r.lineNo(), strings.Repeat(" ", r.numWidth-len(num))+num))
	sb.WriteByte(' ')
	text := r.fit(r.expand(r.s.Lines(p).Text(i)), r.colWidth)
	sb.WriteString(r.paint(r.opColor(op), marker(op)+" "+text))
	return sb.String()
}

func marker(op sidebyside.Op) string {
	switch op {
	case sidebyside.Equal:
		return " "
	case sidebyside.Delete:
		return "-"
	case sidebyside.Insert:
		return "+"
	case sidebyside.Modify:
		return "~"
	}
	panic("never reached")
}

// expand replaces tabs by spaces up to the next tab stop.
func (r *renderer) expand(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var sb strings.Builder
	col := 0
	for _, c := range s {
		if c == '\t' {
			n := r.tabWidth - col%r.tabWidth
			sb.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		sb.WriteRune(c)
		col += r.cond.RuneWidth(c)
	}
	return sb.String()
}

// fit truncates or pads s to exactly width cells.
func (r *renderer) fit(s string, width int) string {
	if r.cond.StringWidth(s) > width {
		s = r.cond.Truncate(s, width, ellipsis)
	}
	return r.cond.FillRight(s, width)
}

func (r *renderer) paint(code, s string) string {
	if code == "" {
		return s
	}
	return code + s + r.colors.Reset
}

func (r *renderer) headerColor() string {
	if r.colors == nil {
		return ""
	}
	return r.colors.Header
}

func (r *renderer) lineNo() string {
	if r.colors == nil {
		return ""
	}
	return r.colors.LineNo
}

func (r *renderer) opColor(op sidebyside.Op) string {
	if r.colors == nil {
		return ""
	}
	switch op {
	case sidebyside.Equal:
		return r.colors.Equal
	case sidebyside.Delete:
		return r.colors.Delete
	case sidebyside.Insert:
		return r.colors.Insert
	case sidebyside.Modify:
		return r.colors.Modify
	}
	panic("never reached")
}
