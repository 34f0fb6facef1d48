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
	"znkr.io/sidebyside/internal/byteview"
)

// Terminator is the line terminator that ended a line.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Terminator
type Terminator int

const (
	NoTerminator Terminator = iota // Last line without a terminator
	LF                             // "\n"
	CR                             // "\r"
	CRLF                           // "\r\n"
)

// Len returns the number of bytes of the terminator.
func (t Terminator) Len() int {
	switch t {
	case NoTerminator:
		return 0
	case LF, CR:
		return 1
	case CRLF:
		return 2
	}
	panic("never reached")
}

// Span is the location of a line inside of the buffer it was split from. The content of the line
// is buf[Start:Start+Len], it's directly followed by the terminator.
type Span struct {
	Start, Len int
	Term       Terminator
}

// HadTerminator reports whether the line was terminated. Only the last line of a buffer can lack
// a terminator.
func (s Span) HadTerminator() bool { return s.Term != NoTerminator }

// End returns the position of the first byte after the content of the line.
func (s Span) End() int { return s.Start + s.Len }

// Next returns the position of the first byte after the terminator of the line.
func (s Span) Next() int { return s.Start + s.Len + s.Term.Len() }

// Lines is an immutable sequence of lines over a text buffer. It doesn't copy the buffer, a
// []byte buffer must not be modified while Lines is in use.
type Lines struct {
	buf   byteview.ByteView
	spans []Span
}

// Split splits a text buffer into lines. "\n", "\r", and "\r\n" are all accepted as line
// terminators and a "\r" directly followed by "\n" is always a single terminator. An empty buffer
// has no lines.
func Split[T string | []byte](buf T) Lines {
	v := byteview.From(buf)
	lines := byteview.SplitLines(v)
	spans := make([]Span, len(lines))
	for i, l := range lines {
		var term Terminator
		switch l.Next - l.End {
		case 0:
			term = NoTerminator
		case 1:
			if v.String()[l.End] == '\n' {
				term = LF
			} else {
				term = CR
			}
		case 2:
			term = CRLF
		default:
			panic("never reached")
		}
		spans[i] = Span{Start: l.Start, Len: l.End - l.Start, Term: term}
	}
	return Lines{buf: v, spans: spans}
}

// Len returns the number of lines.
func (l Lines) Len() int { return len(l.spans) }

// Span returns the span of line i.
func (l Lines) Span(i int) Span { return l.spans[i] }

// Text returns the content of line i without its terminator. The result shares memory with the
// buffer.
func (l Lines) Text(i int) string {
	s := l.spans[i]
	return l.buf.Slice(s.Start, s.End()).String()
}

// Terminated reports whether the last line has a terminator. It's true for empty sequences.
func (l Lines) Terminated() bool {
	return len(l.spans) == 0 || l.spans[len(l.spans)-1].HadTerminator()
}

// Join reassembles the buffer from all lines and their terminators.
func (l Lines) Join() string {
	var b byteview.Builder[string]
	if len(l.spans) > 0 {
		b.Grow(l.spans[len(l.spans)-1].Next() - l.spans[0].Start)
	}
	for _, s := range l.spans {
		b.WriteByteView(l.buf.Slice(s.Start, s.Next()))
	}
	return b.Build()
}

// texts returns the contents of all lines without copying them.
func (l Lines) texts() []string {
	out := make([]string, len(l.spans))
	for i := range l.spans {
		out[i] = l.Text(i)
	}
	return out
}
