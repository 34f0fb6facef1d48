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

// Package byteview provides a mechanism to handle strings and []byte as immutable byte views.
package byteview

import (
	"slices"
	"strings"
	"sync"
	"unsafe"
)

// ByteView is an immutable view of a string or a []byte. A view created from a []byte shares the
// memory of the slice, the slice must not be modified while the view is in use.
type ByteView struct {
	data string
}

func From[T string | []byte](in T) ByteView {
	switch in := any(in).(type) {
	case string:
		return ByteView{in}
	case []byte:
		return ByteView{unsafe.String(unsafe.SliceData(in), len(in))}
	}
	panic("never reached")
}

func (v ByteView) Len() int { return len(v.data) }

// String returns the view as a string without copying.
func (v ByteView) String() string { return v.data }

// Slice returns the view v[i:j].
func (v ByteView) Slice(i, j int) ByteView { return ByteView{v.data[i:j]} }

// Line describes the position of a line inside of a ByteView: v[Start:End] is the content of the
// line and v[End:Next] is the line terminator, which is empty for a last line without one.
type Line struct {
	Start, End, Next int
}

// SplitLines splits the input into lines. "\n", "\r", and "\r\n" are all recognized as line
// terminators. An empty input has no lines and a trailing terminator does not start a new line.
func SplitLines(v ByteView) []Line {
	s := v.data

	// Count first, so that we can allocate the result in one go.
	n := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
			n++
		case '\n':
			n++
		}
	}
	if len(s) > 0 && s[len(s)-1] != '\n' && s[len(s)-1] != '\r' {
		n++ // missing terminator
	}

	lines := make([]Line, 0, n)
	for start := 0; start < len(s); {
		m := strings.IndexAny(s[start:], "\r\n")
		if m < 0 {
			lines = append(lines, Line{start, len(s), len(s)})
			break
		}
		end := start + m
		next := end + 1
		if s[end] == '\r' && next < len(s) && s[next] == '\n' {
			next++
		}
		lines = append(lines, Line{start, end, next})
		start = next
	}
	return lines
}

type Builder[T string | []byte] struct {
	_   [0]sync.Mutex // don't copy
	buf []byte
}

func (b *Builder[T]) Grow(n int) {
	b.buf = slices.Grow(b.buf, n)
}

func (b *Builder[T]) Len() int { return len(b.buf) }

func (b *Builder[T]) Write(v []byte) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

func (b *Builder[T]) WriteByteView(v ByteView) (n int, err error) {
	b.buf = append(b.buf, v.data...)
	return len(v.data), nil
}

func (b *Builder[T]) WriteString(v string) (n int, err error) {
	b.buf = append(b.buf, v...)
	return len(v), nil
}

func (b *Builder[T]) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

func (b *Builder[T]) Build() T {
	defer func() {
		b.buf = nil
	}()
	switch any((*T)(nil)).(type) {
	case *string:
		return T(unsafe.String(unsafe.SliceData(b.buf), len(b.buf)))
	case *[]byte:
		return T(b.buf)
	}
	panic("never reached")
}
