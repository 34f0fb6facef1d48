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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"znkr.io/sidebyside/internal/config"
)

// Document is a file that is part of a comparison.
type Document struct {
	Path  string
	Label string // Optional label to show instead of the file name
}

// DisplayLabel returns the label of the document, or the last element of its path if the label is
// empty.
func (d Document) DisplayLabel() string {
	if d.Label != "" {
		return d.Label
	}
	return filepath.Base(d.Path)
}

// Source reads the contents of documents.
type Source interface {
	ReadFile(path string) ([]byte, error)
}

type osSource struct{}

func (osSource) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// OS is a [Source] that reads from the file system.
var OS Source = osSource{}

// LoadError is returned when a document could not be read.
type LoadError struct {
	Pane Pane
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading %s document %s: %v", strings.ToLower(e.Pane.String()), e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Session is the comparison of two documents. A Session is immutable, a reload creates a new
// Session.
type Session struct {
	docs    [2]Document
	lines   [2]Lines
	edits   []Edit
	records []Record
	opts    []Option
}

// Open reads both documents from src and compares them.
//
// If a document can't be read, Open returns a [*LoadError]. If the comparison exceeds
// [MaxCost], Open returns an error wrapping [ErrAlignmentOverflow].
//
// The following options are supported: [sidebyside.MaxCost], [sidebyside.SplitChanges]
func Open(src Source, left, right Document, opts ...Option) (*Session, error) {
	var bufs [2][]byte
	for p, doc := range [2]Document{left, right} {
		buf, err := src.ReadFile(doc.Path)
		if err != nil {
			return nil, &LoadError{Pane: Pane(p), Path: doc.Path, Err: err}
		}
		bufs[p] = buf
	}
	return NewSession(left, right, bufs[Left], bufs[Right], opts...)
}

// NewSession compares the contents of two documents that are already in memory. The session takes
// ownership of both buffers, they must not be modified afterwards.
//
// The following options are supported: [sidebyside.MaxCost], [sidebyside.SplitChanges]
func NewSession(left, right Document, leftText, rightText []byte, opts ...Option) (*Session, error) {
	cfg := config.FromOptions(opts, config.MaxCost|config.SplitChanges)

	s := &Session{
		docs:  [2]Document{left, right},
		lines: [2]Lines{Split(leftText), Split(rightText)},
		opts:  opts,
	}

	edits, err := Align(s.lines[Left], s.lines[Right], MaxCost(cfg.MaxCost))
	if err != nil {
		return nil, fmt.Errorf("comparing %s and %s: %w", left.Path, right.Path, err)
	}
	var bopts []Option
	if cfg.SplitChanges {
		bopts = append(bopts, SplitChanges())
	}
	s.edits = edits
	s.records = Build(edits, bopts...)
	return s, nil
}

// Reload reads both documents again and returns a new session with the same documents and options.
// The receiver stays valid and unchanged, also if Reload fails.
func (s *Session) Reload(src Source) (*Session, error) {
	return Open(src, s.docs[Left], s.docs[Right], s.opts...)
}

// Document returns the document shown in pane p.
func (s *Session) Document(p Pane) Document { return s.docs[p] }

// Lines returns the lines of the document shown in pane p.
func (s *Session) Lines(p Pane) Lines { return s.lines[p] }

// Edits returns the edit script between the two documents.
func (s *Session) Edits() []Edit { return s.edits }

// Records returns the rows of the side-by-side view.
func (s *Session) Records() []Record { return s.records }

// Identical reports whether both documents have the same lines.
func (s *Session) Identical() bool { return Cost(s.edits) == 0 }

// Title returns a title for the comparison based on the labels of both documents.
func (s *Session) Title() string {
	return s.docs[Left].DisplayLabel() + " ◄ | ► " + s.docs[Right].DisplayLabel()
}
