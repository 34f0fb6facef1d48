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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mapSource is a Source backed by a map from path to content.
type mapSource map[string]string

func (m mapSource) ReadFile(path string) ([]byte, error) {
	content, ok := m[path]
	if !ok {
		return nil, &fs.PathError{Op: "open", Path: path, Err: fs.ErrNotExist}
	}
	return []byte(content), nil
}

func TestOpen(t *testing.T) {
	src := mapSource{
		"a/left.txt":  text("a", "b", "c"),
		"b/right.txt": text("a", "x", "c"),
	}
	s, err := Open(src, Document{Path: "a/left.txt"}, Document{Path: "b/right.txt", Label: "theirs"})
	if err != nil {
		t.Fatalf("Open(...) failed: %v", err)
	}

	want := []Record{{Equal, 0, 0}, {Modify, 1, 1}, {Equal, 2, 2}}
	if diff := cmp.Diff(want, s.Records()); diff != "" {
		t.Errorf("Records() are different [-want,+got]:\n%s", diff)
	}
	if got, want := s.Lines(Right).Text(1), "x"; got != want {
		t.Errorf("Lines(Right).Text(1) = %q, want %q", got, want)
	}
	if got, want := s.Document(Left).DisplayLabel(), "left.txt"; got != want {
		t.Errorf("Document(Left).DisplayLabel() = %q, want %q", got, want)
	}
	if got, want := s.Title(), "left.txt ◄ | ► theirs"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
	if s.Identical() {
		t.Errorf("Identical() = true, want false")
	}
}

func TestOpenSplitChanges(t *testing.T) {
	src := mapSource{
		"left":  text("a", "b", "c"),
		"right": text("a", "x", "c"),
	}
	s, err := Open(src, Document{Path: "left"}, Document{Path: "right"}, SplitChanges())
	if err != nil {
		t.Fatalf("Open(...) failed: %v", err)
	}
	want := []Record{{Equal, 0, 0}, {Delete, 1, -1}, {Insert, -1, 1}, {Equal, 2, 2}}
	if diff := cmp.Diff(want, s.Records()); diff != "" {
		t.Errorf("Records() are different [-want,+got]:\n%s", diff)
	}
}

func TestOpenErrors(t *testing.T) {
	src := mapSource{
		"left":  text("a", "b", "c"),
		"right": text("x", "y", "z"),
	}

	t.Run("missing-right", func(t *testing.T) {
		_, err := Open(src, Document{Path: "left"}, Document{Path: "missing"})
		var lerr *LoadError
		if !errors.As(err, &lerr) {
			t.Fatalf("Open(...) returned %v, want a *LoadError", err)
		}
		if lerr.Pane != Right || lerr.Path != "missing" {
			t.Errorf("Open(...) returned %+v, want error for right pane and path %q", lerr, "missing")
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Open(...) returned %v, want an error wrapping %v", err, fs.ErrNotExist)
		}
	})

	t.Run("missing-left", func(t *testing.T) {
		_, err := Open(src, Document{Path: "missing"}, Document{Path: "right"})
		var lerr *LoadError
		if !errors.As(err, &lerr) || lerr.Pane != Left {
			t.Fatalf("Open(...) returned %v, want a *LoadError for the left pane", err)
		}
	})

	t.Run("overflow", func(t *testing.T) {
		_, err := Open(src, Document{Path: "left"}, Document{Path: "right"}, MaxCost(5))
		if !errors.Is(err, ErrAlignmentOverflow) {
			t.Fatalf("Open(...) returned %v, want an error wrapping %v", err, ErrAlignmentOverflow)
		}
	})
}

func TestReload(t *testing.T) {
	src := mapSource{
		"left":  text("a", "b"),
		"right": text("a", "b"),
	}
	s, err := Open(src, Document{Path: "left", Label: "mine"}, Document{Path: "right"}, SplitChanges())
	if err != nil {
		t.Fatalf("Open(...) failed: %v", err)
	}
	if !s.Identical() {
		t.Errorf("Identical() = false, want true")
	}

	src["right"] = text("a", "c")
	reloaded, err := s.Reload(src)
	if err != nil {
		t.Fatalf("Reload(...) failed: %v", err)
	}
	// Documents and options are kept, the old session is unchanged.
	want := []Record{{Equal, 0, 0}, {Delete, 1, -1}, {Insert, -1, 1}}
	if diff := cmp.Diff(want, reloaded.Records()); diff != "" {
		t.Errorf("Records() after reload are different [-want,+got]:\n%s", diff)
	}
	if got, want := reloaded.Title(), "mine ◄ | ► right"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]Record{{Equal, 0, 0}, {Equal, 1, 1}}, s.Records()); diff != "" {
		t.Errorf("Records() of the old session changed [-want,+got]:\n%s", diff)
	}

	// A failed reload leaves the previous session usable.
	delete(src, "left")
	if _, err := reloaded.Reload(src); err == nil {
		t.Errorf("Reload(...) succeeded, want error")
	}
	if got := len(reloaded.Records()); got != 3 {
		t.Errorf("len(Records()) = %d after failed reload, want 3", got)
	}
}

func TestOpenFiles(t *testing.T) {
	dir := t.TempDir()
	left := filepath.Join(dir, "left.txt")
	right := filepath.Join(dir, "right.txt")
	if err := os.WriteFile(left, []byte("one\r\ntwo\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(right, []byte("one\ntwo\nthree"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Open(OS, Document{Path: left}, Document{Path: right})
	if err != nil {
		t.Fatalf("Open(...) failed: %v", err)
	}
	want := []Record{{Equal, 0, 0}, {Equal, 1, 1}, {Insert, -1, 2}}
	if diff := cmp.Diff(want, s.Records()); diff != "" {
		t.Errorf("Records() are different [-want,+got]:\n%s", diff)
	}
	if s.Lines(Right).Terminated() {
		t.Errorf("Lines(Right).Terminated() = true, want false")
	}
}
