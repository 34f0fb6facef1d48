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
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"znkr.io/sidebyside"
)

func writeFiles(t *testing.T, left, right string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	l, r := filepath.Join(dir, "left.txt"), filepath.Join(dir, "right.txt")
	if err := os.WriteFile(l, []byte(left), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(r, []byte(right), 0o644); err != nil {
		t.Fatal(err)
	}
	return l, r
}

func row(left, right string) string {
	return strings.TrimRight(fmt.Sprintf("%-18s | %s", left, right), " ") + "\n"
}

func TestRun(t *testing.T) {
	l, r := writeFiles(t, "a\nb\nc\n", "a\nx\nc\n")

	tests := []struct {
		name string
		cfg  config
		want string
	}{
		{
			name: "all",
			cfg:  config{width: 40, tabWidth: 4},
			want: row("left.txt", "right.txt") +
				row("1   a", "1   a") +
				row("2 ~ b", "2 ~ x") +
				row("3   c", "3   c"),
		},
		{
			name: "split",
			cfg:  config{width: 40, tabWidth: 4, split: true},
			want: row("left.txt", "right.txt") +
				row("1   a", "1   a") +
				row("2 - b", "") +
				row("", "2 + x") +
				row("3   c", "3   c"),
		},
		{
			name: "labels",
			cfg:  config{width: 40, tabWidth: 4, leftLabel: "old", rightLabel: "new"},
			want: row("old", "new") +
				row("1   a", "1   a") +
				row("2 ~ b", "2 ~ x") +
				row("3   c", "3   c"),
		},
		{
			name: "window",
			cfg:  config{width: 40, tabWidth: 4, top: 1, height: 1},
			want: row("left.txt", "right.txt") +
				row("2 ~ b", "2 ~ x"),
		},
		{
			name: "window-clamped",
			cfg:  config{width: 40, tabWidth: 4, top: 10, height: 2},
			want: row("left.txt", "right.txt") +
				row("2 ~ b", "2 ~ x") +
				row("3   c", "3   c"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.cfg
			cfg.left, cfg.right = l, r
			var stdout, stderr bytes.Buffer
			if err := run(t.Context(), &cfg, &stdout, &stderr); err != nil {
				t.Fatalf("run(...) failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, stdout.String()); diff != "" {
				t.Errorf("run(...) output is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	l, r := writeFiles(t, "a\nb\nc\n", "x\ny\nz\n")

	t.Run("missing", func(t *testing.T) {
		cfg := config{left: l, right: filepath.Join(filepath.Dir(r), "missing.txt"), width: 40, tabWidth: 4}
		var stdout, stderr bytes.Buffer
		err := run(t.Context(), &cfg, &stdout, &stderr)
		var lerr *sidebyside.LoadError
		if !errors.As(err, &lerr) || lerr.Pane != sidebyside.Right || !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("run(...) = %v, want load error for right file", err)
		}
	})

	t.Run("max-cost", func(t *testing.T) {
		cfg := config{left: l, right: r, width: 40, tabWidth: 4, maxCost: 2}
		var stdout, stderr bytes.Buffer
		if err := run(t.Context(), &cfg, &stdout, &stderr); !errors.Is(err, sidebyside.ErrAlignmentOverflow) {
			t.Errorf("run(...) = %v, want %v", err, sidebyside.ErrAlignmentOverflow)
		}
	})
}

// syncBuffer is a bytes.Buffer that can be written and read concurrently.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestRunWatch(t *testing.T) {
	l, r := writeFiles(t, "a\n", "a\n")

	ctx, cancel := context.WithCancel(t.Context())
	cfg := config{left: l, right: r, width: 40, tabWidth: 4, watch: true}
	var stdout, stderr syncBuffer
	done := make(chan error, 1)
	go func() { done <- run(ctx, &cfg, &stdout, &stderr) }()

	// Wait for the first rendering before changing the file, otherwise the watcher might not be
	// set up yet.
	first := row("left.txt", "right.txt") + row("1   a", "1   a")
	waitFor(t, &stdout, first)
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(r, []byte("b\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, &stdout, "\033[H\033[2J"+row("left.txt", "right.txt")+row("1 ~ a", "1 ~ b"))

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("run(...) failed: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("run(...) didn't return after cancellation")
	}
}

func waitFor(t *testing.T, b *syncBuffer, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for !strings.Contains(b.String(), want) {
		if time.Now().After(deadline) {
			t.Fatalf("output doesn't contain %q:\n%q", want, b.String())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
