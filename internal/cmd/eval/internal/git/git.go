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

// Package git reads commits and file contents from a git repository by running the git command.
package git

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
)

// nullID is the object ID git reports for the missing side of an added or deleted file.
const nullID = "0000000000000000000000000000000000000000"

// submodule is the mode of a gitlink entry, its object ID names a commit in another repository.
const submodule = "160000"

// Repo is an open repository. Its methods must not be called concurrently.
type Repo struct {
	dir string

	cat *exec.Cmd
	in  io.WriteCloser
	out *bufio.Reader
}

// Open opens the repository containing dir. The repository must be closed after use.
func Open(dir string) (*Repo, error) {
	if _, err := git(dir, "rev-parse", "--git-dir"); err != nil {
		return nil, err
	}

	cat := exec.Command("git", "-C", dir, "cat-file", "--batch")
	in, err := cat.StdinPipe()
	if err != nil {
		return nil, err
	}
	out, err := cat.StdoutPipe()
	if err != nil {
		return nil, err
	}
	if err := cat.Start(); err != nil {
		return nil, fmt.Errorf("starting git cat-file: %w", err)
	}
	return &Repo{dir: dir, cat: cat, in: in, out: bufio.NewReader(out)}, nil
}

// Close stops the git process reading file contents.
func (r *Repo) Close() error {
	r.in.Close()
	return r.cat.Wait()
}

// RevList returns the IDs of all commits reachable from HEAD, merges excluded.
func (r *Repo) RevList() ([]string, error) {
	out, err := git(r.dir, "rev-list", "--no-merges", "HEAD")
	if err != nil {
		return nil, err
	}
	return strings.Fields(out), nil
}

// Change is a file changed by a commit. OldID or NewID is empty if the file was added or deleted.
type Change struct {
	Path  string
	OldID string
	NewID string
}

// Changes returns the files changed by commit compared to its first parent. Submodules are
// skipped.
func (r *Repo) Changes(commit string) ([]Change, error) {
	out, err := git(r.dir, "diff-tree", "-r", "-z", "--root", "--no-commit-id", commit)
	if err != nil {
		return nil, err
	}
	return parseDiffTree(out)
}

// parseDiffTree parses the output of git diff-tree -r -z. Every entry is a metadata field
//
//	:<old mode> <new mode> <old id> <new id> <status>
//
// followed by the path, both terminated by NUL.
func parseDiffTree(out string) ([]Change, error) {
	fields := strings.Split(out, "\x00")
	if fields[len(fields)-1] == "" {
		fields = fields[:len(fields)-1]
	}
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("diff-tree output has a dangling field: %q", fields[len(fields)-1])
	}

	var changes []Change
	for i := 0; i < len(fields); i += 2 {
		meta, path := fields[i], fields[i+1]
		if !strings.HasPrefix(meta, ":") {
			return nil, fmt.Errorf("diff-tree entry not starting with ':': %q", meta)
		}
		m := strings.Fields(meta[1:])
		if len(m) != 5 {
			return nil, fmt.Errorf("diff-tree entry has %d fields, want 5: %q", len(m), meta)
		}
		if m[0] == submodule || m[1] == submodule {
			continue
		}
		c := Change{Path: path, OldID: m[2], NewID: m[3]}
		if c.OldID == nullID {
			c.OldID = ""
		}
		if c.NewID == nullID {
			c.NewID = ""
		}
		changes = append(changes, c)
	}
	return changes, nil
}

// Read returns the content of the blob with the given ID. The content of the empty ID is empty.
func (r *Repo) Read(id string) ([]byte, error) {
	if id == "" {
		return nil, nil
	}
	if _, err := fmt.Fprintln(r.in, id); err != nil {
		return nil, fmt.Errorf("requesting %s: %w", id, err)
	}
	header, err := r.out.ReadString('\n')
	if err != nil {
		return nil, fmt.Errorf("reading header of %s: %w", id, err)
	}
	// <id> <type> <size> or <id> missing
	f := strings.Fields(header)
	if len(f) != 3 {
		return nil, fmt.Errorf("reading %s: unexpected header %q", id, header)
	}
	n, err := strconv.Atoi(f[2])
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", id, err)
	}
	buf := make([]byte, n+1) // content is followed by a newline
	if _, err := io.ReadFull(r.out, buf); err != nil {
		return nil, fmt.Errorf("reading %s: %w", id, err)
	}
	return buf[:n], nil
}

func git(dir string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", args[0], err)
		}
		return "", fmt.Errorf("git %s: %w", args[0], errors.New(msg))
	}
	return stdout.String(), nil
}
