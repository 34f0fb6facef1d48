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

// eval validates the alignment on the history of a git repository. For every changed file, it
// checks that the records walk both versions of the file in order and that the cost of the
// alignment doesn't depend on the direction of the comparison.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"slices"

	"znkr.io/sidebyside"
	"znkr.io/sidebyside/internal/cmd/eval/internal/git"
)

type config struct {
	repo    string
	sample  int
	maxCost int
}

func main() {
	var cfg config
	flag.StringVar(&cfg.repo, "repo", ".", "repository to use for evaluation")
	flag.IntVar(&cfg.sample, "sample", 0, "if >0, only check this many randomly picked commits")
	flag.IntVar(&cfg.maxCost, "max-cost", 0, "if >0, skip files whose alignment needs more changes")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	if err := run(&cfg, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

var variants = []struct {
	name string
	opts []sidebyside.Option
}{
	{"default", nil},
	{"split-changes", []sidebyside.Option{sidebyside.SplitChanges()}},
}

// summary counts what run did.
type summary struct {
	commits  int
	files    int
	skipped  int
	failures int
}

func run(cfg *config, stdout io.Writer) error {
	repo, err := git.Open(cfg.repo)
	if err != nil {
		return fmt.Errorf("opening git repository: %w", err)
	}
	defer repo.Close()

	commits, err := repo.RevList()
	if err != nil {
		return fmt.Errorf("listing commits: %w", err)
	}
	if cfg.sample > 0 && cfg.sample < len(commits) {
		perm := rand.Perm(len(commits))[:cfg.sample]
		slices.Sort(perm)
		sample := make([]string, len(perm))
		for i, j := range perm {
			sample[i] = commits[j]
		}
		commits = sample
	}

	var sum summary
	for _, commit := range commits {
		changes, err := repo.Changes(commit)
		if err != nil {
			return fmt.Errorf("commit %s: %w", commit, err)
		}
		sum.commits++
		for _, c := range changes {
			before, err := repo.Read(c.OldID)
			if err != nil {
				return fmt.Errorf("commit %s: %w", commit, err)
			}
			after, err := repo.Read(c.NewID)
			if err != nil {
				return fmt.Errorf("commit %s: %w", commit, err)
			}
			if binary(before) || binary(after) {
				continue
			}
			sum.files++
			for _, v := range variants {
				switch err := check(cfg, c.Path, before, after, v.opts); {
				case errors.Is(err, sidebyside.ErrAlignmentOverflow):
					sum.skipped++
				case err != nil:
					sum.failures++
					fmt.Fprintf(stdout, "%s:%s:%s: %v\n", commit, c.Path, v.name, err)
				}
			}
		}
	}

	fmt.Fprintf(stdout, "checked %d files in %d commits, %d skipped, %d failures\n", sum.files, sum.commits, sum.skipped, sum.failures)
	if sum.failures > 0 {
		return fmt.Errorf("%d failures", sum.failures)
	}
	return nil
}

func check(cfg *config, path string, before, after []byte, opts []sidebyside.Option) error {
	if cfg.maxCost > 0 {
		opts = append(slices.Clip(opts), sidebyside.MaxCost(cfg.maxCost))
	}
	s, err := sidebyside.NewSession(
		sidebyside.Document{Path: "a/" + path},
		sidebyside.Document{Path: "b/" + path},
		before, after,
		opts...,
	)
	if err != nil {
		return err
	}
	return validate(s)
}

// binary reports whether data looks like the content of a binary file, the same way git does.
func binary(data []byte) bool {
	return bytes.IndexByte(data[:min(len(data), 8000)], 0) >= 0
}
