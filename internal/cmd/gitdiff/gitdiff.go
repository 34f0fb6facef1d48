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

// gitdiff shows git changes side by side. It's meant to be used with GIT_EXTERNAL_DIFF:
//
//	GIT_EXTERNAL_DIFF=gitdiff git diff
//
// The width of the output is taken from the COLUMNS environment variable if it's set. Colors are
// used unless NO_COLOR is set.
package main

import (
	"fmt"
	"os"
	"strconv"

	"znkr.io/sidebyside"
	"znkr.io/sidebyside/textview"
)

// devNull is the path git passes for a file that doesn't exist on one side.
const devNull = "/dev/null"

func main() {
	if err := run(os.Args, os.Getenv); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, getenv func(string) string) error {
	if len(args) < 8 {
		return fmt.Errorf("expected at least 8 args, got %v: %v", len(args), args)
	}

	path, oldFile, oldHex, _, newFile, newHex, newMode := args[1], args[2], args[3], args[4], args[5], args[6], args[7]

	var old []byte
	if oldFile != devNull {
		var err error
		old, err = os.ReadFile(oldFile)
		if err != nil {
			return fmt.Errorf("reading old file: %v", err)
		}
	}

	var new []byte
	if newFile != devNull {
		var err error
		new, err = os.ReadFile(newFile)
		if err != nil {
			return fmt.Errorf("reading new file: %v", err)
		}
	}

	s, err := sidebyside.NewSession(
		sidebyside.Document{Path: oldFile, Label: label("a/", path, oldFile)},
		sidebyside.Document{Path: newFile, Label: label("b/", path, newFile)},
		old, new,
	)
	if err != nil {
		return err
	}

	opts := []sidebyside.Option{textview.Width(width(getenv))}
	if getenv("NO_COLOR") == "" {
		opts = append(opts, textview.TerminalColors())
	}

	fmt.Printf("diff --git a/%s b/%s\n", path, path)
	fmt.Printf("index %s..%s %s\n", short(oldHex), short(newHex), newMode)
	_, err = os.Stdout.WriteString(textview.SideBySide(s, opts...))
	return err
}

func label(prefix, path, file string) string {
	if file == devNull {
		return devNull
	}
	return prefix + path
}

func width(getenv func(string) string) int {
	if n, err := strconv.Atoi(getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}
	return 120
}

func short(hex string) string {
	return hex[:min(len(hex), 10)]
}
