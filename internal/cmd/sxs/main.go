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

// sxs compares two files side by side in a terminal.
//
// Usage:
//
//	sxs [flags] <left> <right>
//
// With -watch, sxs keeps running and renders the comparison again whenever one of the files
// changes. With -height, only a window of rows is rendered; the window keeps its position across
// reloads.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"znkr.io/sidebyside"
	"znkr.io/sidebyside/textview"
	"znkr.io/sidebyside/watch"
)

type config struct {
	left, right           string
	leftLabel, rightLabel string

	width    int
	tabWidth int
	color    bool
	split    bool
	maxCost  int
	top      int
	height   int
	watch    bool
}

func main() {
	var cfg config
	flag.IntVar(&cfg.width, "width", 120, "width of the output in terminal cells")
	flag.IntVar(&cfg.tabWidth, "tab-width", 4, "distance between tab stops")
	flag.BoolVar(&cfg.color, "color", false, "highlight the output using ANSI escape sequences")
	flag.BoolVar(&cfg.split, "split", false, "show changed lines as deletions followed by insertions")
	flag.IntVar(&cfg.maxCost, "max-cost", 0, "if >0, fail if the files differ by more than this many lines")
	flag.IntVar(&cfg.top, "top", 0, "first row to render, only used with -height")
	flag.IntVar(&cfg.height, "height", 0, "if >0, render at most this many rows")
	flag.BoolVar(&cfg.watch, "watch", false, "render again whenever one of the files changes")
	flag.StringVar(&cfg.leftLabel, "left-label", "", "label for the left file, defaults to its name")
	flag.StringVar(&cfg.rightLabel, "right-label", "", "label for the right file, defaults to its name")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "error: expected 2 files, got %d: %v\n", flag.NArg(), flag.Args())
		os.Exit(1)
	}
	cfg.left, cfg.right = flag.Arg(0), flag.Arg(1)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, &cfg, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config, stdout, stderr io.Writer) error {
	var opts []sidebyside.Option
	if cfg.maxCost > 0 {
		opts = append(opts, sidebyside.MaxCost(cfg.maxCost))
	}
	if cfg.split {
		opts = append(opts, sidebyside.SplitChanges())
	}

	s, err := sidebyside.Open(
		sidebyside.OS,
		sidebyside.Document{Path: cfg.left, Label: cfg.leftLabel},
		sidebyside.Document{Path: cfg.right, Label: cfg.rightLabel},
		opts...,
	)
	if err != nil {
		return err
	}

	ctrl := sidebyside.NewController(s, nil)
	if cfg.height > 0 {
		ctrl.Resize(sidebyside.Left, float64(cfg.height))
		ctrl.Resize(sidebyside.Right, float64(cfg.height))
		ctrl.RequestVisible(cfg.top)
	}

	if _, err := io.WriteString(stdout, render(ctrl, cfg)); err != nil {
		return err
	}
	if !cfg.watch {
		return nil
	}

	w, err := watch.New(cfg.left, cfg.right)
	if err != nil {
		return err
	}
	defer w.Close()

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			fmt.Fprintf(stderr, "error: %v\n", err)
		case _, ok := <-w.Reloads():
			if !ok {
				return nil
			}
			next, err := ctrl.Session().Reload(sidebyside.OS)
			if err != nil {
				// Keep the last good comparison, the file might be in the middle of being written.
				fmt.Fprintf(stderr, "error: %v\n", err)
				continue
			}
			ctrl.SetSession(next)
			if _, err := io.WriteString(stdout, "\033[H\033[2J"+render(ctrl, cfg)); err != nil {
				return err
			}
		}
	}
}

func render(ctrl *sidebyside.Controller, cfg *config) string {
	opts := []sidebyside.Option{textview.Width(cfg.width), textview.TabWidth(cfg.tabWidth)}
	if cfg.color {
		opts = append(opts, textview.TerminalColors())
	}
	s := ctrl.Session()
	if cfg.height <= 0 {
		return textview.SideBySide(s, opts...)
	}
	top := ctrl.Pane(ctrl.Focused()).TopRow()
	return textview.Window(s, top, cfg.height, opts...)
}
