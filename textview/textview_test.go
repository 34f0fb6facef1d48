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

package textview

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/tools/txtar"
	"znkr.io/sidebyside"
	"znkr.io/sidebyside/textview/color"
)

var update = flag.Bool("update", false, "update golden files")

func TestSideBySide(t *testing.T) {
	for _, tt := range parseTests(t) {
		t.Run(tt.name, func(t *testing.T) {
			for sti, st := range tt.subtests {
				t.Run(st.name, func(t *testing.T) {
					s, err := sidebyside.NewSession(
						sidebyside.Document{Label: "left"},
						sidebyside.Document{Label: "right"},
						tt.left, tt.right,
						st.sessionOpts...,
					)
					if err != nil {
						t.Fatalf("NewSession(...) failed: %v", err)
					}
					var got string
					if st.window {
						got = Window(s, st.top, st.height, st.viewOpts...)
					} else {
						got = SideBySide(s, st.viewOpts...)
					}
					if diff := cmp.Diff(st.want, got); diff != "" {
						t.Errorf("SideBySide(...) result are different:\ngot:\n%s\nwant:\n%s\ndiff [-want,+got]:\n%s", got, st.want, diff)
					}
					if *update {
						tt.subtests[sti].want = got
					}
				})
			}

			// Run in a cleanup to makes sure to runs after the subtests have finished.
			t.Cleanup(func() {
				if !*update {
					return
				}
				ar := &txtar.Archive{Comment: tt.comment}
				ar.Files = append(ar.Files,
					txtar.File{Name: "left", Data: tt.left},
					txtar.File{Name: "right", Data: tt.right},
				)
				for _, st := range tt.subtests {
					ar.Files = append(ar.Files, txtar.File{
						Name: "view",
						Data: append(append([]byte(nil), st.pragmas...), st.want...),
					})
				}
				if err := os.WriteFile(tt.filename, txtar.Format(ar), 0o644); err != nil {
					t.Fatalf("error writing golden file: %v", err)
				}
			})
		})
	}
}

func TestSideBySideEdgeCases(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		opts        []sidebyside.Option
		want        string
	}{
		{
			name: "empty",
			opts: []sidebyside.Option{Width(20)},
			want: "left     | right\n",
		},
		{
			name:  "missing-newline-left",
			left:  "a\nb",
			right: "a\nb\n",
			opts:  []sidebyside.Option{Width(40)},
			want: "" +
				"left               | right\n" +
				"1   a              | 1   a\n" +
				"2   b              | 2   b\n" +
				`\ No newline at e… |` + "\n",
		},
		{
			name:  "missing-newline-right",
			left:  "x\n",
			right: "y",
			opts:  []sidebyside.Option{Width(40)},
			want: "" +
				"left               | right\n" +
				"1 ~ x              | 1 ~ y\n" +
				`                   | \ No newline at e…` + "\n",
		},
		{
			name:  "wide-characters",
			left:  "日本語のテキスト\n",
			right: "日本語のテキスト\n",
			opts:  []sidebyside.Option{Width(30)},
			want: "" +
				"left          | right\n" +
				"1   日本語の… | 1   日本語の…\n",
		},
		{
			name:  "colors",
			left:  "a\n",
			right: "b\n",
			opts:  []sidebyside.Option{Width(20), TerminalColors()},
			want: "" +
				"\033[1mleft    \033[0m | \033[1mright   \033[0m\n" +
				"\033[2m1\033[0m \033[33m~ a   \033[0m | \033[2m1\033[0m \033[33m~ b   \033[0m\n",
		},
		{
			name:  "custom-colors",
			left:  "a\n",
			right: "",
			opts:  []sidebyside.Option{Width(20), TerminalColors(color.Deletes(1, 35), color.LineNumbers(), color.Headers())},
			want: "" +
				"\033[mleft    \033[0m | \033[mright   \033[0m\n" +
				"\033[m1\033[0m \033[1;35m- a   \033[0m |\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := sidebyside.NewSession(
				sidebyside.Document{Path: "/tmp/left"},
				sidebyside.Document{Path: "/tmp/right"},
				[]byte(tt.left), []byte(tt.right),
			)
			if err != nil {
				t.Fatalf("NewSession(...) failed: %v", err)
			}
			got := SideBySide(s, tt.opts...)
			if got != tt.want {
				t.Errorf("SideBySide(...) is different:\ngot:  %q\nwant: %q", got, tt.want)
			}
		})
	}
}

func TestWindowBounds(t *testing.T) {
	s, err := sidebyside.NewSession(
		sidebyside.Document{Label: "l"},
		sidebyside.Document{Label: "r"},
		[]byte("a\nb\nc\n"), []byte("a\nb\nc\n"),
	)
	if err != nil {
		t.Fatalf("NewSession(...) failed: %v", err)
	}
	tests := []struct {
		top, height int
		want        string
	}{
		{-5, 1, "l       | r\n1   a   | 1   a\n"},
		{2, 100, "l       | r\n3   c   | 3   c\n"},
		{3, 1, "l       | r\n"},
		{1, 0, "l       | r\n"},
	}
	for _, tt := range tests {
		got := Window(s, tt.top, tt.height, Width(17))
		if got != tt.want {
			t.Errorf("Window(s, %d, %d) = %q, want %q", tt.top, tt.height, got, tt.want)
		}
	}
}

func BenchmarkSideBySide(b *testing.B) {
	for _, tt := range parseTests(b) {
		b.Run(tt.name, func(b *testing.B) {
			s, err := sidebyside.NewSession(sidebyside.Document{}, sidebyside.Document{}, tt.left, tt.right)
			if err != nil {
				b.Fatalf("NewSession(...) failed: %v", err)
			}
			b.ReportAllocs()
			for b.Loop() {
				_ = SideBySide(s)
			}
		})
	}
}

type test struct {
	name        string
	filename    string
	comment     []byte
	left, right []byte
	subtests    []subtest
}

type subtest struct {
	name        string
	pragmas     []byte
	sessionOpts []sidebyside.Option
	viewOpts    []sidebyside.Option
	window      bool
	top, height int
	want        string
}

func parseTests(t testing.TB) []test {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []test
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		test := test{
			name:     strings.TrimSuffix(strings.TrimPrefix(filename, "testdata/"), ".test"),
			filename: filename,
			comment:  ar.Comment,
		}

		for _, f := range ar.Files {
			switch f.Name {
			case "left":
				test.left = f.Data
			case "right":
				test.right = f.Data
			case "view":
				test.subtests = append(test.subtests, parseSubtest(t, f.Data))
			default:
				t.Fatalf("failed to parse test case: unknown file %q", f.Name)
			}
		}
		tests = append(tests, test)
	}
	return tests
}

// parseSubtest parses a view. A view starts with pragma lines of the form "# key: value" that
// configure the rendering, followed by the expected output.
func parseSubtest(t testing.TB, data []byte) subtest {
	t.Helper()
	var st subtest
	var name []string
	atoi := func(k, v string) int {
		n, err := strconv.Atoi(v)
		if err != nil {
			t.Fatalf("invalid value for %s: %q", k, v)
		}
		return n
	}

	i := 0
	for i < len(data) && data[i] == '#' {
		eol := i + bytes.IndexByte(data[i:], '\n')
		if eol < i {
			t.Fatal("failed to parse test case: missing newline after pragma line")
		}
		k, v, found := bytes.Cut(data[i+1:eol], []byte{':'})
		if !found {
			t.Fatal("failed to parse test case: missing ':' in pragma line")
		}
		switch k, v := strings.TrimSpace(string(k)), strings.TrimSpace(string(v)); k {
		case "width":
			st.viewOpts = append(st.viewOpts, Width(atoi(k, v)))
			name = append(name, k+"="+v)
		case "tab-width":
			st.viewOpts = append(st.viewOpts, TabWidth(atoi(k, v)))
			name = append(name, k+"="+v)
		case "split-changes":
			switch v {
			case "true":
				st.sessionOpts = append(st.sessionOpts, sidebyside.SplitChanges())
			case "false":
				// do nothing
			default:
				t.Fatalf("invalid value for split-changes: %q", v)
			}
			name = append(name, k+"="+v)
		case "top":
			st.window = true
			st.top = atoi(k, v)
			name = append(name, k+"="+v)
		case "height":
			st.window = true
			st.height = atoi(k, v)
			name = append(name, k+"="+v)
		default:
			t.Fatalf("unknown pragma %q", k)
		}
		i = eol + 1
	}
	st.pragmas = data[:i]
	st.want = string(data[i:])
	st.name = strings.Join(name, ",")
	if st.name == "" {
		st.name = "default"
	}
	return st
}
