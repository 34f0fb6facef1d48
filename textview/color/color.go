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

// Package color provides options to customize the colors of [textview.TerminalColors].
//
// All options take SGR parameters, for example Deletes(1, 31) renders deleted lines in bold red.
// Calling an option without parameters resets all attributes for that part of the view.
//
// [textview.TerminalColors]: https://pkg.go.dev/znkr.io/sidebyside/textview#TerminalColors
package color

import (
	"fmt"
	"strings"

	"znkr.io/sidebyside/internal/config"
)

// A Option makes it possible to configure custom colors in [textview.TerminalColors].
//
// [textview.TerminalColors]: https://pkg.go.dev/znkr.io/sidebyside/textview#TerminalColors
type Option func(*config.ColorConfig)

// Headers colors the header with the document labels.
func Headers(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Header = code
	}
}

// Equals colors lines that are identical on both sides.
func Equals(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Equal = code
	}
}

// Deletes colors deleted lines.
func Deletes(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Delete = code
	}
}

// Inserts colors inserted lines.
func Inserts(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Insert = code
	}
}

// Modifies colors changed lines on both sides.
func Modifies(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.Modify = code
	}
}

// LineNumbers colors the line numbers.
func LineNumbers(params ...int) Option {
	code := format(params)
	return func(cc *config.ColorConfig) {
		cc.LineNo = code
	}
}

func format(params []int) string {
	var sb strings.Builder
	sb.WriteString("\033[")
	for i, v := range params {
		if i > 0 {
			sb.WriteRune(';')
		}
		fmt.Fprint(&sb, v)
	}
	sb.WriteRune('m')
	return sb.String()
}
