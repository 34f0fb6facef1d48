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

// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// sidebyside.Option.
package config

// Config collects all configurable parameters for the functions in this module.
type Config struct {
	// MaxCost bounds the edit distance the alignment search may explore. Zero means unlimited.
	MaxCost int

	// If set, changed line pairs are emitted as a deletion row followed by an insertion row
	// instead of a single modification row.
	SplitChanges bool

	// Width is the total width in terminal cells of a rendered side-by-side view.
	Width int

	// TabWidth is the distance between tab stops when rendering.
	TabWidth int

	// Colors configures ANSI colors for rendering. A nil value disables colors.
	Colors *ColorConfig
}

// ColorConfig holds the ANSI escape sequences used to highlight rows by operation. An empty
// sequence leaves the text uncolored.
type ColorConfig struct {
	Header string
	Equal  string
	Delete string
	Insert string
	Modify string
	LineNo string
	Reset  string
}

// DefaultColors is the color configuration used if colors are enabled without any customization.
var DefaultColors = ColorConfig{
	Header: "\033[1m",
	Equal:  "",
	Delete: "\033[31m",
	Insert: "\033[32m",
	Modify: "\033[33m",
	LineNo: "\033[2m",
	Reset:  "\033[0m",
}

// Default is the default configuration.
var Default = Config{
	MaxCost:      0,
	SplitChanges: false,
	Width:        120,
	TabWidth:     4,
	Colors:       nil,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	MaxCost Flag = 1 << iota
	SplitChanges
	Width
	TabWidth
	Colors
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case MaxCost:
		return "sidebyside.MaxCost"
	case SplitChanges:
		return "sidebyside.SplitChanges"
	case Width:
		return "textview.Width"
	case TabWidth:
		return "textview.TabWidth"
	case Colors:
		return "textview.TerminalColors"
	default:
		panic("never reached")
	}
}
