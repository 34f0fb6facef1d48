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
	"znkr.io/sidebyside"
	"znkr.io/sidebyside/internal/config"
	"znkr.io/sidebyside/textview/color"
)

// Width sets the total width of the view in terminal cells. The default is 120.
func Width(n int) sidebyside.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Width = max(0, n)
		return config.Width
	}
}

// TabWidth sets the distance between tab stops. The default is 4.
func TabWidth(n int) sidebyside.Option {
	return func(cfg *config.Config) config.Flag {
		cfg.TabWidth = max(1, n)
		return config.TabWidth
	}
}

// TerminalColors highlights the view using ANSI escape sequences. Without options, a default
// color scheme is used that can be customized using the options in [color].
func TerminalColors(opts ...color.Option) sidebyside.Option {
	return func(cfg *config.Config) config.Flag {
		colors := config.DefaultColors
		for _, opt := range opts {
			opt(&colors)
		}
		cfg.Colors = &colors
		return config.Colors
	}
}
