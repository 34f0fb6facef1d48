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

import "znkr.io/sidebyside/internal/config"

// Option configures the behavior of the functions in this module.
type Option = config.Option

// MaxCost limits the number of deletions and insertions an alignment may need. Alignments that need
// more fail with [ErrAlignmentOverflow]. The default of 0 means unlimited.
//
// Without a limit, the runtime is O(ND) where N is the total number of lines and D is the number of
// differences. With a limit, it's bounded by O(N*n).
func MaxCost(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxCost = max(0, n)
		return config.MaxCost
	}
}

// SplitChanges shows changed lines as a deleted row followed by an inserted row instead of a single
// modified row.
func SplitChanges() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.SplitChanges = true
		return config.SplitChanges
	}
}
