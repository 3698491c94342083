// Dexget
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Dexget.
//
// Dexget is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dexget is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dexget.  If not, see <http://www.gnu.org/licenses/>.

package matcher

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Suggest returns up to limit candidates containing the query's characters in
// order (subsequence match), ranked by sahilm/fuzzy's score. Candidates that
// only differ by case are reported once, keeping the first spelling seen.
func Suggest(query string, candidates []string, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	matches := fuzzy.Find(query, candidates)

	seen := make(map[string]struct{}, limit)
	suggestions := make([]string, 0, limit)
	for _, m := range matches {
		folded := strings.ToLower(m.Str)
		if _, ok := seen[folded]; ok {
			continue
		}
		seen[folded] = struct{}{}
		suggestions = append(suggestions, m.Str)
		if len(suggestions) == limit {
			break
		}
	}

	return suggestions
}
