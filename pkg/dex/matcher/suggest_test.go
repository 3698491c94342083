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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	pool := []string{"Pikachu", "Raichu", "Pichu", "Bisasam", "Pikachu"}

	tests := []struct {
		name     string
		query    string
		expected []string
		limit    int
	}{
		{name: "subsequence matches", query: "chu", limit: 5, expected: []string{"Pikachu", "Raichu", "Pichu"}},
		{name: "duplicates collapse", query: "pikachu", limit: 5, expected: []string{"Pikachu"}},
		{name: "limit applies", query: "chu", limit: 1},
		{name: "no match", query: "xyz", limit: 5, expected: []string{}},
		{name: "blank query", query: " ", limit: 5},
		{name: "zero limit", query: "chu", limit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Suggest(tt.query, pool, tt.limit)

			switch {
			case tt.name == "limit applies":
				assert.Len(t, got, 1)
			case tt.expected == nil:
				assert.Empty(t, got)
			default:
				assert.ElementsMatch(t, tt.expected, got)
			}
		})
	}
}
