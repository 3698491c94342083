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

package dataset

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

var slugReplacer = strings.NewReplacer(
	"♀", "-f",
	"♂", "-m",
	" ", "-",
	"_", "-",
	".", "",
	"'", "",
	"’", "",
	":", "",
)

// Slugify derives a filename key from a display name using the same rules
// the sprite catalog was generated with.
//
// Examples:
//   - "Mr. Mime" → "mr-mime"
//   - "Farfetch'd" → "farfetchd"
//   - "Nidoran♀" → "nidoran-f"
//   - "Flabébé" → "flabebe"
//   - "Type: Null" → "type-null"
func Slugify(name string) string {
	s := strings.TrimSpace(name)
	if s == "" {
		return ""
	}

	if folded, _, err := transform.String(width.Fold, s); err == nil {
		s = folded
	}

	// Pokémon → Pokemon
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	if stripped, _, err := transform.String(t, s); err == nil {
		s = stripped
	}

	s = strings.Join(strings.Fields(s), " ")
	s = slugReplacer.Replace(strings.ToLower(s))

	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.Trim(s, "-")
}
