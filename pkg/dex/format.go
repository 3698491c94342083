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

package dex

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var rawFormatReplacer = strings.NewReplacer("-", " ", "'", "")

// RawFormat turns a filename key into a best-effort display name when the
// catalog has no entry for it: hyphens become spaces, apostrophes are dropped
// and every word is title-cased.
//
// Example:
//
//	RawFormat("mr-mime") → "Mr Mime"
func RawFormat(key string) string {
	s := rawFormatReplacer.Replace(key)
	// cases.Caser keeps state, so a fresh one per call keeps this goroutine-safe.
	return cases.Title(language.Und).String(strings.Join(strings.Fields(s), " "))
}
