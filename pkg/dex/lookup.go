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
	"fmt"
	"strings"

	"github.com/ZaparooProject/dexget/pkg/dex/matcher"
	"github.com/rs/zerolog/log"
)

// NameForKey returns the localized display name for a filename key. Unknown
// keys never fail: they fall back to RawFormat.
func (t *Table) NameForKey(key string) string {
	id, ok := t.ids.GetByRight(key)
	if !ok {
		return RawFormat(key)
	}
	if id < 0 || id >= len(t.localizedNames) {
		return RawFormat(key)
	}
	return t.localizedNames[id]
}

// KeyForID returns the filename key for a catalog ID.
func (t *Table) KeyForID(id int) (string, error) {
	key, ok := t.ids.GetByLeft(id)
	if !ok {
		return "", fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	return key, nil
}

// IDForKey returns the catalog ID of a filename key.
func (t *Table) IDForKey(key string) (int, error) {
	id, ok := t.ids.GetByRight(key)
	if !ok {
		return 0, fmt.Errorf("%w: key %q", ErrNotFound, key)
	}
	return id, nil
}

// HasKey reports whether key is a loaded filename key.
func (t *Table) HasKey(key string) bool {
	return t.ids.ContainsRight(key)
}

// KeyForName returns the filename key for an exact name, ignoring case.
// Localized names are searched before canonical names and the first match
// in each list wins.
func (t *Table) KeyForName(name string) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("%w: empty name", ErrNotFound)
	}

	id := indexFold(t.localizedNames, name)
	if id < 0 {
		id = indexFold(t.names, name)
	}
	if id < 0 {
		return "", fmt.Errorf("%w: name %q", ErrNotFound, name)
	}
	return t.KeyForID(id)
}

// KeyForFuzzyName finds the closest name across localized and canonical names
// and resolves it through KeyForName. The pool keeps duplicates, so a name
// shared by both lists is scored twice.
func (t *Table) KeyForFuzzyName(name string) (string, error) {
	match, ok := matcher.BestMatch(name, t.namePool(), t.minSimilarity)
	if !ok {
		return "", fmt.Errorf("%w: no close match for %q", ErrNotFound, name)
	}

	log.Debug().
		Str("query", name).
		Str("match", match.Candidate).
		Float32("similarity", match.Similarity).
		Msg("fuzzy name match")

	key, err := t.KeyForName(match.Candidate)
	if err != nil {
		return "", fmt.Errorf("fuzzy match %q: %w", match.Candidate, err)
	}
	return key, nil
}

// Suggest returns up to limit names that contain the query's characters in
// order, best first. Used for "did you mean" hints.
func (t *Table) Suggest(query string, limit int) []string {
	return matcher.Suggest(query, t.namePool(), limit)
}

// namePool is localized names followed by canonical names.
func (t *Table) namePool() []string {
	pool := make([]string, 0, len(t.localizedNames)+len(t.names))
	pool = append(pool, t.localizedNames...)
	return append(pool, t.names...)
}

func indexFold(names []string, name string) int {
	for i, n := range names {
		if strings.EqualFold(n, name) {
			return i
		}
	}
	return -1
}
