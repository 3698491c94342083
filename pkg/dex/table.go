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

// Package dex resolves creature identifiers (catalog IDs, English names,
// localized names and misspelled names) to sprite filename keys, and filename
// keys back to display names.
//
// A Table is built once from the catalog and is read-only afterwards, so it
// can be shared between goroutines without locking.
package dex

import (
	"fmt"

	"github.com/ZaparooProject/dexget/pkg/dex/bimap"
	"github.com/ZaparooProject/dexget/pkg/dex/dataset"
	"github.com/ZaparooProject/dexget/pkg/dex/matcher"
	"github.com/rs/zerolog/log"
)

// Table maps catalog IDs to filename keys and display names.
type Table struct {
	rng            Rand
	ids            *bimap.BiMap[int, string]
	names          []string
	localizedNames []string
	minSimilarity  float32
}

// Option configures a Table at construction.
type Option func(*Table)

// WithRand sets the random source used by RandomKey and RandomKeyInGroup.
// The caller is responsible for its synchronization if the table is shared.
func WithRand(rng Rand) Option {
	return func(t *Table) {
		t.rng = rng
	}
}

// WithMinSimilarity sets the lowest fuzzy score KeyForFuzzyName accepts.
func WithMinSimilarity(minSimilarity float32) Option {
	return func(t *Table) {
		t.minSimilarity = minSimilarity
	}
}

// New builds a Table from catalog rows, using each row's position as its ID.
// Filename keys must be unique; a duplicate fails construction.
func New(rows []dataset.Row, opts ...Option) (*Table, error) {
	t := &Table{
		ids:            bimap.New[int, string](len(rows)),
		names:          make([]string, 0, len(rows)),
		localizedNames: make([]string, 0, len(rows)),
		minSimilarity:  matcher.DefaultMinSimilarity,
	}

	for i, row := range rows {
		if err := t.ids.Insert(i, row.Key); err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrDuplicateKey, i, err)
		}
		t.names = append(t.names, row.Name)
		t.localizedNames = append(t.localizedNames, row.LocalizedName)
	}

	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		rng, err := newDefaultRand()
		if err != nil {
			return nil, err
		}
		t.rng = rng
	}

	log.Debug().Int("entries", len(rows)).Msg("built resolution table")
	return t, nil
}

// Build creates a Table from the catalog embedded in the binary.
func Build(opts ...Option) (*Table, error) {
	rows, err := dataset.Embedded()
	if err != nil {
		return nil, err
	}
	return New(rows, opts...)
}

// Load creates a Table from the given loader's catalog.
func Load(loader *dataset.Loader, opts ...Option) (*Table, error) {
	rows, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return New(rows, opts...)
}

// Len returns the number of loaded entries. Valid IDs are [0, Len()).
func (t *Table) Len() int {
	return t.ids.Len()
}
