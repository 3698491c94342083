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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZaparooProject/dexget/pkg/dex/dataset"
	"github.com/rs/zerolog/log"
)

// Strategy identifiers, reported in Resolution and debug logs.
const (
	StrategyDexNumber = "strategy_dex_number"
	StrategyExactName = "strategy_exact_name"
	StrategyKey       = "strategy_key"
	StrategySlug      = "strategy_slug"
	StrategyFuzzyName = "strategy_fuzzy_name"
)

// Resolution is the outcome of resolving a user-supplied identifier.
type Resolution struct {
	Key      string
	Name     string
	Strategy string
}

// Resolve turns a free-form identifier into a catalog entry, trying in order:
//  1. a national dex number (1-based, so "25" is catalog ID 24)
//  2. an exact localized or canonical name
//  3. a filename key, as given or slugified ("Mr Mime" → "mr-mime")
//  4. the closest name by fuzzy matching
func (t *Table) Resolve(arg string) (Resolution, error) {
	query := strings.TrimSpace(arg)
	if query == "" {
		return Resolution{}, fmt.Errorf("%w: empty identifier", ErrNotFound)
	}

	if n, err := strconv.Atoi(query); err == nil {
		key, err := t.KeyForID(n - 1)
		if err != nil {
			return Resolution{}, fmt.Errorf("dex number %d: %w", n, err)
		}
		return t.resolved(query, key, StrategyDexNumber), nil
	}

	if key, err := t.KeyForName(query); err == nil {
		return t.resolved(query, key, StrategyExactName), nil
	}

	if t.HasKey(query) {
		return t.resolved(query, query, StrategyKey), nil
	}
	if slug := dataset.Slugify(query); slug != query && t.HasKey(slug) {
		return t.resolved(query, slug, StrategySlug), nil
	}

	key, err := t.KeyForFuzzyName(query)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Debug().Str("query", query).Msg("all resolve strategies failed")
		}
		return Resolution{}, err
	}
	return t.resolved(query, key, StrategyFuzzyName), nil
}

func (t *Table) resolved(query, key, strategy string) Resolution {
	log.Debug().
		Str("strategy", strategy).
		Str("query", query).
		Str("key", key).
		Msg("identifier resolved")
	return Resolution{
		Key:      key,
		Name:     t.NameForKey(key),
		Strategy: strategy,
	}
}
