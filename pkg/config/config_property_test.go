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


package config

import (
	"math"
	"testing"

	"github.com/spf13/afero"
	"pgregory.net/rapid"
)

// TestPropertySaveLoadRoundTrip verifies any valid settings written as the
// initial config come back unchanged on the next start.
func TestPropertySaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		vals := BaseDefaults
		vals.Matching.MinSimilarity = float32(rapid.IntRange(1, 100).Draw(t, "similarityPct")) / 100
		vals.Matching.MaxSuggestions = rapid.IntRange(1, 50).Draw(t, "maxSuggestions")
		vals.Display.HideNames = rapid.Bool().Draw(t, "hideNames")
		vals.DebugLogging = rapid.Bool().Draw(t, "debug")

		fs := afero.NewMemMapFs()
		if _, err := NewConfig(fs, "/cfg/config.toml", vals); err != nil {
			t.Fatalf("initial config: %v", err)
		}

		cfg, err := NewConfig(fs, "/cfg/config.toml", BaseDefaults)
		if err != nil {
			t.Fatalf("reload: %v", err)
		}

		if math.Abs(float64(cfg.MinSimilarity()-vals.Matching.MinSimilarity)) > 1e-6 {
			t.Fatalf("min similarity: got %v, want %v", cfg.MinSimilarity(), vals.Matching.MinSimilarity)
		}
		if cfg.MaxSuggestions() != vals.Matching.MaxSuggestions {
			t.Fatalf("max suggestions: got %d, want %d", cfg.MaxSuggestions(), vals.Matching.MaxSuggestions)
		}
		if cfg.HideNames() != vals.Display.HideNames {
			t.Fatalf("hide names: got %v, want %v", cfg.HideNames(), vals.Display.HideNames)
		}
		if cfg.DebugLogging() != vals.DebugLogging {
			t.Fatalf("debug logging: got %v, want %v", cfg.DebugLogging(), vals.DebugLogging)
		}
	})
}

// TestPropertyRelativeDatasetPath verifies relative dataset paths always end
// up inside the config directory.
func TestPropertyRelativeDatasetPath(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		name := rapid.StringMatching(`[a-z]{1,12}\.csv`).Draw(t, "name")

		vals := BaseDefaults
		vals.Dataset.Path = name

		cfg, err := NewConfig(afero.NewMemMapFs(), "/home/red/.config/dexget/config.toml", vals)
		if err != nil {
			t.Fatalf("config: %v", err)
		}

		if got, want := cfg.DatasetPath(), "/home/red/.config/dexget/"+name; got != want {
			t.Fatalf("dataset path: got %q, want %q", got, want)
		}
	})
}
