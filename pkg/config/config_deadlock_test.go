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
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

// With -tags=deadlock, go-deadlock panics if an accessor takes the read lock
// recursively or races a writer into a cycle.
func TestInstance_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	cfg, err := NewConfig(afero.NewMemMapFs(), "/cfg/config.toml", BaseDefaults)
	require.NoError(t, err)

	done := make(chan struct{})
	for i := range 10 {
		go func() {
			for range 100 {
				_ = cfg.DatasetPath()
				_ = cfg.MinSimilarity()
				_ = cfg.MaxSuggestions()
				_ = cfg.HideNames()
				if i == 0 {
					cfg.SetDebugLogging(!cfg.DebugLogging())
				}
			}
			done <- struct{}{}
		}()
	}

	for range 10 {
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("concurrent config access deadlocked")
		}
	}
}
