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

package bimap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestBiMap_InsertAndGet(t *testing.T) {
	t.Parallel()

	m := New[int, string](2)
	require.NoError(t, m.Insert(0, "bulbasaur"))
	require.NoError(t, m.Insert(1, "ivysaur"))

	r, ok := m.GetByLeft(1)
	assert.True(t, ok)
	assert.Equal(t, "ivysaur", r)

	l, ok := m.GetByRight("bulbasaur")
	assert.True(t, ok)
	assert.Equal(t, 0, l)

	assert.True(t, m.ContainsRight("ivysaur"))
	assert.False(t, m.ContainsRight("venusaur"))
	assert.Equal(t, 2, m.Len())
}

func TestBiMap_GetMissing(t *testing.T) {
	t.Parallel()

	m := New[int, string](0)

	_, ok := m.GetByLeft(7)
	assert.False(t, ok)
	_, ok = m.GetByRight("missingno")
	assert.False(t, ok)
}

func TestBiMap_InsertDuplicates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		wantErr error
		name    string
		right   string
		left    int
	}{
		{name: "duplicate left", left: 0, right: "ivysaur", wantErr: ErrDuplicateLeft},
		{name: "duplicate right", left: 1, right: "bulbasaur", wantErr: ErrDuplicateRight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := New[int, string](2)
			require.NoError(t, m.Insert(0, "bulbasaur"))

			err := m.Insert(tt.left, tt.right)
			require.ErrorIs(t, err, tt.wantErr)

			// failed inserts leave both sides untouched
			assert.Equal(t, 1, m.Len())
			r, _ := m.GetByLeft(0)
			assert.Equal(t, "bulbasaur", r)
			assert.False(t, m.ContainsRight("ivysaur"))
		})
	}
}

func TestBiMap_RoundTripProperty(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		keys := rapid.SliceOfDistinct(
			rapid.StringMatching(`[a-z]{1,12}`),
			func(s string) string { return s },
		).Draw(t, "keys")

		m := New[int, string](len(keys))
		for i, k := range keys {
			if err := m.Insert(i, k); err != nil {
				t.Fatalf("insert %d: %v", i, err)
			}
		}

		if m.Len() != len(keys) {
			t.Fatalf("len = %d, want %d", m.Len(), len(keys))
		}
		for i, k := range keys {
			got, ok := m.GetByLeft(i)
			if !ok || got != k {
				t.Fatalf("GetByLeft(%d) = %q, %v", i, got, ok)
			}
			id, ok := m.GetByRight(k)
			if !ok || id != i {
				t.Fatalf("GetByRight(%q) = %d, %v", k, id, ok)
			}
		}
	})
}
