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
	"testing"

	"github.com/ZaparooProject/dexget/pkg/dex/dataset"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// stubRand always returns the value picked by its func, clamped to [0, n).
type stubRand struct {
	pick func(n int) int
}

func (s stubRand) IntN(n int) int {
	v := s.pick(n)
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

func maxRand() stubRand { return stubRand{pick: func(n int) int { return n - 1 }} }
func minRand() stubRand { return stubRand{pick: func(int) int { return 0 }} }

func embeddedTable(t *testing.T, opts ...Option) *Table {
	t.Helper()
	table, err := Build(opts...)
	require.NoError(t, err)
	return table
}

func fixtureTable(t *testing.T, rows []dataset.Row, opts ...Option) *Table {
	t.Helper()
	table, err := New(rows, opts...)
	require.NoError(t, err)
	return table
}

func TestBuild_Embedded(t *testing.T) {
	t.Parallel()

	table := embeddedTable(t)

	assert.Equal(t, 1025, table.Len())
	assert.Len(t, table.names, table.Len())
	assert.Len(t, table.localizedNames, table.Len())
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	table := fixtureTable(t, nil)

	assert.Equal(t, 0, table.Len())
	_, err := table.KeyForID(0)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestNew_DuplicateKey(t *testing.T) {
	t.Parallel()

	rows := []dataset.Row{
		{Name: "Mr. Mime", LocalizedName: "Pantimos", Key: "mr-mime"},
		{Name: "Mr Mime", LocalizedName: "Pantimos", Key: "mr-mime"},
	}

	table, err := New(rows)

	require.ErrorIs(t, err, ErrDuplicateKey)
	assert.Contains(t, err.Error(), "row 1")
	assert.Nil(t, table)
}

func TestLoad_Override(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/names.csv", []byte("Mew,Mew,mew\nMewtwo,Mewtu,mewtwo\n"), 0o600)
	require.NoError(t, err)

	table, err := Load(dataset.NewLoader(fs, "/names.csv"))
	require.NoError(t, err)

	assert.Equal(t, 2, table.Len())
	assert.Equal(t, "Mewtu", table.NameForKey("mewtwo"))
}

func TestLoad_Malformed(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	err := afero.WriteFile(fs, "/names.csv", []byte("Mew,Mew,mew\nMewtwo,mewtwo\n"), 0o600)
	require.NoError(t, err)

	table, err := Load(dataset.NewLoader(fs, "/names.csv"))

	require.ErrorIs(t, err, dataset.ErrMalformed)
	assert.Nil(t, table)
}
