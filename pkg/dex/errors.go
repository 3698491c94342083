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
)

var (
	// ErrNotFound is returned when a name, key or ID lookup has no match.
	ErrNotFound = errors.New("entry not found")
	// ErrRange is returned when a group has no entries in the loaded catalog.
	ErrRange = errors.New("group out of range")
	// ErrEmptyTable is returned when sampling from a table with no rows.
	ErrEmptyTable = errors.New("table is empty")
	// ErrDuplicateKey is returned when two catalog rows share a filename key.
	ErrDuplicateKey = errors.New("duplicate filename key")
)

// RangeError reports a group whose ID range starts past the end of the
// loaded catalog.
type RangeError struct {
	Group  Group
	Lo, Hi int
	Loaded int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf(
		"%s: %s covers IDs %d-%d but only %d entries are loaded",
		ErrRange, e.Group, e.Lo, e.Hi, e.Loaded,
	)
}

func (*RangeError) Unwrap() error {
	return ErrRange
}
