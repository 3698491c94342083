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


//go:build !deadlock

// Package syncutil holds the locks used by the catalog and config. Building
// with -tags=deadlock swaps them for go-deadlock's detecting versions.
package syncutil

import "sync"

// DeadlockEnabled reports whether the detecting locks are compiled in.
const DeadlockEnabled = false

//nolint:gocritic // wrapper type, embedding is the point
type Mutex struct {
	sync.Mutex //nolint:forbidigo // the one place plain sync locks are allowed
}

//nolint:gocritic // wrapper type, embedding is the point
type RWMutex struct {
	sync.RWMutex //nolint:forbidigo // the one place plain sync locks are allowed
}
