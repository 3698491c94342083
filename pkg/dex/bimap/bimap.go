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

// Package bimap provides a two-way map where both sides are unique.
package bimap

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateLeft  = errors.New("left value already mapped")
	ErrDuplicateRight = errors.New("right value already mapped")
)

// BiMap is a one-to-one association between L and R values. Both directions
// are updated together by Insert and cannot be modified independently.
type BiMap[L, R comparable] struct {
	byLeft  map[L]R
	byRight map[R]L
}

// New returns an empty BiMap with room for capacity pairs.
func New[L, R comparable](capacity int) *BiMap[L, R] {
	return &BiMap[L, R]{
		byLeft:  make(map[L]R, capacity),
		byRight: make(map[R]L, capacity),
	}
}

// Insert adds the pair (l, r). It fails without modifying the map if either
// value is already part of another pair.
func (m *BiMap[L, R]) Insert(l L, r R) error {
	if existing, ok := m.byLeft[l]; ok {
		return fmt.Errorf("%w: %v -> %v", ErrDuplicateLeft, l, existing)
	}
	if existing, ok := m.byRight[r]; ok {
		return fmt.Errorf("%w: %v -> %v", ErrDuplicateRight, r, existing)
	}
	m.byLeft[l] = r
	m.byRight[r] = l
	return nil
}

func (m *BiMap[L, R]) GetByLeft(l L) (R, bool) {
	r, ok := m.byLeft[l]
	return r, ok
}

func (m *BiMap[L, R]) GetByRight(r R) (L, bool) {
	l, ok := m.byRight[r]
	return l, ok
}

func (m *BiMap[L, R]) ContainsRight(r R) bool {
	_, ok := m.byRight[r]
	return ok
}

// Len returns the number of pairs.
func (m *BiMap[L, R]) Len() int {
	return len(m.byLeft)
}
