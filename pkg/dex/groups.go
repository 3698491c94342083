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
)

// Group is a named, contiguous range of catalog IDs used for scoped random
// selection.
type Group int

const (
	Kanto Group = iota
	Johto
	Hoenn
	Sinnoh
	Unova
	Kalos
	Alola
	Galar
	Paldea
)

type groupDef struct {
	name    string
	aliases []string
	lo, hi  int
}

// Ranges are inclusive and tied to the catalog's row order. Growing the
// catalog only needs a new entry here.
var groupDefs = [...]groupDef{
	Kanto:  {name: "kanto", lo: 0, hi: 151},
	Johto:  {name: "johto", lo: 152, hi: 251},
	Hoenn:  {name: "hoenn", lo: 252, hi: 386},
	Sinnoh: {name: "sinnoh", lo: 387, hi: 493},
	Unova:  {name: "unova", aliases: []string{"einall"}, lo: 494, hi: 649},
	Kalos:  {name: "kalos", lo: 650, hi: 721},
	Alola:  {name: "alola", lo: 722, hi: 809},
	Galar:  {name: "galar", lo: 810, hi: 905},
	Paldea: {name: "paldea", lo: 906, hi: 1025},
}

// Groups returns every group in ID order.
func Groups() []Group {
	groups := make([]Group, len(groupDefs))
	for i := range groupDefs {
		groups[i] = Group(i)
	}
	return groups
}

func (g Group) valid() bool {
	return g >= 0 && int(g) < len(groupDefs)
}

func (g Group) String() string {
	if !g.valid() {
		return fmt.Sprintf("Group(%d)", int(g))
	}
	return groupDefs[g].name
}

// Range returns the group's inclusive ID bounds.
func (g Group) Range() (lo, hi int) {
	if !g.valid() {
		return 0, -1
	}
	return groupDefs[g].lo, groupDefs[g].hi
}

// ParseGroup looks up a group by name, ignoring case. Unova also accepts its
// German name "einall".
func ParseGroup(name string) (Group, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, def := range groupDefs {
		if def.name == name {
			return Group(i), nil
		}
		for _, alias := range def.aliases {
			if alias == name {
				return Group(i), nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unknown group %q", ErrNotFound, name)
}
