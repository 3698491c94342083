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
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/ZaparooProject/dexget/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
)

// Rand is the source of randomness for random selection. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	// IntN returns a value in [0, n). n is always positive.
	IntN(n int) int
}

// NewSeededRand returns a deterministic source for the given seed.
func NewSeededRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

type lockedRand struct {
	rng *rand.Rand
	mu  syncutil.Mutex
}

func (r *lockedRand) IntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rng.IntN(n)
}

func newDefaultRand() (*lockedRand, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}
	return &lockedRand{rng: NewSeededRand(binary.LittleEndian.Uint64(b[:]))}, nil
}

// RandomKey returns the filename key of a uniformly chosen entry.
func (t *Table) RandomKey() (string, error) {
	n := t.Len()
	if n == 0 {
		return "", ErrEmptyTable
	}
	return t.KeyForID(t.rng.IntN(n))
}

// RandomKeyInGroup returns the filename key of a uniformly chosen entry from
// the group's ID range. When the catalog ends inside the range only the
// loaded part is sampled. A group with no loaded entries returns a
// *RangeError.
func (t *Table) RandomKeyInGroup(g Group) (string, error) {
	if !g.valid() {
		return "", fmt.Errorf("%w: %s", ErrRange, g)
	}

	lo, hi := g.Range()
	n := t.Len()
	if lo >= n {
		return "", &RangeError{Group: g, Lo: lo, Hi: hi, Loaded: n}
	}
	if hi >= n {
		log.Debug().
			Str("group", g.String()).
			Int("hi", hi).
			Int("loaded", n).
			Msg("group extends past catalog, sampling loaded part")
		hi = n - 1
	}

	id := lo + t.rng.IntN(hi-lo+1)
	log.Debug().Str("group", g.String()).Int("id", id).Msg("picked random entry in group")
	return t.KeyForID(id)
}
