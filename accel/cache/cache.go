// Copyright 2025 The accelperf Authors. SPDX-License-Identifier: Apache-2.0

package cache

import (
	"fmt"
	"math/rand/v2"

	"github.com/samber/lo"
)

// Level identifies a level of the memory hierarchy, fastest first.
type Level int

const (
	// L1 is the fastest, smallest cache.
	L1 Level = iota
	// L2 is the mid-level cache.
	L2
	// L3 is the last-level cache.
	L3
	// DRAM is main memory, the fallback when no cache level holds the tile.
	DRAM
)

// NumCacheLevels is the number of cache levels that track residency.
// DRAM is not a cache level: every tile is implicitly resident there.
const NumCacheLevels = 3

// NumLevels counts the cache levels plus DRAM.
const NumLevels = NumCacheLevels + 1

// String returns a human-readable name for the level.
func (l Level) String() string {
	switch l {
	case L1:
		return "L1"
	case L2:
		return "L2"
	case L3:
		return "L3"
	case DRAM:
		return "DRAM"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// State records, for every tile, whether it is resident in each cache level.
// A tile is one row of the left operand.
//
// A State is built once and never mutated, so it may be shared by any number
// of goroutines without synchronization.
type State struct {
	resident [NumCacheLevels][]bool
}

// NewRandom returns a State for the given number of tiles where every
// (tile, level) residency flag is an independent fair coin flip. The same seed
// always yields the same State.
func NewRandom(tiles int, seed uint64) *State {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	s := newState(tiles)
	for tile := range tiles {
		for level := range NumCacheLevels {
			s.resident[level][tile] = rng.IntN(2) == 1
		}
	}
	return s
}

// Uniform returns a State where every tile is resident in exactly the given
// levels. With no levels every lookup misses to DRAM. Passing DRAM is a no-op.
func Uniform(tiles int, levels ...Level) *State {
	s := newState(tiles)
	for _, level := range levels {
		if level == DRAM {
			continue
		}
		for tile := range tiles {
			s.resident[level][tile] = true
		}
	}
	return s
}

// FromFlags builds a State from explicit per-level residency flags. All three
// slices must have the same length, which becomes the tile count. The slices
// are copied.
func FromFlags(l1, l2, l3 []bool) (*State, error) {
	if len(l1) != len(l2) || len(l1) != len(l3) {
		return nil, fmt.Errorf("cache.FromFlags: residency lengths differ (L1=%d, L2=%d, L3=%d)",
			len(l1), len(l2), len(l3))
	}
	s := &State{}
	for level, flags := range [NumCacheLevels][]bool{l1, l2, l3} {
		s.resident[level] = append([]bool(nil), flags...)
	}
	return s, nil
}

func newState(tiles int) *State {
	s := &State{}
	for level := range NumCacheLevels {
		s.resident[level] = make([]bool, tiles)
	}
	return s
}

// Tiles returns the number of tiles tracked.
func (s *State) Tiles() int {
	return len(s.resident[L1])
}

// IsResident reports whether the tile is held by the given cache level.
// DRAM always holds every tile.
func (s *State) IsResident(level Level, tile int) bool {
	if level == DRAM {
		return true
	}
	return s.resident[level][tile]
}

// Lookup returns the level that serves the tile: the fastest cache level
// where it is resident, or DRAM. Levels are independent flags, so a tile may
// be resident in L2 but not L1.
func (s *State) Lookup(tile int) Level {
	for level := L1; level < DRAM; level++ {
		if s.resident[level][tile] {
			return level
		}
	}
	return DRAM
}

// ResidentCount returns the number of tiles resident in the given level.
func (s *State) ResidentCount(level Level) int {
	if level == DRAM {
		return s.Tiles()
	}
	return lo.Count(s.resident[level], true)
}

// Histogram returns how many tiles each level serves under Lookup.
// The counts sum to Tiles().
func (s *State) Histogram() [NumLevels]int {
	var h [NumLevels]int
	for tile := range s.Tiles() {
		h[s.Lookup(tile)]++
	}
	return h
}
