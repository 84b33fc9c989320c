// Copyright 2014-2017 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// tt.go implements a depth-preferred transposition table: entries are
// addressed by splitting the Zobrist key into a bucket index and a
// lock word so two different positions hashing to the same bucket
// don't collide silently. A new entry for the same position only
// replaces the stored one when it was searched to at least as much
// depth; an entry for a different position in the same bucket is
// always replaced.

package engine

import "unsafe"

// BoundKind records whether a transposition entry's score is exact or
// only a bound, because alpha-beta search only ever proves bounds
// outside of the root.
type BoundKind uint8

const (
	BoundExact BoundKind = iota
	BoundLower           // score failed high: true score >= Score
	BoundUpper           // score failed low: true score <= Score
)

// TranspositionEntry is one stored search result.
type TranspositionEntry struct {
	lock  uint32
	Move  Move
	Score int32
	Depth int8
	Kind  BoundKind
}

const ttEntrySize = unsafe.Sizeof(TranspositionEntry{})

// TranspositionTable is a fixed-size, depth-preferred hash table
// mapping Zobrist keys to search results.
type TranspositionTable struct {
	table []TranspositionEntry
	mask  uint64
}

// NewTranspositionTable builds a table sized to approximately sizeMB
// megabytes, rounded down to a power of two number of entries.
func NewTranspositionTable(sizeMB int) *TranspositionTable {
	if sizeMB < 1 {
		sizeMB = 1
	}
	numEntries := uint64(sizeMB) * 1024 * 1024 / uint64(ttEntrySize)
	size := uint64(1)
	for size*2 <= numEntries {
		size *= 2
	}
	if size == 0 {
		size = 1
	}
	return &TranspositionTable{
		table: make([]TranspositionEntry, size),
		mask:  size - 1,
	}
}

func split(key uint64, mask uint64) (index uint64, lock uint32) {
	return key & mask, uint32(key >> 32)
}

// Get looks up key, returning the stored entry and whether it was found.
// An all-zero slot (never written, or cleared) is reported as not found.
func (tt *TranspositionTable) Get(key uint64) (TranspositionEntry, bool) {
	index, lock := split(key, tt.mask)
	e := tt.table[index]
	if e.lock != lock || e == (TranspositionEntry{}) {
		return TranspositionEntry{}, false
	}
	return e, true
}

// Put stores e under key. A stored entry for the same key is replaced
// only if e was searched at least as deep (depth-preferred
// replacement); an entry for a different key in the same bucket is
// always replaced.
func (tt *TranspositionTable) Put(key uint64, e TranspositionEntry) {
	index, lock := split(key, tt.mask)
	if cur := tt.table[index]; cur.lock == lock && cur.Depth > e.Depth {
		return
	}
	e.lock = lock
	tt.table[index] = e
}

// Clear empties the table.
func (tt *TranspositionTable) Clear() {
	for i := range tt.table {
		tt.table[i] = TranspositionEntry{}
	}
}
