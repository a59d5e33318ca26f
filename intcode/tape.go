// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"maps"
	"slices"
)

const (
	// TAPE_GROW_SLACK is how far past the dense region a write may land and
	// still grow the dense region, rather than going to the sparse map.
	TAPE_GROW_SLACK = 4096
)

// Tape is the memory of a Machine.
//
// Addresses near the loaded program are held in a dense slice, which grows
// on demand. Far excursions (such as a large relative base) are kept in a
// sparse map. Addresses never written read as zero.
type Tape struct {
	dense  []int64
	sparse map[int64]int64
}

// NewTape creates a tape holding a copy of the program.
func NewTape(program []int64) (tape *Tape) {
	tape = &Tape{
		dense: slices.Clone(program),
	}

	return
}

// Len returns one past the highest address in the dense region.
func (tape *Tape) Len() int {
	return len(tape.dense)
}

// Read returns the value at an address.
// Negative addresses alias address 0.
func (tape *Tape) Read(address int64) (value int64) {
	if address < 0 {
		address = 0
	}

	if address < int64(len(tape.dense)) {
		value = tape.dense[address]
	} else if tape.sparse != nil {
		value = tape.sparse[address]
	}

	return
}

// Write stores a value at an address.
// Returns ErrAddressNegative for negative addresses.
func (tape *Tape) Write(address int64, value int64) (err error) {
	if address < 0 {
		err = ErrAddressNegative
		return
	}

	size := int64(len(tape.dense))

	switch {
	case address < size:
		tape.dense[address] = value
	case address < 2*size+TAPE_GROW_SLACK:
		tape.grow(address + 1)
		tape.dense[address] = value
	default:
		if tape.sparse == nil {
			tape.sparse = map[int64]int64{}
		}
		tape.sparse[address] = value
	}

	return
}

// grow extends the dense region to hold at least size cells, migrating any
// sparse cells it now covers.
func (tape *Tape) grow(size int64) {
	old := int64(len(tape.dense))
	tape.dense = slices.Grow(tape.dense, int(size-old))
	tape.dense = tape.dense[:size]
	clear(tape.dense[old:])

	for address, value := range tape.sparse {
		if address < size {
			tape.dense[address] = value
			delete(tape.sparse, address)
		}
	}
}

// Slice returns a copy of the cells in [start, end).
func (tape *Tape) Slice(start, end int64) (values []int64) {
	for address := start; address < end; address++ {
		values = append(values, tape.Read(address))
	}

	return
}

// Clone returns an independent copy of the tape.
func (tape *Tape) Clone() (clone *Tape) {
	clone = &Tape{
		dense: slices.Clone(tape.dense),
	}
	if tape.sparse != nil {
		clone.sparse = maps.Clone(tape.sparse)
	}

	return
}
