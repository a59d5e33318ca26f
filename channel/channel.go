// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package channel provides the integer I/O channels attached to IntCode
// machines. A channel is an ordered queue of values; assigning the same
// channel as the output of one machine and the input of another chains the
// two machines together.
package channel

import (
	"iter"
)

// Channel defines the interface for all integer channels.
type Channel interface {
	// Len returns the number of values that can be popped.
	Len() int
	// All returns an iterator over the queued values, oldest first.
	// Iteration does not consume the values.
	All() iter.Seq[int64]
	// Push appends a value.
	Push(value int64)
	// Pop removes and returns the oldest value.
	// Returns ErrChannelEmpty if there is nothing to pop.
	Pop() (value int64, err error)
	// Clear discards all queued values.
	Clear()
	// Extend pushes the values in order.
	Extend(values ...int64)
}
