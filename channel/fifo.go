// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package channel

import (
	"iter"
	"slices"
)

// Fifo is an unbounded first-in first-out queue.
// The zero value is an empty queue ready to use.
type Fifo struct {
	Data      []int64
	ReadIndex int
}

var _ Channel = (*Fifo)(nil)

// NewFifo creates a queue holding the initial values.
func NewFifo(values ...int64) (fifo *Fifo) {
	fifo = &Fifo{
		Data: slices.Clone(values),
	}

	return
}

// Len returns the count of unread values.
func (fifo *Fifo) Len() int {
	return len(fifo.Data) - fifo.ReadIndex
}

// All returns an iterator over the unread values.
func (fifo *Fifo) All() iter.Seq[int64] {
	return func(yield func(value int64) bool) {
		for n := fifo.ReadIndex; n < len(fifo.Data); n++ {
			if !yield(fifo.Data[n]) {
				return
			}
		}
	}
}

// Push appends a value to the end of the queue.
func (fifo *Fifo) Push(value int64) {
	fifo.Data = append(fifo.Data, value)
}

// Pop removes the value at the head of the queue.
func (fifo *Fifo) Pop() (value int64, err error) {
	if fifo.Len() == 0 {
		err = ErrChannelEmpty
		return
	}

	value = fifo.Data[fifo.ReadIndex]
	fifo.ReadIndex++

	// Reclaim the consumed prefix once it dominates the buffer.
	if fifo.ReadIndex == len(fifo.Data) {
		fifo.Data = fifo.Data[:0]
		fifo.ReadIndex = 0
	} else if fifo.ReadIndex >= 64 && fifo.ReadIndex*2 >= len(fifo.Data) {
		fifo.Data = append(fifo.Data[:0], fifo.Data[fifo.ReadIndex:]...)
		fifo.ReadIndex = 0
	}

	return
}

// Clear empties the queue.
func (fifo *Fifo) Clear() {
	fifo.Data = fifo.Data[:0]
	fifo.ReadIndex = 0
}

// Extend appends the values in order.
func (fifo *Fifo) Extend(values ...int64) {
	fifo.Data = append(fifo.Data, values...)
}
