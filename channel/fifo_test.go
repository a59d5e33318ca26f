package channel

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFifo_Order(t *testing.T) {
	assert := assert.New(t)

	fifo := &Fifo{}
	assert.Equal(0, fifo.Len())

	for n := range 200 {
		fifo.Push(int64(n * 3))
	}
	assert.Equal(200, fifo.Len())

	for n := range 200 {
		value, err := fifo.Pop()
		assert.NoError(err)
		assert.Equal(int64(n*3), value)
	}

	assert.Equal(0, fifo.Len())
}

func TestFifo_Interleaved(t *testing.T) {
	assert := assert.New(t)

	fifo := NewFifo(1, 2)
	fifo.Push(3)

	value, err := fifo.Pop()
	assert.NoError(err)
	assert.Equal(int64(1), value)

	fifo.Extend(4, 5)
	assert.Equal([]int64{2, 3, 4, 5}, slices.Collect(fifo.All()))

	// Iteration does not consume.
	assert.Equal(4, fifo.Len())

	for _, expect := range []int64{2, 3, 4, 5} {
		value, err = fifo.Pop()
		assert.NoError(err)
		assert.Equal(expect, value)
	}
}

func TestFifo_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	fifo := &Fifo{}
	value, err := fifo.Pop()
	assert.ErrorIs(err, ErrChannelEmpty)
	assert.Equal(int64(0), value)

	fifo.Push(7)
	fifo.Clear()
	_, err = fifo.Pop()
	assert.ErrorIs(err, ErrChannelEmpty)
}

func TestFifo_Compaction(t *testing.T) {
	assert := assert.New(t)

	fifo := &Fifo{}
	var next int64
	var expect int64
	for range 1000 {
		fifo.Extend(next, next+1, next+2)
		next += 3
		for range 2 {
			value, err := fifo.Pop()
			assert.NoError(err)
			assert.Equal(expect, value)
			expect++
		}
	}

	assert.Equal(1000, fifo.Len())
	assert.LessOrEqual(fifo.ReadIndex, len(fifo.Data))
}

func TestFifo_EarlyStop(t *testing.T) {
	assert := assert.New(t)

	fifo := NewFifo(10, 20, 30)
	var seen []int64
	for value := range fifo.All() {
		seen = append(seen, value)
		if len(seen) == 2 {
			break
		}
	}

	assert.Equal([]int64{10, 20}, seen)
	assert.Equal(3, fifo.Len())
}
