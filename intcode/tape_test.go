package intcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Read(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape([]int64{5, 6, 7})
	assert.Equal(3, tape.Len())
	assert.Equal(int64(6), tape.Read(1))
	assert.Equal(int64(0), tape.Read(3))
	assert.Equal(int64(0), tape.Read(1<<50))

	// Negative addresses alias address 0.
	assert.Equal(int64(5), tape.Read(-1))
	assert.Equal(int64(5), tape.Read(-1000))

	empty := NewTape(nil)
	assert.Equal(int64(0), empty.Read(-1))
	assert.Equal(int64(0), empty.Read(0))
}

func TestTape_Write(t *testing.T) {
	assert := assert.New(t)

	program := []int64{1, 2, 3}
	tape := NewTape(program)

	assert.NoError(tape.Write(0, 10))
	assert.Equal(int64(10), tape.Read(0))
	assert.Equal(int64(1), program[0], "tape must not alias the program")

	// Near writes grow the dense region, zero filled.
	assert.NoError(tape.Write(100, 7))
	assert.Equal(101, tape.Len())
	assert.Equal(int64(0), tape.Read(50))
	assert.Equal(int64(7), tape.Read(100))

	// Far writes go to the sparse map.
	assert.NoError(tape.Write(1<<40, 9))
	assert.Equal(101, tape.Len())
	assert.Equal(int64(9), tape.Read(1<<40))

	assert.ErrorIs(tape.Write(-1, 1), ErrAddressNegative)
	assert.Equal(int64(10), tape.Read(0))
}

func TestTape_GrowMigratesSparse(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape([]int64{1})
	assert.NoError(tape.Write(10000, 3))
	assert.Equal(1, tape.Len())

	for address := int64(4000); address <= 9000; address += 1000 {
		assert.NoError(tape.Write(address, address))
	}
	assert.Equal(9001, tape.Len())
	assert.Len(tape.sparse, 1)

	assert.NoError(tape.Write(10500, 5))
	assert.Equal(10501, tape.Len())
	assert.Equal(int64(3), tape.Read(10000))
	assert.Equal(int64(5), tape.Read(10500))
	assert.Equal(int64(9000), tape.Read(9000))
	assert.Empty(tape.sparse)
}

func TestTape_Clone(t *testing.T) {
	assert := assert.New(t)

	tape := NewTape([]int64{1, 2})
	assert.NoError(tape.Write(1<<40, 4))

	clone := tape.Clone()
	assert.Equal(tape, clone)

	assert.NoError(clone.Write(0, 9))
	assert.NoError(clone.Write(1<<40, 8))
	assert.Equal(int64(1), tape.Read(0))
	assert.Equal(int64(4), tape.Read(1<<40))

	assert.Equal([]int64{9, 2, 0}, clone.Slice(0, 3))
}
