package intcode

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		word   int64
		opcode Opcode
		modes  []Mode
		text   string
	}){
		{1, OP_ADD, []Mode{MODE_POSITION, MODE_POSITION, MODE_POSITION}, "add.pos.pos.pos"},
		{1002, OP_MUL, []Mode{MODE_POSITION, MODE_IMMEDIATE, MODE_POSITION}, "mul.pos.imm.pos"},
		{21107, OP_LESS_THAN, []Mode{MODE_IMMEDIATE, MODE_IMMEDIATE, MODE_RELATIVE}, "lt.imm.imm.rel"},
		{203, OP_INPUT, []Mode{MODE_RELATIVE}, "in.rel"},
		{104, OP_OUTPUT, []Mode{MODE_IMMEDIATE}, "out.imm"},
		{1105, OP_JUMP_IF_TRUE, []Mode{MODE_IMMEDIATE, MODE_IMMEDIATE}, "jt.imm.imm"},
		{6, OP_JUMP_IF_FALSE, []Mode{MODE_POSITION, MODE_POSITION}, "jf.pos.pos"},
		{208, OP_EQUALS, []Mode{MODE_RELATIVE, MODE_POSITION, MODE_POSITION}, "eq.rel.pos.pos"},
		{109, OP_ADJUST_BASE, []Mode{MODE_IMMEDIATE}, "arb.imm"},
		{99, OP_HALT, []Mode{}, "halt"},
		// Surplus mode digits are ignored.
		{12104, OP_OUTPUT, []Mode{MODE_IMMEDIATE}, "out.imm"},
		// Negative words use floored modulo and the mode digits of the magnitude.
		{-1, OP_HALT, []Mode{}, "halt"},
		{-99, OP_ADD, []Mode{MODE_POSITION, MODE_POSITION, MODE_POSITION}, "add.pos.pos.pos"},
		{-1099, OP_ADD, []Mode{MODE_POSITION, MODE_IMMEDIATE, MODE_POSITION}, "add.pos.imm.pos"},
	}

	for _, entry := range table {
		inst := Decode(entry.word)
		name := fmt.Sprintf("%d", entry.word)
		assert.Equal(entry.opcode, inst.Opcode, name)
		assert.Equal(entry.modes, inst.Modes, name)
		assert.Equal(entry.text, inst.String(), name)
		assert.True(inst.Opcode.Valid(), name)
	}
}

func TestDecode_Unknown(t *testing.T) {
	assert := assert.New(t)

	for _, word := range []int64{0, 10, 98, 100, 1012, -2, -100} {
		inst := Decode(word)
		assert.False(inst.Opcode.Valid(), word)
		assert.Empty(inst.Modes, word)
	}

	assert.Equal("Opcode(42)", Opcode(42).String())
	assert.Equal("Mode(7)", Mode(7).String())
	assert.Equal(MODE_POSITION, Decode(1).Mode(5))
}
