// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"fmt"
	"strings"
)

// Opcode is an IntCode operation.
type Opcode int64

const (
	OP_ADD           = Opcode(1)  // add
	OP_MUL           = Opcode(2)  // mul
	OP_INPUT         = Opcode(3)  // in
	OP_OUTPUT        = Opcode(4)  // out
	OP_JUMP_IF_TRUE  = Opcode(5)  // jt
	OP_JUMP_IF_FALSE = Opcode(6)  // jf
	OP_LESS_THAN     = Opcode(7)  // lt
	OP_EQUALS        = Opcode(8)  // eq
	OP_ADJUST_BASE   = Opcode(9)  // arb
	OP_HALT          = Opcode(99) // halt
)

var _opcode_name = map[Opcode]string{
	OP_ADD:           "add",
	OP_MUL:           "mul",
	OP_INPUT:         "in",
	OP_OUTPUT:        "out",
	OP_JUMP_IF_TRUE:  "jt",
	OP_JUMP_IF_FALSE: "jf",
	OP_LESS_THAN:     "lt",
	OP_EQUALS:        "eq",
	OP_ADJUST_BASE:   "arb",
	OP_HALT:          "halt",
}

func (op Opcode) String() string {
	name, ok := _opcode_name[op]
	if !ok {
		return fmt.Sprintf("Opcode(%d)", int64(op))
	}
	return name
}

// Valid returns true for the ten defined opcodes.
func (op Opcode) Valid() bool {
	_, ok := _opcode_name[op]
	return ok
}

// Params returns the number of parameters the opcode takes.
func (op Opcode) Params() int {
	switch op {
	case OP_ADD, OP_MUL, OP_LESS_THAN, OP_EQUALS:
		return 3
	case OP_JUMP_IF_TRUE, OP_JUMP_IF_FALSE:
		return 2
	case OP_INPUT, OP_OUTPUT, OP_ADJUST_BASE:
		return 1
	default:
		return 0
	}
}

// Mode is a parameter addressing mode.
type Mode int

const (
	MODE_POSITION  = Mode(0) // pos
	MODE_IMMEDIATE = Mode(1) // imm
	MODE_RELATIVE  = Mode(2) // rel
)

func (mode Mode) String() string {
	switch mode {
	case MODE_POSITION:
		return "pos"
	case MODE_IMMEDIATE:
		return "imm"
	case MODE_RELATIVE:
		return "rel"
	default:
		return fmt.Sprintf("Mode(%d)", int(mode))
	}
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Word   int64
	Opcode Opcode
	Modes  []Mode // Mode of each parameter, first parameter first.
}

// Decode splits an instruction word into its opcode and parameter modes.
// Missing mode digits are position mode.
func Decode(word int64) (inst Instruction) {
	inst.Word = word
	// Floored modulo, so negative words decode to opcodes 0..99.
	inst.Opcode = Opcode((word%100 + 100) % 100)

	digits := word / 100
	if digits < 0 {
		digits = -digits
	}
	params := inst.Opcode.Params()
	inst.Modes = make([]Mode, params)
	for n := range params {
		inst.Modes[n] = Mode(digits % 10)
		digits /= 10
	}

	return
}

// Mode returns the mode of the n'th (zero based) parameter.
func (inst Instruction) Mode(n int) Mode {
	if n < 0 || n >= len(inst.Modes) {
		return MODE_POSITION
	}
	return inst.Modes[n]
}

// String returns the mnemonic form, ie 'add.imm.pos.rel'.
func (inst Instruction) String() string {
	parts := []string{inst.Opcode.String()}
	for _, mode := range inst.Modes {
		parts = append(parts, mode.String())
	}
	return strings.Join(parts, ".")
}
