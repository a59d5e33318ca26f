// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"fmt"
	"log"

	"github.com/ezrec/intcode/channel"
)

// Channel is an I/O channel interface.
type Channel channel.Channel

// State is the execution state of a Machine.
type State int

const (
	STATE_READY   = State(0) // ready
	STATE_RUNNING = State(1) // running
	STATE_WAITING = State(2) // waiting
	STATE_HALTED  = State(3) // halted
)

func (state State) String() string {
	switch state {
	case STATE_READY:
		return "ready"
	case STATE_RUNNING:
		return "running"
	case STATE_WAITING:
		return "waiting"
	case STATE_HALTED:
		return "halted"
	default:
		return fmt.Sprintf("State(%d)", int(state))
	}
}

// Machine is the simulation context of a single IntCode interpreter.
type Machine struct {
	Verbose bool // Set to enable verbose logging.

	Tape         *Tape // Memory.
	Ip           int64 // Address of the next instruction word.
	RelativeBase int64 // Offset for relative mode parameters.

	Halted          bool // Set once a halt instruction executes.
	WaitingForInput bool // Set while an input instruction is stalled.

	Input  Channel // Channel read by input instructions.
	Output Channel // Channel written by output instructions.

	Ticks int // Count of executed instructions.
}

// NewMachine creates a machine loaded with a copy of the program, with
// new empty input and output channels.
func NewMachine(program []int64) (m *Machine) {
	return NewMachineWith(program, nil, nil)
}

// NewMachineWith creates a machine loaded with a copy of the program,
// attached to the given channels. A nil channel is replaced by a new
// empty Fifo.
func NewMachineWith(program []int64, input, output Channel) (m *Machine) {
	if input == nil {
		input = &channel.Fifo{}
	}
	if output == nil {
		output = &channel.Fifo{}
	}

	m = &Machine{
		Tape:   NewTape(program),
		Input:  input,
		Output: output,
	}

	return
}

// State returns the current execution state.
func (m *Machine) State() State {
	switch {
	case m.Halted:
		return STATE_HALTED
	case m.WaitingForInput:
		return STATE_WAITING
	case m.Ticks == 0:
		return STATE_READY
	default:
		return STATE_RUNNING
	}
}

// String returns the register state as a string.
func (m *Machine) String() (text string) {
	text += fmt.Sprintf("% 8s: %d\n", "ip", m.Ip)
	inst := Decode(m.Tape.Read(m.Ip))
	text += fmt.Sprintf("% 8s: %v\n", "word", inst)
	text += fmt.Sprintf("% 8s: %v\n", "code", m.Tape.Slice(m.Ip, m.Ip+1+int64(inst.Opcode.Params())))
	text += fmt.Sprintf("% 8s: %d\n", "base", m.RelativeBase)
	text += fmt.Sprintf("% 8s: %v\n", "state", m.State())
	text += fmt.Sprintf("% 8s: %d\n", "input", m.Input.Len())
	text += fmt.Sprintf("% 8s: %d\n", "output", m.Output.Len())
	text += fmt.Sprintf("% 8s: %d\n", "ticks", m.Ticks)

	return
}

// address resolves the address designated by the n'th parameter of the
// instruction at Ip. An immediate parameter designates its own cell.
func (m *Machine) address(inst Instruction, n int) (address int64, err error) {
	cell := m.Ip + 1 + int64(n)

	mode := inst.Mode(n)
	switch mode {
	case MODE_POSITION:
		address = m.Tape.Read(cell)
	case MODE_IMMEDIATE:
		address = cell
	case MODE_RELATIVE:
		address = m.Tape.Read(cell) + m.RelativeBase
	default:
		err = ErrUnknownMode{Mode: mode, Ip: m.Ip, Param: n}
		return
	}

	if m.Verbose {
		log.Printf("%04d:   %v[%d] %v -> %d", m.Ip, inst.Opcode, n, mode, address)
	}

	return
}

// load returns the value of the n'th parameter.
func (m *Machine) load(inst Instruction, n int) (value int64, err error) {
	address, err := m.address(inst, n)
	if err != nil {
		return
	}

	if address < 0 && m.Verbose {
		log.Printf("%04d:   %v[%d] suspicious read of address %d, using address 0", m.Ip, inst.Opcode, n, address)
	}

	value = m.Tape.Read(address)
	return
}

// target returns the write address of the n'th parameter.
func (m *Machine) target(inst Instruction, n int) (address int64, err error) {
	if inst.Mode(n) == MODE_IMMEDIATE {
		err = ErrInvalidWriteTarget{Opcode: inst.Opcode, Ip: m.Ip, Param: n}
		return
	}

	address, err = m.address(inst, n)
	if err != nil {
		return
	}

	if address < 0 {
		err = ErrInvalidAddress{Address: address, Ip: m.Ip}
		return
	}

	return
}

// Tick executes a single instruction.
//
// An input instruction with an empty input channel changes nothing but the
// WaitingForInput flag, and will be retried by the next Tick.
// Ticking a halted machine does nothing.
func (m *Machine) Tick() (err error) {
	if m.Halted {
		return
	}

	inst := Decode(m.Tape.Read(m.Ip))
	if !inst.Opcode.Valid() {
		err = ErrUnknownOpcode{Opcode: int64(inst.Opcode), Ip: m.Ip}
		return
	}

	if m.Verbose {
		log.Printf("%04d: %v (%d)", m.Ip, inst, inst.Word)
	}

	next_ip := m.Ip + 1 + int64(inst.Opcode.Params())

	switch inst.Opcode {
	case OP_ADD, OP_MUL, OP_LESS_THAN, OP_EQUALS:
		var a, b, dst int64
		a, err = m.load(inst, 0)
		if err != nil {
			return
		}
		b, err = m.load(inst, 1)
		if err != nil {
			return
		}
		dst, err = m.target(inst, 2)
		if err != nil {
			return
		}
		var value int64
		switch inst.Opcode {
		case OP_ADD:
			value = a + b
		case OP_MUL:
			value = a * b
		case OP_LESS_THAN:
			if a < b {
				value = 1
			}
		case OP_EQUALS:
			if a == b {
				value = 1
			}
		}
		err = m.Tape.Write(dst, value)
	case OP_INPUT:
		var dst int64
		dst, err = m.target(inst, 0)
		if err != nil {
			return
		}
		if m.Input.Len() == 0 {
			if m.Verbose && !m.WaitingForInput {
				log.Printf("%04d: waiting for input", m.Ip)
			}
			// Don't advance to next IP.
			m.WaitingForInput = true
			return
		}
		var value int64
		value, err = m.Input.Pop()
		if err != nil {
			return
		}
		m.WaitingForInput = false
		err = m.Tape.Write(dst, value)
	case OP_OUTPUT:
		var value int64
		value, err = m.load(inst, 0)
		if err != nil {
			return
		}
		if m.Verbose {
			log.Printf("%04d: output %d", m.Ip, value)
		}
		m.Output.Push(value)
	case OP_JUMP_IF_TRUE, OP_JUMP_IF_FALSE:
		var cond, dest int64
		cond, err = m.load(inst, 0)
		if err != nil {
			return
		}
		dest, err = m.load(inst, 1)
		if err != nil {
			return
		}
		if (cond != 0) == (inst.Opcode == OP_JUMP_IF_TRUE) {
			next_ip = dest
		}
	case OP_ADJUST_BASE:
		var delta int64
		delta, err = m.load(inst, 0)
		if err != nil {
			return
		}
		m.RelativeBase += delta
	case OP_HALT:
		m.Halted = true
		next_ip = m.Ip
	}

	if err != nil {
		return
	}

	m.Ip = next_ip
	m.Ticks++

	return
}
