// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs a single IntCode machine as an interactive session,
// pulling input on demand and streaming output as it is produced.
package emulator

import (
	"log"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/program"
)

// InputFunc supplies the next input values when the machine stalls.
// Returning no values, or ok = false, ends the session.
type InputFunc func() (values []int64, ok bool)

// OutputFunc receives each output value in order.
type OutputFunc func(value int64) error

// Emulator state. Machine + program + session I/O.
type Emulator struct {
	Verbose          bool            // If set, enables verbose logging.
	*intcode.Machine                 // Reference to the running machine.
	Program          program.Program // Reference to the loaded program.

	Input  InputFunc
	Output OutputFunc
}

// NewEmulator creates a new emulator, ready to run the program.
func NewEmulator(prog program.Program) (emu *Emulator) {
	emu = &Emulator{
		Program: prog.Clone(),
	}

	emu.Reset()

	return
}

// Reset reloads the program into a fresh machine.
func (emu *Emulator) Reset() {
	emu.Machine = intcode.NewMachine(emu.Program)
	emu.Machine.Verbose = emu.Verbose
}

// drain passes all pending output to the output function.
func (emu *Emulator) drain() (err error) {
	for emu.Machine.Output.Len() > 0 {
		var value int64
		value, err = emu.Machine.Output.Pop()
		if err != nil {
			return
		}
		if emu.Output != nil {
			err = emu.Output(value)
			if err != nil {
				return
			}
		}
	}

	return
}

// Tick performs a single tick of the emulator.
//
// When the machine stalls on input, the input function is asked for more.
// done is set when the machine halts.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set machine verbosity
	emu.Machine.Verbose = emu.Verbose

	ip := emu.Machine.Ip
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, Err: err}
		}
	}()

	err = emu.Machine.Tick()
	if err != nil {
		return
	}

	err = emu.drain()
	if err != nil {
		return
	}

	if emu.Machine.WaitingForInput {
		var values []int64
		var ok bool
		if emu.Input != nil {
			values, ok = emu.Input()
		}
		if !ok || len(values) == 0 {
			err = intcode.ErrInputStarved
			return
		}
		if emu.Verbose {
			log.Printf("emulator: input %v", values)
		}
		emu.Machine.Input.Extend(values...)
	}

	done = emu.Machine.Halted

	return
}

// Run ticks the emulator until the machine halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
