// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package intcode

import (
	"slices"
)

// Run appends the inputs to the input channel, and ticks until the machine
// halts. Returns all values in the output channel, which is then cleared.
//
// If the machine stalls on input, Run returns ErrInputStarved; no more input
// can arrive while Run holds the machine. The output channel is left as-is.
func (m *Machine) Run(inputs ...int64) (outputs []int64, err error) {
	m.Input.Extend(inputs...)

	for !m.Halted {
		err = m.Tick()
		if err != nil {
			return
		}
		if m.WaitingForInput {
			err = ErrInputStarved
			return
		}
	}

	outputs = slices.Collect(m.Output.All())
	m.Output.Clear()

	return
}

// RunUntilOutput appends the inputs to the input channel, and ticks until
// the output channel holds at least n values, the machine halts, or the
// machine stalls on input.
//
// A stall returns ok = false, so that the caller can supply more input and
// call again; buffered output is kept for that call. Otherwise every value
// in the output channel is returned, and the channel is cleared. That is
// n values, unless the machine halted with fewer or more were already
// buffered before the call.
func (m *Machine) RunUntilOutput(n int, inputs ...int64) (outputs []int64, ok bool, err error) {
	m.Input.Extend(inputs...)

	for m.Output.Len() < n && !m.Halted {
		err = m.Tick()
		if err != nil {
			return
		}
		if m.WaitingForInput {
			return
		}
	}

	outputs = slices.Collect(m.Output.All())
	m.Output.Clear()
	ok = true

	return
}
