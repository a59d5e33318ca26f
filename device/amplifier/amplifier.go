// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package amplifier drives a chain of IntCode amplifiers.
//
// Every amplifier runs the same program. The output channel of each
// amplifier is the input channel of the next; with feedback, the output of
// the last amplifier is wired back to the input of the first, forming a
// ring. Each amplifier is first given its phase setting, then the signal
// passes down the chain.
//
// All amplifiers are stepped one instruction at a time, in turn, until all
// have halted. An amplifier waiting on a signal not produced yet simply
// stalls until a later round.
package amplifier

import (
	"errors"
	"log"
	"slices"

	"github.com/ezrec/intcode/channel"
	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrDeadlock = errors.New(f("amplifier chain deadlocked"))
	ErrNoSignal = errors.New(f("amplifier chain produced no signal"))
	ErrNoPhases = errors.New(f("amplifier chain has no phases"))
)

var (
	// Phases for a serial chain.
	SERIAL_PHASES = []int64{0, 1, 2, 3, 4}
	// Phases for a feedback ring.
	FEEDBACK_PHASES = []int64{5, 6, 7, 8, 9}
)

// Chain of amplifiers.
type Chain struct {
	Verbose  bool               // If set, enables verbose logging.
	Feedback bool               // If set, the chain is a ring.
	Phases   []int64            // Phase setting of each amplifier.
	Amps     []*intcode.Machine // Amplifiers, in signal order.
}

// NewChain builds a chain with one amplifier per phase setting.
func NewChain(program []int64, phases []int64, feedback bool) (chain *Chain) {
	chain = &Chain{
		Feedback: feedback,
		Phases:   slices.Clone(phases),
	}

	input := intcode.Channel(&channel.Fifo{})
	first := input
	for n, phase := range phases {
		var output intcode.Channel
		if feedback && n == len(phases)-1 {
			output = first
		} else {
			output = &channel.Fifo{}
		}
		input.Push(phase)
		amp := intcode.NewMachineWith(program, input, output)
		chain.Amps = append(chain.Amps, amp)
		input = output
	}

	return
}

// halted returns true if all amplifiers have halted.
func (chain *Chain) halted() bool {
	for _, amp := range chain.Amps {
		if !amp.Halted {
			return false
		}
	}
	return true
}

// stuck returns true if amplifiers are still running, but none of them
// can make progress.
func (chain *Chain) stuck() bool {
	live := 0
	for _, amp := range chain.Amps {
		if amp.Halted {
			continue
		}
		if !amp.WaitingForInput || amp.Input.Len() > 0 {
			return false
		}
		live++
	}
	return live > 0
}

// Round ticks every amplifier once, in chain order.
func (chain *Chain) Round() (err error) {
	for n, amp := range chain.Amps {
		amp.Verbose = chain.Verbose
		err = amp.Tick()
		if err != nil {
			if chain.Verbose {
				log.Printf("amplifier %d: %v", n, err)
			}
			return
		}
	}

	return
}

// Signal feeds the seed signal to the first amplifier, runs the chain until
// every amplifier halts, and returns the last signal of the chain.
func (chain *Chain) Signal(seed int64) (signal int64, err error) {
	if len(chain.Amps) == 0 {
		err = ErrNoPhases
		return
	}

	chain.Amps[0].Input.Push(seed)

	for !chain.halted() {
		err = chain.Round()
		if err != nil {
			return
		}
		if chain.stuck() {
			err = ErrDeadlock
			return
		}
	}

	last := chain.Amps[len(chain.Amps)-1].Output
	if last.Len() == 0 {
		err = ErrNoSignal
		return
	}

	// The last value produced is the answer.
	for last.Len() > 0 {
		signal, err = last.Pop()
		if err != nil {
			return
		}
	}

	if chain.Verbose {
		log.Printf("amplifier: phases %v signal %d", chain.Phases, signal)
	}

	return
}

// MaxSignal tries every ordering of the phase settings, and returns the
// strongest signal with the phases that produced it.
func MaxSignal(program []int64, phases []int64, feedback bool) (best int64, bestPhases []int64, err error) {
	if len(phases) == 0 {
		err = ErrNoPhases
		return
	}

	for order := range internal.Permutations(phases) {
		chain := NewChain(program, order, feedback)
		var signal int64
		signal, err = chain.Signal(0)
		if err != nil {
			return
		}
		if bestPhases == nil || signal > best {
			best = signal
			bestPhases = order
		}
	}

	return
}
