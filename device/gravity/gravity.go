// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package gravity runs the gravity assist program, which takes a noun at
// address 1 and a verb at address 2, and leaves its result at address 0.
package gravity

import (
	"errors"
	"log"

	"github.com/ezrec/intcode/intcode"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var ErrNotFound = errors.New(f("no noun and verb produce the target"))

const (
	NOUN_MAX = 99 // largest noun searched
	VERB_MAX = 99 // largest verb searched
)

// Assist holds the gravity assist program.
type Assist struct {
	Verbose bool // If set, enables verbose logging.
	Program []int64
}

// Run executes a fresh copy of the program with the noun and verb patched in,
// and returns the value left at address 0.
func (ga *Assist) Run(noun, verb int64) (result int64, err error) {
	return ga.run(intcode.NewTape(ga.Program), noun, verb)
}

// run executes a copy of the tape with the noun and verb patched in.
func (ga *Assist) run(tape *intcode.Tape, noun, verb int64) (result int64, err error) {
	machine := intcode.NewMachine(nil)
	machine.Verbose = ga.Verbose
	machine.Tape = tape.Clone()

	// Addresses 1 and 2 are never negative.
	_ = machine.Tape.Write(1, noun)
	_ = machine.Tape.Write(2, verb)

	_, err = machine.Run()
	if err != nil {
		return
	}

	result = machine.Tape.Read(0)
	if ga.Verbose {
		log.Printf("gravity: noun %d verb %d => %d", noun, verb, result)
	}

	return
}

// Search finds the noun and verb producing target, and returns 100*noun+verb.
func (ga *Assist) Search(target int64) (answer int64, err error) {
	tape := intcode.NewTape(ga.Program)

	for noun := int64(0); noun <= NOUN_MAX; noun++ {
		for verb := int64(0); verb <= VERB_MAX; verb++ {
			var result int64
			result, err = ga.run(tape, noun, verb)
			if err != nil {
				// Some patches make nonsense programs.
				err = nil
				continue
			}
			if result == target {
				answer = 100*noun + verb
				return
			}
		}
	}

	err = ErrNotFound
	return
}
