// Package intcode implements the IntCode virtual machine.
//
// A Machine owns a Tape of signed integers, an instruction pointer, a
// relative base register, and an input and output Channel. Each Tick decodes
// and executes exactly one variable length instruction. An input instruction
// with nothing to read does not execute at all: the Machine is flagged as
// waiting for input, and the same instruction is retried on the next Tick.
// This allows several machines sharing channels to be stepped in turn by a
// single caller, without threads.
//
// Instruction words encode the opcode in the two low decimal digits, and one
// parameter mode per higher decimal digit, the hundreds digit applying to the
// first parameter.
package intcode
