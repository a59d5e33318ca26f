package intcode

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Tape errors
	ErrAddressNegative = errors.New(f("negative address"))

	// Machine errors
	ErrInputStarved = errors.New(f("input starved"))
)

// ErrUnknownOpcode is a fatal decode error.
type ErrUnknownOpcode struct {
	Opcode int64 // Opcode, the low two digits of the instruction word.
	Ip     int64 // Address of the instruction word.
}

func (err ErrUnknownOpcode) Error() string {
	return f("ip %d unknown opcode %d", err.Ip, err.Opcode)
}

// ErrUnknownMode is a fatal decode error for a parameter mode digit
// outside of position, immediate or relative.
type ErrUnknownMode struct {
	Mode  Mode
	Ip    int64
	Param int
}

func (err ErrUnknownMode) Error() string {
	return f("ip %d parameter %d unknown mode %d", err.Ip, err.Param+1, int(err.Mode))
}

// ErrInvalidWriteTarget is returned when an instruction would store its
// result through an immediate mode parameter.
type ErrInvalidWriteTarget struct {
	Opcode Opcode
	Ip     int64
	Param  int
}

func (err ErrInvalidWriteTarget) Error() string {
	return f("ip %d %v parameter %d is an immediate write target", err.Ip, err.Opcode, err.Param+1)
}

// ErrInvalidAddress is returned when an instruction would store its result
// at a negative address.
type ErrInvalidAddress struct {
	Address int64
	Ip      int64
}

func (err ErrInvalidAddress) Error() string {
	return f("ip %d invalid address %d", err.Ip, err.Address)
}

func (err ErrInvalidAddress) Unwrap() error {
	return ErrAddressNegative
}
