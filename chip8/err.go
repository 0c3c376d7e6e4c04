// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package chip8

import (
	"errors"

	"github.com/ezrec/chip8asm/translate"
)

var f = translate.From

var (
	// Assembler errors
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
)

// ErrLabelMissing is returned when an address operand names an undefined label.
type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

// ErrOperandRange is returned when a numeric operand does not fit its field.
type ErrOperandRange struct {
	Operand string
	Bits    int
}

func (err ErrOperandRange) Error() string {
	return f("'%v' does not fit in %d bits", err.Operand, err.Bits)
}

// ErrAddressRange is returned when a label resolves beyond addressable memory.
type ErrAddressRange struct {
	Label string
	Addr  int
}

func (err ErrAddressRange) Error() string {
	return f("label %v address 0x%x out of range", err.Label, err.Addr)
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
