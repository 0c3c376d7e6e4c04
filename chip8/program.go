// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package chip8

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"maps"
	"slices"
)

// Opcode is a single assembled line of source.
type Opcode struct {
	LineNo      int
	Ip          int
	Text        string
	Instruction Instruction
	Code        Code
}

// Program is the output of the assembler.
type Program struct {
	Origin  int            // Load address of the first opcode.
	Opcodes []Opcode       // Opcodes in address order.
	Symbols map[string]int // Resolved labels.
}

type Debug struct {
	*Opcode
	Index int // Byte offset within the opcode.
}

// Debug finds the opcode covering an address.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if addr >= op.Ip && addr < op.Ip+2 {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  addr - op.Ip,
			}
			break
		}
	}

	return
}

// Binary returns the big-endian program image.
func (prog *Program) Binary() (bins []byte) {
	bins = make([]byte, 0, 2*len(prog.Opcodes))
	for _, code := range prog.Codes() {
		word := code.Bytes()
		bins = append(bins, word[:]...)
	}

	return
}

// WriteTo writes the program image.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	count, err := w.Write(prog.Binary())
	n = int64(count)
	return
}

// Codes iterates over the address and word of each opcode.
func (prog *Program) Codes() iter.Seq2[int, Code] {
	return func(yield func(ip int, code Code) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Code) {
				return
			}
		}
	}
}

// Listing writes an address, word and source line for each opcode,
// followed by the symbol table sorted by address.
func (prog *Program) Listing(w io.Writer) (err error) {
	for _, op := range prog.Opcodes {
		_, err = fmt.Fprintf(w, "%03X  %v  %5d  %v\n", op.Ip, op.Code, op.LineNo, op.Text)
		if err != nil {
			return
		}
	}

	if len(prog.Symbols) == 0 {
		return
	}

	_, err = fmt.Fprintf(w, "\n; %v\n", f("symbols"))
	if err != nil {
		return
	}

	names := slices.SortedFunc(maps.Keys(prog.Symbols), func(a, b string) int {
		return cmp.Or(cmp.Compare(prog.Symbols[a], prog.Symbols[b]), cmp.Compare(a, b))
	})
	for _, name := range names {
		_, err = fmt.Fprintf(w, "%03X  %v\n", prog.Symbols[name], name)
		if err != nil {
			return
		}
	}

	return
}
