// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package chip8

import (
	"bufio"
	"io"
	"log"
	"maps"
)

// Assembler is a two pass assembler for CHIP-8 programs.
type Assembler struct {
	Verbose      bool        // If set, verbosely logs the assembler actions.
	Origin       int         // Program load address. Zero selects ADDR_ORIGIN.
	StandardCall bool        // If set, CALL encodes in the 0x2 family.
	Symbols      SymbolTable // Labels of the most recent Parse.
}

// Predefine binds a label to a fixed address for every Parse.
func (asm *Assembler) Predefine(name string, addr int) {
	asm.Symbols.Predefine(name, addr)
}

// origin returns the program load address.
func (asm *Assembler) origin() int {
	if asm.Origin == 0 {
		return int(ADDR_ORIGIN)
	}
	return asm.Origin
}

// encode returns the instruction word using the configured CALL family.
func (asm *Assembler) encode(ins Instruction) Code {
	if asm.StandardCall {
		return ins.EncodeStandard()
	}
	return ins.Encode()
}

// Parse assembles an input stream into a Program.
// No Program is returned if any line fails.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	var lines []Line

	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		lines = append(lines, Classify(scanner.Text()))
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// Pass 1: label addresses.
	err = asm.Symbols.Build(asm.origin(), lines)
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, line := range lines {
			if len(line.Label) == 0 {
				continue
			}
			addr, _ := asm.Symbols.Lookup(line.Label)
			log.Printf("label %v = 0x%03x\n", line.Label, addr)
		}
	}

	// Pass 2: instructions.
	opcodes := make([]Opcode, 0, len(lines))
	ip := asm.origin()
	for n, line := range lines {
		if line.Kind != LINE_INSTRUCTION {
			continue
		}

		var ins Instruction
		ins, err = ParseInstruction(line, &asm.Symbols)
		if err != nil {
			err = &ErrSyntax{LineNo: n + 1, Line: line.Text, Err: err}
			return
		}

		code := asm.encode(ins)
		if asm.Verbose {
			log.Printf("%v: %03x %v %v\n", n+1, ip, code, ins)
		}

		opcodes = append(opcodes, Opcode{
			LineNo:      n + 1,
			Ip:          ip,
			Text:        line.Text,
			Instruction: ins,
			Code:        code,
		})
		ip += 2
	}

	prog = &Program{
		Origin:  asm.origin(),
		Opcodes: opcodes,
		Symbols: maps.Collect(asm.Symbols.All()),
	}

	return
}

// Assemble parses the input and writes the program binary to output.
// Nothing is written if assembly fails.
func (asm *Assembler) Assemble(input io.Reader, output io.Writer) (err error) {
	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	_, err = prog.WriteTo(output)
	return
}
