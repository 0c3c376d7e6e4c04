// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package chip8

import (
	"regexp"
	"strconv"
)

// Operand placeholders used in the grammar table. Any other operand in a
// grammar is a keyword that must appear verbatim.
const (
	operandVx     = "Vx"
	operandVy     = "Vy"
	operandByte   = "byte"
	operandNibble = "nibble"
	operandAddr   = "addr"
)

// grammar is the textual form of a single operation.
type grammar struct {
	Op       Op
	Mnemonic string
	Operands []string
}

// grammars holds one entry per operation. Entries never overlap: the
// mnemonic, operand count and keyword positions select at most one.
var grammars = []grammar{
	{OP_CLS, "CLS", nil},
	{OP_RET, "RET", nil},
	{OP_SYS, "SYS", []string{operandAddr}},
	{OP_JMP, "JP", []string{operandAddr}},
	{OP_CALL, "CALL", []string{operandAddr}},
	{OP_SKIP_EQ, "SE", []string{operandVx, operandByte}},
	{OP_SKIP_NE, "SNE", []string{operandVx, operandByte}},
	{OP_SKIP_EQ_VX, "SE", []string{operandVx, operandVy}},
	{OP_LOAD, "LD", []string{operandVx, operandByte}},
	{OP_ADD, "ADD", []string{operandVx, operandByte}},
	{OP_LOAD_VX, "LD", []string{operandVx, operandVy}},
	{OP_OR, "OR", []string{operandVx, operandVy}},
	{OP_AND, "AND", []string{operandVx, operandVy}},
	{OP_XOR, "XOR", []string{operandVx, operandVy}},
	{OP_ADD_VX, "ADD", []string{operandVx, operandVy}},
	{OP_SUB_VX, "SUB", []string{operandVx, operandVy}},
	{OP_SHR, "SHR", []string{operandVx}},
	{OP_SUBN, "SUBN", []string{operandVx, operandVy}},
	{OP_SHL, "SHL", []string{operandVx}},
	{OP_SKIP_NE_VX, "SNE", []string{operandVx, operandVy}},
	{OP_LOAD_I, "LD", []string{"I", operandAddr}},
	{OP_JMP_V0, "JP", []string{"V0", operandAddr}},
	{OP_RAND, "RND", []string{operandVx, operandByte}},
	{OP_DRAW, "DRW", []string{operandVx, operandVy, operandNibble}},
	{OP_SKIP_KEY, "SKP", []string{operandVx}},
	{OP_SKIP_NOT_KEY, "SKNP", []string{operandVx}},
	{OP_LOAD_DELAY, "LD", []string{operandVx, "DT"}},
	{OP_LOAD_KEY, "LD", []string{operandVx, "K"}},
	{OP_SET_DELAY, "LD", []string{"DT", operandVx}},
	{OP_SET_SOUND, "LD", []string{"ST", operandVx}},
	{OP_ADD_I, "ADD", []string{"I", operandVx}},
	{OP_LOAD_FONT, "LD", []string{"F", operandVx}},
	{OP_LOAD_BCD, "LD", []string{"B", operandVx}},
	{OP_STORE_REGS, "LD", []string{"[I]", operandVx}},
	{OP_LOAD_REGS, "LD", []string{operandVx, "[I]"}},
}

var (
	reRegister = regexp.MustCompile(`^V[0-9a-fA-F]+$`)
	reHex      = regexp.MustCompile(`^[0-9a-fA-F]+$`)
	reSymbol   = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
)

// matches reports whether the operands have the structure of the grammar.
// Values are not range checked.
func (gr *grammar) matches(mnemonic string, operands []string) bool {
	if gr.Mnemonic != mnemonic || len(gr.Operands) != len(operands) {
		return false
	}

	for n, want := range gr.Operands {
		word := operands[n]
		var ok bool
		switch want {
		case operandVx, operandVy:
			ok = reRegister.MatchString(word)
		case operandByte, operandNibble:
			ok = reHex.MatchString(word)
		case operandAddr:
			ok = reSymbol.MatchString(word)
		default:
			ok = word == want
		}
		if !ok {
			return false
		}
	}

	return true
}

// parseHex parses at most digits hex digits into a field of bits width.
func parseHex(word string, digits int, bits int) (value uint64, err error) {
	if len(word) == 0 || len(word) > digits {
		err = ErrOperandRange{Operand: word, Bits: bits}
		return
	}

	value, err = strconv.ParseUint(word, 16, bits)
	if err != nil {
		err = ErrOperandRange{Operand: word, Bits: bits}
		return
	}

	return
}

// resolve looks up an address operand.
func resolve(symbols *SymbolTable, label string) (addr Addr, err error) {
	value, ok := symbols.Lookup(label)
	if !ok {
		err = ErrLabelMissing(label)
		return
	}

	if value < 0 || value > int(ADDR_MASK) {
		err = ErrAddressRange{Label: label, Addr: value}
		return
	}

	addr = Addr(value)
	return
}

// ParseInstruction converts a classified instruction line into an
// Instruction, resolving address operands with the symbol table.
func ParseInstruction(line Line, symbols *SymbolTable) (ins Instruction, err error) {
	if line.Kind != LINE_INSTRUCTION {
		err = ErrInstructionInvalid
		return
	}

	var gr *grammar
	for n := range grammars {
		if grammars[n].matches(line.Mnemonic, line.Operands) {
			gr = &grammars[n]
			break
		}
	}

	if gr == nil {
		err = ErrInstructionInvalid
		return
	}

	ins.Op = gr.Op

	for n, want := range gr.Operands {
		word := line.Operands[n]
		var value uint64
		switch want {
		case operandVx:
			value, err = parseHex(word[1:], 1, 4)
			ins.X = Register(value)
		case operandVy:
			value, err = parseHex(word[1:], 1, 4)
			ins.Y = Register(value)
		case operandByte:
			value, err = parseHex(word, 2, 8)
			ins.Imm = uint8(value)
		case operandNibble:
			value, err = parseHex(word, 1, 4)
			ins.Imm = uint8(value)
		case operandAddr:
			ins.Addr, err = resolve(symbols, word)
		}
		if err != nil {
			// Report registers by their full name.
			if oe, ok := err.(ErrOperandRange); ok {
				oe.Operand = word
				err = oe
			}
			return
		}
	}

	return
}
