package chip8

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSymbols() *SymbolTable {
	st := &SymbolTable{}
	st.Predefine("target", 0x2a4)
	st.Predefine("far", 0x1000)
	return st
}

func TestParseInstruction(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text string
		ins  Instruction
	}{
		{"CLS", MakeInstruction(OP_CLS)},
		{"RET", MakeInstruction(OP_RET)},
		{"SYS target", MakeInstructionAddr(OP_SYS, 0x2a4)},
		{"JP target", MakeInstructionAddr(OP_JMP, 0x2a4)},
		{"CALL target", MakeInstructionAddr(OP_CALL, 0x2a4)},
		{"SE V1, ff", MakeInstructionXImm(OP_SKIP_EQ, 1, 0xff)},
		{"SNE VA, 7", MakeInstructionXImm(OP_SKIP_NE, 0xa, 0x7)},
		{"SE V1, V2", MakeInstructionXY(OP_SKIP_EQ_VX, 1, 2)},
		{"LD V3, 2A", MakeInstructionXImm(OP_LOAD, 3, 0x2a)},
		{"ADD Vf, 01", MakeInstructionXImm(OP_ADD, 0xf, 0x01)},
		{"LD V3, V4", MakeInstructionXY(OP_LOAD_VX, 3, 4)},
		{"OR V1, V2", MakeInstructionXY(OP_OR, 1, 2)},
		{"AND V1, V2", MakeInstructionXY(OP_AND, 1, 2)},
		{"XOR V1, V2", MakeInstructionXY(OP_XOR, 1, 2)},
		{"ADD V1, V2", MakeInstructionXY(OP_ADD_VX, 1, 2)},
		{"SUB V1, V2", MakeInstructionXY(OP_SUB_VX, 1, 2)},
		{"SHR V6", MakeInstructionX(OP_SHR, 6)},
		{"SUBN V1, V2", MakeInstructionXY(OP_SUBN, 1, 2)},
		{"SHL V6", MakeInstructionX(OP_SHL, 6)},
		{"SNE V1, V2", MakeInstructionXY(OP_SKIP_NE_VX, 1, 2)},
		{"LD I, target", MakeInstructionAddr(OP_LOAD_I, 0x2a4)},
		{"JP V0, target", MakeInstructionAddr(OP_JMP_V0, 0x2a4)},
		{"RND VB, 0F", MakeInstructionXImm(OP_RAND, 0xb, 0x0f)},
		{"DRW V1, V2, 5", MakeInstructionDraw(1, 2, 5)},
		{"SKP V9", MakeInstructionX(OP_SKIP_KEY, 9)},
		{"SKNP V9", MakeInstructionX(OP_SKIP_NOT_KEY, 9)},
		{"LD V2, DT", MakeInstructionX(OP_LOAD_DELAY, 2)},
		{"LD V2, K", MakeInstructionX(OP_LOAD_KEY, 2)},
		{"LD DT, V2", MakeInstructionX(OP_SET_DELAY, 2)},
		{"LD ST, V2", MakeInstructionX(OP_SET_SOUND, 2)},
		{"ADD I, V2", MakeInstructionX(OP_ADD_I, 2)},
		{"LD F, V2", MakeInstructionX(OP_LOAD_FONT, 2)},
		{"LD B, V2", MakeInstructionX(OP_LOAD_BCD, 2)},
		{"LD [I], V2", MakeInstructionX(OP_STORE_REGS, 2)},
		{"LD V2, [I]", MakeInstructionX(OP_LOAD_REGS, 2)},
	}

	assert.Equal(int(OP_COUNT), len(table))

	st := testSymbols()
	for _, entry := range table {
		line := Classify("  " + entry.text + " ; trailing comment")
		assert.Equal(LINE_INSTRUCTION, line.Kind, entry.text)

		ins, err := ParseInstruction(line, st)
		assert.NoError(err, entry.text)
		assert.Equal(entry.ins, ins, entry.text)
	}
}

func TestGrammarsCoverEveryOp(t *testing.T) {
	assert := assert.New(t)

	count := map[Op]int{}
	for _, gr := range grammars {
		count[gr.Op]++

		var shape Shape
		regs := 0
		for _, operand := range gr.Operands {
			switch operand {
			case operandVx, operandVy:
				regs++
			case operandAddr:
				shape = SHAPE_ADDR
			case operandByte:
				shape = SHAPE_X_BYTE
			case operandNibble:
				shape = SHAPE_XY_NIBBLE
			}
		}
		if shape == SHAPE_NONE {
			switch regs {
			case 1:
				shape = SHAPE_X
			case 2:
				shape = SHAPE_XY
			}
		}
		assert.Equal(gr.Op.Shape(), shape, gr.Op.String())
	}

	for op := OP_CLS; op < OP_COUNT; op++ {
		assert.Equal(1, count[op], op.String())
	}
}

func TestGrammarsExclusive(t *testing.T) {
	assert := assert.New(t)

	samples := []string{
		"SE V1, 22", "SE V1, V2", "LD V1, 22", "LD V1, V2", "LD V1, DT",
		"LD V1, K", "LD V1, [I]", "LD I, lbl", "LD F, V1", "LD B, V1",
		"LD DT, V1", "LD ST, V1", "LD [I], V1", "ADD V1, 22", "ADD V1, V2",
		"ADD I, V1", "JP lbl", "JP V0, lbl", "SNE V1, 22", "SNE V1, V2",
	}

	for _, text := range samples {
		line := Classify(text)
		matched := 0
		for n := range grammars {
			if grammars[n].matches(line.Mnemonic, line.Operands) {
				matched++
			}
		}
		assert.Equal(1, matched, text)
	}
}

func TestParseInstructionErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		text string
		err  error
	}{
		{"NOP", ErrInstructionInvalid},
		{"CLS V1", ErrInstructionInvalid},
		{"LD V1", ErrInstructionInvalid},
		{"LD V1 2A", ErrInstructionInvalid},
		{"LD V1,, 2A", ErrInstructionInvalid},
		{"LD VG, 2A", ErrInstructionInvalid},
		{"LD V1, 2G", ErrInstructionInvalid},
		{"DRW V1, V2", ErrInstructionInvalid},
		{"SHR", ErrInstructionInvalid},
		{"JP", ErrInstructionInvalid},
		{"JP a-b", ErrInstructionInvalid},
		{"LD DT, 5", ErrInstructionInvalid},
		{"JP nowhere", ErrLabelMissing("nowhere")},
		{"LD I, nowhere", ErrLabelMissing("nowhere")},
		{"JP far", ErrAddressRange{Label: "far", Addr: 0x1000}},
		{"LD V1, 100", ErrOperandRange{Operand: "100", Bits: 8}},
		{"LD V10, 1", ErrOperandRange{Operand: "V10", Bits: 4}},
		{"SE V1, V10", ErrOperandRange{Operand: "V10", Bits: 4}},
		{"DRW V1, V2, 10", ErrOperandRange{Operand: "10", Bits: 4}},
		{"SHL V", ErrInstructionInvalid},
	}

	st := testSymbols()
	for _, entry := range table {
		line := Classify(entry.text)
		assert.Equal(LINE_INSTRUCTION, line.Kind, entry.text)

		_, err := ParseInstruction(line, st)
		assert.Equal(entry.err, err, entry.text)
	}

	_, err := ParseInstruction(Classify("; comment"), st)
	assert.True(errors.Is(err, ErrInstructionInvalid))
}

func TestParseHex(t *testing.T) {
	assert := assert.New(t)

	value, err := parseHex("fF", 2, 8)
	assert.NoError(err)
	assert.Equal(uint64(0xff), value)

	_, err = parseHex("", 1, 4)
	assert.Equal(ErrOperandRange{Operand: "", Bits: 4}, err)

	_, err = parseHex("0ff", 2, 8)
	assert.Equal(ErrOperandRange{Operand: "0ff", Bits: 8}, err)
}
