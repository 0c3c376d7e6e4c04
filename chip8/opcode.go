// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package chip8

import (
	"fmt"
)

// Op is a CHIP-8 operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_CLS          = Op(0)  // cls
	OP_RET          = Op(1)  // ret
	OP_SYS          = Op(2)  // sys
	OP_JMP          = Op(3)  // jmp
	OP_CALL         = Op(4)  // call
	OP_SKIP_EQ      = Op(5)  // skip_eq
	OP_SKIP_NE      = Op(6)  // skip_ne
	OP_SKIP_EQ_VX   = Op(7)  // skip_eq_vx
	OP_LOAD         = Op(8)  // load
	OP_ADD          = Op(9)  // add
	OP_LOAD_VX      = Op(10) // load_vx
	OP_OR           = Op(11) // or
	OP_AND          = Op(12) // and
	OP_XOR          = Op(13) // xor
	OP_ADD_VX       = Op(14) // add_vx
	OP_SUB_VX       = Op(15) // sub_vx
	OP_SHR          = Op(16) // shr
	OP_SUBN         = Op(17) // subn
	OP_SHL          = Op(18) // shl
	OP_SKIP_NE_VX   = Op(19) // skip_ne_vx
	OP_LOAD_I       = Op(20) // load_i
	OP_JMP_V0       = Op(21) // jmp_v0
	OP_RAND         = Op(22) // rand
	OP_DRAW         = Op(23) // draw
	OP_SKIP_KEY     = Op(24) // skip_key
	OP_SKIP_NOT_KEY = Op(25) // skip_not_key
	OP_LOAD_DELAY   = Op(26) // load_delay
	OP_LOAD_KEY     = Op(27) // load_key
	OP_SET_DELAY    = Op(28) // set_delay
	OP_SET_SOUND    = Op(29) // set_sound
	OP_ADD_I        = Op(30) // add_i
	OP_LOAD_FONT    = Op(31) // load_font
	OP_LOAD_BCD     = Op(32) // load_bcd
	OP_STORE_REGS   = Op(33) // store_regs
	OP_LOAD_REGS    = Op(34) // load_regs
	OP_COUNT        = Op(35) // count
)

// Register is a V register index, 0 through 15.
type Register uint8

// Addr is a 12-bit machine address.
type Addr uint16

const (
	ADDR_MASK   = Addr(0xfff) // Mask of the addressable memory.
	ADDR_ORIGIN = Addr(0x200) // Program load address.
)

// Instruction is a single decoded CHIP-8 instruction.
// Only the operands used by Op are meaningful.
type Instruction struct {
	Op   Op
	X    Register // First register operand.
	Y    Register // Second register operand.
	Imm  uint8    // Byte constant, or the sprite height nibble of OP_DRAW.
	Addr Addr     // Resolved address operand.
}

// MakeInstruction creates an instruction with no operands.
func MakeInstruction(op Op) Instruction {
	return Instruction{Op: op}
}

// MakeInstructionAddr creates an instruction with an address operand.
func MakeInstructionAddr(op Op, addr Addr) Instruction {
	return Instruction{Op: op, Addr: addr & ADDR_MASK}
}

// MakeInstructionX creates an instruction with a single register operand.
func MakeInstructionX(op Op, x Register) Instruction {
	return Instruction{Op: op, X: x & 0xf}
}

// MakeInstructionXY creates an instruction with two register operands.
func MakeInstructionXY(op Op, x, y Register) Instruction {
	return Instruction{Op: op, X: x & 0xf, Y: y & 0xf}
}

// MakeInstructionXImm creates an instruction with a register and a byte constant.
func MakeInstructionXImm(op Op, x Register, imm uint8) Instruction {
	return Instruction{Op: op, X: x & 0xf, Imm: imm}
}

// MakeInstructionDraw creates a sprite draw instruction.
func MakeInstructionDraw(x, y Register, height uint8) Instruction {
	return Instruction{Op: OP_DRAW, X: x & 0xf, Y: y & 0xf, Imm: height & 0xf}
}

// Code is an assembled 16-bit instruction word.
type Code uint16

// makeCode packs four nibbles, most significant first.
func makeCode(a, b, c, d uint8) Code {
	return Code(uint16(a&0xf)<<12 | uint16(b&0xf)<<8 | uint16(c&0xf)<<4 | uint16(d&0xf))
}

// makeCodeAddr packs an opcode family with a 12-bit address.
func makeCodeAddr(family uint8, addr Addr) Code {
	return Code(uint16(family&0xf)<<12 | uint16(addr&ADDR_MASK))
}

// makeCodeImm packs an opcode family, register and byte constant.
func makeCodeImm(family uint8, x Register, imm uint8) Code {
	return Code(uint16(family&0xf)<<12 | uint16(x&0xf)<<8 | uint16(imm))
}

// Encode returns the instruction word, using the legacy CALL family of 0x1.
func (ins Instruction) Encode() Code {
	x := uint8(ins.X)
	y := uint8(ins.Y)

	switch ins.Op {
	case OP_CLS:
		return Code(0x00e0)
	case OP_RET:
		return Code(0x00ee)
	case OP_SYS:
		return makeCodeAddr(0x0, ins.Addr)
	case OP_JMP:
		return makeCodeAddr(0x1, ins.Addr)
	case OP_CALL:
		return makeCodeAddr(0x1, ins.Addr)
	case OP_SKIP_EQ:
		return makeCodeImm(0x3, ins.X, ins.Imm)
	case OP_SKIP_NE:
		return makeCodeImm(0x4, ins.X, ins.Imm)
	case OP_SKIP_EQ_VX:
		return makeCode(0x5, x, y, 0x0)
	case OP_LOAD:
		return makeCodeImm(0x6, ins.X, ins.Imm)
	case OP_ADD:
		return makeCodeImm(0x7, ins.X, ins.Imm)
	case OP_LOAD_VX:
		return makeCode(0x8, x, y, 0x0)
	case OP_OR:
		return makeCode(0x8, x, y, 0x1)
	case OP_AND:
		return makeCode(0x8, x, y, 0x2)
	case OP_XOR:
		return makeCode(0x8, x, y, 0x3)
	case OP_ADD_VX:
		return makeCode(0x8, x, y, 0x4)
	case OP_SUB_VX:
		return makeCode(0x8, x, y, 0x5)
	case OP_SHR:
		return makeCode(0x8, x, 0x0, 0x6)
	case OP_SUBN:
		return makeCode(0x8, x, y, 0x7)
	case OP_SHL:
		return makeCode(0x8, x, 0x0, 0xe)
	case OP_SKIP_NE_VX:
		return makeCode(0x9, x, y, 0x0)
	case OP_LOAD_I:
		return makeCodeAddr(0xa, ins.Addr)
	case OP_JMP_V0:
		return makeCodeAddr(0xb, ins.Addr)
	case OP_RAND:
		return makeCodeImm(0xc, ins.X, ins.Imm)
	case OP_DRAW:
		return makeCode(0xd, x, y, ins.Imm)
	case OP_SKIP_KEY:
		return makeCodeImm(0xe, ins.X, 0x9e)
	case OP_SKIP_NOT_KEY:
		return makeCodeImm(0xe, ins.X, 0xa1)
	case OP_LOAD_DELAY:
		return makeCodeImm(0xf, ins.X, 0x07)
	case OP_LOAD_KEY:
		return makeCodeImm(0xf, ins.X, 0x0a)
	case OP_SET_DELAY:
		return makeCodeImm(0xf, ins.X, 0x15)
	case OP_SET_SOUND:
		return makeCodeImm(0xf, ins.X, 0x18)
	case OP_ADD_I:
		return makeCodeImm(0xf, ins.X, 0x1e)
	case OP_LOAD_FONT:
		return makeCodeImm(0xf, ins.X, 0x29)
	case OP_LOAD_BCD:
		return makeCodeImm(0xf, ins.X, 0x33)
	case OP_STORE_REGS:
		return makeCodeImm(0xf, ins.X, 0x55)
	case OP_LOAD_REGS:
		return makeCodeImm(0xf, ins.X, 0x65)
	}

	// Instructions are only built from the Op table above.
	panic(fmt.Sprintf("chip8: no encoding for %v", ins.Op))
}

// EncodeStandard returns the instruction word with CALL in its standard
// 0x2 family. All other instructions encode as in Encode.
func (ins Instruction) EncodeStandard() Code {
	if ins.Op == OP_CALL {
		return makeCodeAddr(0x2, ins.Addr)
	}

	return ins.Encode()
}

// Bytes returns the big-endian bytes of the word.
func (code Code) Bytes() [2]byte {
	return [2]byte{byte(code >> 8), byte(code)}
}

// Family returns the opcode family nibble.
func (code Code) Family() uint8 {
	return uint8(code>>12) & 0xf
}

// X returns the first register field.
func (code Code) X() Register {
	return Register(code>>8) & 0xf
}

// Y returns the second register field.
func (code Code) Y() Register {
	return Register(code>>4) & 0xf
}

// N returns the low nibble.
func (code Code) N() uint8 {
	return uint8(code) & 0xf
}

// KK returns the low byte.
func (code Code) KK() uint8 {
	return uint8(code)
}

// NNN returns the 12-bit address field.
func (code Code) NNN() Addr {
	return Addr(code) & ADDR_MASK
}

// String returns the word as four hex digits.
func (code Code) String() string {
	return fmt.Sprintf("%04X", uint16(code))
}

// String returns a readable form of the instruction and its operands.
func (ins Instruction) String() (out string) {
	switch ins.Op.Shape() {
	case SHAPE_NONE:
		out = ins.Op.String()
	case SHAPE_ADDR:
		out = fmt.Sprintf("%v 0x%03x", ins.Op, uint16(ins.Addr))
	case SHAPE_X:
		out = fmt.Sprintf("%v v%x", ins.Op, ins.X)
	case SHAPE_XY:
		out = fmt.Sprintf("%v v%x v%x", ins.Op, ins.X, ins.Y)
	case SHAPE_X_BYTE:
		out = fmt.Sprintf("%v v%x 0x%02x", ins.Op, ins.X, ins.Imm)
	case SHAPE_XY_NIBBLE:
		out = fmt.Sprintf("%v v%x v%x 0x%x", ins.Op, ins.X, ins.Y, ins.Imm)
	}

	return
}

// Shape is the operand layout of an operation.
type Shape int

//go:generate go tool stringer -linecomment -type=Shape
const (
	SHAPE_NONE      = Shape(0) // none
	SHAPE_ADDR      = Shape(1) // addr
	SHAPE_X         = Shape(2) // x
	SHAPE_XY        = Shape(3) // x,y
	SHAPE_X_BYTE    = Shape(4) // x,byte
	SHAPE_XY_NIBBLE = Shape(5) // x,y,nibble
)

// opShape maps each operation to its operand layout.
var opShape = [OP_COUNT]Shape{
	OP_CLS:          SHAPE_NONE,
	OP_RET:          SHAPE_NONE,
	OP_SYS:          SHAPE_ADDR,
	OP_JMP:          SHAPE_ADDR,
	OP_CALL:         SHAPE_ADDR,
	OP_SKIP_EQ:      SHAPE_X_BYTE,
	OP_SKIP_NE:      SHAPE_X_BYTE,
	OP_SKIP_EQ_VX:   SHAPE_XY,
	OP_LOAD:         SHAPE_X_BYTE,
	OP_ADD:          SHAPE_X_BYTE,
	OP_LOAD_VX:      SHAPE_XY,
	OP_OR:           SHAPE_XY,
	OP_AND:          SHAPE_XY,
	OP_XOR:          SHAPE_XY,
	OP_ADD_VX:       SHAPE_XY,
	OP_SUB_VX:       SHAPE_XY,
	OP_SHR:          SHAPE_X,
	OP_SUBN:         SHAPE_XY,
	OP_SHL:          SHAPE_X,
	OP_SKIP_NE_VX:   SHAPE_XY,
	OP_LOAD_I:       SHAPE_ADDR,
	OP_JMP_V0:       SHAPE_ADDR,
	OP_RAND:         SHAPE_X_BYTE,
	OP_DRAW:         SHAPE_XY_NIBBLE,
	OP_SKIP_KEY:     SHAPE_X,
	OP_SKIP_NOT_KEY: SHAPE_X,
	OP_LOAD_DELAY:   SHAPE_X,
	OP_LOAD_KEY:     SHAPE_X,
	OP_SET_DELAY:    SHAPE_X,
	OP_SET_SOUND:    SHAPE_X,
	OP_ADD_I:        SHAPE_X,
	OP_LOAD_FONT:    SHAPE_X,
	OP_LOAD_BCD:     SHAPE_X,
	OP_STORE_REGS:   SHAPE_X,
	OP_LOAD_REGS:    SHAPE_X,
}

// Shape returns the operand layout of the operation.
func (op Op) Shape() Shape {
	if op < 0 || op >= OP_COUNT {
		return SHAPE_NONE
	}
	return opShape[op]
}
