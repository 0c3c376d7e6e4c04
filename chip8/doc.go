// Package chip8 implements a two pass assembler for the CHIP-8 instruction set.
//
// Source lines are classified as comments, label definitions or
// instructions. The first pass binds every label to the address of the
// instruction that follows it, counting from the program load address
// (0x200) in two byte steps. The second pass matches each instruction line
// against the grammar of the 35 operations, resolves label operands, and
// encodes each instruction into a big-endian 16-bit word.
//
// Register and constant operands are hexadecimal digits (V3, 2A). Address
// operands are label names only.
package chip8
