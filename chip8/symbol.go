// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package chip8

import (
	"iter"
	"maps"

	"github.com/ezrec/chip8asm/internal"
)

// SymbolTable maps label names to resolved addresses.
type SymbolTable struct {
	AllowRedefine bool // If set, a redefined label takes its latest address.

	predefine map[string]int // Labels bound outside of the source.
	label     map[string]int // Labels defined by the source.
}

// Predefine binds a label to a fixed address.
func (st *SymbolTable) Predefine(name string, addr int) {
	if st.predefine == nil {
		st.predefine = map[string]int{name: addr}
	} else {
		st.predefine[name] = addr
	}
}

// Define binds a source label to an address.
func (st *SymbolTable) Define(name string, addr int) (err error) {
	_, ok := st.Lookup(name)
	if ok && !st.AllowRedefine {
		err = ErrLabelDuplicate
		return
	}

	if st.label == nil {
		st.label = make(map[string]int, 16)
	}
	st.label[name] = addr

	return
}

// Lookup returns the address of a label.
func (st *SymbolTable) Lookup(name string) (addr int, ok bool) {
	addr, ok = st.label[name]
	if ok {
		return
	}

	addr, ok = st.predefine[name]
	return
}

// Reset removes all source labels, keeping predefined labels.
func (st *SymbolTable) Reset() {
	clear(st.label)
}

// Len returns the number of distinct labels.
func (st *SymbolTable) Len() (count int) {
	count = len(st.label)
	for name := range st.predefine {
		if _, ok := st.label[name]; !ok {
			count++
		}
	}
	return
}

// All returns an iterator over predefined labels, then source labels.
// A source label shadowing a predefined one is yielded after it.
func (st *SymbolTable) All() iter.Seq2[string, int] {
	return internal.IterSeq2Concat(maps.All(st.predefine), maps.All(st.label))
}

// Build runs the first assembly pass over the lines, defining each label at
// the address of the next instruction. The table is reset first.
func (st *SymbolTable) Build(origin int, lines []Line) (err error) {
	st.Reset()

	count := 0
	for n, line := range lines {
		if len(line.Label) != 0 {
			err = st.Define(line.Label, origin+2*count)
			if err != nil {
				err = &ErrSyntax{LineNo: n + 1, Line: line.Text, Err: err}
				return
			}
		}
		if line.Kind == LINE_INSTRUCTION {
			count++
		}
	}

	return
}
