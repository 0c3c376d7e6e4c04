// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/ezrec/chip8asm/chip8"
)

// labelFlag collects -D name=addr definitions.
type labelFlag map[string]int

func (lf labelFlag) String() string {
	var defs []string
	for name, addr := range lf {
		defs = append(defs, fmt.Sprintf("%v=0x%03x", name, addr))
	}
	return strings.Join(defs, ",")
}

func (lf labelFlag) Set(def string) (err error) {
	name, value, ok := strings.Cut(def, "=")
	if !ok || len(name) == 0 {
		err = fmt.Errorf("%q: expected name=addr", def)
		return
	}

	addr, err := strconv.ParseUint(value, 0, 12)
	if err != nil {
		err = fmt.Errorf("%q: %w", def, err)
		return
	}

	lf[name] = int(addr)
	return
}

// run assembles input into output, and optionally writes a listing.
// The output file is only created once assembly has succeeded.
func run(asm *chip8.Assembler, input, output, listing string) (err error) {
	inf, err := os.Open(input)
	if err != nil {
		return
	}
	defer inf.Close()

	prog, err := asm.Parse(inf)
	if err != nil {
		err = fmt.Errorf("%v: %w", input, err)
		return
	}

	err = writeFile(output, func(ouf *os.File) error {
		_, err := prog.WriteTo(ouf)
		return err
	})
	if err != nil {
		return
	}

	if len(listing) != 0 {
		err = writeFile(listing, func(ouf *os.File) error {
			return prog.Listing(ouf)
		})
	}

	return
}

// writeFile creates a file and fills it, removing it again on failure.
func writeFile(path string, fill func(ouf *os.File) error) (err error) {
	ouf, err := os.Create(path)
	if err != nil {
		return
	}

	err = fill(ouf)
	if cerr := ouf.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		err = fmt.Errorf("%v: %w", path, err)
	}

	return
}
