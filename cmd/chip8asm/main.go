// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/ezrec/chip8asm/chip8"
	"github.com/ezrec/chip8asm/config"
)

func main() {
	var conf string
	var listing string
	var standard bool
	var verbose bool
	labels := labelFlag{}

	flag.StringVar(&conf, "c", "", ".star configuration file to use")
	flag.StringVar(&listing, "l", "", "Listing file to write")
	flag.BoolVar(&standard, "s", false, "Encode CALL as 0x2nnn")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.Var(labels, "D", "Predefine a label, as name=addr (repeatable)")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %v [options] input.asm output.ch8\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(2)
	}

	input := flag.Arg(0)
	output := flag.Arg(1)

	asm := &chip8.Assembler{
		Verbose:      verbose,
		StandardCall: standard,
	}

	if len(conf) != 0 {
		cfg, err := config.Load(conf)
		if err != nil {
			log.Fatalf("%v: %v", conf, err)
		}
		err = cfg.Apply(asm)
		if err != nil {
			log.Fatalf("%v: %v", conf, err)
		}
	}

	for name, addr := range labels {
		asm.Predefine(name, addr)
	}

	err := run(asm, input, output, listing)
	if err != nil {
		log.Fatal(err)
	}
}
