// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package config loads assembler settings from a Starlark file.
//
// A configuration file is a Starlark program; the following globals are
// read after it runs, all optional:
//
//	origin = 0x200          # program load address
//	standard_call = False   # encode CALL as 0x2nnn
//	allow_redefine = False  # last label definition wins
//	verbose = False
//	language = "en-US"
//	labels = {"font": 0x050}
//
// ADDR_ORIGIN and ADDR_MASK are predeclared.
package config

import (
	"os"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/chip8asm/chip8"
	"github.com/ezrec/chip8asm/translate"
)

// Config holds assembler settings.
type Config struct {
	Origin        int            // Program load address, zero for the default.
	StandardCall  bool           // Encode CALL in the 0x2 family.
	AllowRedefine bool           // Allow labels to be redefined.
	Verbose       bool           // Verbose assembler logging.
	Language      string         // Diagnostic language tag.
	Labels        map[string]int // Predefined labels.
}

var predeclared = starlark.StringDict{
	"ADDR_ORIGIN": starlark.MakeInt(int(chip8.ADDR_ORIGIN)),
	"ADDR_MASK":   starlark.MakeInt(int(chip8.ADDR_MASK)),
}

// Load reads and evaluates a configuration file.
func Load(filename string) (cfg *Config, err error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return
	}

	cfg, err = Parse(filename, data)
	return
}

// Parse evaluates configuration source. The filename is only used in
// error messages.
func Parse(filename string, src any) (cfg *Config, err error) {
	thread := &starlark.Thread{Name: "config"}
	opts := syntax.FileOptions{}

	globals, err := starlark.ExecFileOptions(&opts, thread, filename, src, predeclared)
	if err != nil {
		return
	}

	cfg = &Config{}

	origin, err := getInt(globals, "origin", 0)
	if err != nil {
		return nil, err
	}
	if origin < 0 || origin > int64(chip8.ADDR_MASK) {
		return nil, ErrValue{Name: "origin", Value: origin}
	}
	cfg.Origin = int(origin)

	bools := []struct {
		name  string
		value *bool
	}{
		{"standard_call", &cfg.StandardCall},
		{"allow_redefine", &cfg.AllowRedefine},
		{"verbose", &cfg.Verbose},
	}
	for _, entry := range bools {
		*entry.value, err = getBool(globals, entry.name)
		if err != nil {
			return nil, err
		}
	}

	if value, ok := globals["language"]; ok {
		str, ok := starlark.AsString(value)
		if !ok {
			return nil, ErrType{Name: "language", Want: "string"}
		}
		cfg.Language = str
	}

	cfg.Labels, err = getLabels(globals, "labels")
	if err != nil {
		return nil, err
	}

	return
}

// getInt returns an integer global, or def if it is not set.
func getInt(globals starlark.StringDict, name string, def int64) (value int64, err error) {
	raw, ok := globals[name]
	if !ok {
		value = def
		return
	}

	st_int, ok := raw.(starlark.Int)
	if !ok {
		err = ErrType{Name: name, Want: "int"}
		return
	}

	value, ok = st_int.Int64()
	if !ok {
		err = ErrType{Name: name, Want: "int"}
		return
	}

	return
}

// getBool returns a boolean global, false if it is not set.
func getBool(globals starlark.StringDict, name string) (value bool, err error) {
	raw, ok := globals[name]
	if !ok {
		return
	}

	st_bool, ok := raw.(starlark.Bool)
	if !ok {
		err = ErrType{Name: name, Want: "bool"}
		return
	}

	value = bool(st_bool)
	return
}

// getLabels returns a dict of label names to addresses.
func getLabels(globals starlark.StringDict, name string) (labels map[string]int, err error) {
	raw, ok := globals[name]
	if !ok {
		return
	}

	dict, ok := raw.(*starlark.Dict)
	if !ok {
		err = ErrType{Name: name, Want: "dict"}
		return
	}

	labels = make(map[string]int, dict.Len())
	for _, item := range dict.Items() {
		key, ok := starlark.AsString(item[0])
		if !ok {
			err = ErrType{Name: name, Want: "string keys"}
			return
		}

		st_int, ok := item[1].(starlark.Int)
		if !ok {
			err = ErrType{Name: name + "." + key, Want: "int"}
			return
		}

		addr, ok := st_int.Int64()
		if !ok || addr < 0 || addr > int64(chip8.ADDR_MASK) {
			err = ErrValue{Name: name + "." + key, Value: addr}
			return
		}

		labels[key] = int(addr)
	}

	return
}

// Apply transfers the settings to an assembler.
func (cfg *Config) Apply(asm *chip8.Assembler) (err error) {
	if len(cfg.Language) != 0 {
		err = translate.SetLanguage(cfg.Language)
		if err != nil {
			return
		}
	}

	if cfg.Origin != 0 {
		asm.Origin = cfg.Origin
	}
	asm.StandardCall = asm.StandardCall || cfg.StandardCall
	asm.Verbose = asm.Verbose || cfg.Verbose
	asm.Symbols.AllowRedefine = asm.Symbols.AllowRedefine || cfg.AllowRedefine

	for name, addr := range cfg.Labels {
		asm.Predefine(name, addr)
	}

	return
}
