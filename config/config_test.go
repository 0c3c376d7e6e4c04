package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/chip8asm/chip8"
)

func TestParseEmpty(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Parse("empty.star", "")
	assert.NoError(err)
	assert.Equal(&Config{}, cfg)
}

func TestParse(t *testing.T) {
	assert := assert.New(t)

	src := strings.Join([]string{
		"origin = ADDR_ORIGIN + 0x400",
		"standard_call = True",
		"allow_redefine = True",
		"verbose = False",
		`language = "en-US"`,
		`labels = {"font": 0x050, "end": ADDR_MASK}`,
	}, "\n")

	cfg, err := Parse("test.star", src)
	assert.NoError(err)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(0x600, cfg.Origin)
	assert.True(cfg.StandardCall)
	assert.True(cfg.AllowRedefine)
	assert.False(cfg.Verbose)
	assert.Equal("en-US", cfg.Language)
	assert.Equal(map[string]int{"font": 0x50, "end": 0xfff}, cfg.Labels)
}

func TestParseErrors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		src  string
		want error
	}{
		{`origin = "high"`, ErrType{Name: "origin", Want: "int"}},
		{`origin = 0x1000`, ErrValue{Name: "origin", Value: 0x1000}},
		{`origin = -1`, ErrValue{Name: "origin", Value: -1}},
		{`verbose = 1`, ErrType{Name: "verbose", Want: "bool"}},
		{`standard_call = "yes"`, ErrType{Name: "standard_call", Want: "bool"}},
		{`language = 5`, ErrType{Name: "language", Want: "string"}},
		{`labels = [1]`, ErrType{Name: "labels", Want: "dict"}},
		{`labels = {1: 2}`, ErrType{Name: "labels", Want: "string keys"}},
		{`labels = {"a": "b"}`, ErrType{Name: "labels.a", Want: "int"}},
		{`labels = {"a": 0x1000}`, ErrValue{Name: "labels.a", Value: 0x1000}},
	}

	for _, entry := range table {
		cfg, err := Parse("bad.star", entry.src)
		assert.Nil(cfg, entry.src)
		assert.Equal(entry.want, err, entry.src)
	}

	// Starlark syntax errors are returned as-is.
	_, err := Parse("syntax.star", "origin = (")
	assert.Error(err)
}

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "asm.star")
	err := os.WriteFile(path, []byte("origin = 0x600\n"), 0o644)
	assert.NoError(err)

	cfg, err := Load(path)
	assert.NoError(err)
	assert.Equal(0x600, cfg.Origin)

	_, err = Load(filepath.Join(t.TempDir(), "missing.star"))
	assert.True(errors.Is(err, os.ErrNotExist))
}

func TestApply(t *testing.T) {
	assert := assert.New(t)

	cfg := &Config{
		Origin:        0x600,
		StandardCall:  true,
		AllowRedefine: true,
		Labels:        map[string]int{"font": 0x50},
	}

	asm := &chip8.Assembler{}
	assert.NoError(cfg.Apply(asm))

	assert.Equal(0x600, asm.Origin)
	assert.True(asm.StandardCall)
	assert.True(asm.Symbols.AllowRedefine)
	assert.False(asm.Verbose)

	prog, err := asm.Parse(strings.NewReader("CALL font\nstart: JP start\n"))
	assert.NoError(err)
	assert.Equal([]byte{0x20, 0x50, 0x16, 0x02}, prog.Binary())

	cfg = &Config{Language: "!!"}
	assert.Error(cfg.Apply(asm))
}
