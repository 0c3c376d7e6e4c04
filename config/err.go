// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package config

import (
	"github.com/ezrec/chip8asm/translate"
)

var f = translate.From

// ErrType is returned when a configuration value has the wrong type.
type ErrType struct {
	Name string
	Want string
}

func (err ErrType) Error() string {
	return f("%v: expected %v", err.Name, err.Want)
}

// ErrValue is returned when a configuration value is out of range.
type ErrValue struct {
	Name  string
	Value int64
}

func (err ErrValue) Error() string {
	return f("%v: value 0x%x out of range", err.Name, err.Value)
}
