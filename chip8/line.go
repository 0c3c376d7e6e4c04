// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package chip8

import (
	"regexp"
	"strings"
)

// LineKind is the classification of a line of source.
type LineKind int

//go:generate go tool stringer -linecomment -type=LineKind
const (
	LINE_BLANK       = LineKind(0) // blank
	LINE_COMMENT     = LineKind(1) // comment
	LINE_LABEL       = LineKind(2) // label
	LINE_INSTRUCTION = LineKind(3) // instruction
)

// Line is a classified line of source.
type Line struct {
	Kind     LineKind
	Text     string   // Source text of the line.
	Label    string   // Label defined by the line, if any.
	Mnemonic string   // Instruction mnemonic.
	Operands []string // Comma separated instruction operands.
}

var (
	reComment     = regexp.MustCompile(`^\s*;`)
	reLabel       = regexp.MustCompile(`^\s*([a-zA-Z0-9_]+):\s*(;.*)?$`)
	reInstruction = regexp.MustCompile(`^\s*(?:([a-zA-Z0-9_]+):\s*)?([A-Z]{2,4})((?:\s+[^;\s]+)*)\s*(?:;.*)?$`)
)

// Classify determines the kind of a line of source.
// Label definitions are checked before instructions.
func Classify(text string) (line Line) {
	line.Text = text

	if reComment.MatchString(text) {
		line.Kind = LINE_COMMENT
		return
	}

	if match := reLabel.FindStringSubmatch(text); match != nil {
		line.Kind = LINE_LABEL
		line.Label = match[1]
		return
	}

	if match := reInstruction.FindStringSubmatch(text); match != nil {
		line.Kind = LINE_INSTRUCTION
		line.Label = match[1]
		line.Mnemonic = match[2]
		line.Operands = splitOperands(match[3])
		return
	}

	line.Kind = LINE_BLANK
	return
}

// splitOperands splits the operand text on commas.
func splitOperands(text string) (operands []string) {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return
	}

	for _, operand := range strings.Split(text, ",") {
		operands = append(operands, strings.TrimSpace(operand))
	}

	return
}
