// Package pattern generates the reference ANSI colour pattern used as a fixture
// for terminal rendering tests.
//
// The stream has three blocks: the eight standard foreground colours, the
// eight high-intensity colours followed by a reset, and the 256-colour palette
// as a 16x16 grid. Every byte is fixed; nothing depends on the environment.
package pattern

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/martinus/hexler/pkg/ansi"
)

const (
	standardFirst = 30
	brightFirst   = 90
	colorsPerSet  = 8

	// PaletteSize is the number of entries in the 256-colour palette.
	PaletteSize = 256
	// PaletteColumns is the number of palette entries per row.
	PaletteColumns = 16
	// FieldWidth is the width palette codes are right-justified to.
	FieldWidth = 5
)

// Phase identifies one block of the pattern.
type Phase int

const (
	PhaseStandard Phase = iota
	PhaseBright
	PhasePalette
)

// Phases lists the blocks in emission order.
var Phases = []Phase{PhaseStandard, PhaseBright, PhasePalette}

func (p Phase) String() string {
	switch p {
	case PhaseStandard:
		return "standard"
	case PhaseBright:
		return "bright"
	case PhasePalette:
		return "palette"
	default:
		return "Phase(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePhase returns the phase named by s, as printed by Phase.String.
func ParsePhase(s string) (Phase, error) {
	for _, p := range Phases {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q (want standard, bright or palette)", s)
}

// WriteError reports a failed write and the block being written at the time.
type WriteError struct {
	Phase Phase
	Line  int
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s block (line %d): %v", e.Phase, e.Line, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Lines returns the number of newline-terminated lines in the pattern.
func Lines() int {
	return 2 + PaletteSize/PaletteColumns
}

// StandardCodes returns the foreground codes of the standard block.
func StandardCodes() []int { return codeRange(standardFirst) }

// BrightCodes returns the foreground codes of the high-intensity block.
func BrightCodes() []int { return codeRange(brightFirst) }

func codeRange(first int) []int {
	codes := make([]int, colorsPerSet)
	for i := range codes {
		codes[i] = first + i
	}
	return codes
}

// Emit writes the complete pattern to w. The first failed write is returned as
// a *WriteError and nothing further is written.
func Emit(w io.Writer) error {
	line := 0
	for _, p := range Phases {
		n, err := emitPhase(w, p, line)
		if err != nil {
			return err
		}
		line += n
	}
	return nil
}

// EmitPhase writes a single block of the pattern to w.
func EmitPhase(w io.Writer, p Phase) error {
	first := 0
	switch p {
	case PhaseBright:
		first = 1
	case PhasePalette:
		first = 2
	}
	_, err := emitPhase(w, p, first)
	return err
}

// Bytes returns the complete pattern.
func Bytes() []byte {
	var buf bytes.Buffer
	_ = Emit(&buf)
	return buf.Bytes()
}

// emitPhase writes the lines of p one Write call per line. It returns the
// number of lines written; line numbers in errors are 1-based and start after
// firstLine.
func emitPhase(w io.Writer, p Phase, firstLine int) (int, error) {
	var lines [][]byte
	switch p {
	case PhaseStandard:
		lines = [][]byte{codeLine(StandardCodes(), "")}
	case PhaseBright:
		lines = [][]byte{codeLine(BrightCodes(), ansi.Reset+"0 ")}
	case PhasePalette:
		for row := 0; row < PaletteSize/PaletteColumns; row++ {
			lines = append(lines, paletteRow(row))
		}
	default:
		return 0, fmt.Errorf("unknown phase %d", int(p))
	}

	for i, l := range lines {
		if _, err := w.Write(l); err != nil {
			return i, &WriteError{Phase: p, Line: firstLine + i + 1, Err: err}
		}
	}
	return len(lines), nil
}

// codeLine renders "ESC[<c>m<c> " per code, then suffix and a newline.
func codeLine(codes []int, suffix string) []byte {
	var b []byte
	for _, c := range codes {
		b = append(b, ansi.Foreground(c)...)
		b = strconv.AppendInt(b, int64(c), 10)
		b = append(b, ' ')
	}
	b = append(b, suffix...)
	return append(b, '\n')
}

// paletteRow renders one row of the palette grid. Fields carry no separator;
// the width-5 justification keeps them apart.
func paletteRow(row int) []byte {
	var b []byte
	for col := 0; col < PaletteColumns; col++ {
		code := row*PaletteColumns + col
		b = append(b, ansi.Foreground256(code)...)
		b = append(b, fmt.Sprintf("%*d", FieldWidth, code)...)
	}
	b = append(b, ansi.Reset...)
	return append(b, '\n')
}
