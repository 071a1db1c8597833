package ansi

import (
	"strconv"
	"strings"
)

// SGR escape sequence helpers. All sequences are CSI ... m.

const (
	// ESC is the control byte that starts every sequence.
	ESC = '\x1b'
	// CSI is the control sequence introducer.
	CSI = "\x1b["
	// Reset restores default rendering attributes.
	Reset = CSI + "0m"

	// ExtendedForeground selects a colour from the 256-colour palette (38;5;n).
	ExtendedForeground = 38
	paletteSelector    = 5
)

// SGR returns the select-graphic-rendition sequence for the given parameters.
// Without parameters it returns Reset.
func SGR(params ...int) string {
	if len(params) == 0 {
		return Reset
	}
	var b strings.Builder
	b.WriteString(CSI)
	for i, p := range params {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(strconv.Itoa(p))
	}
	b.WriteByte('m')
	return b.String()
}

// Foreground returns the sequence for a standard foreground code such as 31 or 94.
func Foreground(code int) string { return SGR(code) }

// Foreground256 returns the sequence selecting palette entry index as foreground.
func Foreground256(index int) string {
	return SGR(ExtendedForeground, paletteSelector, index)
}

// Visible replaces ESC bytes with a printable marker so sequences can be shown in diffs.
func Visible(s string) string {
	return strings.ReplaceAll(s, string(ESC), `\x1b`)
}
