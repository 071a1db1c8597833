package ansi

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSGR(t *testing.T) {
	tests := []struct {
		name   string
		params []int
		want   string
	}{
		{name: "no params is reset", params: nil, want: "\x1b[0m"},
		{name: "single code", params: []int{31}, want: "\x1b[31m"},
		{name: "palette", params: []int{38, 5, 200}, want: "\x1b[38;5;200m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SGR(tt.params...))
		})
	}
}

func TestForegroundHelpers(t *testing.T) {
	assert.Equal(t, "\x1b[30m", Foreground(30))
	assert.Equal(t, "\x1b[97m", Foreground(97))
	assert.Equal(t, "\x1b[38;5;0m", Foreground256(0))
	assert.Equal(t, "\x1b[38;5;255m", Foreground256(255))
	assert.Equal(t, "\x1b[0m", Reset)
}

func TestVisible(t *testing.T) {
	assert.Equal(t, `\x1b[31mred\x1b[0m`, Visible("\x1b[31mred\x1b[0m"))
}

func TestSplit(t *testing.T) {
	segs, err := Split("lead\x1b[31m31 \x1b[38;5;7m    7\x1b[0m")
	require.NoError(t, err)
	require.Len(t, segs, 4)

	assert.Nil(t, segs[0].Params)
	assert.Equal(t, "lead", segs[0].Text)
	assert.Equal(t, []int{31}, segs[1].Params)
	assert.Equal(t, "31 ", segs[1].Text)
	assert.Equal(t, []int{38, 5, 7}, segs[2].Params)
	assert.Equal(t, "    7", segs[2].Text)
	assert.True(t, segs[3].IsReset())
	assert.Empty(t, segs[3].Text)
}

func TestSplitEmpty(t *testing.T) {
	segs, err := Split("")
	require.NoError(t, err)
	assert.Empty(t, segs)
}

func TestSplitMalformed(t *testing.T) {
	inputs := map[string]string{
		"not CSI":       "\x1b]0;title\x07",
		"cursor move":   "\x1b[2J",
		"empty field":   "\x1b[38;;5m",
		"leading zero":  "\x1b[031m",
		"unterminated":  "\x1b[31",
		"lone escape":   "\x1b",
		"trailing semi": "\x1b[31;m",
		"bare reset":    "\x1b[mx",
	}
	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			_, err := Split(in)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMalformedSequence), "got %v", err)
		})
	}
}
