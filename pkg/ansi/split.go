package ansi

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrMalformedSequence is returned by Split for escapes that are not well formed SGR sequences.
var ErrMalformedSequence = errors.New("malformed SGR sequence")

// Segment is one SGR sequence and the printable text that follows it.
// Text preceding the first sequence of a line is reported with nil Params.
type Segment struct {
	Params []int
	Text   string
}

// IsReset reports whether the segment's sequence is ESC[0m.
func (s Segment) IsReset() bool {
	return len(s.Params) == 1 && s.Params[0] == 0
}

// Split decomposes s into SGR sequences and the text following each one.
func Split(s string) ([]Segment, error) {
	var segments []Segment
	i := 0
	for i < len(s) {
		if s[i] != ESC {
			j := i
			for j < len(s) && s[j] != ESC {
				j++
			}
			if len(segments) == 0 {
				segments = append(segments, Segment{})
			}
			segments[len(segments)-1].Text += s[i:j]
			i = j
			continue
		}

		params, n, err := parseSGR(s[i:])
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		segments = append(segments, Segment{Params: params})
		i += n
	}
	return segments, nil
}

// parseSGR parses one sequence at the start of s, returning its parameters and length.
func parseSGR(s string) ([]int, int, error) {
	if len(s) < 2 || s[1] != '[' {
		return nil, 0, ErrMalformedSequence
	}
	var params []int
	start := 2
	for i := 2; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			continue
		case c == ';' || c == 'm':
			field := s[start:i]
			if field == "" {
				// The bare ESC[m is a reset to terminals but not the literal ESC[0m.
				return nil, 0, fmt.Errorf("%w: empty parameter", ErrMalformedSequence)
			}
			if len(field) > 1 && field[0] == '0' {
				return nil, 0, fmt.Errorf("%w: leading zero in %q", ErrMalformedSequence, field)
			}
			v, err := strconv.Atoi(field)
			if err != nil {
				return nil, 0, fmt.Errorf("%w: %v", ErrMalformedSequence, err)
			}
			params = append(params, v)
			if c == 'm' {
				return params, i + 1, nil
			}
			start = i + 1
		default:
			return nil, 0, fmt.Errorf("%w: unexpected %q", ErrMalformedSequence, c)
		}
	}
	return nil, 0, fmt.Errorf("%w: unterminated", ErrMalformedSequence)
}
