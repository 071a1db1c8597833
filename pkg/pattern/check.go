package pattern

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/martinus/hexler/pkg/ansi"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Report is the outcome of a structural check of a captured pattern stream.
type Report struct {
	Lines    int
	Problems []string
}

// OK reports whether the stream had no structural problems.
func (r *Report) OK() bool { return len(r.Problems) == 0 }

func (r *Report) addf(line int, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if line > 0 {
		msg = fmt.Sprintf("line %d: %s", line, msg)
	}
	r.Problems = append(r.Problems, msg)
}

// Check reads a captured stream from r and verifies its structure: line count,
// token counts per line, the codes each block covers and the grid position of
// every palette entry. Read failures are returned as errors; structural
// failures are listed in the report.
func Check(r io.Reader) (*Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read pattern: %w", err)
	}

	report := &Report{}
	text := string(data)
	if text == "" {
		report.addf(0, "empty stream, want %d lines", Lines())
		return report, nil
	}
	if !strings.HasSuffix(text, "\n") {
		report.addf(0, "stream does not end with a newline")
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	report.Lines = len(lines)
	if len(lines) != Lines() {
		report.addf(0, "got %d lines, want %d", len(lines), Lines())
	}

	seen := make([]int, PaletteSize)
	for i, line := range lines {
		n := i + 1
		switch {
		case i == 0:
			checkCodeLine(report, n, line, StandardCodes(), false)
		case i == 1:
			checkCodeLine(report, n, line, BrightCodes(), true)
		case i-2 < PaletteSize/PaletteColumns:
			checkPaletteRow(report, n, i-2, line, seen)
		default:
			report.addf(n, "unexpected trailing line")
		}
	}

	if len(lines) > 2 {
		for code, count := range seen {
			switch {
			case count == 0:
				report.addf(0, "palette index %d missing", code)
			case count > 1:
				report.addf(0, "palette index %d appears %d times", code, count)
			}
		}
	}
	return report, nil
}

func checkCodeLine(report *Report, n int, line string, codes []int, resetTrailer bool) {
	segs, err := ansi.Split(line)
	if err != nil {
		report.addf(n, "%v", err)
		return
	}
	want := len(codes)
	if resetTrailer {
		want++
	}
	if len(segs) != want {
		report.addf(n, "got %d tokens, want %d", len(segs), want)
		return
	}
	for k, code := range codes {
		seg := segs[k]
		if len(seg.Params) != 1 || seg.Params[0] != code {
			report.addf(n, "token %d: sequence %v, want [%d]", k+1, seg.Params, code)
			continue
		}
		if seg.Text != strconv.Itoa(code)+" " {
			report.addf(n, "token %d: text %q, want %q", k+1, seg.Text, strconv.Itoa(code)+" ")
		}
	}
	if resetTrailer {
		last := segs[len(segs)-1]
		if !last.IsReset() || last.Text != "0 " {
			report.addf(n, "line must end with reset and %q, got %v %q", "0 ", last.Params, last.Text)
		}
	}
}

func checkPaletteRow(report *Report, n, row int, line string, seen []int) {
	segs, err := ansi.Split(line)
	if err != nil {
		report.addf(n, "%v", err)
		return
	}
	if len(segs) != PaletteColumns+1 {
		report.addf(n, "got %d tokens, want %d (%d fields and a reset)", len(segs), PaletteColumns+1, PaletteColumns)
		return
	}
	for col, seg := range segs[:PaletteColumns] {
		if len(seg.Params) != 3 || seg.Params[0] != ansi.ExtendedForeground || seg.Params[1] != 5 {
			report.addf(n, "field %d: sequence %v is not a palette selector", col+1, seg.Params)
			continue
		}
		code := seg.Params[2]
		if code < 0 || code >= PaletteSize {
			report.addf(n, "field %d: palette index %d out of range", col+1, code)
			continue
		}
		seen[code]++
		if want := row*PaletteColumns + col; code != want {
			report.addf(n, "field %d: palette index %d, want %d", col+1, code, want)
		}
		if want := fmt.Sprintf("%*d", FieldWidth, code); seg.Text != want {
			report.addf(n, "field %d: text %q, want %q", col+1, seg.Text, want)
		}
	}
	last := segs[PaletteColumns]
	if !last.IsReset() || last.Text != "" {
		report.addf(n, "row must end with a bare reset, got %v %q", last.Params, last.Text)
	}
}

// Diff describes the differences between want and got with escapes made
// visible. When color is set, the result uses ANSI insert/delete highlighting.
// It returns an empty string when the inputs are equal.
func Diff(want, got []byte, color bool) string {
	if string(want) == string(got) {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(ansi.Visible(string(want)), ansi.Visible(string(got)), false)
	diffs = dmp.DiffCleanupSemantic(diffs)
	if color {
		return dmp.DiffPrettyText(diffs)
	}

	var b strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			b.WriteString("{+" + d.Text + "+}")
		case diffmatchpatch.DiffDelete:
			b.WriteString("[-" + d.Text + "-]")
		default:
			b.WriteString(d.Text)
		}
	}
	return b.String()
}
