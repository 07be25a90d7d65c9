package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"lox/internal/diag"
	"lox/internal/source"
)

// Plain writes diagnostics in the stable wire format downstream consumers
// parse:
//
//	[line <N>] Error: <message>
//
// where N is the 1-based line of the diagnostic's start position (for an
// unterminated string, the line its quote opened on).
func Plain(w io.Writer, bag *diag.Bag, fs *source.FileSet) error {
	for _, d := range bag.Items() {
		start, _ := fs.Resolve(d.Primary)
		label := "Error"
		switch d.Severity {
		case diag.SevWarning:
			label = "Warning"
		case diag.SevInfo:
			label = "Info"
		}
		if _, err := fmt.Fprintf(w, "[line %d] %s: %s\n", start.Line, label, d.Message); err != nil {
			return err
		}
	}
	return nil
}

// Pretty writes diagnostics as
//
//	<path>:<line>:<col>: <SEV> [<CODE>]: <message>
//
// followed, when requested, by the offending source line with a caret under
// the span. Expects bag.Sort() to have been called for deterministic order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	sevColors := map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevError:   color.New(color.FgRed, color.Bold),
	}

	for _, d := range bag.Items() {
		start, end := fs.Resolve(d.Primary)
		f := fs.Get(d.Primary.File)

		sev := d.Severity.String()
		if opts.Color {
			if c, ok := sevColors[d.Severity]; ok {
				sev = c.Sprint(sev)
			}
		}

		if _, err := fmt.Fprintf(w, "%s:%d:%d: %s [%s]: %s\n",
			f.Path, start.Line, start.Col, sev, d.Code.ID(), d.Message); err != nil {
			return err
		}

		if opts.Context {
			if err := writeContext(w, f, start, end); err != nil {
				return err
			}
		}

		for _, note := range d.Notes {
			noteStart, _ := fs.Resolve(note.Span)
			if _, err := fmt.Fprintf(w, "  note: %d:%d: %s\n",
				noteStart.Line, noteStart.Col, note.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeContext prints the source line and a caret aligned under the span
// start. Alignment uses display width so wide characters before the span
// don't skew the marker.
func writeContext(w io.Writer, f *source.File, start, end source.LineCol) error {
	line := f.GetLine(start.Line)
	if line == "" {
		return nil
	}
	if _, err := fmt.Fprintf(w, "  %s\n", line); err != nil {
		return err
	}

	prefix := line
	if int(start.Col-1) <= len(line) {
		prefix = line[:start.Col-1]
	}
	pad := runewidth.StringWidth(prefix)

	marker := "^"
	if end.Line == start.Line && end.Col > start.Col {
		span := line
		if int(end.Col-1) <= len(line) {
			span = line[start.Col-1 : end.Col-1]
		}
		if width := runewidth.StringWidth(span); width > 1 {
			marker = "^" + strings.Repeat("~", width-1)
		}
	}
	_, err := fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", pad), marker)
	return err
}
