package diagfmt_test

import (
	"bytes"
	"strings"
	"testing"

	"lox/internal/diagfmt"
	"lox/internal/driver"
)

func TestPlain_ErrorWireFormat(t *testing.T) {
	result := driver.TokenizeSource("test.lox", []byte("@\n\"open"), 100)

	var buf bytes.Buffer
	if err := diagfmt.Plain(&buf, result.Bag, result.FileSet); err != nil {
		t.Fatal(err)
	}

	want := "[line 1] Error: Unexpected character: @\n" +
		"[line 2] Error: Unterminated string.\n"
	if buf.String() != want {
		t.Errorf("output:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestPlain_UnterminatedStringReportsOpeningLine(t *testing.T) {
	// The quote opens on line 3; the error must reference line 3 even
	// though the input ends later.
	result := driver.TokenizeSource("test.lox", []byte("\n\n\"abc\ndef"), 100)

	var buf bytes.Buffer
	if err := diagfmt.Plain(&buf, result.Bag, result.FileSet); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "[line 3] Error: Unterminated string.\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPretty_HeaderAndCaret(t *testing.T) {
	result := driver.TokenizeSource("test.lox", []byte("()@"), 100)
	result.Bag.Sort()

	var buf bytes.Buffer
	opts := diagfmt.PrettyOpts{Color: false, Context: true}
	if err := diagfmt.Pretty(&buf, result.Bag, result.FileSet, opts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.Contains(out, "test.lox:1:3: ERROR [LEX1001]: Unexpected character: @") {
		t.Errorf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "  ()@\n    ^") {
		t.Errorf("missing caret context:\n%s", out)
	}
}

func TestPretty_MarkerCoversSpan(t *testing.T) {
	result := driver.TokenizeSource("test.lox", []byte(`"ab`), 100)
	result.Bag.Sort()

	var buf bytes.Buffer
	if err := diagfmt.Pretty(&buf, result.Bag, result.FileSet, diagfmt.PrettyOpts{Context: true}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "[LEX1002]") {
		t.Errorf("missing code:\n%s", out)
	}
	if !strings.Contains(out, "  ^~~") {
		t.Errorf("marker must cover the three-byte span:\n%s", out)
	}
}
