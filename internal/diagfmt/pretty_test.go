package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"lox/internal/diagfmt"
	"lox/internal/driver"
)

func TestPrettyUnexpectedChar(t *testing.T) {
	res := driver.TokenizeSource("bad.lox", []byte("var x = @;"), 10)

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: false})
	out := buf.String()

	if !strings.Contains(out, "bad.lox:1:9") {
		t.Errorf("missing position:\n%s", out)
	}
	if !strings.Contains(out, "ERROR [LEX1001]") {
		t.Errorf("missing severity/code:\n%s", out)
	}
	if !strings.Contains(out, "var x = @;") {
		t.Errorf("missing source line:\n%s", out)
	}
	// caret under column 9
	if !strings.Contains(out, "        ^") {
		t.Errorf("missing caret:\n%s", out)
	}
}

func TestPrettyUnterminatedStringWithNote(t *testing.T) {
	res := driver.TokenizeSource("bad.lox", []byte(`"oops`), 10)

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: false})
	out := buf.String()

	if !strings.Contains(out, "LEX1002") {
		t.Errorf("missing code:\n%s", out)
	}
	if !strings.Contains(out, "note: string starts here") {
		t.Errorf("missing note:\n%s", out)
	}
}

func TestPrettyContextLines(t *testing.T) {
	src := []byte("var a = 1;\nvar b = @;\nvar c = 3;\n")
	res := driver.TokenizeSource("ctx.lox", src, 10)

	var narrow bytes.Buffer
	diagfmt.Pretty(&narrow, res.Bag, res.FileSet, diagfmt.PrettyOpts{})
	if strings.Contains(narrow.String(), "var a = 1;") {
		t.Errorf("zero context must show only the offending line:\n%s", narrow.String())
	}

	var wide bytes.Buffer
	diagfmt.Pretty(&wide, res.Bag, res.FileSet, diagfmt.PrettyOpts{Context: 1})
	out := wide.String()
	for _, want := range []string{"var a = 1;", "var b = @;", "var c = 3;"} {
		if !strings.Contains(out, want) {
			t.Errorf("context output missing %q:\n%s", want, out)
		}
	}
	// caret still sits under the offending line only
	if got := strings.Count(out, "^"); got != 1 {
		t.Errorf("caret count = %d, want 1:\n%s", got, out)
	}

	// context is clipped at the file boundaries
	var clipped bytes.Buffer
	diagfmt.Pretty(&clipped, res.Bag, res.FileSet, diagfmt.PrettyOpts{Context: 50})
	if got := strings.Count(clipped.String(), "\n"); got > 7 {
		t.Errorf("oversized context produced %d lines:\n%s", got, clipped.String())
	}
}

func TestPrettyNoColorHasNoEscapes(t *testing.T) {
	res := driver.TokenizeSource("bad.lox", []byte("@"), 10)

	var buf bytes.Buffer
	diagfmt.Pretty(&buf, res.Bag, res.FileSet, diagfmt.PrettyOpts{Color: false})
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("uncolored output contains ANSI escapes:\n%q", buf.String())
	}
}

func TestDiagnosticsJSON(t *testing.T) {
	res := driver.TokenizeSource("bad.lox", []byte("@ \"x"), 10)

	var buf bytes.Buffer
	if err := diagfmt.JSON(&buf, res.Bag, res.FileSet); err != nil {
		t.Fatal(err)
	}

	var out diagfmt.DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Fatalf("count = %d / %d diagnostics, want 2", out.Count, len(out.Diagnostics))
	}
	// bag is sorted, unexpected char at byte 0 comes first
	if out.Diagnostics[0].Code != "LEX1001" {
		t.Errorf("first code = %q, want LEX1001", out.Diagnostics[0].Code)
	}
	if out.Diagnostics[1].Code != "LEX1002" {
		t.Errorf("second code = %q, want LEX1002", out.Diagnostics[1].Code)
	}
	if len(out.Diagnostics[1].Notes) != 1 {
		t.Errorf("unterminated string should carry one note, got %d", len(out.Diagnostics[1].Notes))
	}
	if out.Diagnostics[0].Location.File != "bad.lox" {
		t.Errorf("file = %q", out.Diagnostics[0].Location.File)
	}
}
