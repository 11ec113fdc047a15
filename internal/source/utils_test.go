package source

import (
	"bytes"
	"testing"
)

func TestNormalizeCRLF(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		changed bool
	}{
		{"no carriage returns", "a\nb", "a\nb", false},
		{"crlf pairs", "a\r\nb\r\n", "a\nb\n", true},
		{"lone cr kept", "a\rb", "a\rb", false},
		{"mixed", "a\r\nb\rc\n", "a\nb\rc\n", true},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := normalizeCRLF([]byte(tt.in))
			if !bytes.Equal(got, []byte(tt.want)) {
				t.Errorf("content = %q, want %q", got, tt.want)
			}
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
		})
	}
}

func TestRemoveBOM(t *testing.T) {
	withBOM := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x")...)
	got, had := removeBOM(withBOM)
	if !had || !bytes.Equal(got, []byte("x")) {
		t.Errorf("removeBOM = %q %v, want \"x\" true", got, had)
	}

	plain := []byte("xyz")
	got, had = removeBOM(plain)
	if had || !bytes.Equal(got, plain) {
		t.Errorf("removeBOM on plain input = %q %v", got, had)
	}

	short := []byte{0xEF}
	if _, had := removeBOM(short); had {
		t.Error("short input must not be treated as BOM")
	}
}

func TestBuildLineIndex(t *testing.T) {
	idx := buildLineIndex([]byte("ab\nc\n\nd"))
	want := []uint32{2, 4, 5}
	if len(idx) != len(want) {
		t.Fatalf("index = %v, want %v", idx, want)
	}
	for i := range want {
		if idx[i] != want[i] {
			t.Fatalf("index = %v, want %v", idx, want)
		}
	}
}

func TestToLineCol(t *testing.T) {
	// content: "ab\nc\n\nd" has newlines at offsets 2, 4, 5
	idx := []uint32{2, 4, 5}
	tests := []struct {
		off  uint32
		line uint32
		col  uint32
	}{
		{0, 1, 1},  // 'a'
		{1, 1, 2},  // 'b'
		{2, 1, 3},  // the newline itself ends line 1
		{3, 2, 1},  // 'c'
		{5, 3, 1},  // empty line
		{6, 4, 1},  // 'd'
		{7, 4, 2},  // end of input, trailing line without newline
	}
	for _, tt := range tests {
		got := toLineCol(idx, tt.off)
		if got.Line != tt.line || got.Col != tt.col {
			t.Errorf("toLineCol(%d) = %d:%d, want %d:%d",
				tt.off, got.Line, got.Col, tt.line, tt.col)
		}
	}
}
