package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 0, Start: 3, End: 7}
	if s.Empty() {
		t.Error("non-empty span reported Empty")
	}
	if s.Len() != 4 {
		t.Errorf("Len = %d, want 4", s.Len())
	}
	if got := s.String(); got != "0:3-7" {
		t.Errorf("String = %q, want \"0:3-7\"", got)
	}

	e := Span{File: 0, Start: 5, End: 5}
	if !e.Empty() || e.Len() != 0 {
		t.Error("empty span must have zero length")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 3, End: 7}
	b := Span{File: 0, Start: 1, End: 5}
	c := a.Cover(b)
	if c.Start != 1 || c.End != 7 {
		t.Errorf("Cover = %v, want 1..7", c)
	}

	other := Span{File: 1, Start: 0, End: 100}
	if got := a.Cover(other); got != a {
		t.Errorf("Cover across files must be a no-op, got %v", got)
	}
}
