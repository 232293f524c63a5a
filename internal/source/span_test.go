package source

import "testing"

func TestSpan_Cover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{File: 1, Start: 2, End: 4}, Span{File: 1, Start: 8, End: 9}, Span{File: 1, Start: 2, End: 9}},
		{"inside", Span{File: 1, Start: 2, End: 9}, Span{File: 1, Start: 3, End: 4}, Span{File: 1, Start: 2, End: 9}},
		{"other file", Span{File: 1, Start: 2, End: 4}, Span{File: 2, Start: 0, End: 9}, Span{File: 1, Start: 2, End: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cover(tt.b); got != tt.want {
				t.Fatalf("Cover = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSpan_LenEmpty(t *testing.T) {
	s := Span{Start: 3, End: 3}
	if !s.Empty() || s.Len() != 0 {
		t.Fatalf("expected empty span")
	}
	if (Span{Start: 3, End: 7}).Len() != 4 {
		t.Fatalf("Len mismatch")
	}
}
