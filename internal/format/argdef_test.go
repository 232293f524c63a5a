package format

import "testing"

func TestRewriteArgdef(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{".macro m", ".macro m"},
		{".macro m, a, b", ".macro m,  a,  b"},
		{".macro m,a", ".macro m,  a"},
		{".irp r, 3,", ".irp r,  3,"},
		{`.macro m, s="a, b", t`, `.macro m,  s="a, b",  t`},
		{`.macro m, s=\", t`, `.macro m,  s=\",  t`},
	}
	for _, tt := range tests {
		if got := rewriteArgdef(tt.in, ",  "); got != tt.want {
			t.Errorf("rewriteArgdef(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestWriter(t *testing.T) {
	w := NewWriter("\t", 0)
	w.Flush(";")
	if w.Lines() != 0 {
		t.Fatalf("empty line must not be flushed")
	}
	w.Start(2, "nop")
	if w.Width() != 5 {
		t.Fatalf("width = %d, want 5", w.Width())
	}
	w.Append("; ", "nop")
	if got := string(w.Bytes(";")); got != "\t\tnop; nop;\n\n" {
		t.Fatalf("Bytes = %q", got)
	}
}
