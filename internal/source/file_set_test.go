package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadNormalizesBOMAndCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.s")
	raw := []byte("\xEF\xBB\xBFadd r3,r4\r\nb loop\r\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path, LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if got, want := string(f.Content), "add r3,r4\nb loop\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags = %b, want BOM and CRLF bits", f.Flags)
	}
	if got, ok := fs.GetByPath(path); !ok || got.ID != id {
		t.Fatalf("GetByPath did not return the loaded file")
	}
}

func TestPrepareNFC(t *testing.T) {
	// "e" + combining acute accent → precomposed "é"
	decomposed := []byte("lbl_e\u0301:\n")
	out, flags := Prepare(decomposed, LoadOptions{NFC: true})
	if string(out) != "lbl_\u00e9:\n" {
		t.Fatalf("NFC output = %q", out)
	}
	if flags&FileNormalizedNFC == 0 {
		t.Fatalf("expected NFC flag")
	}

	out, flags = Prepare(decomposed, LoadOptions{})
	if string(out) != string(decomposed) || flags != 0 {
		t.Fatalf("NFC must be opt-in")
	}
}

func TestPrepareKeepsLoneCarriageReturn(t *testing.T) {
	out, flags := Prepare([]byte("a\rb"), LoadOptions{})
	if string(out) != "a\rb" || flags != 0 {
		t.Fatalf("lone CR changed: %q flags=%b", out, flags)
	}
}

func TestResolveAndGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.s", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	start, end := fs.Resolve(Span{File: id, Start: 4, End: 7})
	if start != (LineCol{Line: 2, Col: 1}) || end != (LineCol{Line: 2, Col: 4}) {
		t.Fatalf("Resolve = %v..%v", start, end)
	}
	start, _ = fs.Resolve(Span{File: id, Start: 3, End: 3})
	if start != (LineCol{Line: 1, Col: 4}) {
		t.Fatalf("newline belongs to its own line, got %v", start)
	}

	for n, want := range map[uint32]string{0: "", 1: "one", 2: "two", 3: "three", 4: ""} {
		if got := f.GetLine(n); got != want {
			t.Errorf("GetLine(%d) = %q, want %q", n, got, want)
		}
	}
	if fs.Get(FileID(9)) != nil {
		t.Fatalf("Get on unknown id must return nil")
	}
}
