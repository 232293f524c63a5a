package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"gasfmt/internal/diag"
	"gasfmt/internal/source"
)

func testBag(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	content := []byte("nop\n.ascii \"unterminated\n")
	id := fs.AddVirtual("/home/user/project/src/test.s", content)
	bag := diag.NewBag(10)
	bag.Add(diag.Diagnostic{
		Severity: diag.SevWarning,
		Code:     diag.LexUnterminatedString,
		Primary:  source.Span{File: id, Start: 11, End: 24},
		Message:  "unterminated string literal closed at end of input",
		Notes:    []diag.Note{{Span: source.Span{File: id, Start: 4, End: 10}, Msg: "in this directive"}},
	})
	return bag, fs
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	bag, fs := testBag(t)
	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"Absolute path", PathModeAbsolute, "/home/user/project/src/test.s:2:8"},
		{"Relative path", PathModeRelative, "src/test.s:2:8"},
		{"Basename only", PathModeBasename, "test.s:2:8"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Pretty(&buf, bag, fs, "", PrettyOpts{PathMode: tt.mode, BaseDir: "/home/user/project"})
			output := buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf("Expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "WARNING LEX1002") {
				t.Errorf("missing severity/code in:\n%s", output)
			}
		})
	}
}

func TestPrettyContextAndNotes(t *testing.T) {
	bag, fs := testBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, "", PrettyOpts{ShowNotes: true})
	want := "/home/user/project/src/test.s:2:8: WARNING LEX1002: unterminated string literal closed at end of input\n" +
		"  .ascii \"unterminated\n" +
		"         ^~~~~~~~~~~~~\n" +
		"  note: /home/user/project/src/test.s:2:1: in this directive\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWithoutFile(t *testing.T) {
	bag := diag.NewBag(1)
	bag.Add(diag.Diagnostic{Severity: diag.SevError, Code: diag.DrvReadFailed, Primary: source.Span{File: 7}, Message: "permission denied"})
	var buf bytes.Buffer
	Pretty(&buf, bag, source.NewFileSet(), "missing.s", PrettyOpts{})
	if got := buf.String(); got != "missing.s: ERROR DRV3003: permission denied\n" {
		t.Fatalf("got %q", got)
	}
}

func TestPrettyMinSeverity(t *testing.T) {
	bag, fs := testBag(t)
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, "", PrettyOpts{MinSeverity: uint8(diag.SevError)})
	if buf.Len() != 0 {
		t.Fatalf("expected warnings to be hidden, got %q", buf.String())
	}
}

func TestJSON(t *testing.T) {
	bag, fs := testBag(t)
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, "", JSONOpts{IncludePositions: true, PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d", out.Count)
	}
	d := out.Diagnostics[0]
	if d.Code != "LEX1002" || d.Location.File != "test.s" || d.Location.StartLine != 2 || d.Location.StartCol != 8 {
		t.Fatalf("unexpected diagnostic %+v", d)
	}
	if d.Notes != nil {
		t.Fatalf("notes must be omitted without IncludeNotes")
	}
}
