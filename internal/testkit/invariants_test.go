package testkit

import (
	"testing"

	"gasfmt/internal/config"
	"gasfmt/internal/lexer"
	"gasfmt/internal/source"
)

func TestCheckStatementInvariants(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.s", []byte("add r3,r4 ; b loop /* x */\n.ascii \"a\tb\"\n"))
	file := fs.Get(id)
	cfg := config.Default().Normalize()

	stmts := lexer.New(file, &cfg, lexer.Options{}).Statements()
	if err := CheckStatementInvariants(stmts, file); err != nil {
		t.Fatalf("normalizer output: %v", err)
	}

	broken := []struct {
		name  string
		stmts []lexer.Statement
	}{
		{"empty", []lexer.Statement{{Text: "", Span: source.Span{File: id, Start: 0, End: 1}}}},
		{"leading space", []lexer.Statement{{Text: " add", Span: source.Span{File: id, Start: 0, End: 1}}}},
		{"newline", []lexer.Statement{{Text: "a\nb", Span: source.Span{File: id, Start: 0, End: 1}}}},
		{"empty span", []lexer.Statement{{Text: "add", Span: source.Span{File: id, Start: 2, End: 2}}}},
		{"other file", []lexer.Statement{{Text: "add", Span: source.Span{File: id + 1, Start: 0, End: 1}}}},
		{"past end", []lexer.Statement{{Text: "add", Span: source.Span{File: id, Start: 0, End: 999}}}},
		{"overlap", []lexer.Statement{
			{Text: "a", Span: source.Span{File: id, Start: 0, End: 5}},
			{Text: "b", Span: source.Span{File: id, Start: 3, End: 6}},
		}},
	}
	for _, tt := range broken {
		if err := CheckStatementInvariants(tt.stmts, file); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}
