package lexer_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"gasfmt/internal/config"
	"gasfmt/internal/diag"
	"gasfmt/internal/lexer"
	"gasfmt/internal/source"
)

func defaultConfig() *config.Config {
	cfg := config.Default().Normalize()
	return &cfg
}

func texts(stmts []lexer.Statement) []string {
	var out []string
	for _, st := range stmts {
		out = append(out, st.Text)
	}
	return out
}

// makeTestLexer создаёт лексер для тестовой строки и сумку диагностик
func makeTestLexer(input string, cfg *config.Config) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.s", []byte(input))
	bag := diag.NewBag(16)
	lx := lexer.New(fs.Get(id), cfg, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return lx, bag
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "comment stripped and whitespace collapsed",
			input: "  add  r3, r4, r5 # bump\nb   loop\n",
			want:  []string{"add r3, r4, r5", "b loop"},
		},
		{
			name:  "commas rewritten",
			input: "addi r3,r3,1\n",
			want:  []string{"addi r3, r3, 1"},
		},
		{
			name:  "space before comma dropped",
			input: "stw r3 ,  8 ( r1 )\n",
			want:  []string{"stw r3, 8 ( r1 )"},
		},
		{
			name:  "semicolons split statements",
			input: "li r3, 1;li r4, 2 ; ; nop",
			want:  []string{"li r3, 1", "li r4, 2", "nop"},
		},
		{
			name:  "tabs fold to spaces",
			input: "\tmr\tr3,\tr4\n",
			want:  []string{"mr r3, r4"},
		},
		{
			name:  "empty statements discarded",
			input: "\n\n;;\n   \n# only a comment\n/* and a block */\n",
			want:  nil,
		},
		{
			name:  "string content is verbatim",
			input: `.ascii "a,  b # c; /* d */"  , 0` + "\n",
			want:  []string{`.ascii "a,  b # c; /* d */", 0`},
		},
		{
			name:  "escaped quote stays inside string",
			input: `.ascii "say \"hi, there\"" # done` + "\n",
			want:  []string{`.ascii "say \"hi, there\""`},
		},
		{
			name:  "escaped quote outside string",
			input: `.irp x, \"a b\"` + "\n",
			want:  []string{`.irp x, \"a b\"`},
		},
		{
			name:  "string closed by end of line",
			input: ".ascii \"abc  \nnop\n",
			want:  []string{`.ascii "abc  `, "nop"},
		},
		{
			name:  "multi-line block comment",
			input: "mr r3, r4 /* one\ntwo */ ; nop\n",
			want:  []string{"mr r3, r4", "nop"},
		},
		{
			name:  "block comment contributes nothing",
			input: "a/**/b\n",
			want:  []string{"ab"},
		},
		{
			name:  "star run before slash closes comment",
			input: "x /* a **/ y\n",
			want:  []string{"x y"},
		},
		{
			name:  "slash without star is text",
			input: "li r3, 8/2\nli r4, 8 / 2\n",
			want:  []string{"li r3, 8/2", "li r4, 8 / 2"},
		},
		{
			name:  "slash then comment",
			input: "x/# gone\ny//\n",
			want:  []string{"x/", "y//"},
		},
		{
			name:  "slash at end of input",
			input: "x/",
			want:  []string{"x/"},
		},
		{
			name:  "trailing comma keeps no whitespace",
			input: ".long 1,2,\n",
			want:  []string{".long 1, 2,"},
		},
		{
			name:  "unterminated block comment swallows rest",
			input: "nop /* never closed\nmore text\n",
			want:  []string{"nop"},
		},
		{
			name:  "unterminated string closed at end of input",
			input: `.ascii "abc`,
			want:  []string{`.ascii "abc`},
		},
	}

	cfg := defaultConfig()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := texts(lexer.Normalize([]byte(tt.input), cfg))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Normalize(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestNormalizeCustomCommaSeparator(t *testing.T) {
	cfg := config.Default()
	empty := ""
	cfg.SetWhitespace(&empty, nil, nil, nil)
	cfg = cfg.Normalize()

	got := texts(lexer.Normalize([]byte("a, b ,c\n"), &cfg))
	if diff := cmp.Diff([]string{"a,b,c"}, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestStatementSpans(t *testing.T) {
	lx, _ := makeTestLexer("  add r3 # x\n\tb loop\n", defaultConfig())
	stmts := lx.Statements()
	if len(stmts) != 2 {
		t.Fatalf("got %d statements", len(stmts))
	}
	if got := stmts[0].Span; got.Start != 2 || got.End != 8 {
		t.Fatalf("first span = %v, want 2-8", got)
	}
	if got := stmts[1].Span; got.Start != 14 || got.End != 20 {
		t.Fatalf("second span = %v, want 14-20", got)
	}
	if stmts[1].FirstToken() != "b" {
		t.Fatalf("FirstToken = %q", stmts[1].FirstToken())
	}
}

func TestDiagnostics(t *testing.T) {
	tests := []struct {
		name  string
		input string
		codes []diag.Code
	}{
		{"clean", "nop\n", nil},
		{"string at eol", ".ascii \"x\nnop\n", []diag.Code{diag.LexStringClosedAtEOL}},
		{"string at eof", ".ascii \"x", []diag.Code{diag.LexUnterminatedString}},
		{"comment at eof", "nop /* x\n", []diag.Code{diag.LexUnterminatedBlockComment}},
		{"comment exit probe at eof", "nop /* x *", []diag.Code{diag.LexUnterminatedBlockComment}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lx, bag := makeTestLexer(tt.input, defaultConfig())
			lx.Statements()
			var got []diag.Code
			for _, d := range bag.Items() {
				got = append(got, d.Code)
			}
			if diff := cmp.Diff(tt.codes, got); diff != "" {
				t.Fatalf("codes mismatch (-want +got):\n%s", diff)
			}
			if lx.State() != lexer.StateNormal {
				t.Fatalf("state after drain = %v", lx.State())
			}
		})
	}
}

func TestEscapedQuoteAndDiagnosticSpans(t *testing.T) {
	lx, bag := makeTestLexer(".ascii \"\\\"", defaultConfig())
	stmts := lx.Statements()
	if len(stmts) != 1 || stmts[0].Text != ".ascii \"\\\"" {
		t.Fatalf("statements = %q", texts(stmts))
	}
	// экранированная кавычка входит в span оператора
	if got := stmts[0].Span; got.Start != 0 || got.End != 10 {
		t.Fatalf("statement span = %v, want 0-10", got)
	}
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexUnterminatedString {
		t.Fatalf("diagnostics = %v", items)
	}
	if got := items[0].Primary; got.Start != 7 || got.End != 10 {
		t.Fatalf("string span = %v, want 7-10", got)
	}

	lx, bag = makeTestLexer("nop /* x", defaultConfig())
	lx.Statements()
	items = bag.Items()
	if len(items) != 1 || items[0].Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("diagnostics = %v", items)
	}
	if got := items[0].Primary; got.Start != 4 || got.End != 8 {
		t.Fatalf("comment span = %v, want 4-8", got)
	}
}

func TestNextAfterEOF(t *testing.T) {
	lx, _ := makeTestLexer("nop", defaultConfig())
	if _, ok := lx.Next(); !ok {
		t.Fatalf("expected one statement")
	}
	for j := 0; j < 2; j++ {
		if _, ok := lx.Next(); ok {
			t.Fatalf("Next after EOF must keep returning false")
		}
	}
}

// TestCommentTransparency: с вырезанными комментариями текст токенов совпадает.
func TestCommentTransparency(t *testing.T) {
	withComments := "lis r3, 0x8000 /* hi */\nori r3, r3, 4 # lo\n"
	without := "lis r3, 0x8000\nori r3, r3, 4\n"
	cfg := defaultConfig()
	if diff := cmp.Diff(texts(lexer.Normalize([]byte(without), cfg)), texts(lexer.Normalize([]byte(withComments), cfg))); diff != "" {
		t.Fatalf("comments changed statements (-want +got):\n%s", diff)
	}
}
