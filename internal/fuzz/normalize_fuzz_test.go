package fuzztests

import (
	"testing"

	"gasfmt/internal/config"
	"gasfmt/internal/diag"
	"gasfmt/internal/lexer"
	"gasfmt/internal/source"
	"gasfmt/internal/testkit"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzNormalizeStatements(f *testing.F) {
	addCorpusSeeds(f)
	cfg := config.Default().Normalize()
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.s", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		lx := lexer.New(file, &cfg, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		stmts := lx.Statements()
		if err := testkit.CheckStatementInvariants(stmts, file); err != nil {
			t.Fatalf("invariant violated: %v", err)
		}
		if lx.State() != lexer.StateNormal {
			t.Fatalf("lexer left in state %v", lx.State())
		}
		if bag.HasErrors() {
			t.Fatalf("normalizer must not report errors")
		}
	})
}
