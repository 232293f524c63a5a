package fuzztests

import (
	"bytes"
	"testing"

	"gasfmt/internal/config"
	"gasfmt/internal/format"
	"gasfmt/internal/lexer"
)

func FuzzReflowShape(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		for _, width := range []int{-1, 0, 12, 99} {
			cfg := config.Default()
			cfg.Width = width
			cfg = cfg.Normalize()

			stmts := lexer.Normalize(input, &cfg)
			out := format.Reflow(stmts, &cfg)
			if len(stmts) == 0 {
				if len(out) != 0 {
					t.Fatalf("width %d: no statements but output %q", width, out)
				}
				continue
			}
			if !bytes.HasSuffix(out, []byte("\n\n")) {
				t.Fatalf("width %d: output must end with a blank line: %q", width, out)
			}
			if bytes.Contains(out[:len(out)-1], []byte("\n\n")) {
				t.Fatalf("width %d: empty line inside output: %q", width, out)
			}
		}
	})
}
