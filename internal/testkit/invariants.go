package testkit

import (
	"fmt"
	"strings"

	"fortio.org/safecast"

	"gasfmt/internal/lexer"
	"gasfmt/internal/source"
)

// CheckStatementInvariants runs the structural checks every normalizer run
// must satisfy on sf:
// 1) no statement is empty, starts with a space, or holds a newline or tab
// 2) every span is non-empty, belongs to sf and lies within its content
// 3) spans follow source order without overlapping
func CheckStatementInvariants(stmts []lexer.Statement, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, st := range stmts {
		// 1) текст
		if st.Text == "" {
			return fmt.Errorf("statement %d is empty", i)
		}
		if st.Text[0] == ' ' {
			return fmt.Errorf("statement %d has leading space: %q", i, st.Text)
		}
		if strings.ContainsAny(st.Text, "\n\t") {
			return fmt.Errorf("statement %d holds a newline or tab: %q", i, st.Text)
		}

		// 2) span внутри файла
		sp := st.Span
		if sp.End <= sp.Start {
			return fmt.Errorf("statement %d has empty span %v", i, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("statement %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.End > lenContent {
			return fmt.Errorf("statement %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}

		// 3) порядок
		if sp.Start < prevEnd {
			return fmt.Errorf("statement %d span %v overlaps previous end %d", i, sp, prevEnd)
		}
		prevEnd = sp.End
	}
	return nil
}
