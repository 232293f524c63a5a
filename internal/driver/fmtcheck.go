package driver

import (
	"bytes"
	"fmt"

	"gasfmt/internal/config"
	"gasfmt/internal/format"
)

// RunFmtCheck formats already formatted output once more and verifies that
// nothing moves. It returns (ok, report string).
func RunFmtCheck(formatted []byte, cfg *config.Config) (success bool, msg string) {
	second := format.Source(formatted, cfg)
	if bytes.Equal(formatted, second) {
		return true, "fmt-check: OK"
	}
	line := firstDiffLine(formatted, second)
	return false, fmt.Sprintf("fmt-check: second pass differs at line %d", line)
}

func firstDiffLine(a, b []byte) int {
	line := 1
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return line
		}
		if a[i] == '\n' {
			line++
		}
	}
	return line
}
