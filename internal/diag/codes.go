package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0
	// Лексические
	LexInfo                     Code = 1000
	LexStringClosedAtEOL        Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003

	// Драйвер
	DrvInfo          Code = 3000
	DrvDuplicateName Code = 3001
	DrvOverwrite     Code = 3002
	DrvReadFailed    Code = 3003
	DrvWriteFailed   Code = 3004
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexStringClosedAtEOL:        "String closed by end of line",
	LexUnterminatedString:       "Unterminated string literal",
	LexUnterminatedBlockComment: "Unterminated block comment",
	DrvInfo:                     "Driver information",
	DrvDuplicateName:            "Duplicate output name",
	DrvOverwrite:                "Output file already exists",
	DrvReadFailed:               "Failed to read input",
	DrvWriteFailed:              "Failed to write output",
}

// ID returns the stable textual identifier, e.g. "LEX1002".
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("DRV%04d", ic)
	}
	return "E0000"
}

// Title returns the short human readable description of the code.
func (c Code) Title() string {
	if d, ok := codeDescription[c]; ok {
		return d
	}
	return codeDescription[UnknownCode]
}

func (c Code) String() string {
	return c.ID()
}
