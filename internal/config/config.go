package config

import (
	"crypto/sha256"
	"fmt"
	"slices"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// UnboundedWidth заменяет отрицательную ширину: переносы по ширине фактически
// отключаются, остаются только принудительные.
const UnboundedWidth = 0x7FFFFFF

// TerminatorMode controls where the end-of-line terminator is written.
type TerminatorMode uint8

const (
	// TerminatorOff never appends a terminator.
	TerminatorOff TerminatorMode = iota
	// TerminatorAlways appends a terminator to every packed line.
	TerminatorAlways
	// TerminatorOutdent appends a terminator only when the line being closed
	// ends with an indent-close statement.
	TerminatorOutdent
)

func (m TerminatorMode) String() string {
	switch m {
	case TerminatorOff:
		return "off"
	case TerminatorAlways:
		return "always"
	case TerminatorOutdent:
		return "outdent"
	}
	return "unknown"
}

// ParseTerminatorMode converts a string to TerminatorMode.
func ParseTerminatorMode(s string) (TerminatorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "none", "":
		return TerminatorOff, nil
	case "always", "on":
		return TerminatorAlways, nil
	case "outdent", "outdents":
		return TerminatorOutdent, nil
	default:
		return TerminatorOff, fmt.Errorf("invalid terminator mode %q (expected off|always|outdent)", s)
	}
}

// Config is the full set of tunables consumed by the normalizer and the
// reflow engine. Build it with Default or Load, then call Normalize once;
// neither pipeline stage modifies it.
type Config struct {
	CommaSep        string
	SemicolonSep    string
	IndentUnit      string
	ArgdefComma     string
	ArgdefSemicolon string
	Terminator      string

	Width int

	IndentOpen    []string
	IndentClose   []string
	ForceThisLine []string
	ForceNextLine []string
	ForceKeywords []string
	Instructions  []string

	PrefixBreaks      bool
	KeywordBreaks     bool
	Indentation       bool
	InstructionBreaks bool
	ConcatOutdent     bool
	ArgdefWhitespace  bool
	TerminatorMode    TerminatorMode

	instrSet map[string]struct{}
}

// Default returns the stock configuration tuned for GNU as sources that use
// macro-heavy .altmacro style code.
func Default() Config {
	return Config{
		CommaSep:        ", ",
		SemicolonSep:    ";",
		IndentUnit:      "  ",
		ArgdefComma:     ",  ",
		ArgdefSemicolon: ";  ",
		Terminator:      ";",

		Width: 99,

		IndentOpen:    []string{".macro ", ".if", ".else", ".rept ", ".irp"},
		IndentClose:   []string{".endm", ".endif", ".else", ".endr"},
		ForceThisLine: []string{".endm", ".macro", ".include ", ".if", ".else", ".rept ", ".irp"},
		ForceNextLine: []string{"LOCAL", ".include "},
		// '<' и '>' защищают от редких сюрпризов синтаксиса .altmacro
		ForceKeywords: []string{"<", ">"},
		Instructions:  slices.Clone(gekkoInstructions),

		PrefixBreaks:      true,
		KeywordBreaks:     true,
		Indentation:       true,
		InstructionBreaks: true,
		ConcatOutdent:     true,
		ArgdefWhitespace:  true,
		TerminatorMode:    TerminatorOutdent,
	}
}

// Normalize returns a copy ready for the pipeline: negative widths become
// UnboundedWidth and the instruction lookup set is built.
func (c Config) Normalize() Config {
	if c.Width < 0 {
		c.Width = UnboundedWidth
	}
	set := make(map[string]struct{}, len(c.Instructions))
	for _, ins := range c.Instructions {
		set[ins] = struct{}{}
	}
	c.instrSet = set
	return c
}

// IsInstruction reports whether tok is in the instruction table.
func (c *Config) IsInstruction(tok string) bool {
	if c.instrSet != nil {
		_, ok := c.instrSet[tok]
		return ok
	}
	return slices.Contains(c.Instructions, tok)
}

// SetWhitespace rebuilds every separator from its punctuation plus the given
// trailing whitespace. Nil arguments leave the current value alone.
func (c *Config) SetWhitespace(comma, semicolon, indent, argdef *string) {
	if comma != nil {
		c.CommaSep = "," + *comma
	}
	if semicolon != nil {
		c.SemicolonSep = ";" + *semicolon
	}
	if indent != nil {
		c.IndentUnit = *indent
	}
	if argdef != nil {
		c.ArgdefComma = "," + *argdef
		c.ArgdefSemicolon = ";" + *argdef
	}
}

// ApplyToggles flips feature switches using the +/- letter syntax, e.g.
// "+kp-ic". A '+' enables and a '-' disables every letter that follows it
// until the next sign.
//
//	k keyword breaks      p prefix breaks      i indentation
//	c break concatenation e line terminator    m instruction breaks
//	a argdef whitespace
func (c *Config) ApplyToggles(flags string) error {
	on := false
	for i, ch := range strings.ToLower(flags) {
		switch ch {
		case '+':
			on = true
		case '-':
			on = false
		case 'k':
			c.KeywordBreaks = on
		case 'p':
			c.PrefixBreaks = on
		case 'i':
			c.Indentation = on
		case 'c':
			c.ConcatOutdent = on
		case 'e':
			switch {
			case !on:
				c.TerminatorMode = TerminatorOff
			case c.TerminatorMode == TerminatorOff:
				c.TerminatorMode = TerminatorOutdent
			}
		case 'm':
			c.InstructionBreaks = on
		case 'a':
			c.ArgdefWhitespace = on
		default:
			return fmt.Errorf("toggle %q: unknown letter %q at %d", flags, ch, i)
		}
	}
	return nil
}

// Fingerprint hashes the msgpack encoding of the configuration. Two configs
// with equal fingerprints produce identical output for identical input.
func (c Config) Fingerprint() ([32]byte, error) {
	data, err := msgpack.Marshal(&c)
	if err != nil {
		return [32]byte{}, fmt.Errorf("config fingerprint: %w", err)
	}
	return sha256.Sum256(data), nil
}
