package lexer

import (
	"strings"

	"gasfmt/internal/source"
)

// Statement is one comment-free, whitespace-normalized unit of source text.
// Span covers the source bytes from its first to its last emitted byte.
type Statement struct {
	Text string
	Span source.Span
}

func (s Statement) String() string {
	return s.Text
}

// FirstToken returns the text up to the first space.
func (s Statement) FirstToken() string {
	tok, _, _ := strings.Cut(s.Text, " ")
	return tok
}

// builder accumulates the statement under construction.
type builder struct {
	buf     []byte
	pending bool // пробел между токенами, ещё не записан
	// afterSep is set by a comma: whitespace up to the next token is dropped.
	afterSep bool
	// tailWS is the trailing whitespace of the last comma separator, trimmed
	// if the statement ends right after it.
	tailWS int
	span   source.Span
	open   bool
}

func (b *builder) touch(file source.FileID, off uint32) {
	sp := source.Span{File: file, Start: off, End: off + 1}
	if !b.open {
		b.span = sp
		b.open = true
		return
	}
	b.span = b.span.Cover(sp)
}

func (b *builder) emit(c byte) {
	if b.pending && len(b.buf) > 0 {
		b.buf = append(b.buf, ' ')
	}
	b.pending = false
	b.afterSep = false
	b.tailWS = 0
	b.buf = append(b.buf, c)
}

func (b *builder) copyRaw(c byte) {
	b.tailWS = 0
	b.buf = append(b.buf, c)
}

func (b *builder) space() {
	if len(b.buf) == 0 || b.afterSep {
		return
	}
	b.pending = true
}

func (b *builder) comma(sep string) {
	// пробел перед запятой не переносим
	b.pending = false
	b.afterSep = true
	b.buf = append(b.buf, sep...)
	b.tailWS = len(sep) - len(strings.TrimRight(sep, " \t"))
}

// take returns the finished statement text and resets the builder.
func (b *builder) take() (string, source.Span, bool) {
	text := string(b.buf[:len(b.buf)-b.tailWS])
	span := b.span
	*b = builder{buf: b.buf[:0]}
	if strings.TrimSpace(text) == "" {
		return "", span, false
	}
	return text, span, true
}
