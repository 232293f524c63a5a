package lexer

import (
	"gasfmt/internal/config"
	"gasfmt/internal/diag"
	"gasfmt/internal/source"
)

// Lexer turns raw assembler text into Statements, one at a time.
type Lexer struct {
	file   *source.File
	cursor Cursor
	cfg    *config.Config
	opts   Options
	state  State
	cur    builder
	// strMark is where the open string started, for diagnostics.
	strMark Mark
	// commentMark is where the open block comment started.
	commentMark Mark
	done        bool
}

func New(file *source.File, cfg *config.Config, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		cfg:    cfg,
		opts:   opts,
		state:  StateNormal,
	}
}

// Normalize splits raw text into statements. Unterminated strings and block
// comments are closed silently at end of input.
func Normalize(raw []byte, cfg *config.Config) []Statement {
	file := &source.File{Path: "<memory>", Content: raw}
	return New(file, cfg, Options{}).Statements()
}

// Statements drains the lexer.
func (lx *Lexer) Statements() []Statement {
	var out []Statement
	for {
		st, ok := lx.Next()
		if !ok {
			return out
		}
		out = append(out, st)
	}
}

// State returns the current scanner mode.
func (lx *Lexer) State() State {
	return lx.state
}

// Next returns the next non-empty statement. After the input is exhausted it
// keeps returning false.
func (lx *Lexer) Next() (Statement, bool) {
	for !lx.done {
		if lx.cursor.EOF() {
			lx.finish()
			lx.done = true
			return lx.flush()
		}

		off := lx.cursor.Off
		b := lx.cursor.Bump()
		if b == '\t' {
			b = ' '
		}
		if lx.feed(b, off) {
			if st, ok := lx.flush(); ok {
				return st, true
			}
		}
	}
	return Statement{}, false
}

// feed runs one byte through the state machine and reports whether the
// current statement ended.
func (lx *Lexer) feed(b byte, off uint32) bool {
	prev := lx.state
	next, act := Step(prev, b)
	lx.state = next

	switch act {
	case ActDrop:
		if prev == StateNormal && next == StateBlockProbe {
			lx.commentMark = Mark(off)
		}
	case ActEmit:
		if next == StateString {
			lx.strMark = Mark(off)
		}
		lx.cur.touch(lx.file.ID, off)
		lx.cur.emit(b)
	case ActCopy:
		lx.cur.touch(lx.file.ID, off)
		lx.cur.copyRaw(b)
	case ActSpace:
		lx.cur.space()
	case ActComma:
		lx.cur.touch(lx.file.ID, off)
		lx.cur.comma(lx.cfg.CommaSep)
	case ActEnd:
		if prev.InString() {
			lx.report(diag.LexStringClosedAtEOL, diag.SevInfo,
				source.Span{File: lx.file.ID, Start: uint32(lx.strMark), End: off},
				"string closed by end of line")
		}
		return true
	case ActReplay:
		lx.cur.touch(lx.file.ID, uint32(lx.commentMark))
		lx.cur.emit('/')
		return lx.feed(b, off)
	case ActEscape:
		lx.cur.touch(lx.file.ID, off)
		lx.cur.emit(b)
		// экранированная кавычка не закрывает строку
		if quote := lx.cursor.Mark(); lx.cursor.Eat('"') {
			lx.cur.touch(lx.file.ID, uint32(quote))
			lx.cur.copyRaw('"')
		}
	}
	return false
}

// finish closes whatever construct is still open at end of input.
func (lx *Lexer) finish() {
	switch {
	case lx.state == StateBlockProbe:
		lx.cur.touch(lx.file.ID, uint32(lx.commentMark))
		lx.cur.emit('/')
	case lx.state.InString():
		lx.report(diag.LexUnterminatedString, diag.SevWarning,
			lx.cursor.SpanFrom(lx.strMark),
			"unterminated string literal closed at end of input")
	case lx.state == StateBlockBody || lx.state == StateBlockExitProbe:
		lx.report(diag.LexUnterminatedBlockComment, diag.SevWarning,
			lx.cursor.SpanFrom(lx.commentMark),
			"unterminated block comment closed at end of input")
	}
	lx.state = StateNormal
}

func (lx *Lexer) flush() (Statement, bool) {
	text, span, ok := lx.cur.take()
	if !ok {
		return Statement{}, false
	}
	return Statement{Text: text, Span: span}, true
}
