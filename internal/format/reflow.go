package format

import (
	"gasfmt/internal/config"
	"gasfmt/internal/lexer"
)

// Reflow packs statements into output lines under cfg's width, indentation
// and forced-break rules. cfg must come from Config.Normalize; it is only
// read. The result ends with exactly one blank line unless there were no
// statements at all.
func Reflow(stmts []lexer.Statement, cfg *config.Config) []byte {
	out, _ := ReflowLines(stmts, cfg)
	return out
}

// ReflowLines is Reflow that also reports how many lines were written, the
// closing blank line not counted.
func ReflowLines(stmts []lexer.Statement, cfg *config.Config) ([]byte, int) {
	hint := 0
	for _, st := range stmts {
		hint += len(st.Text) + 1
	}
	p := newPacker(cfg, hint)
	for _, st := range stmts {
		p.add(st.Text)
	}
	out := p.finish()
	return out, p.w.Lines()
}

// Source runs the whole pipeline on raw text.
func Source(raw []byte, cfg *config.Config) []byte {
	return Reflow(lexer.Normalize(raw, cfg), cfg)
}

// packer holds the state carried from one statement to the next.
type packer struct {
	cfg *config.Config
	w   *Writer

	depth       int
	pendingOpen bool
	outdenting  bool

	// решения по переносу, вычисленные на предыдущем шаге
	forceThis bool
	forceNext bool
	forceKW   bool

	unitWidth int
	termWidth int
}

func newPacker(cfg *config.Config, hint int) *packer {
	return &packer{
		cfg:       cfg,
		w:         NewWriter(cfg.IndentUnit, hint),
		unitWidth: displayWidth(cfg.IndentUnit),
		termWidth: displayWidth(cfg.Terminator),
	}
}

// terminate reports whether a line closed now gets the terminator. With
// TerminatorOutdent only a line ending in an indent-close statement does.
func (p *packer) terminate() bool {
	switch p.cfg.TerminatorMode {
	case config.TerminatorAlways:
		return true
	case config.TerminatorOutdent:
		return p.outdenting
	}
	return false
}

func (p *packer) terminator(on bool) string {
	if on {
		return p.cfg.Terminator
	}
	return ""
}

func (p *packer) add(text string) {
	cfg := p.cfg

	if p.pendingOpen {
		p.depth++
	}
	argdef := cfg.ArgdefWhitespace && p.pendingOpen
	p.pendingOpen = false

	// terminator decision belongs to the line that may be closed here,
	// so it reads outdenting before this statement updates it
	term := p.terminate()
	prevOutdent := p.outdenting
	prevForced := p.forceThis
	suppress := false

	if hasAnyPrefix(text, cfg.IndentOpen) {
		if prevOutdent && prevForced && cfg.ConcatOutdent {
			suppress = true
		}
		p.pendingOpen = true
		if cfg.ArgdefWhitespace {
			text = rewriteArgdef(text, cfg.ArgdefComma)
		}
	}

	if hasAnyPrefix(text, cfg.IndentClose) {
		p.outdenting = true
		if p.depth > 0 {
			p.depth--
		}
		if prevForced && cfg.ConcatOutdent {
			suppress = true
		}
	} else {
		p.outdenting = false
	}

	force := p.forceNext || p.forceKW
	if cfg.PrefixBreaks {
		force = force || hasAnyPrefix(text, cfg.ForceThisLine)
		p.forceNext = hasAnyPrefix(text, cfg.ForceNextLine)
	}
	p.forceKW = cfg.KeywordBreaks && containsAny(text, cfg.ForceKeywords)
	if cfg.InstructionBreaks && cfg.IsInstruction(firstToken(text)) {
		force = true
	}
	p.forceThis = force

	depth := p.depth
	if !cfg.Indentation {
		depth = 0
	}
	budget := cfg.Width - depth*p.unitWidth

	sep := cfg.SemicolonSep
	if argdef {
		sep = cfg.ArgdefSemicolon
	}
	need := p.w.Width() + displayWidth(sep) + displayWidth(text)
	if p.terminate() {
		// the line would be closed right after this statement
		need += p.termWidth
	}
	overflow := need > budget

	if (overflow && !p.w.Empty()) || (force && !suppress) {
		p.w.Flush(p.terminator(term))
		p.w.Start(depth, text)
		return
	}
	if p.w.Empty() {
		p.w.Start(depth, text)
		return
	}
	p.w.Append(sep, text)
}

func (p *packer) finish() []byte {
	return p.w.Bytes(p.terminator(p.terminate()))
}
