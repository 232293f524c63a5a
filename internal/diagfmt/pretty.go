package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"gasfmt/internal/diag"
	"gasfmt/internal/source"
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем строку исходника с подчёркиванием ^~~~ по Span.
// fallbackPath используется, когда у диагностики нет файла (ошибки IO).
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, fallbackPath string, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := printer{w: w, fs: fs, opts: opts, fallback: fallbackPath}
	p.init()
	for _, d := range bag.Items() {
		if uint8(d.Severity) < opts.MinSeverity {
			continue
		}
		p.diagnostic(d)
	}
}

type printer struct {
	w        io.Writer
	fs       *source.FileSet
	opts     PrettyOpts
	fallback string

	sevColor map[diag.Severity]*color.Color
	path     *color.Color
	caret    *color.Color
}

func (p *printer) init() {
	p.sevColor = map[diag.Severity]*color.Color{
		diag.SevInfo:    color.New(color.FgCyan),
		diag.SevWarning: color.New(color.FgYellow, color.Bold),
		diag.SevError:   color.New(color.FgRed, color.Bold),
	}
	p.path = color.New(color.Bold)
	p.caret = color.New(color.FgGreen)
	for _, c := range p.sevColor {
		p.toggle(c)
	}
	p.toggle(p.path)
	p.toggle(p.caret)
}

func (p *printer) toggle(c *color.Color) {
	if p.opts.Color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
}

func (p *printer) diagnostic(d diag.Diagnostic) {
	file := spanFile(p.fs, d.Primary)
	loc := p.location(file, d.Primary)
	sev := p.sevColor[d.Severity]
	if sev == nil {
		sev = p.sevColor[diag.SevError]
	}
	fmt.Fprintf(p.w, "%s: %s %s: %s\n", p.path.Sprint(loc), sev.Sprint(d.Severity.String()), d.Code.ID(), d.Message)
	if file != nil {
		p.context(file, d.Primary)
	}
	if !p.opts.ShowNotes {
		return
	}
	for _, n := range d.Notes {
		nf := spanFile(p.fs, n.Span)
		fmt.Fprintf(p.w, "  note: %s: %s\n", p.location(nf, n.Span), n.Msg)
	}
}

func (p *printer) location(file *source.File, span source.Span) string {
	if file == nil {
		return formatPath(p.fallback, p.opts.PathMode, p.opts.BaseDir)
	}
	path := formatPath(file.Path, p.opts.PathMode, p.opts.BaseDir)
	start, _ := p.fs.Resolve(span)
	return fmt.Sprintf("%s:%d:%d", path, start.Line, start.Col)
}

// context prints the first line of the span with a caret underline.
func (p *printer) context(file *source.File, span source.Span) {
	start, end := p.fs.Resolve(span)
	line := file.GetLine(start.Line)
	if line == "" {
		return
	}
	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	} else if end.Line != start.Line {
		width = max(len(line)-int(start.Col)+1, 1)
	}
	pad := strings.Repeat(" ", max(int(start.Col)-1, 0))
	fmt.Fprintf(p.w, "  %s\n  %s%s\n", line, pad, p.caret.Sprint("^"+strings.Repeat("~", width-1)))
}
