package format

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Writer accumulates packed lines. The current line stays open until Flush,
// so the reflow loop can keep appending statements to it.
type Writer struct {
	unit  string
	out   []byte
	line  []byte
	width int
	lines int
}

// NewWriter creates a writer that indents with unit.
func NewWriter(unit string, sizeHint int) *Writer {
	return &Writer{
		unit: unit,
		out:  make([]byte, 0, sizeHint),
	}
}

// Empty reports whether the open line has no content.
func (w *Writer) Empty() bool {
	return len(w.line) == 0
}

// Width is the display width of the open line, indentation included.
func (w *Writer) Width() int {
	return w.width
}

// Lines returns the number of flushed lines.
func (w *Writer) Lines() int {
	return w.lines
}

// Start opens a new line at the given depth. The caller flushes first.
func (w *Writer) Start(depth int, text string) {
	w.line = w.line[:0]
	if depth > 0 {
		w.line = append(w.line, strings.Repeat(w.unit, depth)...)
	}
	w.line = append(w.line, text...)
	w.width = displayWidth(string(w.line))
}

// Append adds sep and text to the open line.
func (w *Writer) Append(sep, text string) {
	w.line = append(w.line, sep...)
	w.line = append(w.line, text...)
	w.width += displayWidth(sep) + displayWidth(text)
}

// Flush closes the open line, writing term before the line break. An empty
// line is dropped.
func (w *Writer) Flush(term string) {
	if len(w.line) == 0 {
		return
	}
	w.out = append(w.out, w.line...)
	w.out = append(w.out, term...)
	w.out = append(w.out, '\n')
	w.line = w.line[:0]
	w.width = 0
	w.lines++
}

// Bytes finishes the document: the open line is flushed and one blank line
// closes the output. A document without lines stays empty.
func (w *Writer) Bytes(term string) []byte {
	w.Flush(term)
	if len(w.out) == 0 {
		return w.out
	}
	return append(w.out, '\n')
}

// displayWidth is the terminal width of s. A tab counts as one column.
func displayWidth(s string) int {
	return runewidth.StringWidth(s) + strings.Count(s, "\t")
}
