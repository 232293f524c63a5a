package doctag

import (
	"bytes"
	"path/filepath"
	"strings"
)

// Tags recognised at the start of a documentation block.
const (
	HeaderTag     = "/*## Header:"
	ExamplesTag   = "/*## Examples:"
	AttributesTag = "/*## Attributes:"

	// BarMarker starts a header line inside documentation text.
	BarMarker = "# ---"
)

// DefaultDashWidth is the column the dash bars extend to.
const DefaultDashWidth = 99

// Doc holds the raw body of each tagged block, without the comment markers.
type Doc struct {
	Header     string
	Examples   string
	Attributes string
}

// Empty reports whether no tagged block was found.
func (d Doc) Empty() bool {
	return d.Header == "" && d.Examples == "" && d.Attributes == ""
}

// Options controls rendering.
type Options struct {
	// Module names the module in the examples heading.
	Module    string
	DashWidth int
}

// Extract finds the first block for each tag. Tabs are folded to spaces the
// same way the formatter folds them.
func Extract(raw []byte) Doc {
	text := strings.ReplaceAll(string(raw), "\t", " ")
	return Doc{
		Header:     block(text, HeaderTag),
		Examples:   block(text, ExamplesTag),
		Attributes: block(text, AttributesTag),
	}
}

// block returns the text between tag and the next "*/", with trailing '#'
// decoration removed. A tag without a closing marker yields nothing.
func block(text, tag string) string {
	start := strings.Index(text, tag)
	if start < 0 {
		return ""
	}
	start += len(tag)
	end := strings.Index(text[start:], "*/")
	if end < 0 {
		return ""
	}
	return strings.TrimRight(text[start:start+end], "#")
}

// Render lays out the document: header, examples, attributes, each separated
// by two blank lines, with "# ---" header lines stretched into dash bars.
func Render(d Doc, opts Options) []byte {
	if opts.DashWidth == 0 {
		opts.DashWidth = DefaultDashWidth
	}

	var sb strings.Builder
	sb.WriteString(trimTail(d.Header))
	sb.WriteString("\n\n\n")

	if ex := strings.Trim(d.Examples, "\n"); ex != "" {
		sb.WriteString(trimTail(BarMarker + " Example use of the " + opts.Module + " module:\n\n" + ex))
	}
	sb.WriteString("\n\n\n")

	if d.Attributes != "" {
		sb.WriteString(BarMarker + " Module attributes:\n")
		sb.WriteString(strings.Trim(spaceSections(d.Attributes), "\n"))
	}

	var out bytes.Buffer
	for _, line := range strings.SplitAfter(sb.String(), "\n") {
		out.WriteString(dashBar(line, opts.DashWidth))
	}
	doc := strings.Trim(out.String(), "\n")
	return []byte(doc + "\n\n")
}

// spaceSections makes sure every "# ---" section inside the attributes is
// preceded by a blank line when the section before it spans several lines.
func spaceSections(attrs string) string {
	parts := strings.Split(attrs, BarMarker)
	if len(parts) < 2 {
		return attrs
	}
	var sb strings.Builder
	for _, part := range parts[:len(parts)-1] {
		if strings.HasSuffix(part, "\n\n") {
			sb.WriteString(part)
			sb.WriteString(BarMarker)
			continue
		}
		part = strings.TrimRight(part, " \n")
		if strings.Contains(part, "\n") {
			sb.WriteString(part + "\n\n" + BarMarker)
		} else {
			sb.WriteString(part + "\n" + BarMarker)
		}
	}
	return strings.TrimLeft(sb.String(), "\n") + parts[len(parts)-1]
}

// dashBar rewrites a "# --- Title:" or "# --- Title ---" line into
// "# --- Title -----" reaching width columns. Lines where fewer than three
// dashes would fit are left alone.
func dashBar(line string, width int) string {
	idx := strings.Index(line, BarMarker)
	if idx < 0 {
		return line
	}
	body, nl := strings.CutSuffix(line, "\n")
	var title string
	switch {
	case strings.HasSuffix(body, " ---") && len(body)-idx > len(BarMarker)+len(" ---"):
		title = strings.TrimSuffix(body, " ---")
	case strings.HasSuffix(body, ":"):
		title = strings.TrimSuffix(body, ":")
	default:
		return line
	}
	title = strings.TrimRight(title, " ") + " "
	dashes := width - len(title)
	if dashes < 3 {
		return line
	}
	out := title + strings.Repeat("-", dashes)
	if nl {
		out += "\n"
	}
	return out
}

func trimTail(s string) string {
	return strings.TrimRight(s, " \t\r\n\v\f")
}

// OutputName returns "<stem>_doc.<ext>" for a source path.
func OutputName(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "_doc" + ext
}

// ModuleName is the source file name without its extension.
func ModuleName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
