package format

import "strings"

// rewriteArgdef returns text with every comma outside a string literal
// re-spaced with sep. Normalized text has no whitespace before a comma, so
// only the separator whitespace after it is replaced.
func rewriteArgdef(text, sep string) string {
	args := splitArgs(text)
	if len(args) < 2 {
		return text
	}
	var sb strings.Builder
	sb.Grow(len(text) + len(args)*len(sep))
	for i, arg := range args {
		if i == 0 {
			sb.WriteString(arg)
			continue
		}
		arg = strings.TrimLeft(arg, " \t")
		if arg == "" && i == len(args)-1 {
			// висячая запятая: без хвостового пробела
			sb.WriteString(strings.TrimRight(sep, " \t"))
			break
		}
		sb.WriteString(sep)
		sb.WriteString(arg)
	}
	return sb.String()
}

// splitArgs splits on commas that are not inside double quotes.
func splitArgs(text string) []string {
	var (
		args     []string
		start    int
		inString bool
	)
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c == '\\' && i+1 < len(text):
			i++
		case c == '"':
			inString = !inString
		case c == ',' && !inString:
			args = append(args, text[start:i])
			start = i + 1
		}
	}
	return append(args, text[start:])
}
