package lexer

// State is the scanner mode. Exactly one is active at a time.
type State uint8

const (
	StateNormal State = iota
	StateLineComment
	// StateBlockProbe follows a '/' that may open a block comment.
	StateBlockProbe
	StateBlockBody
	// StateBlockExitProbe follows a '*' inside a block comment.
	StateBlockExitProbe
	StateString
	// StateStringEscape follows a backslash inside a string.
	StateStringEscape
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateLineComment:
		return "line-comment"
	case StateBlockProbe:
		return "block-probe"
	case StateBlockBody:
		return "block-body"
	case StateBlockExitProbe:
		return "block-exit-probe"
	case StateString:
		return "string"
	case StateStringEscape:
		return "string-escape"
	}
	return "unknown"
}

// InComment reports whether the state discards input.
func (s State) InComment() bool {
	return s == StateLineComment || s == StateBlockBody || s == StateBlockExitProbe
}

// InString reports whether the state copies input verbatim.
func (s State) InString() bool {
	return s == StateString || s == StateStringEscape
}

// Action tells the lexer what to do with the byte that caused a transition.
type Action uint8

const (
	// ActDrop discards the byte.
	ActDrop Action = iota
	// ActEmit appends the byte to the statement, preceded by a pending space.
	ActEmit
	// ActCopy appends the byte verbatim (string content).
	ActCopy
	// ActSpace records a token boundary.
	ActSpace
	// ActComma appends the configured comma separator.
	ActComma
	// ActEnd terminates the current statement.
	ActEnd
	// ActReplay emits the '/' held by the block probe, then feeds the byte
	// again in StateNormal.
	ActReplay
	// ActEscape emits a backslash outside strings; the lexer keeps an
	// escaped quote that follows it from opening a string.
	ActEscape
)

// isSpace reports ASCII whitespace other than the line terminator. Tabs are
// folded to spaces before they reach the state machine.
func isSpace(b byte) bool {
	return b == ' ' || b == '\r' || b == '\v' || b == '\f'
}

// Step is the pure transition function: given the current state and the
// next byte it returns the following state and the action for that byte.
func Step(st State, b byte) (State, Action) {
	switch st {
	case StateLineComment:
		if b == '\n' {
			return StateNormal, ActEnd
		}
		return StateLineComment, ActDrop

	case StateBlockProbe:
		if b == '*' {
			return StateBlockBody, ActDrop
		}
		return StateNormal, ActReplay

	case StateBlockBody:
		if b == '*' {
			return StateBlockExitProbe, ActDrop
		}
		return StateBlockBody, ActDrop

	case StateBlockExitProbe:
		switch b {
		case '/':
			return StateNormal, ActDrop
		case '*':
			return StateBlockExitProbe, ActDrop
		}
		return StateBlockBody, ActDrop

	case StateString:
		switch b {
		case '"':
			return StateNormal, ActCopy
		case '\n':
			return StateNormal, ActEnd
		case '\\':
			return StateStringEscape, ActCopy
		}
		return StateString, ActCopy

	case StateStringEscape:
		if b == '\n' {
			return StateNormal, ActEnd
		}
		return StateString, ActCopy
	}

	// StateNormal
	switch {
	case b == '\n' || b == ';':
		return StateNormal, ActEnd
	case b == '#':
		return StateLineComment, ActDrop
	case b == '/':
		return StateBlockProbe, ActDrop
	case b == '"':
		return StateString, ActEmit
	case b == ',':
		return StateNormal, ActComma
	case b == '\\':
		return StateNormal, ActEscape
	case isSpace(b):
		return StateNormal, ActSpace
	}
	return StateNormal, ActEmit
}
