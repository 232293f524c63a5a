package lexer

import "testing"

func TestStep(t *testing.T) {
	tests := []struct {
		from State
		in   byte
		to   State
		act  Action
	}{
		{StateNormal, 'a', StateNormal, ActEmit},
		{StateNormal, ' ', StateNormal, ActSpace},
		{StateNormal, '\r', StateNormal, ActSpace},
		{StateNormal, ',', StateNormal, ActComma},
		{StateNormal, ';', StateNormal, ActEnd},
		{StateNormal, '\n', StateNormal, ActEnd},
		{StateNormal, '#', StateLineComment, ActDrop},
		{StateNormal, '/', StateBlockProbe, ActDrop},
		{StateNormal, '"', StateString, ActEmit},
		{StateNormal, '\\', StateNormal, ActEscape},

		{StateLineComment, '"', StateLineComment, ActDrop},
		{StateLineComment, '\n', StateNormal, ActEnd},

		{StateBlockProbe, '*', StateBlockBody, ActDrop},
		{StateBlockProbe, 'x', StateNormal, ActReplay},
		{StateBlockProbe, '/', StateNormal, ActReplay},

		{StateBlockBody, '\n', StateBlockBody, ActDrop},
		{StateBlockBody, '"', StateBlockBody, ActDrop},
		{StateBlockBody, '*', StateBlockExitProbe, ActDrop},
		{StateBlockExitProbe, '*', StateBlockExitProbe, ActDrop},
		{StateBlockExitProbe, 'x', StateBlockBody, ActDrop},
		{StateBlockExitProbe, '/', StateNormal, ActDrop},

		{StateString, '#', StateString, ActCopy},
		{StateString, ',', StateString, ActCopy},
		{StateString, '"', StateNormal, ActCopy},
		{StateString, '\n', StateNormal, ActEnd},
		{StateString, '\\', StateStringEscape, ActCopy},
		{StateStringEscape, '"', StateString, ActCopy},
		{StateStringEscape, '\n', StateNormal, ActEnd},
	}
	for _, tt := range tests {
		to, act := Step(tt.from, tt.in)
		if to != tt.to || act != tt.act {
			t.Errorf("Step(%v, %q) = (%v, %d), want (%v, %d)", tt.from, tt.in, to, act, tt.to, tt.act)
		}
	}
}

func TestStatePredicates(t *testing.T) {
	if !StateBlockExitProbe.InComment() || StateBlockProbe.InComment() {
		t.Fatalf("InComment mismatch")
	}
	if !StateStringEscape.InString() || StateNormal.InString() {
		t.Fatalf("InString mismatch")
	}
	if State(99).String() != "unknown" {
		t.Fatalf("String for unknown state")
	}
}
