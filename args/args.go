package args

import "fmt"

// Args is the consumption state of a single parse attempt: the tokens not yet
// claimed by any parser, in their original relative order.
//
// Args has value semantics. Every Take operation leaves the receiver intact
// and returns a new Args with the claimed tokens removed, so trying one
// alternative and falling back to another is just a matter of discarding the
// returned value. Removal always allocates a fresh token slice; two Args
// values never share a mutable backing array.
type Args struct {
	tokens  []Token
	sepSeen bool
}

// New classifies raw arguments (usually os.Args[1:]) into the initial
// consumption state. The -- separator is consumed here: it never appears as a
// remaining token, and everything after it classifies as a plain Word.
func New(argv []string) Args {
	a := Args{tokens: make([]Token, 0, len(argv))}
	for _, raw := range argv {
		tok := classify(raw, a.sepSeen)
		if tok.Kind == KindSeparator {
			a.sepSeen = true
			continue
		}
		a.tokens = append(a.tokens, tok)
	}
	return a
}

// Len returns the number of remaining tokens.
func (a Args) Len() int {
	return len(a.tokens)
}

// IsEmpty reports whether every token has been consumed.
func (a Args) IsEmpty() bool {
	return len(a.tokens) == 0
}

// Peek returns the earliest remaining token without consuming it.
func (a Args) Peek() (Token, bool) {
	if len(a.tokens) == 0 {
		return Token{}, false
	}
	return a.tokens[0], true
}

// Remaining returns the remaining tokens rendered back to strings, for
// diagnostics about unconsumed input.
func (a Args) Remaining() []string {
	out := make([]string, len(a.tokens))
	for i, tok := range a.tokens {
		out[i] = tok.String()
	}
	return out
}

// without returns a copy of the state with the tokens at the given indexes
// removed. Indexes must be ascending.
func (a Args) without(idx ...int) Args {
	remaining := make([]Token, 0, len(a.tokens)-len(idx))
	skip := 0
	for i, tok := range a.tokens {
		if skip < len(idx) && i == idx[skip] {
			skip++
			continue
		}
		remaining = append(remaining, tok)
	}
	a.tokens = remaining
	return a
}

// TakeFlag scans left to right for the first named flag satisfying pred and
// removes it. The boolean reports presence; an unmatched scan returns the
// state unchanged.
func (a Args) TakeFlag(pred func(Token) bool) (bool, Args) {
	for i, tok := range a.tokens {
		if tok.IsNamed() && pred(tok) {
			return true, a.without(i)
		}
	}
	return false, a
}

// TakeArg scans left to right for the first named flag satisfying pred and
// removes it together with its value: the attached value if present,
// otherwise the immediately following Word token. A matched flag with no
// usable value is malformed input and yields an error, never silent absence.
// An unmatched scan returns (nil, unchanged, nil).
func (a Args) TakeArg(pred func(Token) bool) (*Word, Args, error) {
	for i, tok := range a.tokens {
		if !tok.IsNamed() || !pred(tok) {
			continue
		}
		if tok.Value != nil {
			val := *tok.Value
			return &val, a.without(i), nil
		}
		if i+1 < len(a.tokens) && a.tokens[i+1].Kind == KindWord {
			val := a.tokens[i+1].Word
			return &val, a.without(i, i+1), nil
		}
		return nil, a, fmt.Errorf("%s needs a value", tok)
	}
	return nil, a, nil
}

// TakeCmd removes the earliest remaining token if it is a Word equal to name.
// Unlike TakeFlag it never scans past the front: a command is only a command
// at the current position.
func (a Args) TakeCmd(name string) (bool, Args) {
	if len(a.tokens) > 0 && a.tokens[0].Kind == KindWord && a.tokens[0].Word.Os == name {
		return true, a.without(0)
	}
	return false, a
}

// TakePositional removes and returns the earliest remaining Word token.
// Named flags are a disjoint token kind and are skipped implicitly.
func (a Args) TakePositional() (*Word, Args) {
	for i, tok := range a.tokens {
		if tok.Kind == KindWord {
			word := tok.Word
			return &word, a.without(i)
		}
	}
	return nil, a
}
