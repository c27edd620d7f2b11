package args

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Word is a plain command line value. It keeps the bytes exactly as the OS
// handed them over, plus a UTF-8 view that is only set when the bytes decode
// cleanly. Callers pick strict or lenient handling.
type Word struct {
	Os    string // raw argv bytes, unmodified
	Utf8  string // same as Os when Valid, empty otherwise
	Valid bool
}

// WordOf wraps raw bytes as a plain value, for values that come from outside
// the argument list such as environment fallbacks.
func WordOf(raw string) Word {
	return newWord(raw)
}

func newWord(raw string) Word {
	w := Word{Os: raw}
	if utf8.ValidString(raw) {
		w.Utf8 = raw
		w.Valid = true
	}
	return w
}

// Kind discriminates classified tokens.
type Kind int

const (
	KindWord      Kind = iota // plain value or anything after the -- separator
	KindShort                 // -x, optionally -xVALUE
	KindLong                  // --name, optionally --name=VALUE
	KindSeparator             // the literal --
)

// Token is one classified argument. Tokens are immutable once classified.
type Token struct {
	Kind  Kind
	Short rune   // set for KindShort
	Long  string // set for KindLong
	Value *Word  // attached value, if any, for KindShort/KindLong
	Word  Word   // the value for KindWord
}

// IsShort reports whether the token is the short flag -c.
func (t Token) IsShort(c rune) bool {
	return t.Kind == KindShort && t.Short == c
}

// IsLong reports whether the token is the long flag --name.
func (t Token) IsLong(name string) bool {
	return t.Kind == KindLong && t.Long == name
}

// IsNamed reports whether the token is a short or long flag.
func (t Token) IsNamed() bool {
	return t.Kind == KindShort || t.Kind == KindLong
}

func (t Token) String() string {
	switch t.Kind {
	case KindShort:
		return fmt.Sprintf("-%c", t.Short)
	case KindLong:
		return "--" + t.Long
	case KindSeparator:
		return "--"
	default:
		return t.Word.Os
	}
}

// classify turns one raw argument into a Token. afterSep forces Word
// classification for everything past the -- separator.
func classify(raw string, afterSep bool) Token {
	if afterSep {
		return Token{Kind: KindWord, Word: newWord(raw)}
	}
	switch {
	case raw == "--":
		return Token{Kind: KindSeparator}
	case len(raw) > 2 && raw[0] == '-' && raw[1] == '-':
		name := raw[2:]
		if eq := strings.IndexByte(name, '='); eq >= 0 {
			val := newWord(name[eq+1:])
			return Token{Kind: KindLong, Long: name[:eq], Value: &val}
		}
		return Token{Kind: KindLong, Long: name}
	case len(raw) > 1 && raw[0] == '-':
		c, size := utf8.DecodeRuneInString(raw[1:])
		tok := Token{Kind: KindShort, Short: c}
		if rest := raw[1+size:]; len(rest) > 0 {
			val := newWord(rest)
			tok.Value = &val
		}
		return tok
	default:
		return Token{Kind: KindWord, Word: newWord(raw)}
	}
}
