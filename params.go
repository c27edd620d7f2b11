package bpaf

import (
	"errors"
	"os"

	"github.com/d86leader/bpaf/args"
	"github.com/d86leader/bpaf/meta"
)

var errNotUtf8 = errors.New("not utf8")

// Named is the builder for flags, switches and arguments. Start with [Short]
// or [Long] and chain additional names, help text and an environment
// fallback before finishing with one of the parser constructors.
//
//	verbose := bpaf.Short('v').Long("verbose").Help("print more").Switch()
//
// The first short and long names are canonical; any further ones are hidden
// aliases that still match but never show up in usage.
type Named struct {
	shorts []rune
	longs  []string
	help   string
	envKey string
}

// Short starts a flag/switch/argument with a short name.
func Short(c rune) Named {
	return Named{shorts: []rune{c}}
}

// Long starts a flag/switch/argument with a long name.
func Long(name string) Named {
	return Named{longs: []string{name}}
}

// Short adds another short name. Names past the first are hidden aliases.
func (n Named) Short(c rune) Named {
	n.shorts = append(append([]rune{}, n.shorts...), c)
	return n
}

// Long adds another long name. Names past the first are hidden aliases.
func (n Named) Long(name string) Named {
	n.longs = append(append([]string{}, n.longs...), name)
	return n
}

// Help attaches help text shown in the options table.
func (n Named) Help(help string) Named {
	n.help = help
	return n
}

// Env names an environment variable consulted when the flag is absent from
// the command line. For a switch the variable being set counts as presence;
// for an argument its value is used.
func (n Named) Env(key string) Named {
	n.envKey = key
	return n
}

func (n Named) matches(tok args.Token) bool {
	for _, c := range n.shorts {
		if tok.IsShort(c) {
			return true
		}
	}
	for _, name := range n.longs {
		if tok.IsLong(name) {
			return true
		}
	}
	return false
}

func (n Named) item(metavar string, required bool) meta.Item {
	it := meta.Item{Kind: meta.KindFlag, Metavar: metavar, Help: n.help, Required: required}
	if len(n.shorts) > 0 {
		it.Short = n.shorts[0]
	}
	if len(n.longs) > 0 {
		it.Long = n.longs[0]
	}
	return it
}

// Switch is a simple boolean flag: true when present, false otherwise.
func (n Named) Switch() Parser[bool] {
	return Flag(n, true, false)
}

// Flag decodes presence of the named flag into present and absence into
// absent. The parser never fails.
func Flag[T any](n Named, present, absent T) Parser[T] {
	return buildFlag(n, present, &absent)
}

// ReqFlag decodes presence of the named flag into present and reports a
// missing error otherwise. Combined with [Parser.Or] and [Parser.Fallback]
// this expresses "one of --on or --off, defaulting to undecided".
func ReqFlag[T any](n Named, present T) Parser[T] {
	return buildFlag[T](n, present, nil)
}

func buildFlag[T any](n Named, present T, absent *T) Parser[T] {
	m := n.item("", absent == nil).Meta()
	fn := func(a args.Args) (T, args.Args, error) {
		if ok, rest := a.TakeFlag(n.matches); ok {
			return present, rest, nil
		}
		if n.envKey != "" {
			if _, ok := os.LookupEnv(n.envKey); ok {
				return present, a, nil
			}
		}
		if absent != nil {
			return *absent, a, nil
		}
		var zero T
		return zero, a, missing(m)
	}
	return Parser[T]{parse: fn, meta: m}
}

// Argument is a named option that requires a value, attached or following.
// The value must be valid UTF-8; use [Named.ArgumentOS] for raw bytes.
func (n Named) Argument(metavar string) Parser[string] {
	return Parse(n.wordArgument(metavar), strictUtf8)
}

// ArgumentOS is [Named.Argument] without UTF-8 validation: the value is
// returned exactly as the OS handed it over.
func (n Named) ArgumentOS(metavar string) Parser[string] {
	return Map(n.wordArgument(metavar), func(w args.Word) string { return w.Os })
}

func (n Named) wordArgument(metavar string) Parser[args.Word] {
	m := n.item(metavar, true).Meta()
	fn := func(a args.Args) (args.Word, args.Args, error) {
		var zero args.Word
		word, rest, err := a.TakeArg(n.matches)
		if err != nil {
			// flag present without a usable value: malformed, not absent
			return zero, a, message("%s", err)
		}
		if word != nil {
			return *word, rest, nil
		}
		if n.envKey != "" {
			if val, ok := os.LookupEnv(n.envKey); ok {
				return args.WordOf(val), a, nil
			}
		}
		return zero, a, missing(m)
	}
	return Parser[args.Word]{parse: fn, meta: m}
}

// Positional matches the earliest remaining plain value. The value must be
// valid UTF-8; use [PositionalOS] for raw bytes.
func Positional(metavar string) Parser[string] {
	return Parse(wordPositional(metavar), strictUtf8)
}

// PositionalOS is [Positional] without UTF-8 validation.
func PositionalOS(metavar string) Parser[string] {
	return Map(wordPositional(metavar), func(w args.Word) string { return w.Os })
}

func wordPositional(metavar string) Parser[args.Word] {
	m := meta.Item{Kind: meta.KindPositional, Metavar: metavar, Required: true}.Meta()
	fn := func(a args.Args) (args.Word, args.Args, error) {
		word, rest := a.TakePositional()
		if word == nil {
			var zero args.Word
			return zero, a, missing(m)
		}
		return *word, rest, nil
	}
	return Parser[args.Word]{parse: fn, meta: m}
}

// PositionalIf matches the front token only when it is a plain value
// accepted by check, peeking before committing to removal. A rejected or
// absent value yields nil without consuming anything; a named flag at the
// front is reported as the positional being missing.
func PositionalIf(metavar string, check func(string) bool) Parser[*string] {
	m := meta.Item{Kind: meta.KindPositional, Metavar: metavar}.Meta()
	fn := func(a args.Args) (*string, args.Args, error) {
		tok, ok := a.Peek()
		if !ok {
			return nil, a, nil
		}
		if tok.Kind != args.KindWord {
			return nil, a, missing(m)
		}
		if !tok.Word.Valid || !check(tok.Word.Utf8) {
			return nil, a, nil
		}
		word, rest := a.TakePositional()
		val := word.Utf8
		return &val, rest, nil
	}
	return Parser[*string]{parse: fn, meta: m}
}

func strictUtf8(w args.Word) (string, error) {
	if !w.Valid {
		return "", errNotUtf8
	}
	return w.Utf8, nil
}
