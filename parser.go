package bpaf

import (
	"github.com/d86leader/bpaf/args"
	"github.com/d86leader/bpaf/meta"
)

// ParseFunc consumes tokens from the given state and returns the parsed
// value along with the state that remains. The input state is never mutated;
// on failure the caller's state is returned unchanged so that alternatives
// can retry from the same starting point.
type ParseFunc[T any] func(args.Args) (T, args.Args, error)

// Parser matches part of a command line grammar and produces a T.
//
// A Parser owns two things: the parsing function, and the [meta.Meta]
// describing its shape for diagnostics and usage rendering. Parsers capture
// only immutable configuration, so a single value may be invoked any number
// of times (once per alternative explored, and again on a retry) with
// identical behavior.
//
// Type-changing combinators ([Map], [Parse], [Many], [Optional], [Map2]) are
// free functions because Go methods cannot introduce type parameters;
// same-type combinators ([Parser.Or], [Parser.Fallback], [Parser.Guard]) are
// methods.
type Parser[T any] struct {
	parse ParseFunc[T]
	meta  meta.Meta
}

// NewParser builds a Parser from a grammar description and a parsing
// function. The primitives in this package cover the common leaves; this is
// the escape hatch for custom ones.
func NewParser[T any](m meta.Meta, parse ParseFunc[T]) Parser[T] {
	return Parser[T]{parse: parse, meta: m}
}

// Meta returns the grammar description of this parser.
func (p Parser[T]) Meta() meta.Meta {
	return p.meta
}

// ParseArgs runs the parser against a consumption state. Most callers want
// [OptionParser.RunArgs] instead; this low-level form leaves leftover-token
// policy to the caller.
func (p Parser[T]) ParseArgs(a args.Args) (T, args.Args, error) {
	return p.parse(a)
}

// Pure always succeeds with val and consumes nothing.
func Pure[T any](val T) Parser[T] {
	return Parser[T]{parse: func(a args.Args) (T, args.Args, error) {
		return val, a, nil
	}}
}

// Map applies a pure transform to the parsed value. It fails only when the
// wrapped parser fails, and leaves the grammar description unchanged.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	fn := func(a args.Args) (U, args.Args, error) {
		val, rest, err := p.parse(a)
		if err != nil {
			var zero U
			return zero, a, err
		}
		return f(val), rest, nil
	}
	return Parser[U]{parse: fn, meta: p.meta}
}

// Parse applies a fallible transform to the parsed value. A failure from f
// becomes a [MessageError]: the value was present but invalid, which is
// distinct from it being absent.
func Parse[T, U any](p Parser[T], f func(T) (U, error)) Parser[U] {
	fn := func(a args.Args) (U, args.Args, error) {
		var zero U
		val, rest, err := p.parse(a)
		if err != nil {
			return zero, a, err
		}
		out, err := f(val)
		if err != nil {
			return zero, a, message("%s", err)
		}
		return out, rest, nil
	}
	return Parser[U]{parse: fn, meta: p.meta}
}

// Or tries p first and falls back to other only when p fails with
// [MissingError]; both attempts start from the caller's original state.
// Alternation is strictly left-biased: the first branch wins whenever it can
// succeed, with no longest-match comparison. When both branches report
// absence the errors merge, so the caller sees "expected A, or B".
// [MessageError] and [EarlyExitError] propagate immediately without trying
// the other branch: malformed input and short-circuit requests are never
// masked by an alternative.
func (p Parser[T]) Or(other Parser[T]) Parser[T] {
	fn := func(a args.Args) (T, args.Args, error) {
		var zero T
		val, rest, err := p.parse(a)
		if err == nil {
			return val, rest, nil
		}
		miss, ok := asMissing(err)
		if !ok {
			return zero, a, err
		}
		val, rest, err = other.parse(a)
		if err == nil {
			return val, rest, nil
		}
		if miss2, ok := asMissing(err); ok {
			metas := make([]meta.Meta, 0, len(miss.Metas)+len(miss2.Metas))
			metas = append(metas, miss.Metas...)
			metas = append(metas, miss2.Metas...)
			return zero, a, &MissingError{Metas: metas}
		}
		return zero, a, err
	}
	return Parser[T]{parse: fn, meta: meta.Or(p.meta, other.meta)}
}

// Many applies p repeatedly until it reports absence, collecting the results
// in order. Zero matches is a valid empty result, not an error; only
// [MissingError] is absorbed and anything else propagates from whichever
// iteration raised it. An iteration that succeeds without consuming a token
// cannot make further progress, so its value is kept and the loop stops.
func Many[T any](p Parser[T]) Parser[[]T] {
	fn := func(a args.Args) ([]T, args.Args, error) {
		var out []T
		for {
			val, rest, err := p.parse(a)
			if err != nil {
				if _, ok := asMissing(err); ok {
					return out, a, nil
				}
				return nil, a, err
			}
			out = append(out, val)
			if rest.Len() == a.Len() {
				return out, rest, nil
			}
			a = rest
		}
	}
	return Parser[[]T]{parse: fn, meta: p.meta.Optional()}
}

// Some is [Many] with at least one match required: zero matches reports the
// wrapped parser's absence instead of an empty result.
func Some[T any](p Parser[T]) Parser[[]T] {
	m := p.meta
	fn := func(a args.Args) ([]T, args.Args, error) {
		out, rest, err := Many(p).parse(a)
		if err != nil {
			return nil, a, err
		}
		if len(out) == 0 {
			return nil, a, missing(m)
		}
		return out, rest, nil
	}
	return Parser[[]T]{parse: fn, meta: m}
}

// Optional turns absence into a nil result. Any failure other than
// [MissingError] still propagates.
func Optional[T any](p Parser[T]) Parser[*T] {
	fn := func(a args.Args) (*T, args.Args, error) {
		val, rest, err := p.parse(a)
		if err != nil {
			if _, ok := asMissing(err); ok {
				return nil, a, nil
			}
			return nil, a, err
		}
		return &val, rest, nil
	}
	return Parser[*T]{parse: fn, meta: p.meta.Optional()}
}

// Fallback substitutes def when the parser reports absence. The grammar
// description is reclassified as optional, so diagnostics and usage no
// longer present the wrapped items as required.
func (p Parser[T]) Fallback(def T) Parser[T] {
	fn := func(a args.Args) (T, args.Args, error) {
		val, rest, err := p.parse(a)
		if err != nil {
			if _, ok := asMissing(err); ok {
				return def, a, nil
			}
			var zero T
			return zero, a, err
		}
		return val, rest, nil
	}
	return Parser[T]{parse: fn, meta: p.meta.Optional()}
}

// Guard validates a successfully parsed value, failing with a
// [MessageError] carrying msg when pred rejects it.
func (p Parser[T]) Guard(pred func(T) bool, msg string) Parser[T] {
	fn := func(a args.Args) (T, args.Args, error) {
		val, rest, err := p.parse(a)
		if err != nil {
			var zero T
			return zero, a, err
		}
		if !pred(val) {
			var zero T
			return zero, a, message("%s", msg)
		}
		return val, rest, nil
	}
	return Parser[T]{parse: fn, meta: p.meta}
}

// Map2 sequences two parsers against the same evolving state, threading the
// remainder of the first into the second, and combines their results with f.
// If either side fails the whole sequence fails with that error and the
// caller's state is returned unchanged: partial consumption is never
// observable.
func Map2[A, B, R any](pa Parser[A], pb Parser[B], f func(A, B) R) Parser[R] {
	fn := func(a args.Args) (R, args.Args, error) {
		var zero R
		av, rest, err := pa.parse(a)
		if err != nil {
			return zero, a, err
		}
		bv, rest, err := pb.parse(rest)
		if err != nil {
			return zero, a, err
		}
		return f(av, bv), rest, nil
	}
	return Parser[R]{parse: fn, meta: meta.And(pa.meta, pb.meta)}
}

// Map3 sequences three parsers, as [Map2] does for two.
func Map3[A, B, C, R any](pa Parser[A], pb Parser[B], pc Parser[C], f func(A, B, C) R) Parser[R] {
	fn := func(a args.Args) (R, args.Args, error) {
		var zero R
		av, rest, err := pa.parse(a)
		if err != nil {
			return zero, a, err
		}
		bv, rest, err := pb.parse(rest)
		if err != nil {
			return zero, a, err
		}
		cv, rest, err := pc.parse(rest)
		if err != nil {
			return zero, a, err
		}
		return f(av, bv, cv), rest, nil
	}
	return Parser[R]{parse: fn, meta: meta.And(pa.meta, pb.meta, pc.meta)}
}
