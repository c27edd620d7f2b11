package bpaf

import (
	"github.com/d86leader/bpaf/args"
	"github.com/d86leader/bpaf/meta"
)

// Command matches name as the earliest remaining plain token and hands the
// entire rest of the command line to the independently compiled sub-parser,
// whose result or error is returned as-is. The sub-parser keeps its own help
// handling, so `prog check --help` renders the subcommand's page.
//
// For the surrounding grammar the command is an opaque leaf: alternation
// over several commands reports only the command names on failure, never
// their internals.
//
//	workspace := bpaf.Long("workspace").Help("Check the whole workspace").Switch()
//	check := bpaf.Command("check", "Check a local package for errors",
//		bpaf.Options(workspace).Descr("Check a package for errors"))
func Command[T any](name, help string, sub OptionParser[T]) Parser[T] {
	m := meta.Item{Kind: meta.KindCommand, Long: name, Help: help, Required: true}.Meta()
	fn := func(a args.Args) (T, args.Args, error) {
		if ok, rest := a.TakeCmd(name); ok {
			return sub.eval(rest)
		}
		var zero T
		return zero, a, missing(m)
	}
	return Parser[T]{parse: fn, meta: m}
}
