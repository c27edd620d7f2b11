/*
Package bpaf composes command line parsers out of small, independently
defined pieces and resolves them against the argument list exactly once,
producing a typed value or a structured failure.

# Terminology

A flag is a no-argument option with a short (-f) or long (--flag) name that
decodes to a fixed value; see [Flag] and [ReqFlag]. A switch is a flag
decoded to a bool; see [Named.Switch]. An argument is a named option that
also takes a value, attached (-fVALUE, --flag=VALUE) or following; see
[Named.Argument]. A positional is an unnamed value matched by position, like
the file in "vim main.go"; see [Positional]. A command is a literal leading
word that hands the rest of the command line to an independent sub-parser,
like "check" in "cargo check --workspace"; see [Command].

# Composition

Every piece is a [Parser] carrying both its parsing function and a
description of its grammar. Combinators compose parsers without ever sharing
mutable state: [Map2] sequences, [Parser.Or] picks the first alternative that
matches, [Many] repeats, [Optional] and [Parser.Fallback] absorb absence.
Tokens are consumed strictly left to right and a failed attempt leaves the
input untouched, so independently written pieces never double-consume and
order between unrelated options does not matter:

	verbose := bpaf.Short('v').Long("verbose").Help("print more").Switch()
	output := bpaf.Short('o').Long("output").Argument("FILE").Fallback("a.out")
	opts := bpaf.Map2(verbose, output, func(v bool, o string) Opts {
		return Opts{Verbose: v, Output: o}
	})
	result := bpaf.Options(opts).Descr("An example").Run()

[Options] wraps the root parser with help and version handling and the
process exit contract; see [OptionParser.Run] and [OptionParser.RunArgs].

# Failure taxonomy

Absence of a required piece is a [MissingError], carrying grammar fragments
rich enough to say "expected -a, or --bee". Malformed input, such as a flag
without its value, invalid UTF-8, or a value rejected by [Parser.Guard], is a
[MessageError] and is never masked by an alternative. Help and version requests short
circuit as [EarlyExitError], a success for exit-code purposes.
*/
package bpaf
