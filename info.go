package bpaf

import (
	"errors"
	"os"

	"github.com/d86leader/bpaf/args"
	"github.com/d86leader/bpaf/meta"
	"github.com/d86leader/bpaf/usage"
)

var (
	helpFlag    = Short('h').Long("help")
	versionFlag = Short('V').Long("version")
)

// OptionParser is a [Parser] packaged with descriptive text and the process
// contract: help and version interception, the leftover-token check, and
// output/exit-code handling. Build one with [Options] and chain the
// descriptive setters.
//
//	opts := bpaf.Options(p).
//		Descr("Check a package for errors").
//		Version("0.3.0")
//	value := opts.Run()
type OptionParser[T any] struct {
	inner   Parser[T]
	descr   string
	header  string
	footer  string
	usage   string
	version string
	errOut  *Printer
	exitOut *Printer
}

// Options wraps a root parser for execution.
func Options[T any](p Parser[T]) OptionParser[T] {
	return OptionParser[T]{
		inner:   p,
		errOut:  NewPrinter(os.Stderr),
		exitOut: NewPrinter(os.Stdout),
	}
}

// Printer returns the diagnostic printer used by [OptionParser.Run], stderr
// by default. Redirect it to capture diagnostics in tests.
func (o OptionParser[T]) Printer() *Printer {
	return o.errOut
}

// Output returns the printer used for early-exit text (help, version),
// stdout by default.
func (o OptionParser[T]) Output() *Printer {
	return o.exitOut
}

// Descr sets the one-line description shown at the top of the help page.
func (o OptionParser[T]) Descr(descr string) OptionParser[T] {
	o.descr = descr
	return o
}

// Header sets text rendered between the usage line and the option table.
func (o OptionParser[T]) Header(header string) OptionParser[T] {
	o.header = header
	return o
}

// Footer sets text rendered after the option and command tables.
func (o OptionParser[T]) Footer(footer string) OptionParser[T] {
	o.footer = footer
	return o
}

// Usage overrides the generated usage line.
func (o OptionParser[T]) Usage(usageLine string) OptionParser[T] {
	o.usage = usageLine
	return o
}

// Version enables the --version/-V flag with the given version string.
func (o OptionParser[T]) Version(version string) OptionParser[T] {
	o.version = version
	return o
}

// Meta returns the grammar description of the wrapped parser.
func (o OptionParser[T]) Meta() meta.Meta {
	return o.inner.Meta()
}

func (o OptionParser[T]) renderHelp() string {
	return usage.Render(usage.Page{
		Meta:    o.inner.Meta(),
		Descr:   o.descr,
		Header:  o.header,
		Footer:  o.footer,
		Usage:   o.usage,
		Version: o.version,
	})
}

// eval runs the full pipeline against a consumption state. The wrapped
// grammar runs first, so a command hands the whole tail to its sub-parser
// before this level sees it: "prog check --help" renders the subcommand's
// page, not this one. This level's help and version flags are consulted only
// among tokens the grammar left behind, or anywhere on the line when the
// grammar failed, so help still wins over broken or incomplete input.
func (o OptionParser[T]) eval(a args.Args) (T, args.Args, error) {
	var zero T
	val, rest, err := o.inner.parse(a)
	if err != nil {
		var early *EarlyExitError
		if errors.As(err, &early) {
			// a subcommand already answered; never re-render over it
			return zero, a, err
		}
		if ok, _ := a.TakeFlag(helpFlag.matches); ok {
			return zero, a, &EarlyExitError{Stdout: o.renderHelp()}
		}
		if o.version != "" {
			if ok, _ := a.TakeFlag(versionFlag.matches); ok {
				return zero, a, &EarlyExitError{Stdout: "Version: " + o.version}
			}
		}
		return zero, a, err
	}
	if ok, _ := rest.TakeFlag(helpFlag.matches); ok {
		return zero, rest, &EarlyExitError{Stdout: o.renderHelp()}
	}
	if o.version != "" {
		if ok, _ := rest.TakeFlag(versionFlag.matches); ok {
			return zero, rest, &EarlyExitError{Stdout: "Version: " + o.version}
		}
	}
	return val, rest, nil
}

// RunArgs resolves the grammar against the given raw arguments. Leftover
// tokens after a successful parse are reported as a [MessageError]; callers
// that want a different leftover policy can use [Parser.ParseArgs] directly.
func (o OptionParser[T]) RunArgs(argv []string) (T, error) {
	val, rest, err := o.eval(args.New(argv))
	if err != nil {
		var zero T
		return zero, err
	}
	if !rest.IsEmpty() {
		var zero T
		return zero, message("unexpected %s", rest.Remaining()[0])
	}
	return val, nil
}

// Run resolves the grammar against os.Args. An [EarlyExitError] prints its
// text on stdout and exits with success; any other failure prints a
// diagnostic and the usage line on stderr and exits with failure.
func (o OptionParser[T]) Run() T {
	val, err := o.RunArgs(os.Args[1:])
	if err == nil {
		return val
	}
	var exit *EarlyExitError
	if errors.As(err, &exit) {
		o.exitOut.Print(exit.Stdout)
		os.Exit(0)
	}
	p := o.errOut
	p.Println(err)
	if u := o.usage; u != "" {
		p.Println("Usage:", u)
	} else if u := o.inner.Meta().Usage(); u != "" {
		p.Println("Usage:", u)
	}
	os.Exit(1)
	return val
}
