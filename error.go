package bpaf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/d86leader/bpaf/meta"
)

// MissingError reports the legitimate absence of one or more required parts
// of the grammar. It is the only error combinators recover from: Or falls
// through to its alternative, Optional and Fallback substitute a value, and
// Many stops iterating. The carried Meta fragments describe what was
// expected, one entry per failed alternative.
type MissingError struct {
	Metas []meta.Meta
}

func (e *MissingError) Error() string {
	expected := make([]string, len(e.Metas))
	for i, m := range e.Metas {
		expected[i] = m.Usage()
	}
	return "expected " + strings.Join(expected, ", or ")
}

func (e *MissingError) Is(err error) bool {
	_, ok := err.(*MissingError)
	return ok
}

// MessageError reports malformed input: a value that was present but failed
// validation, a flag given without its value, or bytes that were not valid
// UTF-8 where a strict string was required. It is never recovered locally
// and always propagates to the top of the combinator tree.
type MessageError struct {
	Text string
}

func (e *MessageError) Error() string {
	return e.Text
}

func (e *MessageError) Is(err error) bool {
	_, ok := err.(*MessageError)
	return ok
}

// EarlyExitError is a success-shaped short circuit: parsing should stop
// immediately and the carried text should be printed on stdout with a zero
// exit code. Help and version requests produce it. Modelling it as an error
// lets it unwind every combinator uniformly, bypassing any alternative that
// has not been tried yet.
type EarlyExitError struct {
	Stdout string
}

func (e *EarlyExitError) Error() string {
	return e.Stdout
}

func (e *EarlyExitError) Is(err error) bool {
	_, ok := err.(*EarlyExitError)
	return ok
}

func missing(ms ...meta.Meta) error {
	return &MissingError{Metas: ms}
}

func message(format string, args ...any) error {
	return &MessageError{Text: fmt.Sprintf(format, args...)}
}

func asMissing(err error) (*MissingError, bool) {
	var miss *MissingError
	if errors.As(err, &miss) {
		return miss, true
	}
	return nil, false
}
