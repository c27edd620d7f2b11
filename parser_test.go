package bpaf

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/d86leader/bpaf/args"
)

func TestMap(t *testing.T) {
	p := Map(Short('n').Argument("NUM"), func(s string) int { return len(s) })
	val, _, err := parseOn(t, p, []string{"-n", "12345"})
	require.NoError(t, err)
	assert.Equal(t, 5, val)
}

func TestParseValid(t *testing.T) {
	p := Parse(Short('n').Argument("NUM"), strconv.Atoi)
	val, rest, err := parseOn(t, p, []string{"-n", "42"})
	require.NoError(t, err)
	assert.Equal(t, 42, val)
	assert.True(t, rest.IsEmpty())
}

func TestParseInvalidIsMessage(t *testing.T) {
	// present but invalid is a message, not absence
	p := Parse(Short('n').Argument("NUM"), strconv.Atoi)
	_, _, err := parseOn(t, p, []string{"-n", "nope"})
	assert.ErrorIs(t, err, &MessageError{})
	assert.NotErrorIs(t, err, &MissingError{})
}

func TestPure(t *testing.T) {
	val, rest, err := parseOn(t, Pure(7), []string{"-x"})
	require.NoError(t, err)
	assert.Equal(t, 7, val)
	assert.Equal(t, 1, rest.Len())
}

type pair struct {
	a, b bool
}

func TestMap2OrderIndependence(t *testing.T) {
	p := Map2(Short('a').Switch(), Short('b').Switch(), func(a, b bool) pair {
		return pair{a: a, b: b}
	})
	for _, argv := range [][]string{{"-a", "-b"}, {"-b", "-a"}} {
		val, rest, err := parseOn(t, p, argv)
		require.NoError(t, err)
		assert.Equal(t, pair{a: true, b: true}, val, argv)
		assert.True(t, rest.IsEmpty())
	}
}

func TestMap2NoPartialConsumption(t *testing.T) {
	p := Map2(Short('a').Switch(), ReqFlag(Short('b'), true), func(a, b bool) pair {
		return pair{a: a, b: b}
	})
	_, rest, err := parseOn(t, p, []string{"-a"})
	assert.ErrorIs(t, err, &MissingError{})
	// -a was matched internally but the caller sees no consumption
	assert.Equal(t, []string{"-a"}, rest.Remaining())
}

func TestMap3(t *testing.T) {
	p := Map3(Short('a').Switch(), Short('b').Switch(), Positional("IN"),
		func(a, b bool, in string) string {
			return in
		})
	val, rest, err := parseOn(t, p, []string{"-b", "file", "-a"})
	require.NoError(t, err)
	assert.Equal(t, "file", val)
	assert.True(t, rest.IsEmpty())
}

func TestOrLeftBias(t *testing.T) {
	// strict left bias: the first branch wins whenever it can succeed, even
	// though the second would consume more tokens
	left := ReqFlag(Short('a'), "left")
	right := Map2(ReqFlag(Short('a'), ""), ReqFlag(Short('b'), ""), func(_, _ string) string {
		return "right"
	})
	val, rest, err := parseOn(t, left.Or(right), []string{"-a", "-b"})
	require.NoError(t, err)
	assert.Equal(t, "left", val)
	assert.Equal(t, []string{"-b"}, rest.Remaining())
}

func TestOrSecondBranch(t *testing.T) {
	p := ReqFlag(Long("on"), "on").Or(ReqFlag(Long("off"), "off"))
	val, rest, err := parseOn(t, p, []string{"--off"})
	require.NoError(t, err)
	assert.Equal(t, "off", val)
	assert.True(t, rest.IsEmpty())
}

func TestOrBothMissingConcatenates(t *testing.T) {
	p := ReqFlag(Long("on"), "on").Or(ReqFlag(Long("off"), "off"))
	_, rest, err := parseOn(t, p, []string{"other"})
	var miss *MissingError
	require.ErrorAs(t, err, &miss)
	assert.Len(t, miss.Metas, 2)
	assert.ErrorContains(t, err, "expected --on, or --off")
	assert.Equal(t, []string{"other"}, rest.Remaining())
}

func TestOrMessageNotMasked(t *testing.T) {
	// malformed input in the first branch must not be hidden by a second
	// branch that could succeed
	first := Short('n').Argument("NUM")
	second := Map(Short('x').Switch(), func(bool) string { return "second" })
	_, _, err := parseOn(t, first.Or(second), []string{"-n", "-x"})
	assert.ErrorIs(t, err, &MessageError{})
}

func TestOrEarlyExitNotMasked(t *testing.T) {
	exit := NewParser(Long("exit").Switch().Meta(), func(a args.Args) (string, args.Args, error) {
		return "", a, &EarlyExitError{Stdout: "bye"}
	})
	second := Pure("second")
	_, _, err := parseOn(t, exit.Or(second), nil)
	var early *EarlyExitError
	require.ErrorAs(t, err, &early)
	assert.Equal(t, "bye", early.Stdout)
}

func TestManyCollectsInOrder(t *testing.T) {
	p := Many(Short('n').Argument("NUM"))
	val, rest, err := parseOn(t, p, []string{"-n", "1", "-n", "2", "-n", "3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, val)
	assert.True(t, rest.IsEmpty())
}

func TestManyOnAbsence(t *testing.T) {
	p := Many(ReqFlag(Short('v'), true))
	val, rest, err := parseOn(t, p, nil)
	require.NoError(t, err)
	assert.Empty(t, val)
	assert.True(t, rest.IsEmpty())
}

func TestManyCountsFlags(t *testing.T) {
	verbosity := Map(Many(ReqFlag(Short('v'), true)), func(vs []bool) int { return len(vs) })
	val, _, err := parseOn(t, verbosity, []string{"-v", "-v", "-v"})
	require.NoError(t, err)
	assert.Equal(t, 3, val)
}

func TestManyPropagatesMessage(t *testing.T) {
	p := Many(Short('n').Argument("NUM"))
	_, _, err := parseOn(t, p, []string{"-n", "1", "-n"})
	assert.ErrorIs(t, err, &MessageError{})
}

func TestManyStopsWithoutConsumption(t *testing.T) {
	p := Many(ReqFlag(Short('v'), true).Fallback(false))
	val, rest, err := parseOn(t, p, []string{"word"})
	require.NoError(t, err)
	assert.Equal(t, []bool{false}, val)
	assert.Equal(t, 1, rest.Len())
}

func TestSome(t *testing.T) {
	p := Some(ReqFlag(Short('v'), true))
	val, _, err := parseOn(t, p, []string{"-v", "-v"})
	require.NoError(t, err)
	assert.Len(t, val, 2)

	_, _, err = parseOn(t, p, nil)
	assert.ErrorIs(t, err, &MissingError{})
}

func TestOptional(t *testing.T) {
	p := Optional(Short('n').Argument("NUM"))
	val, _, err := parseOn(t, p, []string{"-n", "5"})
	require.NoError(t, err)
	require.NotNil(t, val)
	assert.Equal(t, "5", *val)

	val, _, err = parseOn(t, p, nil)
	require.NoError(t, err)
	assert.Nil(t, val)
}

func TestOptionalPropagatesMessage(t *testing.T) {
	p := Optional(Short('n').Argument("NUM"))
	_, _, err := parseOn(t, p, []string{"-n"})
	assert.ErrorIs(t, err, &MessageError{})
}

func TestFallback(t *testing.T) {
	p := Short('o').Argument("FILE").Fallback("a.out")
	val, _, err := parseOn(t, p, nil)
	require.NoError(t, err)
	assert.Equal(t, "a.out", val)

	val, _, err = parseOn(t, p, []string{"-o", "out.bin"})
	require.NoError(t, err)
	assert.Equal(t, "out.bin", val)
}

func TestFallbackReclassifiesMeta(t *testing.T) {
	p := ReqFlag(Long("on"), true)
	assert.Equal(t, "--on", p.Meta().Usage())
	assert.Equal(t, "[--on]", p.Fallback(false).Meta().Usage())
}

func TestParserReuse(t *testing.T) {
	// one parser value explored across branches and retried: identical
	// behavior every time, no residual state
	sw := Short('v').Switch()
	p := Map2(sw, sw, func(a, b bool) pair { return pair{a: a, b: b} })
	for i := 0; i < 3; i++ {
		val, _, err := parseOn(t, p, []string{"-v"})
		require.NoError(t, err)
		assert.Equal(t, pair{a: true, b: false}, val)
	}
}

func TestMissingErrorIs(t *testing.T) {
	err := missing()
	assert.True(t, errors.Is(err, &MissingError{}))
	assert.False(t, errors.Is(err, &MessageError{}))
}
