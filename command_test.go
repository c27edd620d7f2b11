package bpaf

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkCommand() Parser[bool] {
	workspace := Long("workspace").Help("Check all packages in the workspace").Switch()
	sub := Options(workspace).Descr("Check a package for errors")
	return Command("check", "Check a local package for errors", sub)
}

func TestCommandMatch(t *testing.T) {
	// the subparser sees everything after the command word
	val, rest, err := parseOn(t, checkCommand(), []string{"check", "--workspace"})
	require.NoError(t, err)
	assert.True(t, val)
	assert.True(t, rest.IsEmpty())

	val, rest, err = parseOn(t, checkCommand(), []string{"check"})
	require.NoError(t, err)
	assert.False(t, val)
	assert.True(t, rest.IsEmpty())
}

func TestCommandMismatch(t *testing.T) {
	_, rest, err := parseOn(t, checkCommand(), []string{"other"})
	var miss *MissingError
	require.ErrorAs(t, err, &miss)
	require.Len(t, miss.Metas, 1)
	assert.Equal(t, "check", miss.Metas[0].Usage())
	assert.Equal(t, []string{"other"}, rest.Remaining())
}

func TestCommandOpaqueMeta(t *testing.T) {
	// alternation over commands reports only the command names, not their
	// internal grammars
	other := Command("build", "Build the package", Options(Pure(false)))
	p := checkCommand().Or(other)
	_, _, err := parseOn(t, p, []string{"nope"})
	var miss *MissingError
	require.ErrorAs(t, err, &miss)
	assert.ErrorContains(t, err, "expected check, or build")
	assert.NotContains(t, err.Error(), "workspace")
}

func TestCommandSubHelp(t *testing.T) {
	_, _, err := parseOn(t, checkCommand(), []string{"check", "--help"})
	var early *EarlyExitError
	require.ErrorAs(t, err, &early)
	assert.Contains(t, early.Stdout, "Check a package for errors")
	assert.Contains(t, early.Stdout, "--workspace")
}

type cmdChoice struct {
	check bool
	build bool
}

func TestCommandAlternation(t *testing.T) {
	check := Map(checkCommand(), func(ws bool) cmdChoice { return cmdChoice{check: true} })
	build := Map(Command("build", "Build the package", Options(Pure(true))),
		func(bool) cmdChoice { return cmdChoice{build: true} })
	p := check.Or(build)

	val, _, err := parseOn(t, p, []string{"build"})
	require.NoError(t, err)
	assert.True(t, val.build)

	val, _, err = parseOn(t, p, []string{"check"})
	require.NoError(t, err)
	assert.True(t, val.check)
}
