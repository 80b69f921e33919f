package dispatchers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/brickyard-dev/brick/internal/failure"
)

func noopAction(_ context.Context, _ []string, _ *ParsedFlags) (int, error) {
	return 0, nil
}

// createTestTree builds a small tree: make <name>, get, cache clear.
func createTestTree() *DispatchNode {
	root := Root(RootSpec{
		Name:    "brick",
		Summary: "Test CLI",
		Flags: []FlagDescriptor{
			{Names: []string{"--help", "-h"}, Description: "Show help"},
			{Names: []string{"--version"}, Description: "Print version"},
			{Names: []string{"--verbose"}, Description: "Verbose logging"},
		},
	})

	Command(CommandSpec{
		Name:    "make",
		Parent:  root,
		Summary: "Generate code",
		Args:    []ArgSpec{{Name: "name", Required: true}},
		Flags: []FlagDescriptor{
			{Names: []string{"--output-dir", "-o"}, ValueHint: "<dir>"},
			{Names: []string{"--var"}, ValueHint: "<key=value>"},
			{Names: []string{"--force", "-f"}},
		},
		Action: noopAction,
	})

	Command(CommandSpec{
		Name:   "get",
		Parent: root,
		Action: noopAction,
	})

	Command(CommandSpec{
		Name:   "search",
		Parent: root,
		Args:   []ArgSpec{{Name: "query", Required: true, Variadic: true}},
		Action: noopAction,
	})

	cache := Group(GroupSpec{Name: "cache", Parent: root})
	Command(CommandSpec{Name: "clear", Parent: cache, Action: noopAction})

	return root
}

func requireUsageError(t *testing.T, err error, contains string) *failure.Error {
	t.Helper()
	require.Error(t, err)
	var fe *failure.Error
	require.ErrorAs(t, err, &fe)
	require.Equal(t, failure.KindUsageMalformed, fe.Kind)
	require.Contains(t, fe.Error(), contains)
	require.NotEmpty(t, fe.Usage, "usage errors carry help text")
	return fe
}

func TestParse_NoArguments(t *testing.T) {
	inv, err := Parse(createTestTree(), nil)

	require.NoError(t, err)
	require.Nil(t, inv.Command)
	require.False(t, inv.Version)
	require.False(t, inv.Verbose)
	require.Empty(t, inv.TopLevel())
}

func TestParse_RootFlags(t *testing.T) {
	inv, err := Parse(createTestTree(), []string{"--version", "--verbose"})

	require.NoError(t, err)
	require.True(t, inv.Version)
	require.True(t, inv.Verbose)
	require.Nil(t, inv.Command)
}

func TestParse_SimpleCommand(t *testing.T) {
	inv, err := Parse(createTestTree(), []string{"get"})

	require.NoError(t, err)
	require.NotNil(t, inv.Command)
	require.Equal(t, "get", inv.Command.Name)
	require.Equal(t, "get", inv.TopLevel())
	require.Empty(t, inv.Args)
}

func TestParse_CommandWithArgsAndFlags(t *testing.T) {
	inv, err := Parse(createTestTree(), []string{
		"--verbose", "make", "widget", "-o", "out", "--var", "name=a", "--var=kind=b", "-f",
	})

	require.NoError(t, err)
	require.True(t, inv.Verbose)
	require.Equal(t, "make", inv.Command.Name)
	require.Equal(t, []string{"widget"}, inv.Args)
	require.Equal(t, "out", inv.Flags.String("--output-dir", ""))
	require.Equal(t, []string{"name=a", "kind=b"}, inv.Flags.Strings("--var"))
	require.True(t, inv.Flags.Has("--force"))
}

func TestParse_RootFlagsAfterCommand(t *testing.T) {
	inv, err := Parse(createTestTree(), []string{"get", "--verbose"})

	require.NoError(t, err)
	require.True(t, inv.Verbose)
	require.Equal(t, "get", inv.Command.Name)
}

func TestParse_DoubleDashEndsFlags(t *testing.T) {
	inv, err := Parse(createTestTree(), []string{"make", "--", "-weird"})

	require.NoError(t, err)
	require.Equal(t, []string{"-weird"}, inv.Args)
}

func TestParse_NestedCommand(t *testing.T) {
	inv, err := Parse(createTestTree(), []string{"cache", "clear"})

	require.NoError(t, err)
	require.Equal(t, "clear", inv.Command.Name)
	require.Equal(t, "cache", inv.TopLevel())
}

func TestParse_UnknownCommand(t *testing.T) {
	_, err := Parse(createTestTree(), []string{"mak", "widget"})

	fe := requireUsageError(t, err, `Could not find a command named "mak".`)
	require.Contains(t, fe.Error(), "make")
}

func TestParse_UnknownGroupChild(t *testing.T) {
	_, err := Parse(createTestTree(), []string{"cache", "clean"})

	fe := requireUsageError(t, err, `"cache clean"`)
	require.Contains(t, fe.Error(), "clear")
}

func TestParse_GroupWithoutChild(t *testing.T) {
	_, err := Parse(createTestTree(), []string{"cache"})

	requireUsageError(t, err, "<command>")
}

func TestParse_UnknownRootFlag(t *testing.T) {
	_, err := Parse(createTestTree(), []string{"--bogus"})

	requireUsageError(t, err, `"--bogus"`)
}

func TestParse_UnknownCommandFlag(t *testing.T) {
	_, err := Parse(createTestTree(), []string{"make", "widget", "--bogus"})

	fe := requireUsageError(t, err, `"--bogus"`)
	require.Contains(t, fe.Usage, "brick make")
}

func TestParse_NegatedRootFlag(t *testing.T) {
	for _, flag := range []string{"--no-verbose", "--no-version"} {
		t.Run(flag, func(t *testing.T) {
			_, err := Parse(createTestTree(), []string{flag})
			requireUsageError(t, err, "Cannot negate option")
		})
	}
}

func TestParse_BooleanFlagWithValue(t *testing.T) {
	_, err := Parse(createTestTree(), []string{"--verbose=true"})
	requireUsageError(t, err, "--verbose=true")

	_, err = Parse(createTestTree(), []string{"make", "w", "--force=yes"})
	requireUsageError(t, err, "--force=yes")
}

func TestParse_MissingFlagValue(t *testing.T) {
	_, err := Parse(createTestTree(), []string{"make", "widget", "--output-dir"})

	requireUsageError(t, err, `Missing argument for "--output-dir"`)
}

func TestParse_MissingRequiredArg(t *testing.T) {
	_, err := Parse(createTestTree(), []string{"make"})

	requireUsageError(t, err, "<name>")
}

func TestParse_TooManyArgs(t *testing.T) {
	_, err := Parse(createTestTree(), []string{"make", "a", "b"})
	requireUsageError(t, err, "Unexpected arguments: b.")

	_, err = Parse(createTestTree(), []string{"get", "x"})
	requireUsageError(t, err, "Unexpected arguments: x.")
}

func TestParse_VariadicArgs(t *testing.T) {
	inv, err := Parse(createTestTree(), []string{"search", "flutter", "widget"})

	require.NoError(t, err)
	require.Equal(t, []string{"flutter", "widget"}, inv.Args)
}

func TestParse_PositionalWithoutCommand(t *testing.T) {
	_, err := Parse(createTestTree(), []string{"--verbose", "--", "stray"})

	requireUsageError(t, err, "stray")
}

func TestParse_HelpSkipsArgValidation(t *testing.T) {
	inv, err := Parse(createTestTree(), []string{"make", "--help"})

	require.NoError(t, err)
	require.True(t, inv.Help)
	require.Equal(t, "make", inv.Command.Name)
}

func TestParse_VersionWithCommandSkipsArgValidation(t *testing.T) {
	inv, err := Parse(createTestTree(), []string{"--version", "make"})

	require.NoError(t, err)
	require.True(t, inv.Version)
	require.Equal(t, "make", inv.Command.Name)
}

func TestParse_VersionWithUnknownCommandFails(t *testing.T) {
	_, err := Parse(createTestTree(), []string{"--version", "bogus"})

	requireUsageError(t, err, `"bogus"`)
}

func TestParse_HelpOnGroup(t *testing.T) {
	inv, err := Parse(createTestTree(), []string{"cache", "-h"})

	require.NoError(t, err)
	require.True(t, inv.Help)
	require.Equal(t, "cache", inv.Command.Name)
}
