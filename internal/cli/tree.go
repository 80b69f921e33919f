// Package cli declares the brick command tree.
package cli

import (
	"context"

	"github.com/brickyard-dev/brick/internal/actions/account"
	"github.com/brickyard-dev/brick/internal/actions/completions"
	"github.com/brickyard-dev/brick/internal/actions/generate"
	"github.com/brickyard-dev/brick/internal/actions/manage"
	"github.com/brickyard-dev/brick/internal/actions/share"
	"github.com/brickyard-dev/brick/internal/actions/update"
	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/domain"
)

// CompletionCommand is the name of the completion command, which the
// runner treats specially.
const CompletionCommand = "completion"

// bind adapts an action taking its dependencies to a CommandFunc.
func bind[D any](fn func(context.Context, []string, *dispatchers.ParsedFlags, D) error, deps D) dispatchers.CommandFunc {
	return func(ctx context.Context, args []string, flags *dispatchers.ParsedFlags) (int, error) {
		return 0, fn(ctx, args, flags, deps)
	}
}

// BuildTree registers every brick command. Registering a name twice panics.
func BuildTree(app *domain.Application, releases update.ReleaseSource) *dispatchers.DispatchNode {
	root := dispatchers.Root(dispatchers.RootSpec{
		Name:    "brick",
		Summary: "Create and consume reusable templates called bricks",
		Usage:   "brick <command> [flags]",
		Flags:   RootFlags,
	})

	manageDeps := manage.NewDependencies(app)
	generateDeps := generate.NewDependencies(app)
	shareDeps := share.NewDependencies(app)
	accountDeps := account.NewDependencies(app)

	// get started
	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "init",
		Parent:   root,
		Summary:  "Initialize bricks in the current directory",
		Usage:    "brick init",
		Flags:    ManifestFlags,
		Action:   bind(manage.Init, manageDeps),
		Category: dispatchers.CategoryGetStarted,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:        "new",
		Parent:      root,
		Summary:     "Create a new brick template",
		Description: "Scaffolds <name>/brick.yaml and an example __brick__ template.",
		Usage:       "brick new <name>",
		Flags:       NewFlags,
		Args:        BrickNameArg,
		Action:      bind(generate.New, generateDeps),
		Category:    dispatchers.CategoryGetStarted,
	})

	// manage bricks
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "add",
		Parent:  root,
		Summary: "Add a brick to bricks.yaml",
		Description: "Without a source flag the brick comes from the registry at its newest version.\n" +
			"Use one of --path, --git or --version to pick a source.",
		Usage:    "brick add <name>",
		Flags:    AddFlags,
		Args:     BrickNameArg,
		Action:   bind(manage.Add, manageDeps),
		Category: dispatchers.CategoryManageBricks,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "remove",
		Parent:   root,
		Summary:  "Remove a brick from bricks.yaml",
		Usage:    "brick remove <name>",
		Flags:    ManifestFlags,
		Args:     BrickNameArg,
		Action:   bind(manage.Remove, manageDeps),
		Category: dispatchers.CategoryManageBricks,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "list",
		Parent:   root,
		Summary:  "List installed bricks",
		Usage:    "brick list",
		Flags:    ManifestFlags,
		Action:   bind(manage.List, manageDeps),
		Category: dispatchers.CategoryManageBricks,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "get",
		Parent:   root,
		Summary:  "Get all bricks listed in bricks.yaml",
		Usage:    "brick get",
		Flags:    ManifestFlags,
		Action:   bind(manage.Get, manageDeps),
		Category: dispatchers.CategoryManageBricks,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "upgrade",
		Parent:   root,
		Summary:  "Upgrade registry bricks to their latest allowed version",
		Usage:    "brick upgrade",
		Flags:    ManifestFlags,
		Action:   bind(manage.Upgrade, manageDeps),
		Category: dispatchers.CategoryManageBricks,
	})

	// generate code
	dispatchers.Command(dispatchers.CommandSpec{
		Name:    "make",
		Parent:  root,
		Summary: "Generate code using an existing brick template",
		Description: "Variables are read from --var, then asked for on a terminal, then taken\n" +
			"from their defaults.",
		Usage:    "brick make <name>",
		Flags:    MakeFlags,
		Args:     BrickNameArg,
		Action:   bind(generate.Make, generateDeps),
		Category: dispatchers.CategoryGenerate,
	})

	// share bricks
	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "bundle",
		Parent:   root,
		Summary:  "Generate a bundle from a brick template",
		Usage:    "brick bundle <path>",
		Flags:    OutputDirFlags,
		Args:     BrickPathArg,
		Action:   bind(share.Bundle, shareDeps),
		Category: dispatchers.CategoryShare,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "unbundle",
		Parent:   root,
		Summary:  "Generate a brick template from a bundle",
		Usage:    "brick unbundle <bundle>",
		Flags:    OutputDirFlags,
		Args:     BundleFileArg,
		Action:   bind(share.Unbundle, shareDeps),
		Category: dispatchers.CategoryShare,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "publish",
		Parent:   root,
		Summary:  "Publish a brick to the registry",
		Usage:    "brick publish [path]",
		Flags:    PublishFlags,
		Args:     OptionalBrickPathArg,
		Action:   bind(share.Publish, shareDeps),
		Category: dispatchers.CategoryShare,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "search",
		Parent:   root,
		Summary:  "Search the registry for bricks",
		Usage:    "brick search <query>",
		Args:     SearchQueryArg,
		Action:   bind(share.Search, shareDeps),
		Category: dispatchers.CategoryShare,
	})

	// registry account
	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "login",
		Parent:   root,
		Summary:  "Log into the brick registry",
		Usage:    "brick login --token <token>",
		Flags:    LoginFlags,
		Action:   bind(account.Login, accountDeps),
		Category: dispatchers.CategoryAccount,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "logout",
		Parent:   root,
		Summary:  "Log out of the brick registry",
		Usage:    "brick logout",
		Action:   bind(account.Logout, accountDeps),
		Category: dispatchers.CategoryAccount,
	})

	// maintain brick
	cache := dispatchers.Group(dispatchers.GroupSpec{
		Name:     "cache",
		Parent:   root,
		Summary:  "Interact with the brick cache",
		Usage:    "brick cache <command>",
		Category: dispatchers.CategoryMaintenance,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     "clear",
		Parent:   cache,
		Summary:  "Clear the brick cache",
		Usage:    "brick cache clear",
		Action:   bind(manage.CacheClear, manageDeps),
		Category: dispatchers.CategoryMaintenance,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     update.Command,
		Parent:   root,
		Summary:  "Update brick to the latest version",
		Usage:    "brick update",
		Flags:    UpdateFlags,
		Action:   bind(update.Update, update.NewDependencies(app, releases)),
		Category: dispatchers.CategoryMaintenance,
	})

	dispatchers.Command(dispatchers.CommandSpec{
		Name:     CompletionCommand,
		Parent:   root,
		Summary:  "Print a shell completion script",
		Usage:    "brick completion [bash|zsh|fish]",
		Args:     ShellArg,
		Action:   bind(completions.Completion, completions.NewDependencies(app, root)),
		Category: dispatchers.CategoryMaintenance,
	})

	return root
}
