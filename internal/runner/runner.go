// Package runner turns process arguments into an exit code: it parses them
// against the command tree, applies the global flags, dispatches, classifies
// the outcome and runs the update check.
package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/brickyard-dev/brick/internal/actions/update"
	"github.com/brickyard-dev/brick/internal/cli"
	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/domain"
	"github.com/brickyard-dev/brick/internal/exitcode"
	"github.com/brickyard-dev/brick/internal/failure"
	"github.com/brickyard-dev/brick/internal/log"
	"github.com/brickyard-dev/brick/internal/ui/style"
)

// pager is implemented by output writers that can page long text.
type pager interface {
	Pager(content string)
}

// Runner executes one invocation. It owns the registry handle and closes
// it exactly once, however Run returns.
type Runner struct {
	Root     *dispatchers.DispatchNode
	Version  string
	Logger   domain.Logger
	Stdout   io.Writer
	Stderr   io.Writer
	Styler   domain.Styler
	Notifier *update.Notifier
	Registry io.Closer

	closeOnce sync.Once
}

// New creates a Runner for app. The registry handle of app is released by
// the Runner.
func New(app *domain.Application, root *dispatchers.DispatchNode, notifier *update.Notifier) *Runner {
	return &Runner{
		Root:     root,
		Version:  app.Version,
		Logger:   app.Logger,
		Stdout:   app.Output,
		Stderr:   app.Errors,
		Styler:   app.Styler,
		Notifier: notifier,
		Registry: app.Registry,
	}
}

// Run handles rawArgs and returns the exit code. It never panics because
// of a command.
func (r *Runner) Run(ctx context.Context, rawArgs []string) exitcode.Code {
	defer r.release()

	if r.Logger == nil {
		r.Logger = log.NopLogger{}
	}
	if r.Styler == nil {
		r.Styler = style.NopStyler{}
	}

	inv, err := dispatchers.Parse(r.Root, rawArgs)
	if err != nil {
		return r.report(nil, err)
	}

	if inv.TopLevel() == cli.CompletionCommand {
		if inv.Help {
			r.showHelp(dispatchers.HelpText(inv.Command, r.Root))
			return exitcode.Success
		}
		if _, err := r.dispatch(ctx, inv); err != nil {
			r.printError(inv, err)
		}
		return exitcode.Success
	}

	if inv.Verbose {
		r.Logger.SetLevel(log.LevelDebug)
		r.Logger.Debug("verbose logging enabled")
	}

	var code exitcode.Code
	switch {
	case inv.Version:
		_, _ = fmt.Fprintln(r.Stdout, r.Version)
		code = exitcode.Success
	case inv.Help || inv.Command == nil:
		node := inv.Command
		if node == nil {
			node = r.Root
		}
		r.showHelp(dispatchers.HelpText(node, r.Root))
		code = exitcode.Success
	default:
		result, err := r.dispatch(ctx, inv)
		if err != nil {
			return r.report(inv, err)
		}
		code = exitcode.Code(result)
	}

	if update.ShouldCheckUpdate(inv.TopLevel()) {
		r.Notifier.CheckAndNotify(ctx, r.Version)
	}
	return code
}

// dispatch runs the command action, turning a panic into an unclassified
// error.
func (r *Runner) dispatch(ctx context.Context, inv *dispatchers.Invocation) (result int, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.Logger.Debug("command %s panicked: %v", inv.TopLevel(), rec)
			err = fmt.Errorf("unexpected error: %v", rec)
		}
	}()

	r.Logger.Debug("running %v with args %q", inv.Command.Path, inv.Args)
	return inv.Command.Action(ctx, inv.Args, inv.Flags)
}

// report prints err and maps it to an exit code.
func (r *Runner) report(inv *dispatchers.Invocation, err error) exitcode.Code {
	r.printError(inv, err)
	return exitcode.FromError(err)
}

func (r *Runner) printError(inv *dispatchers.Invocation, err error) {
	var fe *failure.Error
	if !errors.As(err, &fe) {
		_, _ = fmt.Fprintln(r.Stderr, err.Error())
		return
	}

	if fe.Kind == failure.KindUsageSemantic && fe.Usage == "" && inv != nil && inv.Command != nil {
		fe = fe.WithUsage(dispatchers.HelpText(inv.Command, r.Root))
	}

	_, _ = fmt.Fprintln(r.Stderr, r.Styler.Error(fe.Error()))
	if fe.ShowsUsage() {
		_, _ = fmt.Fprintf(r.Stderr, "\n%s", fe.Usage)
	}
}

func (r *Runner) showHelp(text string) {
	if p, ok := r.Stdout.(pager); ok {
		p.Pager(text)
		return
	}
	_, _ = io.WriteString(r.Stdout, text)
}

func (r *Runner) release() {
	r.closeOnce.Do(func() {
		if r.Registry == nil {
			return
		}
		if err := r.Registry.Close(); err != nil {
			r.Logger.Debug("closing registry client: %v", err)
		}
	})
}
