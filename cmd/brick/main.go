package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/brickyard-dev/brick/internal/actions/update"
	"github.com/brickyard-dev/brick/internal/app"
	"github.com/brickyard-dev/brick/internal/cli"
	"github.com/brickyard-dev/brick/internal/exitcode"
	"github.com/brickyard-dev/brick/internal/runner"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "0.0.0-dev"

func main() {
	os.Exit(int(run()))
}

func run() exitcode.Code {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(app.DefaultOptions(Version))
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		return exitcode.FromError(err)
	}
	defer app.Close(application)

	releases := update.NewGitHubSource()
	root := cli.BuildTree(application, releases)

	notifier := &update.Notifier{
		Lookup:   releases,
		Logger:   application.Logger,
		Stderr:   application.Errors,
		Styler:   application.Styler,
		Disabled: !application.Config.UpdateCheck,
	}

	return runner.New(application, root, notifier).Run(ctx, os.Args[1:])
}
