package generate

import (
	"context"
	"os"

	"github.com/brickyard-dev/brick/internal/cache"
	"github.com/brickyard-dev/brick/internal/domain"
	"github.com/brickyard-dev/brick/internal/paths"
	"github.com/brickyard-dev/brick/internal/ui/prompt"
)

type Dependencies struct {
	Cache  *cache.Cache
	Styler domain.Styler
	Logger domain.Logger

	// io
	Printf func(string, ...any) (int, error)
	// Ask reads one answer, nil when not attached to a terminal.
	Ask func(ctx context.Context, question, defaultValue string) (string, error)

	// manifests
	Getwd          func() (string, error)
	GlobalManifest string
}

func NewDependencies(app *domain.Application) Dependencies {
	deps := Dependencies{
		Cache:          cache.New(app.Config.CacheDir, app.Store, app.Registry, app.Git, app.Logger),
		Styler:         app.Styler,
		Logger:         app.Logger,
		Printf:         app.Output.Printf,
		Getwd:          os.Getwd,
		GlobalManifest: paths.GlobalManifestPath(),
	}
	if app.Interactive {
		deps.Ask = func(ctx context.Context, question, defaultValue string) (string, error) {
			return prompt.Ask(ctx, app.Stdin, app.Errors, question, defaultValue)
		}
	}
	return deps
}
