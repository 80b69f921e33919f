package share

import (
	"os"

	"github.com/brickyard-dev/brick/internal/domain"
)

type Dependencies struct {
	Registry domain.RegistryClient
	Store    domain.BrickStore
	Styler   domain.Styler
	Logger   domain.Logger

	Printf func(string, ...any) (int, error)
	Getwd  func() (string, error)
}

func NewDependencies(app *domain.Application) Dependencies {
	return Dependencies{
		Registry: app.Registry,
		Store:    app.Store,
		Styler:   app.Styler,
		Logger:   app.Logger,
		Printf:   app.Output.Printf,
		Getwd:    os.Getwd,
	}
}

// outputDir returns --output-dir or the working directory.
func outputDir(value string, deps Dependencies) (string, error) {
	if value != "" {
		return value, nil
	}
	return deps.Getwd()
}
