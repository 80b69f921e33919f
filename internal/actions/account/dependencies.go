package account

import (
	"time"

	"github.com/brickyard-dev/brick/internal/domain"
)

type Dependencies struct {
	Registry domain.RegistryClient
	Store    domain.BrickStore
	Styler   domain.Styler
	Logger   domain.Logger

	Printf func(string, ...any) (int, error)
	Now    func() time.Time
}

func NewDependencies(app *domain.Application) Dependencies {
	return Dependencies{
		Registry: app.Registry,
		Store:    app.Store,
		Styler:   app.Styler,
		Logger:   app.Logger,
		Printf:   app.Output.Printf,
		Now:      time.Now,
	}
}
