package manage

import (
	"os"
	"time"

	"github.com/brickyard-dev/brick/internal/cache"
	"github.com/brickyard-dev/brick/internal/domain"
	"github.com/brickyard-dev/brick/internal/paths"
)

type Dependencies struct {
	Cache  *cache.Cache
	Store  domain.BrickStore
	Styler domain.Styler
	Logger domain.Logger

	// io
	Printf  func(string, ...any) (int, error)
	Println func(...any) (int, error)
	Now     func() time.Time

	// manifests
	Getwd          func() (string, error)
	GlobalManifest string
}

func NewDependencies(app *domain.Application) Dependencies {
	return Dependencies{
		Cache:          cache.New(app.Config.CacheDir, app.Store, app.Registry, app.Git, app.Logger),
		Store:          app.Store,
		Styler:         app.Styler,
		Logger:         app.Logger,
		Printf:         app.Output.Printf,
		Println:        app.Output.Println,
		Now:            time.Now,
		Getwd:          os.Getwd,
		GlobalManifest: paths.GlobalManifestPath(),
	}
}
