package update

import (
	"io"
	"os"

	"github.com/brickyard-dev/brick/internal/domain"
)

type Dependencies struct {
	Stdout         io.Writer
	Styler         domain.Styler
	Logger         domain.Logger
	CurrentVersion string
	Releases       ReleaseSource
	ExecutablePath func() (string, error)
}

func NewDependencies(app *domain.Application, releases ReleaseSource) Dependencies {
	return Dependencies{
		Stdout:         app.Output,
		Styler:         app.Styler,
		Logger:         app.Logger,
		CurrentVersion: app.Version,
		Releases:       releases,
		ExecutablePath: os.Executable,
	}
}
