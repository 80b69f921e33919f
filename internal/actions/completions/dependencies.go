package completions

import (
	"io"
	"os"

	"github.com/brickyard-dev/brick/internal/dispatchers"
	"github.com/brickyard-dev/brick/internal/domain"
)

type Dependencies struct {
	Stdout io.Writer
	Stderr io.Writer
	Root   *dispatchers.DispatchNode
	Getenv func(string) string
}

// NewDependencies binds the completion command to root. root may still be
// under construction; it is only walked when the command runs.
func NewDependencies(app *domain.Application, root *dispatchers.DispatchNode) Dependencies {
	return Dependencies{
		Stdout: app.Output,
		Stderr: app.Errors,
		Root:   root,
		Getenv: os.Getenv,
	}
}
