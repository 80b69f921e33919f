package cli

import "github.com/brickyard-dev/brick/internal/dispatchers"

var (
	BrickNameArg = []dispatchers.ArgSpec{
		{
			Name:        "name",
			Description: "Name of the brick",
			Required:    true,
		},
	}

	BrickPathArg = []dispatchers.ArgSpec{
		{
			Name:        "path",
			Description: "Directory of the brick",
			Required:    true,
		},
	}

	OptionalBrickPathArg = []dispatchers.ArgSpec{
		{
			Name:        "path",
			Description: "Directory of the brick (defaults to current directory)",
			Required:    false,
		},
	}

	BundleFileArg = []dispatchers.ArgSpec{
		{
			Name:        "bundle",
			Description: "Bundle file to restore",
			Required:    true,
		},
	}

	SearchQueryArg = []dispatchers.ArgSpec{
		{
			Name:        "query",
			Description: "Words to search for",
			Required:    true,
			Variadic:    true,
		},
	}

	ShellArg = []dispatchers.ArgSpec{
		{
			Name:        "shell",
			Description: "bash, zsh or fish (defaults to the running shell)",
			Required:    false,
		},
	}
)
