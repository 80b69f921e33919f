package cli

import "github.com/brickyard-dev/brick/internal/dispatchers"

var (
	RootFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{dispatchers.FlagHelp, "-h"},
			Description: "Show help",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{dispatchers.FlagVersion},
			Description: "Print the current version",
			Scope:       dispatchers.FlagScopeGlobal,
		},
		{
			Names:       []string{dispatchers.FlagVerbose},
			Description: "Noisy logging, including all shell commands executed",
			Scope:       dispatchers.FlagScopeGlobal,
		},
	}

	GlobalManifestFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--global", "-g"},
		Description: "Use the global bricks.yaml instead of the project one",
		Scope:       dispatchers.FlagScopeLocal,
	}

	OutputDirFlag = dispatchers.FlagDescriptor{
		Names:       []string{"--output-dir", "-o"},
		ValueHint:   "<dir>",
		Description: "Directory where to output the generated files",
		Scope:       dispatchers.FlagScopeLocal,
	}

	AddFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--path"},
			ValueHint:   "<dir>",
			Description: "Local path of the brick",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--git"},
			ValueHint:   "<url>",
			Description: "Git repository of the brick",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--ref"},
			ValueHint:   "<ref>",
			Description: "Git branch or tag (with --git)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--git-path"},
			ValueHint:   "<path>",
			Description: "Path of the brick inside the repository (with --git)",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--version"},
			ValueHint:   "<constraint>",
			Description: "Registry version constraint, e.g. ^1.0.0",
			Scope:       dispatchers.FlagScopeLocal,
		},
		GlobalManifestFlag,
	}

	ManifestFlags = []dispatchers.FlagDescriptor{
		GlobalManifestFlag,
	}

	MakeFlags = []dispatchers.FlagDescriptor{
		OutputDirFlag,
		{
			Names:       []string{"--var"},
			ValueHint:   "<name=value>",
			Description: "Variable value, repeatable",
			Scope:       dispatchers.FlagScopeLocal,
		},
		{
			Names:       []string{"--force", "-f"},
			Description: "Overwrite files that already exist",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	NewFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--description", "-d"},
			ValueHint:   "<text>",
			Description: "Description of the new brick",
			Scope:       dispatchers.FlagScopeLocal,
		},
		OutputDirFlag,
	}

	OutputDirFlags = []dispatchers.FlagDescriptor{
		OutputDirFlag,
	}

	LoginFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--token"},
			ValueHint:   "<token>",
			Description: "Registry access token",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	PublishFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--dry-run"},
			Description: "Validate and show the bundle without uploading it",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}

	UpdateFlags = []dispatchers.FlagDescriptor{
		{
			Names:       []string{"--check"},
			Description: "Only report whether a newer version exists",
			Scope:       dispatchers.FlagScopeLocal,
		},
	}
)
