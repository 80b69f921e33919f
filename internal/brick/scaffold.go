package brick

import (
	"fmt"
	"os"
	"path/filepath"
)

const scaffoldTemplate = "Hello {{.name}}!\n"

// Scaffold creates a new brick named name in parent/name with one example
// variable and template. It fails when the directory already exists.
func Scaffold(parent, name, description string) (string, error) {
	if !ValidName(name) {
		return "", fmt.Errorf("invalid brick name %q: use lowercase letters, digits and underscores", name)
	}

	dir := filepath.Join(parent, name)
	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("%s already exists", dir)
	}

	if description == "" {
		description = "A new brick"
	}

	b := &Brick{
		Name:        name,
		Description: description,
		Version:     "0.1.0",
		Vars: map[string]Variable{
			"name": {
				Type:        TypeString,
				Description: "Your name",
				Default:     "Dash",
				Prompt:      "What is your name?",
			},
		},
	}

	if err := os.MkdirAll(filepath.Join(dir, TemplateDir), 0755); err != nil {
		return "", err
	}
	if err := Write(dir, b); err != nil {
		return "", err
	}
	if err := os.WriteFile(filepath.Join(dir, TemplateDir, "HELLO.md"), []byte(scaffoldTemplate), 0644); err != nil {
		return "", err
	}
	return dir, nil
}
