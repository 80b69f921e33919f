package completions

import (
	"path/filepath"
	"strings"
)

// Shell names a supported shell.
type Shell string

const (
	ShellBash Shell = "bash"
	ShellZsh  Shell = "zsh"
	ShellFish Shell = "fish"
)

// Shells lists the supported shells.
func Shells() []Shell {
	return []Shell{ShellBash, ShellZsh, ShellFish}
}

// Valid reports whether s is supported.
func (s Shell) Valid() bool {
	switch s {
	case ShellBash, ShellZsh, ShellFish:
		return true
	}
	return false
}

// RunningShell guesses the user's shell from $SHELL. It returns "" when
// the shell is unknown or unsupported.
func RunningShell(getenv func(string) string) Shell {
	shell := Shell(strings.TrimSuffix(filepath.Base(getenv("SHELL")), ".exe"))
	if !shell.Valid() {
		return ""
	}
	return shell
}

// SourceInstructions returns the line that loads completions in shell.
func SourceInstructions(bin string, shell Shell) string {
	switch shell {
	case ShellBash, ShellZsh:
		return `eval "$(` + bin + ` completion ` + string(shell) + `)"`
	case ShellFish:
		return bin + ` completion fish | source`
	default:
		return ""
	}
}

// RcFile returns the rc file path for the given shell
func RcFile(shell Shell) string {
	switch shell {
	case ShellBash:
		return "~/.bashrc"
	case ShellZsh:
		return "~/.zshrc"
	case ShellFish:
		return "~/.config/fish/config.fish"
	default:
		return ""
	}
}
