// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Warning, Error, etc.) rather than visual.
// When disabled, every helper returns its input unchanged with no ANSI codes.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Palette maps each semantic style to an ANSI 256 color number, or "bold".
type Palette struct {
	Success string
	Warning string
	Error   string
	Info    string
	Muted   string
	Header  string
}

// DefaultPalette is used unless InitWithPalette is given another.
var DefaultPalette = Palette{
	Success: "42",
	Warning: "214",
	Error:   "196",
	Info:    "39",
	Muted:   "245",
	Header:  "bold",
}

var (
	enabled bool

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
)

// Init enables or disables styling with the default palette. NO_COLOR and
// BRICK_NO_COLOR, when set to any non-empty value, disable styling
// regardless of enable.
//
// It should be called once from main before any output.
func Init(enable bool) {
	InitWithPalette(enable, DefaultPalette)
}

// InitWithPalette is Init with explicit colors.
func InitWithPalette(enable bool, p Palette) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("BRICK_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		initStyles(p)
	}
}

func initStyles(p Palette) {
	// Force ANSI256 regardless of TTY detection; the caller decided.
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(p.Success)
	warningStyle = makeStyle(p.Warning)
	errorStyle = makeStyle(p.Error)
	infoStyle = makeStyle(p.Info)
	mutedStyle = makeStyle(p.Muted)
	headerStyle = makeStyle(p.Header)
}

func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Success styles text for successful operations.
func Success(text string) string { return render(successStyle, text) }

// Warning styles text for warning messages.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(errorStyle, text) }

// Info styles command names, paths and other highlighted values.
func Info(text string) string { return render(infoStyle, text) }

// Header styles section headers.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles secondary information.
func Muted(text string) string { return render(mutedStyle, text) }
