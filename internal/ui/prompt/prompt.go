// Package prompt asks single-line questions on the terminal.
package prompt

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brickyard-dev/brick/internal/ui/style"
)

// ErrCancelled is returned when the user aborts with ctrl+c or esc.
var ErrCancelled = errors.New("prompt cancelled")

type model struct {
	question  string
	input     textinput.Model
	answer    string
	done      bool
	cancelled bool
}

func newModel(question, defaultValue string) model {
	ti := textinput.New()
	ti.Placeholder = defaultValue
	ti.Prompt = "> "
	ti.Focus()

	return model{question: question, input: ti}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.answer = m.input.Value()
			if m.answer == "" {
				m.answer = m.input.Placeholder
			}
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m model) View() string {
	if m.done || m.cancelled {
		return ""
	}
	return style.Info("? ") + m.question + "\n" + m.input.View() + "\n"
}

// Ask shows question and reads one line. An empty answer returns
// defaultValue.
func Ask(ctx context.Context, in io.Reader, out io.Writer, question, defaultValue string) (string, error) {
	p := tea.NewProgram(
		newModel(question, defaultValue),
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil {
		return "", err
	}

	fm := final.(model)
	if fm.cancelled {
		return "", ErrCancelled
	}
	return fm.answer, nil
}
