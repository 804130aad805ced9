// Package ui holds the interactive document prompt shown when docprobe
// is started without a document argument.
package ui

import (
	"fmt"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

var (
	promptTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8B5CF6"))
	promptHint  = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8")).Italic(true)
)

// ErrCanceled is returned when the user aborts the prompt.
var ErrCanceled = fmt.Errorf("document entry canceled")

type inputModel struct {
	area     textarea.Model
	done     bool
	canceled bool
}

func newInputModel() inputModel {
	ta := textarea.New()
	ta.Placeholder = "Paste or type the document text..."
	ta.Focus()
	ta.SetWidth(80)
	ta.SetHeight(12)

	return inputModel{area: ta}
}

func (m inputModel) Init() tea.Cmd {
	return m.area.Focus()
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w := msg.Width - 4
		if w > 100 {
			w = 100
		}
		if w > 0 {
			m.area.SetWidth(w)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.canceled = true
			return m, tea.Quit
		case "ctrl+d":
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	return m, cmd
}

func (m inputModel) View() tea.View {
	content := promptTitle.Render("Enter the document to probe") + "\n\n" +
		m.area.View() + "\n\n" +
		promptHint.Render("Ctrl+D to run · Esc to cancel")
	return tea.NewView(content)
}

// PromptDocument runs the textarea prompt and returns the entered text.
func PromptDocument() (string, error) {
	p := tea.NewProgram(newInputModel())
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run document prompt: %w", err)
	}

	m, ok := final.(inputModel)
	if !ok || m.canceled || !m.done {
		return "", ErrCanceled
	}
	return m.area.Value(), nil
}
