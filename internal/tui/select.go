// Package tui implements the interactive identity picker.
package tui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/guskit/gus/internal/identity"
)

type item struct {
	ident identity.Identity
}

func (i item) Title() string       { return i.ident.ID }
func (i item) Description() string { return fmt.Sprintf("%s <%s>", i.ident.Name, i.ident.Email) }
func (i item) FilterValue() string { return i.ident.ID + " " + i.ident.Name }

type pickerModel struct {
	list     list.Model
	choice   string
	quitting bool
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if it, ok := m.list.SelectedItem().(item); ok {
				m.choice = it.ident.ID
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	if m.choice != "" || m.quitting {
		return ""
	}
	return m.list.View()
}

// SelectIdentity prompts for one identity out of idents. Returns false
// when the list is empty or the user cancels. The picker draws on
// stderr so stdout stays clean for the shell wrapper.
func SelectIdentity(idents []identity.Identity) (string, bool, error) {
	if len(idents) == 0 {
		return "", false, nil
	}

	items := make([]list.Item, len(idents))
	for i, ident := range idents {
		items[i] = item{ident: ident}
	}

	l := list.New(items, list.NewDefaultDelegate(), 40, 14)
	l.Title = "Select an identity"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	p := tea.NewProgram(pickerModel{list: l}, tea.WithOutput(os.Stderr))
	final, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("running picker: %w", err)
	}

	m := final.(pickerModel)
	if m.choice == "" {
		return "", false, nil
	}
	return m.choice, true, nil
}
