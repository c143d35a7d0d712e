package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages for the preview browser.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pages.SetSize(msg.Width, msg.Height-2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "enter":
			if page, ok := m.SelectedPage(); ok {
				m.detail = m.renderDetail(page)
				m.showDetail = true
			}
			return m, nil
		case "esc":
			if m.showDetail {
				m.showDetail = false
				m.detail = ""
				return m, nil
			}
			return m, tea.Quit
		}
	}

	if m.showDetail {
		return m, nil
	}

	var cmd tea.Cmd
	m.pages, cmd = m.pages.Update(msg)
	return m, cmd
}
