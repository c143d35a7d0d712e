// Package tui implements the interactive preview for an application
// document: a page browser with per-page section and render detail.
package tui

import (
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lowkit/lowkit/internal/app"
	"github.com/lowkit/lowkit/internal/config"
)

// pageItem adapts a page for the bubbles list component.
type pageItem struct {
	page config.Page
}

func (i pageItem) Title() string { return i.page.Path }

func (i pageItem) Description() string {
	if i.page.Title != "" {
		return i.page.Title
	}
	return "(untitled)"
}

func (i pageItem) FilterValue() string { return i.page.Path }

// Model contains the Bubbletea state for the preview browser.
type Model struct {
	engine     *app.Engine
	pages      list.Model
	detail     string
	showDetail bool
	width      int
	height     int
}

// NewModel constructs the preview model for an engine.
func NewModel(engine *app.Engine) Model {
	items := make([]list.Item, 0, len(engine.Doc().Pages))
	for _, page := range engine.Doc().Pages {
		items = append(items, pageItem{page: page})
	}

	pages := list.New(items, list.NewDefaultDelegate(), 0, 0)
	pages.Title = engine.Doc().Name
	pages.SetShowStatusBar(false)
	pages.SetFilteringEnabled(false)

	return Model{
		engine: engine,
		pages:  pages,
	}
}

// Init starts the Bubbletea program.
func (m Model) Init() tea.Cmd {
	return nil
}

// SelectedPage returns the currently highlighted page, if any.
func (m Model) SelectedPage() (config.Page, bool) {
	item, ok := m.pages.SelectedItem().(pageItem)
	if !ok {
		return config.Page{}, false
	}
	return item.page, true
}
