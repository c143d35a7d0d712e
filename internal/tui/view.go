package tui

import (
	"fmt"
	"strings"

	"github.com/lowkit/lowkit/internal/blocks"
	"github.com/lowkit/lowkit/internal/config"
	"github.com/lowkit/lowkit/internal/node"
)

// View renders the preview browser.
func (m Model) View() string {
	if m.showDetail {
		return m.detail + "\n" + helpStyle.Render("esc: back  q: quit")
	}
	return m.pages.View() + "\n" + helpStyle.Render("enter: inspect page  q: quit")
}

// renderDetail builds the section and render summary for one page.
func (m Model) renderDetail(page config.Page) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(page.Path))
	if page.Title != "" {
		b.WriteString("  " + mutedStyle.Render(page.Title))
	}
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("Sections") + "\n")
	for i, section := range page.Sections {
		b.WriteString("  " + describeSection(section, i, page.Sections) + "\n")
	}

	b.WriteString("\n" + sectionStyle.Render("Render") + "\n")
	output, err := m.engine.Page(page.Path)
	if err != nil {
		b.WriteString("  " + errorStyle.Render(err.Error()) + "\n")
		return b.String()
	}

	html := output.Node.HTML()
	fmt.Fprintf(&b, "  %d node(s), %d byte(s) of HTML\n", countNodes(output.Node), len(html))
	fmt.Fprintf(&b, "  %d byte(s) of CSS\n", len(m.engine.Stylesheet()))

	return b.String()
}

func describeSection(section config.Section, index int, all []config.Section) string {
	if info := blocks.Resolve(section, index, all); info != nil {
		return "block " + info.Identifier()
	}
	if section.Component != nil {
		return "inline " + section.Component.Type
	}
	return "(empty)"
}

func countNodes(n *node.Node) int {
	if n == nil {
		return 0
	}
	count := 1
	for _, child := range n.Children {
		count += countNodes(child)
	}
	return count
}
