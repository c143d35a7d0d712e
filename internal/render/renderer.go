// Package render walks declarative component trees and produces output
// nodes. Dispatch is registry-based: each known component type maps to a
// producer function, and unknown types degrade to a generic container.
package render

import (
	"github.com/lowkit/lowkit/internal/blocks"
	"github.com/lowkit/lowkit/internal/catalog"
	"github.com/lowkit/lowkit/internal/config"
	"github.com/lowkit/lowkit/internal/logger"
	"github.com/lowkit/lowkit/internal/node"
	lowkiterrors "github.com/lowkit/lowkit/pkg/errors"
)

// Renderer renders component trees against a registry and shared read-only
// context. A single render pass is synchronous and side-effect-free with
// respect to its inputs.
type Renderer struct {
	registry *Registry
	ctx      Context
	log      *logger.Logger
}

// NewRenderer constructs a renderer with the default registry.
func NewRenderer(theme *config.Theme, languages *config.Languages, log *logger.Logger) *Renderer {
	return &Renderer{
		registry: NewRegistry(),
		ctx:      Context{Theme: theme, Languages: languages},
		log:      log,
	}
}

// Registry exposes the producer registry for extension.
func (r *Renderer) Registry() *Registry {
	return r.registry
}

// Render walks the component tree depth-first, left-to-right. Children are
// rendered before the parent producer runs, so a producer may inspect its
// rendered children when deciding its own representation.
func (r *Renderer) Render(component config.Component) *node.Node {
	rendered := make([]*node.Node, 0, len(component.Children))
	for _, child := range component.Children {
		if child.Component != nil {
			rendered = append(rendered, r.Render(*child.Component))
			continue
		}
		rendered = append(rendered, node.Text(child.Text))
	}

	if !r.registry.Known(component.Type) {
		r.log.WithFields(map[string]any{"type": component.Type}).Debug("unknown component type, using fallback producer")
	}

	producer := r.registry.Get(component.Type)
	return producer(r.ctx, component.Props, component.Content, rendered)
}

// RenderPage expands every section of the page and renders it into a single
// <main> node. Block-sourced sections are tagged with their data-block
// instance identity.
func (r *Renderer) RenderPage(page config.Page, cat *catalog.Catalog) (*node.Node, error) {
	root := node.Element("main", map[string]string{"data-page": page.Path})

	for i, section := range page.Sections {
		component, err := blocks.Expand(section, cat)
		if err != nil {
			return nil, lowkiterrors.NewRenderError(page.Path, err)
		}

		rendered := r.Render(component)
		if info := blocks.Resolve(section, i, page.Sections); info != nil {
			rendered.SetAttr("data-block", info.Identifier())
		}
		root.AppendChild(rendered)
	}

	return root, nil
}
