// Package app wires the rendering pipeline together: catalog construction,
// page rendering and stylesheet generation for a validated application
// document.
package app

import (
	"fmt"
	"strings"

	"github.com/lowkit/lowkit/internal/catalog"
	"github.com/lowkit/lowkit/internal/config"
	"github.com/lowkit/lowkit/internal/logger"
	"github.com/lowkit/lowkit/internal/node"
	"github.com/lowkit/lowkit/internal/render"
	"github.com/lowkit/lowkit/internal/style"
	lowkiterrors "github.com/lowkit/lowkit/pkg/errors"
)

// PageOutput is one rendered page.
type PageOutput struct {
	Path  string
	Title string
	Node  *node.Node
}

// Engine renders pages of a single application document. The document, block
// catalog and theme are read-only; the stylesheet is generated once per
// engine.
type Engine struct {
	doc        *config.App
	catalog    *catalog.Catalog
	renderer   *render.Renderer
	stylesheet string
	log        *logger.Logger
}

// New builds an engine for a validated application document.
func New(doc *config.App, log *logger.Logger) *Engine {
	return &Engine{
		doc:        doc,
		catalog:    catalog.FromApp(doc),
		renderer:   render.NewRenderer(doc.Theme, doc.Languages, log),
		stylesheet: style.Generate(doc.Theme),
		log:        log,
	}
}

// Doc returns the application document.
func (e *Engine) Doc() *config.App {
	return e.doc
}

// Catalog returns the block catalog.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Renderer returns the component renderer for producer extension.
func (e *Engine) Renderer() *render.Renderer {
	return e.renderer
}

// Stylesheet returns the generated CSS for the application theme.
func (e *Engine) Stylesheet() string {
	return e.stylesheet
}

// Page renders the page registered at the given path.
func (e *Engine) Page(path string) (PageOutput, error) {
	for _, page := range e.doc.Pages {
		if page.Path != path {
			continue
		}
		rendered, err := e.renderer.RenderPage(page, e.catalog)
		if err != nil {
			return PageOutput{}, err
		}
		return PageOutput{Path: page.Path, Title: page.Title, Node: rendered}, nil
	}
	return PageOutput{}, lowkiterrors.NewRenderError(path, fmt.Errorf("page not found"))
}

// RenderAll renders every page in document order.
func (e *Engine) RenderAll() ([]PageOutput, error) {
	outputs := make([]PageOutput, 0, len(e.doc.Pages))
	for _, page := range e.doc.Pages {
		e.log.WithPage(page.Path).Debug("rendering page")
		rendered, err := e.renderer.RenderPage(page, e.catalog)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, PageOutput{Path: page.Path, Title: page.Title, Node: rendered})
	}
	return outputs, nil
}

// Document wraps a rendered page body into a complete HTML document with the
// stylesheet linked by reference.
func Document(title string, body *node.Node, stylesheetHref string) string {
	var b strings.Builder
	b.WriteString("<!doctype html>\n<html>\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
	if title != "" {
		b.WriteString("<title>" + htmlEscape(title) + "</title>\n")
	}
	if stylesheetHref != "" {
		b.WriteString("<link rel=\"stylesheet\" href=\"" + stylesheetHref + "\">\n")
	}
	b.WriteString("</head>\n<body>\n")
	if body != nil {
		b.WriteString(body.HTML())
	}
	b.WriteString("\n</body>\n</html>\n")
	return b.String()
}

var htmlEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func htmlEscape(value string) string {
	return htmlEscaper.Replace(value)
}
