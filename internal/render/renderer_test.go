package render

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lowkit/lowkit/internal/catalog"
	"github.com/lowkit/lowkit/internal/config"
	"github.com/lowkit/lowkit/internal/node"
	lowkiterrors "github.com/lowkit/lowkit/pkg/errors"
)

func TestRender(t *testing.T) {
	t.Parallel()

	r := testRenderer(t, nil, nil)

	t.Run("children render depth-first in document order", func(t *testing.T) {
		t.Parallel()

		n := r.Render(config.Component{
			Type: "section",
			Children: []config.Child{
				{Component: &config.Component{Type: "heading", Content: "Title"}},
				{Text: "loose text"},
				{Component: &config.Component{
					Type: "container",
					Children: []config.Child{
						{Component: &config.Component{Type: "text", Content: "deep"}},
					},
				}},
			},
		})

		require.Equal(t, "section", n.Tag)
		require.Len(t, n.Children, 3)
		require.Equal(t, "h2", n.Children[0].Tag)
		require.True(t, n.Children[1].IsText())
		require.Equal(t, "loose text", n.Children[1].Text)
		require.Equal(t, "div", n.Children[2].Tag)
		require.Equal(t, "deep", n.Children[2].Children[0].Text)
	})

	t.Run("content precedes children in output", func(t *testing.T) {
		t.Parallel()

		n := r.Render(config.Component{
			Type:    "section",
			Content: "lead",
			Children: []config.Child{
				{Component: &config.Component{Type: "text", Content: "after"}},
			},
		})

		require.Equal(t, "<section>lead<p>after</p></section>", n.HTML())
	})
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	t.Run("custom producers can be registered", func(t *testing.T) {
		t.Parallel()

		registry := NewRegistry()
		err := registry.Register("badge", func(_ Context, _ map[string]any, content string, _ []*node.Node) *node.Node {
			n := node.Element("span", map[string]string{"class": "badge"})
			n.Text = content
			return n
		})
		require.NoError(t, err)
		require.True(t, registry.Known("badge"))

		produced := registry.Get("badge")(Context{}, nil, "new", nil)
		require.Equal(t, `<span class="badge">new</span>`, produced.HTML())
	})

	t.Run("duplicate registration fails", func(t *testing.T) {
		t.Parallel()

		registry := NewRegistry()
		require.NoError(t, registry.Register("badge", fallbackProducer))
		require.Error(t, registry.Register("badge", fallbackProducer))
	})

	t.Run("nil producer is rejected", func(t *testing.T) {
		t.Parallel()
		require.Error(t, NewRegistry().Register("badge", nil))
	})

	t.Run("unknown types resolve to the fallback", func(t *testing.T) {
		t.Parallel()

		registry := NewRegistry()
		require.False(t, registry.Known("widget-x"))
		require.NotNil(t, registry.Get("widget-x"))
	})
}

func TestRenderPage(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	require.NoError(t, cat.Register(config.Block{
		Name: "cta",
		Vars: []string{"headline"},
		Component: config.Component{
			Type:    "section",
			Content: "$headline",
		},
	}))
	require.NoError(t, cat.Register(config.Block{
		Name:      "hero",
		Component: config.Component{Type: "header", Content: "Welcome"},
	}))

	r := testRenderer(t, nil, nil)

	t.Run("sections render into main with block identities", func(t *testing.T) {
		t.Parallel()

		page := config.Page{
			Path: "/",
			Sections: []config.Section{
				{Ref: "cta", Vars: map[string]any{"headline": "First"}},
				{Ref: "cta", Vars: map[string]any{"headline": "Second"}},
				{Ref: "hero"},
				{Component: &config.Component{Type: "divider"}},
			},
		}

		root, err := r.RenderPage(page, cat)
		require.NoError(t, err)

		require.Equal(t, "main", root.Tag)
		require.Equal(t, "/", root.Attr("data-page"))
		require.Len(t, root.Children, 4)

		require.Equal(t, "cta-0", root.Children[0].Attr("data-block"))
		require.Equal(t, "First", root.Children[0].Text)
		require.Equal(t, "cta-1", root.Children[1].Attr("data-block"))
		require.Equal(t, "Second", root.Children[1].Text)
		require.Equal(t, "hero", root.Children[2].Attr("data-block"))
		require.Empty(t, root.Children[3].Attr("data-block"))
	})

	t.Run("unknown block reference fails the page", func(t *testing.T) {
		t.Parallel()

		page := config.Page{Path: "/broken", Sections: []config.Section{{Ref: "missing"}}}

		_, err := r.RenderPage(page, cat)
		require.Error(t, err)

		var renderErr *lowkiterrors.RenderError
		require.ErrorAs(t, err, &renderErr)
		require.Equal(t, "/broken", renderErr.Page)

		var catErr *lowkiterrors.CatalogError
		require.ErrorAs(t, err, &catErr)
	})
}
