package node

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNodeHelpers(t *testing.T) {
	t.Parallel()

	t.Run("text nodes", func(t *testing.T) {
		t.Parallel()

		n := Text("hello")
		require.True(t, n.IsText())
		require.False(t, Element("div", nil).IsText())
	})

	t.Run("set and read attributes", func(t *testing.T) {
		t.Parallel()

		n := Element("div", nil)
		require.Empty(t, n.Attr("class"))

		n.SetAttr("class", "card")
		require.Equal(t, "card", n.Attr("class"))
	})

	t.Run("attr names are sorted", func(t *testing.T) {
		t.Parallel()

		n := Element("div", map[string]string{"id": "x", "class": "card", "aria-label": "box"})
		require.Equal(t, []string{"aria-label", "class", "id"}, n.AttrNames())
	})

	t.Run("append child ignores nil", func(t *testing.T) {
		t.Parallel()

		n := Element("div", nil)
		n.AppendChild(nil)
		n.AppendChild(Text("hi"))
		require.Len(t, n.Children, 1)
	})
}

func TestHTML(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		node *Node
		want string
	}{
		{
			name: "empty element",
			node: Element("div", nil),
			want: "<div></div>",
		},
		{
			name: "attributes render in sorted order",
			node: Element("a", map[string]string{"href": "/x", "class": "link"}),
			want: `<a class="link" href="/x"></a>`,
		},
		{
			name: "text before children",
			node: Element("p", nil, Element("em", nil)).withText("lead "),
			want: "<p>lead <em></em></p>",
		},
		{
			name: "void tags have no closing tag",
			node: Element("input", map[string]string{"type": "text"}),
			want: `<input type="text">`,
		},
		{
			name: "attribute values are escaped",
			node: Element("div", map[string]string{"title": `a "b" <c> & d`}),
			want: `<div title="a &quot;b&quot; &lt;c&gt; &amp; d"></div>`,
		},
		{
			name: "text content is emitted verbatim",
			node: Element("p", nil).withText("keep <strong>bold</strong>"),
			want: "<p>keep <strong>bold</strong></p>",
		},
		{
			name: "nested tree",
			node: Element("ul", nil,
				Element("li", nil).withText("one"),
				Element("li", nil).withText("two"),
			),
			want: "<ul><li>one</li><li>two</li></ul>",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, tc.node.HTML())
		})
	}
}

func (n *Node) withText(text string) *Node {
	n.Text = text
	return n
}
