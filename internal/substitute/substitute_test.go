package substitute

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lowkit/lowkit/internal/config"
)

func TestValue(t *testing.T) {
	t.Parallel()

	vars := Vars{
		"icon":      "star",
		"iconColor": "#ff0000",
		"count":     3,
		"ratio":     1.5,
		"enabled":   true,
	}

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "identity on non-templated input", input: "hello world", want: "hello world"},
		{name: "simple substitution", input: "$icon", want: "star"},
		{name: "substitution inside text", input: "pick the $icon now", want: "pick the star now"},
		{name: "longer name is not shadowed by prefix", input: "$iconColor", want: "#ff0000"},
		{name: "prefix does not match longer binding", input: "$iconColorX", want: "$iconColorX"},
		{name: "unmatched token stays verbatim", input: "$missing", want: "$missing"},
		{name: "number binding", input: "items: $count", want: "items: 3"},
		{name: "float binding", input: "$ratio", want: "1.5"},
		{name: "bool binding", input: "$enabled", want: "true"},
		{name: "bare dollar sign", input: "price: $ 5", want: "price: $ 5"},
		{name: "multiple tokens", input: "$icon $count", want: "star 3"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Value(tc.input, vars))
		})
	}
}

func TestProps(t *testing.T) {
	t.Parallel()

	t.Run("substitutes strings and recurses into nested values", func(t *testing.T) {
		t.Parallel()

		props := map[string]any{
			"label":  "$title",
			"count":  7,
			"hidden": false,
			"nested": map[string]any{"href": "$target"},
			"tags":   []any{"$title", 2},
		}

		out := Props(props, Vars{"title": "Hello", "target": "/docs"})

		require.Equal(t, "Hello", out["label"])
		require.Equal(t, 7, out["count"])
		require.Equal(t, false, out["hidden"])
		require.Equal(t, map[string]any{"href": "/docs"}, out["nested"])
		require.Equal(t, []any{"Hello", 2}, out["tags"])
	})

	t.Run("normalizes convenience keys", func(t *testing.T) {
		t.Parallel()

		out := Props(map[string]any{"ariaLabel": "Close", "dataTestId": "close-btn"}, nil)

		require.Equal(t, "Close", out["aria-label"])
		require.Equal(t, "close-btn", out["data-testid"])
		require.NotContains(t, out, "ariaLabel")
	})

	t.Run("does not mutate input", func(t *testing.T) {
		t.Parallel()

		props := map[string]any{
			"label":  "$title",
			"nested": map[string]any{"href": "$target"},
		}
		before, err := json.Marshal(props)
		require.NoError(t, err)

		_ = Props(props, Vars{"title": "Hello", "target": "/docs"})

		after, err := json.Marshal(props)
		require.NoError(t, err)
		require.JSONEq(t, string(before), string(after))
	})

	t.Run("nil props stay nil", func(t *testing.T) {
		t.Parallel()
		require.Nil(t, Props(nil, Vars{"a": "b"}))
	})
}

func TestChildren(t *testing.T) {
	t.Parallel()

	children := []config.Child{
		{Text: "read the $doc"},
		{Component: &config.Component{
			Type:    "text",
			Content: "$doc",
			Props:   map[string]any{"class": "$style"},
		}},
	}

	out := Children(children, Vars{"doc": "manual", "style": "lead"})

	require.Len(t, out, 2)
	require.Equal(t, "read the manual", out[0].Text)
	require.Equal(t, "manual", out[1].Component.Content)
	require.Equal(t, "lead", out[1].Component.Props["class"])

	// Template children must be untouched.
	require.Equal(t, "read the $doc", children[0].Text)
	require.Equal(t, "$doc", children[1].Component.Content)
	require.Equal(t, "$style", children[1].Component.Props["class"])
}

func TestComponent(t *testing.T) {
	t.Parallel()

	template := config.Component{
		Type:    "section",
		Content: "$headline",
		Props:   map[string]any{"id": "$slug"},
		Children: []config.Child{
			{Component: &config.Component{Type: "text", Content: "$body"}},
		},
	}

	first := Component(template, Vars{"headline": "One", "slug": "one", "body": "first"})
	second := Component(template, Vars{"headline": "Two", "slug": "two", "body": "second"})

	require.Equal(t, "One", first.Content)
	require.Equal(t, "Two", second.Content)
	require.Equal(t, "first", first.Children[0].Component.Content)
	require.Equal(t, "second", second.Children[0].Component.Content)

	// Sibling expansions share no state with the template.
	require.Equal(t, "$headline", template.Content)
	require.Equal(t, "$slug", template.Props["id"])
	require.Equal(t, "$body", template.Children[0].Component.Content)
}
