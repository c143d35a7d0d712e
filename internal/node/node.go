// Package node defines the output tree produced by the renderer. The tree is
// what a response layer serializes; the rendering core only builds it.
package node

import (
	"sort"
)

// Node is a single output element. A node with an empty Tag is a bare text
// node. Text holds inline text/HTML and always renders before children.
type Node struct {
	Tag      string
	Attrs    map[string]string
	Text     string
	Children []*Node
}

// Element creates an element node.
func Element(tag string, attrs map[string]string, children ...*Node) *Node {
	return &Node{Tag: tag, Attrs: attrs, Children: children}
}

// Text creates a bare text node.
func Text(text string) *Node {
	return &Node{Text: text}
}

// IsText reports whether the node is a bare text node.
func (n *Node) IsText() bool {
	return n != nil && n.Tag == ""
}

// SetAttr sets a single attribute, allocating the map on first use.
func (n *Node) SetAttr(key, value string) {
	if n.Attrs == nil {
		n.Attrs = make(map[string]string)
	}
	n.Attrs[key] = value
}

// Attr returns the attribute value, or the empty string when unset.
func (n *Node) Attr(key string) string {
	if n == nil || n.Attrs == nil {
		return ""
	}
	return n.Attrs[key]
}

// AppendChild adds a child node, ignoring nils so producers can append
// optional fragments unconditionally.
func (n *Node) AppendChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

// AttrNames returns attribute names in sorted order so serialized output is
// byte-stable across renders.
func (n *Node) AttrNames() []string {
	if len(n.Attrs) == 0 {
		return nil
	}
	names := make([]string, 0, len(n.Attrs))
	for name := range n.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
