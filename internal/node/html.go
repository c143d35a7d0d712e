package node

import (
	"strings"
)

// voidTags renders without a closing tag.
var voidTags = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {},
	"img": {}, "input": {}, "link": {}, "meta": {}, "source": {},
	"track": {}, "wbr": {},
}

// HTML serializes the node tree. Attribute values are escaped; Text is
// emitted verbatim because the document model allows inline HTML in content.
func (n *Node) HTML() string {
	var b strings.Builder
	n.writeHTML(&b)
	return b.String()
}

func (n *Node) writeHTML(b *strings.Builder) {
	if n == nil {
		return
	}

	if n.IsText() {
		b.WriteString(n.Text)
		return
	}

	b.WriteByte('<')
	b.WriteString(n.Tag)
	for _, name := range n.AttrNames() {
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(n.Attrs[name]))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if _, void := voidTags[n.Tag]; void {
		return
	}

	b.WriteString(n.Text)
	for _, child := range n.Children {
		child.writeHTML(b)
	}

	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteByte('>')
}

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	`"`, "&quot;",
	"<", "&lt;",
	">", "&gt;",
)

func escapeAttr(value string) string {
	return attrEscaper.Replace(value)
}
