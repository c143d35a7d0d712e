package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lowkit/lowkit/internal/node"
	"github.com/lowkit/lowkit/internal/style"
)

// registerDefaults installs the built-in producer set. Every producer renders
// content first, then children; malformed or partially-specified props never
// abort rendering.
func registerDefaults(r *Registry) {
	r.producers["container"] = containerProducer
	r.producers["section"] = element("section")
	r.producers["header"] = element("header")
	r.producers["footer"] = element("footer")
	r.producers["nav"] = element("nav")
	r.producers["grid"] = gridProducer
	r.producers["heading"] = headingProducer
	r.producers["text"] = element("p")
	r.producers["button"] = element("button")
	r.producers["link"] = element("a")
	r.producers["image"] = imageProducer
	r.producers["form"] = element("form")
	r.producers["input"] = voidElement("input")
	r.producers["textarea"] = element("textarea")
	r.producers["divider"] = voidElement("hr")
	r.producers["list"] = listProducer
	r.producers["alert"] = alertProducer
	r.producers["icon"] = iconProducer
	r.producers["language-switcher"] = languageSwitcherProducer
}

// element builds a plain producer for the given output tag.
func element(tag string) Producer {
	return func(_ Context, props map[string]any, content string, children []*node.Node) *node.Node {
		n := node.Element(tag, attrs(props))
		n.Text = content
		for _, child := range children {
			n.AppendChild(child)
		}
		return n
	}
}

// voidElement builds a producer for tags without closing tags. Content and
// children are dropped: void elements cannot carry either.
func voidElement(tag string) Producer {
	return func(_ Context, props map[string]any, _ string, _ []*node.Node) *node.Node {
		return node.Element(tag, attrs(props))
	}
}

// containerProducer renders a generic div. When the container groups several
// rendered children without inline text of its own it takes a grouping role,
// unless the author set one explicitly.
func containerProducer(_ Context, props map[string]any, content string, children []*node.Node) *node.Node {
	n := node.Element("div", attrs(props))
	n.Text = content
	for _, child := range children {
		n.AppendChild(child)
	}
	if content == "" && len(children) > 1 && n.Attr("role") == "" {
		n.SetAttr("role", "group")
	}
	return n
}

// fallbackProducer handles unknown component types: a generic container that
// still renders content and children rather than failing the page.
func fallbackProducer(_ Context, props map[string]any, content string, children []*node.Node) *node.Node {
	n := node.Element("div", attrs(props))
	n.Text = content
	for _, child := range children {
		n.AppendChild(child)
	}
	return n
}

func gridProducer(_ Context, props map[string]any, content string, children []*node.Node) *node.Node {
	n := node.Element("div", attrs(props, "class"))
	n.SetAttr("class", mergeClass("grid", stringProp(props, "class")))
	n.Text = content
	for _, child := range children {
		n.AppendChild(child)
	}
	return n
}

// headingProducer maps the level prop to a heading tag, clamped to h1-h6.
// Level defaults to 2 so page titles stay the only h1 by convention.
func headingProducer(_ Context, props map[string]any, content string, children []*node.Node) *node.Node {
	level := intProp(props, "level", 2)
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}

	n := node.Element(fmt.Sprintf("h%d", level), attrs(props, "level"))
	n.Text = content
	for _, child := range children {
		n.AppendChild(child)
	}
	return n
}

func imageProducer(_ Context, props map[string]any, _ string, _ []*node.Node) *node.Node {
	return node.Element("img", attrs(props))
}

// listProducer renders content lines as list items. When the content carries
// more than one item marker, each item receives an entrance animation with a
// staggered delay of index * max(50, durationMs/4), where the base duration
// comes from the theme's fade-in entry (default 400ms).
func listProducer(ctx Context, props map[string]any, content string, children []*node.Node) *node.Node {
	tag := "ul"
	if boolProp(props, "ordered") {
		tag = "ol"
	}

	n := node.Element(tag, attrs(props, "ordered"))

	items := listItems(content)
	stagger := len(items) > 1

	durationMs := style.EntranceDurationMs(ctx.Theme)
	delayMs := style.StaggerDelayMs(durationMs)
	composed := entranceAnimation(ctx)

	for i, item := range items {
		li := node.Element("li", nil)
		li.Text = item
		if stagger {
			li.SetAttr("style", fmt.Sprintf("animation: %s; animation-delay: %dms;", composed, i*delayMs))
		}
		n.AppendChild(li)
	}

	for _, child := range children {
		if child.IsText() {
			n.AppendChild(child)
			continue
		}
		li := node.Element("li", nil)
		li.AppendChild(child)
		n.AppendChild(li)
	}

	return n
}

// listItems splits content into item markers: one item per non-empty line,
// with a leading "- " marker stripped.
func listItems(content string) []string {
	if content == "" {
		return nil
	}

	var items []string
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		trimmed = strings.TrimPrefix(trimmed, "- ")
		if trimmed == "" {
			continue
		}
		items = append(items, trimmed)
	}
	return items
}

func entranceAnimation(ctx Context) string {
	if ctx.Theme != nil {
		if anim, ok := ctx.Theme.Animations["fade-in"]; ok && !anim.Disabled {
			return style.ComposedValue("fade-in", anim, style.DefaultDuration, style.DefaultEasing)
		}
	}
	return "fade-in " + style.DefaultDuration + " " + style.DefaultEasing
}

// alertProducer renders a variant-styled alert. The variant selects two theme
// colour lookups: colors[variant] sets foreground and border, and
// colors[variant+"-light"] sets the background. Caller-supplied inline style
// always wins over variant-derived style.
func alertProducer(ctx Context, props map[string]any, content string, children []*node.Node) *node.Node {
	variant := stringProp(props, "variant")

	n := node.Element("div", attrs(props, "variant", "style", "class"))
	n.SetAttr("role", "alert")

	class := "alert"
	if variant != "" {
		class += " alert-" + variant
	}
	n.SetAttr("class", mergeClass(class, stringProp(props, "class")))

	var styleParts []string
	if ctx.Theme != nil && variant != "" {
		if colour, ok := ctx.Theme.Colors[variant]; ok {
			styleParts = append(styleParts, "color: "+colour, "border-color: "+colour)
		}
		if colour, ok := ctx.Theme.Colors[variant+"-light"]; ok {
			styleParts = append(styleParts, "background-color: "+colour)
		}
	}
	if inline := stringProp(props, "style"); inline != "" {
		styleParts = append(styleParts, strings.TrimSuffix(inline, ";"))
	}
	if len(styleParts) > 0 {
		n.SetAttr("style", strings.Join(styleParts, "; ")+";")
	}

	n.Text = content
	for _, child := range children {
		n.AppendChild(child)
	}
	return n
}

// iconProducer renders a decorative icon span. An animation prop composes an
// animation value from the matching theme entry when one exists, falling back
// to the default timing otherwise.
func iconProducer(ctx Context, props map[string]any, _ string, _ []*node.Node) *node.Node {
	name := stringProp(props, "name")

	n := node.Element("span", attrs(props, "name", "animation", "class"))

	class := "icon"
	if name != "" {
		class += " icon-" + name
	}
	n.SetAttr("class", mergeClass(class, stringProp(props, "class")))

	if n.Attr("aria-label") == "" {
		n.SetAttr("aria-hidden", "true")
	}

	if animName := stringProp(props, "animation"); animName != "" {
		composed := "fade-in " + style.DefaultDuration + " " + style.DefaultEasing
		if ctx.Theme != nil {
			if anim, ok := ctx.Theme.Animations[animName]; ok && !anim.Disabled {
				composed = style.ComposedValue(animName, anim, style.DefaultDuration, style.DefaultEasing)
			} else {
				composed = animName + " " + style.DefaultDuration + " " + style.DefaultEasing
			}
		} else {
			composed = animName + " " + style.DefaultDuration + " " + style.DefaultEasing
		}
		n.SetAttr("style", "animation: "+composed+";")
	}

	return n
}

// languageSwitcherProducer renders one button per supported language. Without
// language configuration it renders an empty switcher rather than failing.
func languageSwitcherProducer(ctx Context, props map[string]any, _ string, _ []*node.Node) *node.Node {
	n := node.Element("nav", attrs(props, "class"))
	n.SetAttr("class", mergeClass("language-switcher", stringProp(props, "class")))
	if n.Attr("aria-label") == "" {
		n.SetAttr("aria-label", "Language selection")
	}

	if ctx.Languages == nil {
		return n
	}

	for _, code := range ctx.Languages.Supported {
		label := ctx.Languages.Labels[code]
		if label == "" {
			label = strings.ToUpper(code)
		}

		button := node.Element("button", map[string]string{
			"data-lang": code,
			"type":      "button",
		})
		class := "language-option"
		if code == ctx.Languages.Default {
			class += " active"
		}
		button.SetAttr("class", class)
		button.Text = label
		n.AppendChild(button)
	}

	return n
}

// attrs converts scalar props into output attributes, skipping the reserved
// keys a producer consumes itself. Nested objects and arrays never become
// attributes.
func attrs(props map[string]any, reserved ...string) map[string]string {
	if len(props) == 0 {
		return nil
	}

	skip := make(map[string]struct{}, len(reserved))
	for _, key := range reserved {
		skip[key] = struct{}{}
	}

	out := make(map[string]string)
	for key, value := range props {
		if _, ok := skip[key]; ok {
			continue
		}
		if text, ok := attrValue(value); ok {
			out[key] = text
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func attrValue(value any) (string, bool) {
	switch typed := value.(type) {
	case string:
		return typed, true
	case bool:
		return strconv.FormatBool(typed), true
	case int:
		return strconv.Itoa(typed), true
	case int64:
		return strconv.FormatInt(typed, 10), true
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64), true
	default:
		return "", false
	}
}

func stringProp(props map[string]any, key string) string {
	if value, ok := props[key].(string); ok {
		return value
	}
	return ""
}

func intProp(props map[string]any, key string, fallback int) int {
	switch typed := props[key].(type) {
	case int:
		return typed
	case int64:
		return int(typed)
	case float64:
		return int(typed)
	case string:
		if parsed, err := strconv.Atoi(typed); err == nil {
			return parsed
		}
	}
	return fallback
}

func boolProp(props map[string]any, key string) bool {
	switch typed := props[key].(type) {
	case bool:
		return typed
	case string:
		return typed == "true"
	}
	return false
}

func mergeClass(base, extra string) string {
	if extra == "" {
		return base
	}
	return base + " " + extra
}
