package style

import (
	"fmt"
	"strings"

	"github.com/lowkit/lowkit/internal/config"
)

// headingSelector covers every heading level at once; heading font settings
// apply uniformly.
const headingSelector = "h1, h2, h3, h4, h5, h6"

// monoSelector covers the preformatted element group.
const monoSelector = "code, pre, kbd, samp"

// FontFamilyValue builds the CSS font-family value for a category.
func FontFamilyValue(font config.Font) string {
	if font.Fallback == "" {
		return quoteFamily(font.Family)
	}
	return quoteFamily(font.Family) + ", " + font.Fallback
}

func quoteFamily(family string) string {
	if strings.ContainsAny(family, " ") && !strings.HasPrefix(family, `"`) {
		return `"` + family + `"`
	}
	return family
}

// headingCategory picks the category that carries heading styles: "heading"
// when present, otherwise "title".
func headingCategory(fonts map[string]config.Font) (string, bool) {
	if _, ok := fonts["heading"]; ok {
		return "heading", true
	}
	if _, ok := fonts["title"]; ok {
		return "title", true
	}
	return "", false
}

// fontElementRule emits the element-level base style for a font category.
func fontElementRule(selector, category string, font config.Font) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", selector)
	fmt.Fprintf(&b, "  font-family: var(--font-%s-family);\n", category)
	if font.Style != "" {
		fmt.Fprintf(&b, "  font-style: %s;\n", font.Style)
	}
	if font.LetterSpacing != "" {
		fmt.Fprintf(&b, "  letter-spacing: %s;\n", font.LetterSpacing)
	}
	if font.Transform != "" {
		fmt.Fprintf(&b, "  text-transform: %s;\n", font.Transform)
	}
	b.WriteString("}")
	return b.String()
}
