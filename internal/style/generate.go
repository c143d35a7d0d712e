// Package style compiles theme tokens into a CSS stylesheet: custom
// properties, element base styles, keyframes and composed animation values.
// Generation is deterministic: the same theme always yields byte-identical
// output.
package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lowkit/lowkit/internal/config"
)

// Generate compiles the theme into CSS text. An empty or absent theme yields
// an empty string, never an error.
func Generate(theme *config.Theme) string {
	if theme == nil {
		return ""
	}

	var sections []string

	if root := rootVariables(theme); root != "" {
		sections = append(sections, root)
	}
	sections = append(sections, fontRules(theme.Fonts)...)
	sections = append(sections, animationRules(theme.Animations)...)

	if len(sections) == 0 {
		return ""
	}
	return strings.Join(sections, "\n\n") + "\n"
}

func rootVariables(theme *config.Theme) string {
	var decls []string

	// Colors are emitted twice, --color-{name} and --{name}, as RGB triplets
	// so opacity-modifier syntax works in the consuming stylesheet.
	for _, name := range sortedKeys(theme.Colors) {
		rgb := HexToRGB(theme.Colors[name])
		decls = append(decls, fmt.Sprintf("  --color-%s: %s;", name, rgb))
		decls = append(decls, fmt.Sprintf("  --%s: %s;", name, rgb))
	}

	for _, category := range sortedKeys(theme.Fonts) {
		font := theme.Fonts[category]
		if font.Family == "" {
			continue
		}
		decls = append(decls, fmt.Sprintf("  --font-%s-family: %s;", category, FontFamilyValue(font)))
	}

	for _, name := range sortedKeys(theme.Spacing) {
		value := theme.Spacing[name]
		decls = append(decls, fmt.Sprintf("  --spacing-%s: %s;", name, value))
		if px, ok := RemToPx(value); ok {
			decls = append(decls, fmt.Sprintf("  --spacing-%s-px: %s;", name, px))
		}
	}

	for _, name := range sortedKeys(theme.BorderRadius) {
		decls = append(decls, fmt.Sprintf("  --radius-%s: %s;", name, theme.BorderRadius[name]))
	}

	for _, name := range sortedKeys(theme.Shadows) {
		decls = append(decls, fmt.Sprintf("  --shadow-%s: %s;", name, theme.Shadows[name]))
	}

	for _, name := range sortedKeys(theme.Breakpoints) {
		decls = append(decls, fmt.Sprintf("  --breakpoint-%s: %s;", name, theme.Breakpoints[name]))
	}

	if len(decls) == 0 {
		return ""
	}
	return ":root {\n" + strings.Join(decls, "\n") + "\n}"
}

func fontRules(fonts map[string]config.Font) []string {
	var rules []string

	if category, ok := headingCategory(fonts); ok {
		rules = append(rules, fontElementRule(headingSelector, category, fonts[category]))
	}
	if font, ok := fonts["mono"]; ok {
		rules = append(rules, fontElementRule(monoSelector, "mono", font))
	}

	return rules
}

func animationRules(animations map[string]config.Animation) []string {
	var rules []string

	for _, name := range sortedKeys(animations) {
		anim := animations[name]
		if anim.Disabled {
			continue
		}

		switch Kebab(name) {
		case "transition":
			rules = append(rules, transitionRule(anim))
		case "parallax":
			rules = append(rules, parallaxRule())
		case "typewriter":
			rules = append(rules, typewriterRules(anim)...)
		default:
			if body := KeyframesBody(name, anim); body != "" {
				rules = append(rules, fmt.Sprintf("@keyframes %s {\n  %s\n}", Kebab(name), body))
			}
			composed := ComposedValue(name, anim, DefaultDuration, DefaultEasing)
			rules = append(rules, fmt.Sprintf(".%s {\n  animation: %s;\n}", Kebab(name), composed))
		}
	}

	return rules
}

func transitionRule(anim config.Animation) string {
	duration := anim.Duration
	if duration == "" {
		duration = "200ms"
	}
	easing := anim.Easing
	if easing == "" {
		easing = "ease"
	}
	return fmt.Sprintf("a, button, input, select, textarea {\n  transition: all %s %s;\n}", duration, easing)
}

func parallaxRule() string {
	return strings.Join([]string{
		".parallax {",
		"  background-attachment: fixed;",
		"  background-position: center;",
		"  background-repeat: no-repeat;",
		"  background-size: cover;",
		"  min-height: 60vh;",
		"}",
	}, "\n")
}

func typewriterRules(anim config.Animation) []string {
	duration := anim.Duration
	if duration == "" {
		duration = "2s"
	}
	easing := anim.Easing
	if easing == "" {
		easing = "steps(40, end)"
	}

	keyframes := "@keyframes typewriter {\n  from { width: 0; }\n  to { width: 100%; }\n}"
	rule := strings.Join([]string{
		".typewriter {",
		fmt.Sprintf("  animation: typewriter %s %s;", duration, easing),
		"  overflow: hidden;",
		"  white-space: nowrap;",
		"  border-right: 2px solid;",
		"}",
	}, "\n")

	return []string{keyframes, rule}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
