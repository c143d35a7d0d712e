package style

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/lowkit/lowkit/internal/config"
)

// Defaults applied when a theme entry does not specify timing.
const (
	DefaultDuration   = "400ms"
	DefaultDurationMs = 400
	DefaultEasing     = "ease-out"
)

// minStaggerDelayMs keeps list reveals perceptible even for very fast base
// durations.
const minStaggerDelayMs = 50

// builtinKeyframes holds the keyframe bodies for well-known animation names.
var builtinKeyframes = map[string]string{
	"fade-in": "from { opacity: 0; transform: translateY(8px); }\n" +
		"  to { opacity: 1; transform: translateY(0); }",
	"slide-in": "from { opacity: 0; transform: translateX(-24px); }\n" +
		"  to { opacity: 1; transform: translateX(0); }",
	"pulse": "0%, 100% { opacity: 1; }\n" +
		"  50% { opacity: 0.5; }",
}

// ComposedValue builds the animation shorthand for an entry:
// "{kebab-case-name} {duration} {easing}" plus " infinite" when requested.
// Duration and easing come from the entry when structured, else from the
// supplied defaults.
func ComposedValue(name string, anim config.Animation, defaultDuration, defaultEasing string) string {
	duration := anim.Duration
	if duration == "" {
		duration = defaultDuration
	}
	easing := anim.Easing
	if easing == "" {
		easing = defaultEasing
	}

	value := fmt.Sprintf("%s %s %s", Kebab(name), duration, easing)
	if anim.Infinite {
		value += " infinite"
	}
	return value
}

// KeyframesBody returns the keyframe body for an entry: a custom keyframes
// map when supplied, a built-in body for well-known names, or "" when the
// entry has neither.
func KeyframesBody(name string, anim config.Animation) string {
	if len(anim.Keyframes) > 0 {
		return customKeyframesBody(anim.Keyframes)
	}
	if body, ok := builtinKeyframes[Kebab(name)]; ok {
		return body
	}
	return ""
}

func customKeyframesBody(frames map[string]map[string]string) string {
	stops := make([]string, 0, len(frames))
	for stop := range frames {
		stops = append(stops, stop)
	}
	sort.Slice(stops, func(i, j int) bool {
		return stopPercent(stops[i]) < stopPercent(stops[j])
	})

	lines := make([]string, 0, len(stops))
	for _, stop := range stops {
		props := frames[stop]
		names := make([]string, 0, len(props))
		for prop := range props {
			names = append(names, prop)
		}
		sort.Strings(names)

		decls := make([]string, 0, len(names))
		for _, prop := range names {
			decls = append(decls, fmt.Sprintf("%s: %s;", prop, props[prop]))
		}
		lines = append(lines, fmt.Sprintf("%s { %s }", stop, strings.Join(decls, " ")))
	}
	return strings.Join(lines, "\n  ")
}

func stopPercent(stop string) float64 {
	switch stop {
	case "from":
		return 0
	case "to":
		return 100
	}
	value, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(stop), "%"), 64)
	if err != nil {
		return 100
	}
	return value
}

// DurationMs parses a CSS duration ("400ms", "0.4s") into milliseconds,
// returning fallback when the value cannot be parsed.
func DurationMs(value string, fallback int) int {
	trimmed := strings.TrimSpace(value)
	switch {
	case strings.HasSuffix(trimmed, "ms"):
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, "ms"), 64)
		if err != nil {
			return fallback
		}
		return int(parsed)
	case strings.HasSuffix(trimmed, "s"):
		parsed, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, "s"), 64)
		if err != nil {
			return fallback
		}
		return int(parsed * 1000)
	default:
		return fallback
	}
}

// StaggerDelayMs computes the per-item entrance delay step for list
// staggering: a quarter of the base duration, floored at 50ms.
func StaggerDelayMs(durationMs int) int {
	delay := durationMs / 4
	if delay < minStaggerDelayMs {
		return minStaggerDelayMs
	}
	return delay
}

// EntranceDurationMs resolves the base entrance-animation duration from the
// theme's fade-in entry, defaulting to 400ms.
func EntranceDurationMs(theme *config.Theme) int {
	if theme == nil {
		return DefaultDurationMs
	}
	anim, ok := theme.Animations["fade-in"]
	if !ok || anim.Duration == "" {
		return DefaultDurationMs
	}
	return DurationMs(anim.Duration, DefaultDurationMs)
}

// Kebab converts a camelCase token name to kebab-case. Names already in
// kebab-case pass through unchanged.
func Kebab(name string) string {
	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
