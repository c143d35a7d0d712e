package substitute

// keyAliases maps camelCase authoring conveniences to the attribute names a
// markup renderer expects. Keys outside the dictionary pass through unchanged.
var keyAliases = map[string]string{
	"ariaLabel":       "aria-label",
	"ariaHidden":      "aria-hidden",
	"ariaDescribedBy": "aria-describedby",
	"ariaLive":        "aria-live",
	"dataTestId":      "data-testid",
	"className":       "class",
	"htmlFor":         "for",
	"tabIndex":        "tabindex",
}

// NormalizeKey converts a convenience prop key to its canonical attribute
// form.
func NormalizeKey(key string) string {
	if canonical, ok := keyAliases[key]; ok {
		return canonical
	}
	return key
}
