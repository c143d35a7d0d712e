package style

import (
	"strconv"
	"strings"
)

// rootFontSizePx is the fixed root size used when converting rem values to an
// absolute pixel fallback.
const rootFontSizePx = 16

// RemToPx converts a rem length to its pixel equivalent at the fixed 16px
// root size. The second return value reports whether the input was a rem
// value.
func RemToPx(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if !strings.HasSuffix(trimmed, "rem") {
		return "", false
	}

	amount, err := strconv.ParseFloat(strings.TrimSuffix(trimmed, "rem"), 64)
	if err != nil {
		return "", false
	}

	px := amount * rootFontSizePx
	return strconv.FormatFloat(px, 'f', -1, 64) + "px", true
}
