package style

import (
	"fmt"
	"strconv"
	"strings"
)

// HexToRGB converts a hex colour to a space-separated RGB triplet so the
// generated custom properties compose with opacity-modifier syntax. 3-digit
// hex is expanded to 6-digit before parsing. Values that are not hex colours
// pass through unchanged.
func HexToRGB(value string) string {
	if !strings.HasPrefix(value, "#") {
		return value
	}

	hex := strings.TrimPrefix(value, "#")
	if len(hex) == 3 {
		hex = expandShortHex(hex)
	}
	if len(hex) != 6 {
		return value
	}

	r, errR := strconv.ParseUint(hex[0:2], 16, 8)
	g, errG := strconv.ParseUint(hex[2:4], 16, 8)
	b, errB := strconv.ParseUint(hex[4:6], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return value
	}

	return fmt.Sprintf("%d %d %d", r, g, b)
}

func expandShortHex(hex string) string {
	var b strings.Builder
	for _, c := range hex {
		b.WriteRune(c)
		b.WriteRune(c)
	}
	return b.String()
}
