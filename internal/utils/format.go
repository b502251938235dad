// Package utils holds the report sink helpers and the comparison math
// shared by the text and structured output modes.
package utils

import (
	"fmt"
	"strings"
)

const previewLimit = 300

var newlineFolder = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// FormatNanoUSD renders a nano-dollar (1e-9 USD) amount as dollars with
// exactly six decimal digits.
func FormatNanoUSD(v int64) string {
	return fmt.Sprintf("$%.6f", float64(v)/1e9)
}

// Preview folds a reply onto a single line and truncates it for row
// display, appending an ellipsis when cut.
func Preview(s string) string {
	s = newlineFolder.Replace(s)

	runes := []rune(s)
	if len(runes) <= previewLimit {
		return s
	}
	return string(runes[:previewLimit]) + "..."
}

// Separator returns the fence line printed above and below summary
// blocks.
func Separator() string {
	return strings.Repeat("=", 70)
}
