package utils

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	slugStrip  = regexp.MustCompile(`[^a-z0-9]+`)
	nprPrinter = message.NewPrinter(language.English)
)

// Slug turns a place name into a stable lowercase id
// ("Swayambhunath (Monkey Temple)" -> "swayambhunath-monkey-temple").
func Slug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// FormatAmountRange renders a point estimate as a "low–high" range with
// thousands separators. Bounds are 0.8x and 1.3x, both truncated to integers.
func FormatAmountRange(amount float64) string {
	low := int(amount * 0.8)
	high := int(amount * 1.3)
	return nprPrinter.Sprintf("%d–%d", low, high)
}
