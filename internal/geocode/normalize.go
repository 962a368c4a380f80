package geocode

import (
	"strings"
)

// turkishFold maps Turkish-specific letters to their closest ASCII
// equivalents. Upper-case forms are folded directly because İ does not
// round-trip through strings.ToLower cleanly.
var turkishFold = strings.NewReplacer(
	"ı", "i", "İ", "i", "I", "i",
	"ğ", "g", "Ğ", "g",
	"ü", "u", "Ü", "u",
	"ş", "s", "Ş", "s",
	"ö", "o", "Ö", "o",
	"ç", "c", "Ç", "c",
	"â", "a", "Â", "a",
	"î", "i", "Î", "i",
	"û", "u", "Û", "u",
)

// Normalize folds Turkish characters to ASCII, lower-cases and trims the
// input. Both free-text queries and table entries go through this before
// comparison.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(turkishFold.Replace(s)))
}
