// Package cnpj checks and prepares Brazilian company registry numbers.
package cnpj

import (
	"regexp"
	"strings"
)

// pattern accepts the 2-3-3-4-2 digit groups with each separator optional.
var pattern = regexp.MustCompile(`^\d{2}\.?\d{3}\.?\d{3}/?\d{4}-?\d{2}$`)

// Validate reports whether input has the shape of a CNPJ. Surrounding
// whitespace is ignored; check digits are not verified.
func Validate(input string) bool {
	return pattern.MatchString(strings.TrimSpace(input))
}

// Normalize removes the first "/" so the identifier can be used as a single
// URL path segment. Other punctuation is left for the registry to accept.
func Normalize(id string) string {
	return strings.Replace(id, "/", "", 1)
}
