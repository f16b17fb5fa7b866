package utils

import "strings"

// NormalizeName is the single product-name normalization used across the
// system: inventory sibling checks, frequency-memory keys and suggestion
// lookups all compare through this.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
