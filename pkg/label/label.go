package label

import "strings"

const idSuffix = "id"

// Derive returns the relationship label for fieldName. When fieldName ends
// with "id" (compared case-insensitively) the suffix is stripped and the
// remaining prefix is returned with its original casing. Otherwise
// fallbackLabel is returned unchanged.
func Derive(fieldName, fallbackLabel string) string {
	if hasIDSuffix(fieldName) {
		return fieldName[:len(fieldName)-len(idSuffix)]
	}
	return fallbackLabel
}

func hasIDSuffix(s string) bool {
	if len(s) < len(idSuffix) {
		return false
	}
	return strings.EqualFold(s[len(s)-len(idSuffix):], idSuffix)
}
