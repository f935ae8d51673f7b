package rba

import "strings"

// IsTrue interprets a boolean-like XML attribute. The legacy dialects encode
// booleans as "1"/"0" or "true"/"false" depending on the file; every reader
// must go through this predicate so the interpretation stays uniform.
func IsTrue(value string) bool {
	return value == "1" || strings.EqualFold(value, "true")
}
