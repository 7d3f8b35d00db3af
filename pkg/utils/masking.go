package utils

import "strings"

// MaskSecret masks a sensitive string for display, keeping only the last
// four characters visible. Strings of four characters or fewer are fully
// masked. Storage always keeps the full value; this is display-time only.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("*", len(s))
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
