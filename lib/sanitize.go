package lib

import "strings"

// SanitizeString trims surrounding whitespace and strips control
// characters from user-supplied query values.
func SanitizeString(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
}
