// Package links normalises user supplied URLs before they are stored.
package links

import "strings"

var schemeless = []string{"mailto:", "tel:"}

// NormalizeURL trims raw and prefixes https:// when no scheme is present.
// Blank input yields "". Applying it twice gives the same result as once.
func NormalizeURL(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if HasScheme(value) {
		return value
	}
	return "https://" + strings.TrimPrefix(value, "//")
}

// HasScheme reports whether value already names a scheme.
func HasScheme(value string) bool {
	lower := strings.ToLower(value)
	if i := strings.Index(lower, "://"); i > 0 && validScheme(lower[:i]) {
		return true
	}
	for _, prefix := range schemeless {
		if strings.HasPrefix(lower, prefix) {
			return true
		}
	}
	return false
}

func validScheme(s string) bool {
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
