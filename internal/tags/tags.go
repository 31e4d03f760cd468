// internal/tags/tags.go
package tags

// IsTagName reports whether s is a legal marker tag name.
// First byte: a-z. Remaining bytes: a-z, A-Z, 0-9 or '_'.
// Any non-ASCII byte fails.
func IsTagName(s string) bool {
	if s == "" {
		return false
	}
	if !isLower(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if !(isLower(c) || isUpper(c) || isDigit(c) || c == '_') {
			return false
		}
	}
	return true
}

func isLower(c byte) bool { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
