package util

// Snippet shortens value to at most max runes, appending an ellipsis marker
// when the original text was longer. Truncation counts runes so multi-byte
// text is never split mid-character.
func Snippet(value string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max]) + "..."
}
