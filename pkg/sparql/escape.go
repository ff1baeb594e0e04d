package sparql

import "strings"

// EscapeLiteral escapes a free-text value for embedding in a quoted literal
// position of query or update text. Backslash must be escaped first, then
// double quote, newline and carriage return; any other order corrupts the
// value. Every literal that reaches the store goes through this function.
func EscapeLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	s = strings.ReplaceAll(s, "\r", `\r`)
	return s
}
