package rendering

import "strings"

// EscapePDFText escapes text for inclusion in a PDF literal string.
// Backslashes and parentheses are escaped, carriage returns are stripped,
// and a line feed becomes the two-character escape `\n` inside the string.
// The escape is a literal backslash-n token, not a real line break: the
// minimal renderer cannot represent multi-line paragraphs, this only keeps
// the string syntax intact.
func EscapePDFText(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text) * 2)

	for _, r := range text {
		switch r {
		case '\\':
			result.WriteString(`\\`)
		case '(':
			result.WriteString(`\(`)
		case ')':
			result.WriteString(`\)`)
		case '\r':
			// stripped
		case '\n':
			result.WriteString(`\n`)
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
