package download

import (
	"regexp"
	"strings"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9-_]+`)

// SafeFilename derives a filesystem-safe attachment filename from a resume
// title: every run of characters outside [A-Za-z0-9_-] collapses to a
// single underscore, a title that reduces to separators only falls back to
// "resume", and the ".pdf" extension is appended.
func SafeFilename(title string) string {
	safe := unsafeFilenameChars.ReplaceAllString(title, "_")
	if strings.Trim(safe, "_-") == "" {
		safe = "resume"
	}
	return safe + ".pdf"
}
