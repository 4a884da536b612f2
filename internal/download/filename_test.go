package download

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeFilename(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Backend Engineer", "Backend_Engineer.pdf"},
		{"my-resume_2024", "my-resume_2024.pdf"},
		{"Jane's Résumé (v2)!", "Jane_s_R_sum_v2_.pdf"},
		{"  spaced   out  ", "_spaced_out_.pdf"},
		{"a/b\\c:d", "a_b_c_d.pdf"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, SafeFilename(tc.title), "title %q", tc.title)
	}
}

func TestSafeFilenameFallback(t *testing.T) {
	// Titles that reduce to underscores and hyphens only fall back to a
	// fixed name instead of producing "_.pdf" or "---.pdf".
	cases := []string{"", "!!!", "(((", "___", "---", "_-_"}
	for _, title := range cases {
		assert.Equal(t, "resume.pdf", SafeFilename(title), "title %q", title)
	}
}

func TestSafeFilenameCollapsesRuns(t *testing.T) {
	assert.Equal(t, "a_b.pdf", SafeFilename("a!@#$%b"))
}
