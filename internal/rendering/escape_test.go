package rendering

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapePDFTextPlain(t *testing.T) {
	assert.Equal(t, "Jane Doe", EscapePDFText("Jane Doe"))
}

func TestEscapePDFTextEmpty(t *testing.T) {
	assert.Equal(t, "", EscapePDFText(""))
}

func TestEscapePDFTextParentheses(t *testing.T) {
	assert.Equal(t, `Resume \(v2\)`, EscapePDFText("Resume (v2)"))
}

func TestEscapePDFTextBackslash(t *testing.T) {
	assert.Equal(t, `C:\\Users\\jane`, EscapePDFText(`C:\Users\jane`))
}

func TestEscapePDFTextNewlines(t *testing.T) {
	// A line feed becomes the literal two-character escape, carriage
	// returns disappear.
	assert.Equal(t, `line one\nline two`, EscapePDFText("line one\r\nline two"))
}

func TestEscapePDFTextBackslashBeforeParen(t *testing.T) {
	assert.Equal(t, `\\\(`, EscapePDFText(`\(`))
}

func TestEscapePDFTextUnicode(t *testing.T) {
	assert.Equal(t, "Résumé — naïve", EscapePDFText("Résumé — naïve"))
}
