package rendering

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

type stubEngine struct {
	unavailable error
	renderErr   error
	output      []byte
	sawHTML     string
	sawDeadline bool
}

func (e *stubEngine) Available() error {
	return e.unavailable
}

func (e *stubEngine) Render(ctx context.Context, html string) ([]byte, error) {
	e.sawHTML = html
	_, e.sawDeadline = ctx.Deadline()
	if e.renderErr != nil {
		return nil, e.renderErr
	}
	return e.output, nil
}

func parseHTML(t *testing.T, doc *types.Resume) *goquery.Document {
	t.Helper()
	parsed, err := goquery.NewDocumentFromReader(strings.NewReader(HTMLDocument(doc)))
	require.NoError(t, err)
	return parsed
}

func TestHTMLRendererSuccess(t *testing.T) {
	engine := &stubEngine{output: []byte("%PDF-1.7 ok")}
	r := NewHTMLRenderer(engine, time.Second)

	pdf, err := r.Render(context.Background(), sampleResume("modern"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7 ok"), pdf)
	assert.Contains(t, engine.sawHTML, "<!DOCTYPE html>")
	assert.True(t, engine.sawDeadline, "engine call should carry a deadline")
}

func TestHTMLRendererUnavailable(t *testing.T) {
	engine := &stubEngine{unavailable: fmt.Errorf("no browser on PATH")}
	r := NewHTMLRenderer(engine, time.Second)

	_, err := r.Render(context.Background(), sampleResume("modern"))
	var unavailable *EngineUnavailableError
	require.True(t, errors.As(err, &unavailable))
	assert.Contains(t, err.Error(), "no browser on PATH")
}

func TestHTMLRendererEngineError(t *testing.T) {
	engine := &stubEngine{renderErr: fmt.Errorf("page crashed")}
	r := NewHTMLRenderer(engine, time.Second)

	_, err := r.Render(context.Background(), sampleResume("modern"))
	var failure *EngineFailureError
	require.True(t, errors.As(err, &failure))
}

func TestHTMLRendererEmptyOutput(t *testing.T) {
	engine := &stubEngine{output: nil}
	r := NewHTMLRenderer(engine, time.Second)

	_, err := r.Render(context.Background(), sampleResume("modern"))
	var failure *EngineFailureError
	require.True(t, errors.As(err, &failure))
	assert.Contains(t, err.Error(), "empty output")
}

func TestHTMLRendererDefaultTimeout(t *testing.T) {
	r := NewHTMLRenderer(&stubEngine{output: []byte("x")}, 0)
	assert.Equal(t, DefaultEngineTimeout, r.timeout)
}

func TestHTMLDocumentHeader(t *testing.T) {
	doc := parseHTML(t, sampleResume("modern"))

	assert.Equal(t, "Jane Doe", doc.Find(".header h1").Text())
	assert.Equal(t, "Backend Engineer", doc.Find(".headline").Text())
	assert.Equal(t, "jane@example.com • 555-0100 • Portland, OR", doc.Find(".contact").Text())
}

func TestHTMLDocumentContactOrder(t *testing.T) {
	resume := sampleResume("classic")
	resume.PersonalInfo.LinkedIn = "linkedin.com/in/janedoe"
	resume.PersonalInfo.Website = "janedoe.dev"
	doc := parseHTML(t, resume)

	assert.Equal(t,
		"jane@example.com | 555-0100 | Portland, OR | linkedin.com/in/janedoe | janedoe.dev",
		doc.Find(".contact").Text())
}

func TestHTMLDocumentSectionHeaders(t *testing.T) {
	doc := parseHTML(t, sampleResume("modern"))

	headers := doc.Find(".section h2").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"PROFESSIONAL SUMMARY", "WORK EXPERIENCE", "EDUCATION", "SKILLS"}, headers)
}

func TestHTMLDocumentClassicHeaders(t *testing.T) {
	doc := parseHTML(t, sampleResume("classic"))

	headers := doc.Find(".section h2").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"OBJECTIVE", "EXPERIENCE", "EDUCATION", "SKILLS"}, headers)
}

func TestHTMLDocumentExperienceEntry(t *testing.T) {
	doc := parseHTML(t, sampleResume("modern"))

	entry := doc.Find(".section").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return s.Find("h2").Text() == "WORK EXPERIENCE"
	}).Find(".entry").First()

	assert.Equal(t, "Senior Engineer", entry.Find(".entry-title").Text())
	assert.Equal(t, "Mar 2021 - Present", entry.Find(".entry-dates").Text())
	assert.Equal(t, "Acme Corp", entry.Find(".entry-sub").Text())
	assert.Equal(t, "Built the billing platform.", entry.Find(".desc").Text())
}

func TestHTMLDocumentClassicCombinesExperienceHeader(t *testing.T) {
	doc := parseHTML(t, sampleResume("classic"))

	assert.Equal(t, "Senior Engineer, Acme Corp", doc.Find(".entry-title").First().Text())
}

func TestHTMLDocumentEmptySectionsOmitted(t *testing.T) {
	resume := &types.Resume{
		Template:     "modern",
		PersonalInfo: types.PersonalInfo{FullName: "Jane Doe"},
	}
	doc := parseHTML(t, resume)

	assert.Equal(t, 0, doc.Find(".section").Length())
}

func TestHTMLDocumentEscapesUserText(t *testing.T) {
	resume := sampleResume("modern")
	resume.PersonalInfo.FullName = `<script>alert("x")</script>`
	raw := HTMLDocument(resume)

	assert.NotContains(t, raw, `<script>alert`)
	assert.Contains(t, raw, "&lt;script&gt;")
}

func TestHTMLDocumentMultilineDescription(t *testing.T) {
	resume := sampleResume("modern")
	resume.Experience[0].Description = "First line\r\nSecond line"
	raw := HTMLDocument(resume)

	assert.Contains(t, raw, "First line<br>Second line")
}

func TestHTMLDocumentStylesFollowTemplate(t *testing.T) {
	modern := HTMLDocument(sampleResume("modern"))
	assert.Contains(t, modern, "#2563eb")
	assert.Contains(t, modern, "text-align: left")

	classic := HTMLDocument(sampleResume("classic"))
	assert.Contains(t, classic, "text-align: center")
	assert.Contains(t, classic, "text-transform: uppercase")
	assert.NotContains(t, classic, "#2563eb")
}
