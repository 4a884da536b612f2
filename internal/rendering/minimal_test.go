package rendering

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func sampleResume(template string) *types.Resume {
	return &types.Resume{
		Title:    "Backend Engineer",
		Template: template,
		PersonalInfo: types.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
			Phone:    "555-0100",
			Address:  "Portland, OR",
			Summary:  "Pragmatic engineer with a bias for boring technology.",
		},
		Experience: []types.ExperienceEntry{
			{
				Company:     "Acme Corp",
				Position:    "Senior Engineer",
				StartDate:   "2021-03",
				Current:     true,
				Description: "Built the billing platform.",
			},
		},
		Education: []types.EducationEntry{
			{
				Institution: "State University",
				Degree:      "BSc",
				Field:       "Computer Science",
				StartDate:   "2013-09",
				EndDate:     "2017-06",
				GPA:         "3.8",
			},
		},
		Skills: []string{"Go", "PostgreSQL", "Kubernetes"},
	}
}

func renderMinimal(t *testing.T, doc *types.Resume) string {
	t.Helper()
	data, err := NewMinimalPDF().Render(context.Background(), doc)
	require.NoError(t, err)
	return string(data)
}

func TestMinimalPDFStructure(t *testing.T) {
	out := renderMinimal(t, sampleResume("modern"))

	assert.True(t, strings.HasPrefix(out, "%PDF-1.4\n"))
	assert.True(t, strings.HasSuffix(out, "%%EOF"))
	for i := 1; i <= 6; i++ {
		assert.Contains(t, out, fmt.Sprintf("\n%d 0 obj\n", i))
	}
	assert.Contains(t, out, "/Type /Catalog")
	assert.Contains(t, out, "/BaseFont /Helvetica-Bold")
	assert.Contains(t, out, "/BaseFont /Helvetica")
	assert.Contains(t, out, "trailer\n<< /Size 7 /Root 1 0 R >>")
}

func TestMinimalPDFXrefOffsets(t *testing.T) {
	out := renderMinimal(t, sampleResume("modern"))

	xrefAt := strings.LastIndex(out, "xref\n0 7\n")
	require.NotEqual(t, -1, xrefAt)

	// Each entry must point at the exact byte offset of its "N 0 obj".
	table := out[xrefAt+len("xref\n0 7\n"):]
	lines := strings.SplitN(table, "\n", 8)
	require.GreaterOrEqual(t, len(lines), 7)
	assert.Equal(t, "0000000000 65535 f ", lines[0])

	for i := 1; i <= 6; i++ {
		offset, err := strconv.Atoi(strings.Fields(lines[i])[0])
		require.NoError(t, err)
		expected := fmt.Sprintf("%d 0 obj", i)
		require.LessOrEqual(t, offset+len(expected), len(out))
		assert.Equal(t, expected, out[offset:offset+len(expected)], "object %d", i)
	}

	// startxref points at the xref keyword itself.
	startAt := strings.LastIndex(out, "startxref\n")
	require.NotEqual(t, -1, startAt)
	declared, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(out[startAt+len("startxref\n"):], "%%EOF")))
	require.NoError(t, err)
	assert.Equal(t, xrefAt, declared)
}

func TestMinimalPDFContentLength(t *testing.T) {
	out := renderMinimal(t, sampleResume("classic"))

	streamAt := strings.Index(out, "stream\n")
	endAt := strings.Index(out, "\nendstream")
	require.NotEqual(t, -1, streamAt)
	require.NotEqual(t, -1, endAt)
	stream := out[streamAt+len("stream\n") : endAt]

	lengthAt := strings.Index(out, "/Length ")
	require.NotEqual(t, -1, lengthAt)
	declared, err := strconv.Atoi(strings.Fields(out[lengthAt+len("/Length "):])[0])
	require.NoError(t, err)
	assert.Equal(t, len(stream), declared)
}

func TestMinimalPDFDeterministic(t *testing.T) {
	doc := sampleResume("modern")
	first := renderMinimal(t, doc)
	second := renderMinimal(t, doc)
	assert.Equal(t, first, second)
}

func TestMinimalPDFModernContent(t *testing.T) {
	out := renderMinimal(t, sampleResume("modern"))

	assert.Contains(t, out, "(Jane Doe) Tj")
	assert.Contains(t, out, "/F1 36 Tf")
	assert.Contains(t, out, "(PROFESSIONAL SUMMARY) Tj")
	assert.Contains(t, out, "(WORK EXPERIENCE) Tj")
	// Position and company on separate lines.
	assert.Contains(t, out, "(Senior Engineer) Tj")
	assert.Contains(t, out, "(Acme Corp) Tj")
	assert.Contains(t, out, "(2021-03 - Present) Tj")
	assert.Contains(t, out, "(jane@example.com • 555-0100) Tj")
	assert.NotContains(t, out, "(OBJECTIVE) Tj")
}

func TestMinimalPDFClassicContent(t *testing.T) {
	out := renderMinimal(t, sampleResume("classic"))

	assert.Contains(t, out, "/F1 30 Tf")
	assert.Contains(t, out, "(OBJECTIVE) Tj")
	assert.Contains(t, out, "(EXPERIENCE) Tj")
	// Combined "Position, Company" line.
	assert.Contains(t, out, "(Senior Engineer, Acme Corp) Tj")
	assert.Contains(t, out, "(jane@example.com | 555-0100) Tj")
	assert.NotContains(t, out, "(PROFESSIONAL SUMMARY) Tj")
}

func TestMinimalPDFEducationFormatting(t *testing.T) {
	out := renderMinimal(t, sampleResume("modern"))

	assert.Contains(t, out, "(BSc in Computer Science) Tj")
	assert.Contains(t, out, "(State University) Tj")
	assert.Contains(t, out, "(2013-09 - 2017-06 | GPA: 3.8) Tj")
}

func TestMinimalPDFSkillsJoined(t *testing.T) {
	doc := sampleResume("modern")
	doc.Skills = []string{"Go", "  ", "", "SQL"}
	out := renderMinimal(t, doc)

	assert.Contains(t, out, "(SKILLS) Tj")
	assert.Contains(t, out, "(Go • SQL) Tj")
}

func TestMinimalPDFEmptySectionsOmitted(t *testing.T) {
	doc := &types.Resume{
		Template:     "modern",
		PersonalInfo: types.PersonalInfo{FullName: "Jane Doe"},
	}
	out := renderMinimal(t, doc)

	assert.Contains(t, out, "(Jane Doe) Tj")
	for _, header := range []string{"PROFESSIONAL SUMMARY", "WORK EXPERIENCE", "EDUCATION", "PROJECTS", "ACHIEVEMENTS", "SKILLS"} {
		assert.NotContains(t, out, "("+header+") Tj")
	}
}

func TestMinimalPDFEscapesText(t *testing.T) {
	doc := sampleResume("modern")
	doc.PersonalInfo.FullName = `Jane (Janie) O\Doe`
	out := renderMinimal(t, doc)

	assert.Contains(t, out, `(Jane \(Janie\) O\\Doe) Tj`)
}

func TestMinimalPDFProjectsAndAchievements(t *testing.T) {
	doc := sampleResume("modern")
	doc.Projects = []types.ProjectEntry{{
		Name:         "Side Project",
		Technologies: "Go, HTMX",
		URL:          "https://example.com",
		StartDate:    "2023-01",
		Current:      true,
	}}
	doc.Achievements = []types.AchievementEntry{{
		Title:  "Employee of the Month",
		Issuer: "Acme Corp",
		Date:   "2022-07",
	}}
	out := renderMinimal(t, doc)

	assert.Contains(t, out, "(PROJECTS) Tj")
	assert.Contains(t, out, "(Side Project) Tj")
	assert.Contains(t, out, "(2023-01 - Present) Tj")
	assert.Contains(t, out, "(https://example.com) Tj")
	assert.Contains(t, out, "(ACHIEVEMENTS) Tj")
	assert.Contains(t, out, "(Employee of the Month) Tj")
}
