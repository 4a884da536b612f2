package rendering

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Page geometry for the single emitted page (US Letter in PDF units).
const (
	pageWidth  = 612
	pageHeight = 792

	leftX   = 72
	centerX = 306
	topY    = 750
)

// Font resource names declared in the page object. F1 is Helvetica-Bold,
// F2 is Helvetica; both are standard base fonts needing no embedding.
const (
	fontBold    = "F1"
	fontRegular = "F2"
)

// MinimalPDF builds a single-page PDF document directly: fixed-size text
// blocks positioned with explicit coordinates and a hand-written
// object/xref/trailer structure. It has no external dependencies and no
// recoverable failure mode; missing optional fields are simply omitted.
//
// Vertical spacing uses fixed per-element deltas rather than measured text
// metrics, and content overflowing the bottom margin is not detected or
// paginated. That is a documented limitation of this renderer, kept for
// output compatibility.
type MinimalPDF struct{}

// NewMinimalPDF creates the minimal PDF renderer.
func NewMinimalPDF() *MinimalPDF { return &MinimalPDF{} }

// Render produces the PDF bytes for the document. The returned error is
// always nil; it exists only to satisfy the Renderer interface shared with
// the engine-backed HTML renderer.
func (r *MinimalPDF) Render(_ context.Context, doc *types.Resume) ([]byte, error) {
	content := buildContentStream(doc)

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	// The byte offset of every "N 0 obj" token is recorded as it is
	// written; the xref table must point exactly at these positions or
	// strict parsers reject the file.
	var offsets [7]int

	offsets[1] = buf.Len()
	buf.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")

	offsets[2] = buf.Len()
	buf.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")

	offsets[3] = buf.Len()
	fmt.Fprintf(&buf, "3 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 %d %d] /Resources << /Font << /%s 4 0 R /%s 5 0 R >> >> /Contents 6 0 R >>\nendobj\n",
		pageWidth, pageHeight, fontBold, fontRegular)

	offsets[4] = buf.Len()
	buf.WriteString("4 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica-Bold >>\nendobj\n")

	offsets[5] = buf.Len()
	buf.WriteString("5 0 obj\n<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>\nendobj\n")

	offsets[6] = buf.Len()
	fmt.Fprintf(&buf, "6 0 obj\n<< /Length %d >>\nstream\n%s\nendstream\nendobj\n", len(content), content)

	xrefOffset := buf.Len()
	buf.WriteString("xref\n0 7\n")
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= 6; i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}

	fmt.Fprintf(&buf, "trailer\n<< /Size 7 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF", xrefOffset)

	return buf.Bytes(), nil
}

// contentStream accumulates text-positioning and text-show operators while
// tracking the vertical cursor.
type contentStream struct {
	buf strings.Builder
	y   int
}

func newContentStream() *contentStream {
	c := &contentStream{y: topY}
	c.buf.WriteString("BT\n")
	return c
}

// line emits an absolute move-to (Tm), a font selection (Tf) and a
// show-text (Tj) for one line, then moves the cursor down by gap.
func (c *contentStream) line(x int, font string, size int, text string, gap int) {
	fmt.Fprintf(&c.buf, "1 0 0 1 %d %d Tm\n", x, c.y)
	fmt.Fprintf(&c.buf, "/%s %d Tf\n", font, size)
	fmt.Fprintf(&c.buf, "(%s) Tj\n", EscapePDFText(text))
	c.y -= gap
}

func (c *contentStream) space(gap int) {
	c.y -= gap
}

func (c *contentStream) close() string {
	c.buf.WriteString("ET\n")
	return c.buf.String()
}

// headingTiers holds the per-template emphasis sizes and spacing deltas for
// the header block. The accent template uses larger bold tiers.
type headingTiers struct {
	nameSize, nameGap   int
	titleSize, titleGap int
	headerGap           int
	summarySize         int
	summaryBodyGap      int
	sectionGap          int
}

func tiersFor(rules Rules) headingTiers {
	if rules.Accent {
		return headingTiers{
			nameSize: 36, nameGap: 50,
			titleSize: 18, titleGap: 30,
			headerGap:      30,
			summarySize:    18,
			summaryBodyGap: 45,
			sectionGap:     15,
		}
	}
	return headingTiers{
		nameSize: 30, nameGap: 45,
		titleSize: 16, titleGap: 25,
		headerGap:      25,
		summarySize:    20,
		summaryBodyGap: 40,
		sectionGap:     10,
	}
}

// buildContentStream lays out the whole document. Sections with no content
// after filtering are omitted entirely, header included; the same order and
// presence rules apply to the HTML renderer.
func buildContentStream(doc *types.Resume) string {
	rules := RulesFor(doc.Template)
	tiers := tiersFor(rules)
	pi := doc.PersonalInfo

	c := newContentStream()

	if pi.FullName != "" {
		c.line(centerX, fontBold, tiers.nameSize, pi.FullName, tiers.nameGap)
	}
	if doc.Title != "" {
		c.line(centerX, fontRegular, tiers.titleSize, doc.Title, tiers.titleGap)
	}

	contact := joinNonEmpty(rules.Separator, pi.Email, pi.Phone)
	if contact != "" {
		c.line(centerX, fontRegular, 14, contact, 25)
	}
	if pi.Address != "" {
		c.line(centerX, fontRegular, 14, pi.Address, 25)
	}
	c.space(tiers.headerGap)

	if pi.Summary != "" {
		c.line(leftX, fontBold, tiers.summarySize, rules.SummaryHeader, 25)
		c.line(leftX, fontRegular, 14, pi.Summary, tiers.summaryBodyGap)
	}

	if len(doc.Experience) > 0 {
		c.space(tiers.sectionGap)
		c.line(leftX, fontBold, 20, rules.ExperienceHeader, 30)
		for _, exp := range doc.Experience {
			writeExperience(c, rules, exp)
		}
	}

	if len(doc.Education) > 0 {
		c.space(tiers.sectionGap)
		c.line(leftX, fontBold, 20, rules.EducationHeader, 30)
		for _, edu := range doc.Education {
			writeEducation(c, edu)
		}
	}

	if len(doc.Projects) > 0 {
		c.space(tiers.sectionGap)
		c.line(leftX, fontBold, 20, rules.ProjectsHeader, 30)
		for _, proj := range doc.Projects {
			writeProject(c, proj)
		}
	}

	if len(doc.Achievements) > 0 {
		c.space(tiers.sectionGap)
		c.line(leftX, fontBold, 20, rules.AchievementsHeader, 30)
		for _, ach := range doc.Achievements {
			writeAchievement(c, ach)
		}
	}

	if skills := doc.FilteredSkills(); len(skills) > 0 {
		c.space(tiers.sectionGap)
		c.line(leftX, fontBold, 20, rules.SkillsHeader, 25)
		c.line(leftX, fontRegular, 14, strings.Join(skills, rules.Separator), 20)
	}

	return c.close()
}

func writeExperience(c *contentStream, rules Rules, exp types.ExperienceEntry) {
	if rules.CombinedExperienceHeader {
		if header := joinNonEmpty(", ", exp.Position, exp.Company); header != "" {
			c.line(leftX, fontBold, 16, header, 20)
		}
	} else {
		if exp.Position != "" {
			c.line(leftX, fontBold, 16, exp.Position, 20)
		}
		if exp.Company != "" {
			c.line(leftX, fontRegular, 14, exp.Company, 18)
		}
	}
	if dates := dateRange(exp.StartDate, exp.EndDate, exp.Current); dates != "" {
		c.line(leftX, fontRegular, 12, dates, 16)
	}
	if exp.Description != "" {
		c.line(leftX, fontRegular, 14, exp.Description, 20)
	}
	c.space(10)
}

func writeEducation(c *contentStream, edu types.EducationEntry) {
	degree := edu.Degree
	if edu.Field != "" {
		degree = strings.TrimSpace(degree + " in " + edu.Field)
	}
	if degree != "" {
		c.line(leftX, fontBold, 16, degree, 20)
	}
	if edu.Institution != "" {
		c.line(leftX, fontRegular, 14, edu.Institution, 18)
	}
	dates := dateRange(edu.StartDate, edu.EndDate, false)
	if edu.GPA != "" {
		if dates != "" {
			dates += " | GPA: " + edu.GPA
		} else {
			dates = "GPA: " + edu.GPA
		}
	}
	if dates != "" {
		c.line(leftX, fontRegular, 12, dates, 16)
	}
	if edu.Description != "" {
		c.line(leftX, fontRegular, 14, edu.Description, 20)
	}
	c.space(10)
}

func writeProject(c *contentStream, proj types.ProjectEntry) {
	if proj.Name != "" {
		c.line(leftX, fontBold, 16, proj.Name, 20)
	}
	if proj.Technologies != "" {
		c.line(leftX, fontRegular, 14, proj.Technologies, 18)
	}
	if dates := dateRange(proj.StartDate, proj.EndDate, proj.Current); dates != "" {
		c.line(leftX, fontRegular, 12, dates, 16)
	}
	if proj.URL != "" {
		c.line(leftX, fontRegular, 12, proj.URL, 16)
	}
	if proj.Description != "" {
		c.line(leftX, fontRegular, 14, proj.Description, 20)
	}
	c.space(10)
}

func writeAchievement(c *contentStream, ach types.AchievementEntry) {
	if ach.Title != "" {
		c.line(leftX, fontBold, 16, ach.Title, 20)
	}
	if ach.Issuer != "" {
		c.line(leftX, fontRegular, 14, ach.Issuer, 18)
	}
	if ach.Date != "" {
		c.line(leftX, fontRegular, 12, ach.Date, 16)
	}
	if ach.Description != "" {
		c.line(leftX, fontRegular, 14, ach.Description, 20)
	}
	c.space(10)
}

// joinNonEmpty joins the non-empty parts with sep.
func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
