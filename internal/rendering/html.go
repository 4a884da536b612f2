package rendering

import (
	"context"
	"html/template"
	"strings"
	"time"

	"github.com/jonathan/resume-builder/internal/types"
)

// DefaultEngineTimeout bounds a single call into the external HTML-to-PDF
// engine so a hung browser never hangs the request.
const DefaultEngineTimeout = 60 * time.Second

// Engine is the external HTML-to-PDF collaborator: HTML string in, PDF
// bytes out. Available reports whether the engine can run at all.
type Engine interface {
	Available() error
	Render(ctx context.Context, html string) ([]byte, error)
}

// HTMLRenderer builds a self-contained HTML document for the resume and
// defers rasterization to an external engine.
type HTMLRenderer struct {
	engine  Engine
	timeout time.Duration
}

// NewHTMLRenderer creates an HTML renderer backed by the given engine.
// A non-positive timeout falls back to DefaultEngineTimeout.
func NewHTMLRenderer(engine Engine, timeout time.Duration) *HTMLRenderer {
	if timeout <= 0 {
		timeout = DefaultEngineTimeout
	}
	return &HTMLRenderer{engine: engine, timeout: timeout}
}

// Render builds the HTML document and hands it to the engine. It fails with
// EngineUnavailableError when no engine can be located and with
// EngineFailureError when the engine errors, times out, or returns empty
// output. The engine's bytes are returned unmodified.
func (r *HTMLRenderer) Render(ctx context.Context, doc *types.Resume) ([]byte, error) {
	if err := r.engine.Available(); err != nil {
		return nil, &EngineUnavailableError{Message: "no HTML-to-PDF engine found", Cause: err}
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pdf, err := r.engine.Render(ctx, HTMLDocument(doc))
	if err != nil {
		return nil, &EngineFailureError{Message: "engine render failed", Cause: err}
	}
	if len(pdf) == 0 {
		return nil, &EngineFailureError{Message: "engine returned empty output"}
	}
	return pdf, nil
}

// pageData is the template view of a resume: header fields plus one
// pageSection per non-empty section, in render order.
type pageData struct {
	Name     string
	Headline string
	Contact  string
	Sections []pageSection
	Style    pageStyle
}

type pageSection struct {
	Header    string
	Paragraph string
	Entries   []pageEntry
	Skills    string
}

type pageEntry struct {
	Title string
	Dates string
	Sub   string
	Desc  string
}

// pageStyle carries the per-template visual variables. The values are
// fixed CSS fragments, never user input, so template.CSS is safe here.
type pageStyle struct {
	HeaderAlign template.CSS
	Accent      template.CSS
	TitleStyle  template.CSS
}

var pageTemplate = template.Must(template.New("resume").Funcs(template.FuncMap{
	"multiline": multiline,
}).Parse(pageTemplateText))

const pageTemplateText = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Helvetica, Arial, sans-serif; color: #111827; margin: 40px; font-size: 13px; line-height: 1.45; }
.header { text-align: {{.Style.HeaderAlign}}; margin-bottom: 24px; }
.header h1 { font-size: 30px; margin: 0 0 6px 0; color: {{.Style.Accent}}; }
.headline { font-size: 16px; color: #4b5563; margin-bottom: 6px; }
.contact { font-size: 12px; color: #4b5563; }
.section { margin-bottom: 18px; }
.section h2 { font-size: 15px; color: {{.Style.Accent}}; margin: 0 0 8px 0; {{.Style.TitleStyle}} }
.entry { margin-bottom: 10px; }
.entry-header { display: flex; justify-content: space-between; }
.entry-title { font-weight: bold; }
.entry-dates { color: #6b7280; font-size: 12px; }
.entry-sub { color: #4b5563; font-style: italic; }
.desc { margin: 4px 0 0 0; white-space: normal; }
.skills { display: flex; flex-wrap: wrap; }
</style>
</head>
<body>
<div class="header">
{{if .Name}}<h1>{{.Name}}</h1>
{{end}}{{if .Headline}}<div class="headline">{{.Headline}}</div>
{{end}}{{if .Contact}}<div class="contact">{{.Contact}}</div>
{{end}}</div>
{{range .Sections}}<div class="section">
<h2>{{.Header}}</h2>
{{if .Paragraph}}<p class="desc">{{multiline .Paragraph}}</p>
{{end}}{{range .Entries}}<div class="entry">
{{if or .Title .Dates}}<div class="entry-header">{{if .Title}}<span class="entry-title">{{.Title}}</span>{{end}}{{if .Dates}}<span class="entry-dates">{{.Dates}}</span>{{end}}</div>
{{end}}{{if .Sub}}<div class="entry-sub">{{.Sub}}</div>
{{end}}{{if .Desc}}<p class="desc">{{multiline .Desc}}</p>
{{end}}</div>
{{end}}{{if .Skills}}<div class="skills">{{.Skills}}</div>
{{end}}</div>
{{end}}</body>
</html>
`

// HTMLDocument builds the full standalone HTML document for the resume:
// inline styles, no external assets. Section order and presence rules match
// the minimal renderer; unlike it, literal newlines in descriptions are
// preserved as line breaks. User text is escaped by the template engine.
func HTMLDocument(doc *types.Resume) string {
	var b strings.Builder
	if err := pageTemplate.Execute(&b, buildPageData(doc)); err != nil {
		// A Must-parsed template over plain struct data cannot fail.
		panic(err)
	}
	return b.String()
}

func buildPageData(doc *types.Resume) *pageData {
	rules := RulesFor(doc.Template)
	pi := doc.PersonalInfo

	data := &pageData{
		Name:     pi.FullName,
		Headline: doc.Title,
		// Contact parts keep a fixed order: email, phone, address, linkedIn, website.
		Contact: joinNonEmpty(rules.Separator, pi.Email, pi.Phone, pi.Address, pi.LinkedIn, pi.Website),
		Style:   styleFor(rules),
	}

	if pi.Summary != "" {
		data.Sections = append(data.Sections, pageSection{
			Header:    rules.SummaryHeader,
			Paragraph: pi.Summary,
		})
	}

	if len(doc.Experience) > 0 {
		section := pageSection{Header: rules.ExperienceHeader}
		for _, exp := range doc.Experience {
			title := exp.Position
			sub := exp.Company
			if rules.CombinedExperienceHeader {
				title = joinNonEmpty(", ", exp.Position, exp.Company)
				sub = ""
			}
			if exp.Location != "" {
				sub = joinNonEmpty(" - ", sub, exp.Location)
			}
			section.Entries = append(section.Entries, pageEntry{
				Title: title,
				Dates: formattedDateRange(exp.StartDate, exp.EndDate, exp.Current),
				Sub:   sub,
				Desc:  exp.Description,
			})
		}
		data.Sections = append(data.Sections, section)
	}

	if len(doc.Education) > 0 {
		section := pageSection{Header: rules.EducationHeader}
		for _, edu := range doc.Education {
			title := edu.Degree
			if edu.Field != "" {
				title = strings.TrimSpace(title + " in " + edu.Field)
			}
			sub := edu.Institution
			if edu.GPA != "" {
				sub = joinNonEmpty(" - ", sub, "GPA: "+edu.GPA)
			}
			section.Entries = append(section.Entries, pageEntry{
				Title: title,
				Dates: formattedDateRange(edu.StartDate, edu.EndDate, false),
				Sub:   sub,
				Desc:  edu.Description,
			})
		}
		data.Sections = append(data.Sections, section)
	}

	if len(doc.Projects) > 0 {
		section := pageSection{Header: rules.ProjectsHeader}
		for _, proj := range doc.Projects {
			section.Entries = append(section.Entries, pageEntry{
				Title: proj.Name,
				Dates: formattedDateRange(proj.StartDate, proj.EndDate, proj.Current),
				Sub:   joinNonEmpty(" - ", proj.Technologies, proj.URL),
				Desc:  proj.Description,
			})
		}
		data.Sections = append(data.Sections, section)
	}

	if len(doc.Achievements) > 0 {
		section := pageSection{Header: rules.AchievementsHeader}
		for _, ach := range doc.Achievements {
			section.Entries = append(section.Entries, pageEntry{
				Title: ach.Title,
				Dates: FormatMonthYear(ach.Date),
				Sub:   ach.Issuer,
				Desc:  ach.Description,
			})
		}
		data.Sections = append(data.Sections, section)
	}

	if skills := doc.FilteredSkills(); len(skills) > 0 {
		data.Sections = append(data.Sections, pageSection{
			Header: rules.SkillsHeader,
			Skills: strings.Join(skills, rules.Separator),
		})
	}

	return data
}

// multiline escapes user text and turns literal newlines into <br> tags.
func multiline(text string) template.HTML {
	escaped := template.HTMLEscapeString(strings.ReplaceAll(text, "\r", ""))
	return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
}

func styleFor(rules Rules) pageStyle {
	if rules.Accent {
		return pageStyle{
			HeaderAlign: "left",
			Accent:      "#2563eb",
			TitleStyle:  "border-bottom: 2px solid #2563eb; padding-bottom: 4px;",
		}
	}
	return pageStyle{
		HeaderAlign: "center",
		Accent:      "#1f2937",
		TitleStyle:  "text-transform: uppercase; letter-spacing: 2px;",
	}
}
