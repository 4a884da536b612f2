// Package rendering builds PDF output for resume documents, either by
// constructing a minimal PDF byte stream directly or by generating an HTML
// document for an external rendering engine.
package rendering

import "github.com/jonathan/resume-builder/internal/types"

// Rules captures the per-template layout and formatting decisions shared by
// both renderers: section titles, list separators, how an experience entry
// header is composed, and whether the template uses accent emphasis.
type Rules struct {
	SummaryHeader      string
	ExperienceHeader   string
	EducationHeader    string
	ProjectsHeader     string
	AchievementsHeader string
	SkillsHeader       string

	// Separator joins contact-info parts and skills.
	Separator string

	// CombinedExperienceHeader renders "Position, Company" as a single
	// line instead of position and company on separate lines.
	CombinedExperienceHeader bool

	// Accent marks the template as using primary-accent emphasis. The
	// minimal renderer maps it to larger bold heading tiers; the HTML
	// renderer maps it to the accent color and left-aligned header.
	Accent bool
}

// RulesFor maps a template identifier to its formatting rules. It is a pure
// function with no error path: only the exact "modern" identifier selects
// the modern rules, and anything else falls back to the classic rules
// (pipe separators, literal section headers) as the safe default.
func RulesFor(template string) Rules {
	if template == types.TemplateModern {
		return Rules{
			SummaryHeader:      "PROFESSIONAL SUMMARY",
			ExperienceHeader:   "WORK EXPERIENCE",
			EducationHeader:    "EDUCATION",
			ProjectsHeader:     "PROJECTS",
			AchievementsHeader: "ACHIEVEMENTS",
			SkillsHeader:       "SKILLS",
			Separator:          " • ",
			Accent:             true,
		}
	}
	return Rules{
		SummaryHeader:            "OBJECTIVE",
		ExperienceHeader:         "EXPERIENCE",
		EducationHeader:          "EDUCATION",
		ProjectsHeader:           "PROJECTS",
		AchievementsHeader:       "ACHIEVEMENTS",
		SkillsHeader:             "SKILLS",
		Separator:                " | ",
		CombinedExperienceHeader: true,
	}
}
