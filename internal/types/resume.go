// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

import "strings"

// Template identifiers for the two supported visual templates.
const (
	TemplateModern  = "modern"
	TemplateClassic = "classic"
)

// PersonalInfo holds the contact and summary fields of a resume.
// Every field is optional; renderers omit whatever is absent.
type PersonalInfo struct {
	FullName string `json:"fullName,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Address  string `json:"address,omitempty"`
	LinkedIn string `json:"linkedIn,omitempty"`
	Website  string `json:"website,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// EducationEntry represents a single education record.
// Dates use the YYYY-MM form or are empty.
type EducationEntry struct {
	Institution string `json:"institution,omitempty"`
	Degree      string `json:"degree,omitempty"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	GPA         string `json:"gpa,omitempty"`
	Description string `json:"description,omitempty"`
}

// ExperienceEntry represents a single employment record.
// When Current is true the end date is ignored and rendered as "Present".
type ExperienceEntry struct {
	Company     string `json:"company,omitempty"`
	Position    string `json:"position,omitempty"`
	Location    string `json:"location,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current,omitempty"`
	Description string `json:"description,omitempty"`
}

// ProjectEntry represents a single project record.
type ProjectEntry struct {
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies,omitempty"`
	URL          string `json:"url,omitempty"`
	StartDate    string `json:"startDate,omitempty"`
	EndDate      string `json:"endDate,omitempty"`
	Current      bool   `json:"current,omitempty"`
}

// AchievementEntry represents a single award or certification record.
type AchievementEntry struct {
	Title       string `json:"title,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// Resume is the canonical in-memory representation of a resume handed to
// the renderers. It is a value object: renderers only read it, never mutate
// it, and a fresh one is constructed per request from stored or submitted
// data.
type Resume struct {
	Title        string             `json:"title"`
	PersonalInfo PersonalInfo       `json:"personalInfo"`
	Education    []EducationEntry   `json:"education,omitempty"`
	Experience   []ExperienceEntry  `json:"experience,omitempty"`
	Projects     []ProjectEntry     `json:"projects,omitempty"`
	Achievements []AchievementEntry `json:"achievements,omitempty"`
	Skills       []string           `json:"skills,omitempty"`
	Template     string             `json:"template,omitempty"`
}

// Normalize resolves defaults once at document construction time so the
// renderers never have to guess. An absent template becomes "modern"; any
// other value (including unrecognized ones) is kept as-is and resolved to
// classic-style formatting by the rendering rules.
func (r *Resume) Normalize() {
	if strings.TrimSpace(r.Template) == "" {
		r.Template = TemplateModern
	}
}

// FilteredSkills returns the skills list with blank and whitespace-only
// entries removed. Stored data may keep the blanks; rendering never does.
func (r *Resume) FilteredSkills() []string {
	filtered := make([]string, 0, len(r.Skills))
	for _, s := range r.Skills {
		trimmed := strings.TrimSpace(s)
		if trimmed != "" {
			filtered = append(filtered, trimmed)
		}
	}
	return filtered
}
