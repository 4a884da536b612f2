package db

import (
	"time"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/types"
)

// User represents a user account row
type User struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize to JSON
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Resume represents a stored resume row. The structured content columns are
// JSONB; title and template are plain columns so listings stay cheap.
type Resume struct {
	ID           uuid.UUID                `json:"id"`
	UserID       uuid.UUID                `json:"user_id"`
	Title        string                   `json:"title"`
	PersonalInfo types.PersonalInfo       `json:"personalInfo"`
	Education    []types.EducationEntry   `json:"education"`
	Experience   []types.ExperienceEntry  `json:"experience"`
	Projects     []types.ProjectEntry     `json:"projects"`
	Achievements []types.AchievementEntry `json:"achievements"`
	Skills       []string                 `json:"skills"`
	Template     string                   `json:"template"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

// Document converts the stored row into the resume value object handed to
// the renderers, resolving defaults once at construction time.
func (r *Resume) Document() *types.Resume {
	doc := &types.Resume{
		Title:        r.Title,
		PersonalInfo: r.PersonalInfo,
		Education:    r.Education,
		Experience:   r.Experience,
		Projects:     r.Projects,
		Achievements: r.Achievements,
		Skills:       r.Skills,
		Template:     r.Template,
	}
	doc.Normalize()
	return doc
}
