package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/resume-builder/internal/types"
)

const resumeColumns = `id, user_id, title, personal_info, education, experience, projects, achievements, skills, template, created_at, updated_at`

// CreateResume inserts a new resume owned by userID and returns the stored row
func (db *DB) CreateResume(ctx context.Context, userID uuid.UUID, doc *types.Resume) (*Resume, error) {
	personalInfo, education, experience, projects, achievements, skills, err := marshalContent(doc)
	if err != nil {
		return nil, err
	}

	row := db.pool.QueryRow(ctx,
		`INSERT INTO resumes (user_id, title, personal_info, education, experience, projects, achievements, skills, template)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING `+resumeColumns,
		userID, doc.Title, personalInfo, education, experience, projects, achievements, skills, doc.Template,
	)
	r, err := scanResume(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create resume: %w", err)
	}
	return r, nil
}

// GetResume retrieves a resume by id scoped to its owner. Returns (nil, nil)
// when no matching owned row exists.
func (db *DB) GetResume(ctx context.Context, userID, resumeID uuid.UUID) (*Resume, error) {
	row := db.pool.QueryRow(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	r, err := scanResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get resume: %w", err)
	}
	return r, nil
}

// ListResumes retrieves all resumes owned by userID, newest first
func (db *DB) ListResumes(ctx context.Context, userID uuid.UUID) ([]Resume, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list resumes: %w", err)
	}
	defer rows.Close()

	var resumes []Resume
	for rows.Next() {
		r, err := scanResume(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan resume: %w", err)
		}
		resumes = append(resumes, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read resumes: %w", err)
	}
	return resumes, nil
}

// UpdateResume replaces the content of an owned resume. Returns (nil, nil)
// when no matching owned row exists.
func (db *DB) UpdateResume(ctx context.Context, userID, resumeID uuid.UUID, doc *types.Resume) (*Resume, error) {
	personalInfo, education, experience, projects, achievements, skills, err := marshalContent(doc)
	if err != nil {
		return nil, err
	}

	row := db.pool.QueryRow(ctx,
		`UPDATE resumes
		 SET title = $1, personal_info = $2, education = $3, experience = $4, projects = $5, achievements = $6, skills = $7, template = $8, updated_at = NOW()
		 WHERE id = $9 AND user_id = $10
		 RETURNING `+resumeColumns,
		doc.Title, personalInfo, education, experience, projects, achievements, skills, doc.Template, resumeID, userID,
	)
	r, err := scanResume(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to update resume: %w", err)
	}
	return r, nil
}

// DeleteResume removes an owned resume. Returns false when no matching
// owned row exists.
func (db *DB) DeleteResume(ctx context.Context, userID, resumeID uuid.UUID) (bool, error) {
	tag, err := db.pool.Exec(ctx,
		`DELETE FROM resumes WHERE id = $1 AND user_id = $2`,
		resumeID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("failed to delete resume: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetResumeDocument loads an owned resume converted to the renderer value
// object. Returns (nil, nil) when no matching owned row exists.
func (db *DB) GetResumeDocument(ctx context.Context, userID, resumeID uuid.UUID) (*types.Resume, error) {
	r, err := db.GetResume(ctx, userID, resumeID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return r.Document(), nil
}

func marshalContent(doc *types.Resume) (personalInfo, education, experience, projects, achievements, skills []byte, err error) {
	if personalInfo, err = json.Marshal(doc.PersonalInfo); err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal personal info: %w", err)
	}
	if education, err = json.Marshal(emptySlice(doc.Education)); err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal education: %w", err)
	}
	if experience, err = json.Marshal(emptySlice(doc.Experience)); err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal experience: %w", err)
	}
	if projects, err = json.Marshal(emptySlice(doc.Projects)); err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal projects: %w", err)
	}
	if achievements, err = json.Marshal(emptySlice(doc.Achievements)); err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal achievements: %w", err)
	}
	if skills, err = json.Marshal(emptySlice(doc.Skills)); err != nil {
		return nil, nil, nil, nil, nil, nil, fmt.Errorf("failed to marshal skills: %w", err)
	}
	return personalInfo, education, experience, projects, achievements, skills, nil
}

// emptySlice keeps JSONB columns as [] instead of null for nil slices.
func emptySlice[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func scanResume(row pgx.Row) (*Resume, error) {
	var r Resume
	var personalInfo, education, experience, projects, achievements, skills []byte
	err := row.Scan(&r.ID, &r.UserID, &r.Title, &personalInfo, &education, &experience, &projects, &achievements, &skills, &r.Template, &r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(personalInfo, &r.PersonalInfo); err != nil {
		return nil, fmt.Errorf("failed to unmarshal personal info: %w", err)
	}
	if err := json.Unmarshal(education, &r.Education); err != nil {
		return nil, fmt.Errorf("failed to unmarshal education: %w", err)
	}
	if err := json.Unmarshal(experience, &r.Experience); err != nil {
		return nil, fmt.Errorf("failed to unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(projects, &r.Projects); err != nil {
		return nil, fmt.Errorf("failed to unmarshal projects: %w", err)
	}
	if err := json.Unmarshal(achievements, &r.Achievements); err != nil {
		return nil, fmt.Errorf("failed to unmarshal achievements: %w", err)
	}
	if err := json.Unmarshal(skills, &r.Skills); err != nil {
		return nil, fmt.Errorf("failed to unmarshal skills: %w", err)
	}
	return &r, nil
}
