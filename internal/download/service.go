// Package download orchestrates resume PDF downloads: resolve the document,
// pick a renderer path and produce bytes with an attachment filename.
package download

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
)

// ResumeStore is the read-only slice of storage the service needs: fetch a
// stored resume scoped by its owner. A missing or foreign record yields
// (nil, nil).
type ResumeStore interface {
	GetResumeDocument(ctx context.Context, userID, resumeID uuid.UUID) (*types.Resume, error)
}

// NotFoundError indicates the requested resume does not exist or is not
// owned by the requesting user.
type NotFoundError struct {
	ResumeID uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ResumeID)
}

// Result is a rendered download: the attachment filename and the PDF bytes.
type Result struct {
	Filename string
	Data     []byte
}

// Service wires the store and the two renderer paths together. It has no
// side effects beyond reading storage.
type Service struct {
	store   ResumeStore
	minimal rendering.Renderer
	html    rendering.Renderer
}

// NewService creates a download service. minimal serves stored-resume
// downloads, html serves inline-payload downloads.
func NewService(store ResumeStore, minimal, html rendering.Renderer) *Service {
	return &Service{store: store, minimal: minimal, html: html}
}

// Stored loads an owned resume by id and renders it through the minimal PDF
// path. It fails with NotFoundError when no matching owned record exists.
func (s *Service) Stored(ctx context.Context, userID, resumeID uuid.UUID) (*Result, error) {
	doc, err := s.store.GetResumeDocument(ctx, userID, resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}
	if doc == nil {
		return nil, &NotFoundError{ResumeID: resumeID}
	}
	doc.Normalize()

	data, err := s.minimal.Render(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &Result{Filename: SafeFilename(doc.Title), Data: data}, nil
}

// Payload renders an inline resume document through the HTML-based path.
// The caller validates the payload before handing it over; anonymous
// requests are allowed.
func (s *Service) Payload(ctx context.Context, doc *types.Resume) (*Result, error) {
	doc.Normalize()

	data, err := s.html.Render(ctx, doc)
	if err != nil {
		return nil, err
	}
	return &Result{Filename: SafeFilename(doc.Title), Data: data}, nil
}
