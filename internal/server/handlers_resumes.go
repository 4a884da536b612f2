package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/server/middleware"
	"github.com/jonathan/resume-builder/internal/types"
)

// decodeResumeBody reads and schema-validates a resume document from
// the request body. Returns nil if a response has already been written.
func (s *Server) decodeResumeBody(w http.ResponseWriter, r *http.Request) *types.Resume {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return nil
	}

	if err := schemas.ValidateResume(string(body)); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return nil
	}

	var doc types.Resume
	if err := json.Unmarshal(body, &doc); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume document")
		return nil
	}
	doc.Normalize()
	return &doc
}

// pathUUID parses the {id} path value. Returns false if a response has
// already been written.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid resume ID")
		return uuid.UUID{}, false
	}
	return id, true
}

// handleCreateResume stores a new resume for the authenticated user.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	doc := s.decodeResumeBody(w, r)
	if doc == nil {
		return
	}

	resume, err := s.db.CreateResume(r.Context(), userID, doc)
	if err != nil {
		log.Printf("Error creating resume: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to create resume")
		return
	}

	s.jsonResponse(w, http.StatusCreated, resume)
}

// handleListResumes returns all resumes owned by the authenticated user.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumes, err := s.db.ListResumes(r.Context(), userID)
	if err != nil {
		log.Printf("Error listing resumes: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to list resumes")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"resumes": resumes})
}

// handleGetResume returns a single resume owned by the authenticated user.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, ok := s.pathUUID(w, r)
	if !ok {
		return
	}

	resume, err := s.db.GetResume(r.Context(), userID, resumeID)
	if err != nil {
		log.Printf("Error getting resume %s: %v", resumeID, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to get resume")
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleUpdateResume replaces a resume owned by the authenticated user.
func (s *Server) handleUpdateResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, ok := s.pathUUID(w, r)
	if !ok {
		return
	}

	doc := s.decodeResumeBody(w, r)
	if doc == nil {
		return
	}

	resume, err := s.db.UpdateResume(r.Context(), userID, resumeID, doc)
	if err != nil {
		log.Printf("Error updating resume %s: %v", resumeID, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to update resume")
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume removes a resume owned by the authenticated user.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, ok := s.pathUUID(w, r)
	if !ok {
		return
	}

	deleted, err := s.db.DeleteResume(r.Context(), userID, resumeID)
	if err != nil {
		log.Printf("Error deleting resume %s: %v", resumeID, err)
		s.errorResponse(w, http.StatusInternalServerError, "failed to delete resume")
		return
	}
	if !deleted {
		s.errorResponse(w, http.StatusNotFound, "resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"message": "Resume deleted"})
}
