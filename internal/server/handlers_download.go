package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/jonathan/resume-builder/internal/server/middleware"
)

// handleDownloadStored renders a stored resume as a PDF. Uses the
// self-contained renderer so the endpoint works without a browser
// installed.
func (s *Server) handleDownloadStored(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	resumeID, ok := s.pathUUID(w, r)
	if !ok {
		return
	}

	result, err := s.downloads.Stored(r.Context(), userID, resumeID)
	if err != nil {
		status := HTTPStatus(err)
		if status == http.StatusInternalServerError {
			log.Printf("Error rendering stored resume %s: %v", resumeID, err)
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	writePDF(w, result.Filename, result.Data)
}

// handleDownloadInline renders a resume document supplied in the
// request body through the HTML engine. Anonymous requests are allowed.
func (s *Server) handleDownloadInline(w http.ResponseWriter, r *http.Request) {
	doc := s.decodeResumeBody(w, r)
	if doc == nil {
		return
	}

	result, err := s.downloads.Payload(r.Context(), doc)
	if err != nil {
		status := HTTPStatus(err)
		if status >= http.StatusInternalServerError {
			log.Printf("Error rendering inline resume: %v", err)
		}
		s.errorResponse(w, status, err.Error())
		return
	}

	writePDF(w, result.Filename, result.Data)
}

// writePDF sends PDF bytes as a file attachment.
func writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing PDF response: %v", err)
	}
}
