package server

import (
	"net/http"

	"github.com/jonathan/resume-builder/internal/types"
)

// TemplateInfo describes one of the built-in resume templates.
type TemplateInfo struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	PreviewImage string `json:"preview_image"`
}

// templateCatalog lists the built-in templates in display order.
func templateCatalog() []TemplateInfo {
	return []TemplateInfo{
		{
			ID:           types.TemplateModern,
			Name:         "Modern",
			Description:  "Clean lines with an accent color and left-aligned header",
			PreviewImage: "/previews/modern.png",
		},
		{
			ID:           types.TemplateClassic,
			Name:         "Classic",
			Description:  "Traditional centered layout with understated typography",
			PreviewImage: "/previews/classic.png",
		},
	}
}

// handleListTemplates returns the available resume templates.
func (s *Server) handleListTemplates(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{"templates": templateCatalog()})
}
