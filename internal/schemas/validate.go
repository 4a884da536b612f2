// Package schemas validates inline resume payloads against a JSON
// schema before they reach the renderer.
package schemas

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// FieldError describes a single schema violation.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in one document.
type ValidationError struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// SchemaLoadError indicates the schema itself could not be compiled.
type SchemaLoadError struct {
	Cause error
}

func (e *SchemaLoadError) Error() string {
	return fmt.Sprintf("failed to load schema: %v", e.Cause)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// compiledSchema caches the compiled schema so each request only pays
// for document parsing. Compilation can only fail if resumeSchema
// itself is broken, which loadSchema surfaces as a *SchemaLoadError.
var compiledSchema, schemaErr = loadSchema()

func loadSchema() (*gojsonschema.Schema, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(resumeSchema))
	if err != nil {
		return nil, &SchemaLoadError{Cause: err}
	}
	return schema, nil
}

// ValidateResume checks a raw JSON resume document. It returns a
// *ValidationError listing each violation (malformed JSON included), a
// *SchemaLoadError if the schema cannot be compiled, or nil when the
// document is valid.
func ValidateResume(jsonContent string) error {
	if schemaErr != nil {
		return schemaErr
	}

	if !json.Valid([]byte(jsonContent)) {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: "invalid JSON document"}}}
	}

	result, err := compiledSchema.Validate(gojsonschema.NewStringLoader(jsonContent))
	if err != nil {
		return &ValidationError{Errors: []FieldError{{Field: "(root)", Message: "invalid JSON: " + err.Error()}}}
	}

	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return verr
}
