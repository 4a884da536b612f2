package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/types"
)

func seedResume(t *testing.T, database *fakeDB, userID uuid.UUID, title string) uuid.UUID {
	t.Helper()

	row, err := database.CreateResume(context.Background(), userID, &types.Resume{
		Title: title,
		PersonalInfo: types.PersonalInfo{
			FullName: "Jane Doe",
			Email:    "jane@example.com",
		},
		Template: types.TemplateModern,
	})
	require.NoError(t, err)
	return row.ID
}

func TestDownloadStored(t *testing.T) {
	database := newFakeDB()
	s := newTestServer(t, database, nil)
	userID, token := seedUser(t, s, database)
	resumeID := seedResume(t, database, userID, "Backend Engineer")

	req := httptest.NewRequest("GET", "/resumes/"+resumeID.String()+"/download", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Backend_Engineer.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, fmt.Sprintf("%d", rec.Body.Len()), rec.Header().Get("Content-Length"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "%PDF-1.4"))
}

func TestDownloadStoredNotFound(t *testing.T) {
	database := newFakeDB()
	s := newTestServer(t, database, nil)
	_, token := seedUser(t, s, database)

	req := httptest.NewRequest("GET", "/resumes/"+uuid.NewString()+"/download", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDownloadStoredOtherUsersResume(t *testing.T) {
	database := newFakeDB()
	s := newTestServer(t, database, nil)
	_, token := seedUser(t, s, database)

	otherID, err := database.CreateUser(context.Background(), "Other", "other@example.com")
	require.NoError(t, err)
	resumeID := seedResume(t, database, otherID, "Not Yours")

	req := httptest.NewRequest("GET", "/resumes/"+resumeID.String()+"/download", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDownloadStoredInvalidID(t *testing.T) {
	database := newFakeDB()
	s := newTestServer(t, database, nil)
	_, token := seedUser(t, s, database)

	req := httptest.NewRequest("GET", "/resumes/not-a-uuid/download", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadInline(t *testing.T) {
	s := newTestServer(t, newFakeDB(), &fakeEngine{output: []byte("%PDF-1.7 engine output")})

	body := `{
		"title": "Platform Engineer",
		"template": "classic",
		"personalInfo": {"fullName": "Jane Doe", "email": "jane@example.com"}
	}`
	req := httptest.NewRequest("POST", "/download", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Platform_Engineer.pdf"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF-1.7 engine output", rec.Body.String())
}

func TestDownloadInlineInvalidPayload(t *testing.T) {
	s := newTestServer(t, newFakeDB(), nil)

	req := httptest.NewRequest("POST", "/download", strings.NewReader(`{"title": "No Personal Info"}`))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "personalInfo")
}

func TestDownloadInlineMalformedJSON(t *testing.T) {
	s := newTestServer(t, newFakeDB(), nil)

	req := httptest.NewRequest("POST", "/download", strings.NewReader(`{"personalInfo":`))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDownloadInlineEngineUnavailable(t *testing.T) {
	engine := &fakeEngine{unavailable: fmt.Errorf("no browser found")}
	s := newTestServer(t, newFakeDB(), engine)

	body := `{"personalInfo": {"fullName": "Jane Doe"}}`
	req := httptest.NewRequest("POST", "/download", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDownloadInlineEngineFailure(t *testing.T) {
	engine := &fakeEngine{renderErr: fmt.Errorf("target crashed")}
	s := newTestServer(t, newFakeDB(), engine)

	body := `{"personalInfo": {"fullName": "Jane Doe"}}`
	req := httptest.NewRequest("POST", "/download", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDownloadInlineUntitledFilename(t *testing.T) {
	s := newTestServer(t, newFakeDB(), nil)

	body := `{"personalInfo": {"fullName": "Jane Doe"}}`
	req := httptest.NewRequest("POST", "/download", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="resume.pdf"`, rec.Header().Get("Content-Disposition"))
}
