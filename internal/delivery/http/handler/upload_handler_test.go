package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartRequest(t *testing.T, category, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if field != "" {
		part, err := mw.CreateFormFile(field, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads/"+category, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return withVars(req, map[string]string{"category": category})
}

func TestUploadHandler_UnknownCategory(t *testing.T) {
	h := NewUploadHandler(new(mockUploadUsecase), newErrorHandler())
	rec := record(h.Upload, multipartRequest(t, "secrets", "file", "a.pdf", []byte("%PDF-1.4")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Upload category not found", errorMessage(t, rec))
}

func TestUploadHandler_ResumeIsPublic(t *testing.T) {
	uc := new(mockUploadUsecase)
	uc.On("Upload", mock.Anything, "resumes", mock.AnythingOfType("usecase.UploadFile")).
		Return(&dto.UploadResponse{Category: "resumes", Name: "cv.pdf", URL: "/api/uploads/resumes/cv.pdf"}, nil)

	rec := record(NewUploadHandler(uc, newErrorHandler()).Upload, multipartRequest(t, "resumes", "file", "cv.pdf", []byte("%PDF-1.4 resume")))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "File uploaded successfully", decode(t, rec).Message)
	uc.AssertExpectations(t)
}

func TestUploadHandler_ContentRequiresPermission(t *testing.T) {
	uc := new(mockUploadUsecase)
	h := NewUploadHandler(uc, newErrorHandler())

	rec := record(h.Upload, multipartRequest(t, "content", "file", "hero.png", []byte("png")))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access denied. No token provided.", errorMessage(t, rec))

	req := asUser(multipartRequest(t, "content", "file", "hero.png", []byte("png")), staff(entity.RoleSupport), "t")
	rec = record(h.Upload, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Access denied. Missing permission uploads:write.", errorMessage(t, rec))

	uc.AssertNotCalled(t, "Upload", mock.Anything, mock.Anything, mock.Anything)
}

func TestUploadHandler_MissingFile(t *testing.T) {
	uc := new(mockUploadUsecase)
	rec := record(NewUploadHandler(uc, newErrorHandler()).Upload, multipartRequest(t, "resumes", "", "", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "File is required", errorMessage(t, rec))
}

func TestUploadHandler_ServePublicImage(t *testing.T) {
	uc := new(mockUploadUsecase)
	uc.On("Open", mock.Anything, "avatars", "me.png").Return(
		io.NopCloser(strings.NewReader("image-bytes")),
		&dto.UploadResponse{Name: "me.png", ContentType: "image/png", Size: 11},
		nil,
	)

	req := withVars(httptest.NewRequest(http.MethodGet, "/api/uploads/avatars/me.png", nil), map[string]string{"category": "avatars", "name": "me.png"})
	rec := record(NewUploadHandler(uc, newErrorHandler()).Serve, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "11", rec.Header().Get("Content-Length"))
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "image-bytes", rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Security-Policy"))
}

func TestUploadHandler_ServeSVGIsSandboxed(t *testing.T) {
	uc := new(mockUploadUsecase)
	uc.On("Open", mock.Anything, "content", "logo.svg").Return(
		io.NopCloser(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)),
		&dto.UploadResponse{Name: "logo.svg", ContentType: "image/svg+xml"},
		nil,
	)

	req := withVars(httptest.NewRequest(http.MethodGet, "/api/uploads/content/logo.svg", nil), map[string]string{"category": "content", "name": "logo.svg"})
	rec := record(NewUploadHandler(uc, newErrorHandler()).Serve, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml", rec.Header().Get("Content-Type"))
	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'none'")
	assert.Contains(t, csp, "style-src 'unsafe-inline'")
	assert.Contains(t, csp, "sandbox")
}

func TestUploadHandler_ServePrivateDocument(t *testing.T) {
	uc := new(mockUploadUsecase)
	uc.On("Open", mock.Anything, "resumes", "cv.pdf").Return(
		io.NopCloser(strings.NewReader("%PDF")),
		&dto.UploadResponse{Name: "cv.pdf"},
		nil,
	)
	h := NewUploadHandler(uc, newErrorHandler())
	vars := map[string]string{"category": "resumes", "name": "cv.pdf"}

	rec := record(h.Serve, withVars(httptest.NewRequest(http.MethodGet, "/", nil), vars))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = record(h.Serve, asUser(withVars(httptest.NewRequest(http.MethodGet, "/", nil), vars), staff(entity.RoleCMSEditor), "t"))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec = record(h.Serve, asUser(withVars(httptest.NewRequest(http.MethodGet, "/", nil), vars), staff(entity.RoleHRManager), "t"))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/octet-stream", rec.Header().Get("Content-Type"))
	assert.Equal(t, "private, no-store", rec.Header().Get("Cache-Control"))
}

func TestUploadHandler_ListAlwaysNeedsAuth(t *testing.T) {
	uc := new(mockUploadUsecase)
	uc.On("List", mock.Anything, "avatars").Return([]dto.UploadResponse{{Name: "a.png"}}, nil)
	h := NewUploadHandler(uc, newErrorHandler())
	vars := map[string]string{"category": "avatars"}

	rec := record(h.List, withVars(httptest.NewRequest(http.MethodGet, "/", nil), vars))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = record(h.List, asUser(withVars(httptest.NewRequest(http.MethodGet, "/", nil), vars), staff(entity.RoleCMSEditor), "t"))
	assert.Equal(t, http.StatusOK, rec.Code)
}
