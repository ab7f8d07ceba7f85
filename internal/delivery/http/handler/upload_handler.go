package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"teleradiology-api/internal/delivery/http/middleware"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/usecase"
	"teleradiology-api/pkg/response"

	"github.com/gorilla/mux"
)

// multipartOverhead is headroom for boundaries and form fields on top of the
// category's file limit.
const multipartOverhead = 1 << 20

const svgPolicy = "default-src 'none'; style-src 'unsafe-inline'; sandbox"

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
	errorHandler  *middleware.ErrorHandler
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase, errorHandler *middleware.ErrorHandler) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
		errorHandler:  errorHandler,
	}
}

// authorize applies a category guard. An empty permission with public=false
// only requires a signed-in caller.
func authorize(w http.ResponseWriter, r *http.Request, public bool, permission string) bool {
	if public {
		return true
	}

	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Access denied. No token provided.")
		return false
	}

	if permission != "" && !user.Role.Can(permission) {
		response.Forbidden(w, "Access denied. Missing permission "+permission+".")
		return false
	}
	return true
}

func (h *UploadHandler) category(w http.ResponseWriter, r *http.Request) (usecase.UploadCategory, bool) {
	policy, err := usecase.LookupUploadCategory(mux.Vars(r)["category"])
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return usecase.UploadCategory{}, false
	}
	return policy, true
}

// Upload
// @Summary Upload a file
// @Description The stored type is detected from the file content, not the client header
// @Tags Uploads
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param category path string true "avatars, content, resumes or documents"
// @Param file formData file true "File"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 401 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /uploads/{category} [post]
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	policy, ok := h.category(w, r)
	if !ok {
		return
	}
	if !authorize(w, r, policy.PublicWrite, policy.WritePermission) {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, policy.MaxSize+multipartOverhead)
	if err := r.ParseMultipartForm(policy.MaxSize); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			h.errorHandler.Handle(w, r, usecase.ErrFileRequired)
			return
		}
		h.errorHandler.Handle(w, r, err)
		return
	}
	defer file.Close()

	result, err := h.uploadUsecase.Upload(r.Context(), policy.Name, usecase.UploadFile{
		Filename: header.Filename,
		Size:     header.Size,
		Reader:   file,
	})
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "File uploaded successfully", result)
}

// List
// @Summary List files in a category
// @Tags Uploads
// @Security BearerAuth
// @Produce json
// @Param category path string true "Category"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /uploads/{category} [get]
func (h *UploadHandler) List(w http.ResponseWriter, r *http.Request) {
	policy, ok := h.category(w, r)
	if !ok {
		return
	}

	permission := policy.ReadPermission
	if permission == "" {
		permission = entity.PermUploadsRead
	}
	if !authorize(w, r, false, permission) {
		return
	}

	files, err := h.uploadUsecase.List(r.Context(), policy.Name)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Files retrieved successfully", files)
}

// Serve
// @Summary Download a file
// @Tags Uploads
// @Produce octet-stream
// @Param category path string true "Category"
// @Param name path string true "Stored file name"
// @Success 200 {file} file
// @Failure 404 {object} response.Response
// @Router /uploads/{category}/{name} [get]
func (h *UploadHandler) Serve(w http.ResponseWriter, r *http.Request) {
	policy, ok := h.category(w, r)
	if !ok {
		return
	}
	if !authorize(w, r, policy.PublicRead, policy.ReadPermission) {
		return
	}

	body, info, err := h.uploadUsecase.Open(r.Context(), policy.Name, mux.Vars(r)["name"])
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}
	defer body.Close()

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if strings.HasPrefix(contentType, "image/svg+xml") {
		// scripts inside an SVG run when it is opened directly
		w.Header().Set("Content-Security-Policy", svgPolicy)
	}
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	if policy.PublicRead {
		w.Header().Set("Cache-Control", "public, max-age=86400")
	} else {
		w.Header().Set("Cache-Control", "private, no-store")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = io.Copy(w, body)
}

// Delete
// @Summary Delete a file
// @Tags Uploads
// @Security BearerAuth
// @Produce json
// @Param category path string true "Category"
// @Param name path string true "Stored file name"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /uploads/{category}/{name} [delete]
func (h *UploadHandler) Delete(w http.ResponseWriter, r *http.Request) {
	policy, ok := h.category(w, r)
	if !ok {
		return
	}

	permission := policy.WritePermission
	if permission == "" {
		permission = entity.PermUploadsWrite
	}
	if !authorize(w, r, false, permission) {
		return
	}

	if err := h.uploadUsecase.Delete(r.Context(), policy.Name, mux.Vars(r)["name"]); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "File deleted successfully", nil)
}
