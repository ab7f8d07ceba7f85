package handler

import (
	"context"
	"net/http"
	"strconv"

	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/delivery/http/middleware"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/usecase"
	"teleradiology-api/pkg/pagination"
	"teleradiology-api/pkg/response"
	"teleradiology-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

var contentSortable = []string{"created_at", "updated_at", "published_at", "title", "view_count", "sort_order"}

type ContentHandler struct {
	contentUsecase usecase.ContentUsecase
	validator      *validator.CustomValidator
	errorHandler   *middleware.ErrorHandler
}

func NewContentHandler(contentUsecase usecase.ContentUsecase, validator *validator.CustomValidator, errorHandler *middleware.ErrorHandler) *ContentHandler {
	return &ContentHandler{
		contentUsecase: contentUsecase,
		validator:      validator,
		errorHandler:   errorHandler,
	}
}

func contentFilter(r *http.Request) entity.ContentFilter {
	q := r.URL.Query()
	return entity.ContentFilter{
		Type:     entity.ContentType(q.Get("type")),
		Status:   entity.ContentStatus(q.Get("status")),
		Category: q.Get("category"),
		Tag:      q.Get("tag"),
		AuthorID: queryUUID(q, "author"),
		Search:   q.Get("search"),
	}
}

// GetAllContent
// @Summary List CMS content
// @Tags CMS
// @Security BearerAuth
// @Produce json
// @Param type query string false "Content type"
// @Param status query string false "draft, published or archived"
// @Param category query string false "Category"
// @Param tag query string false "Tag"
// @Param author query string false "Author ID"
// @Param search query string false "Title or excerpt"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /cms/content [get]
func (h *ContentHandler) GetAllContent(w http.ResponseWriter, r *http.Request) {
	page := pagination.FromRequest(r, contentSortable...)

	items, total, err := h.contentUsecase.GetAllContent(r.Context(), contentFilter(r), page)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Content retrieved successfully", items, pagination.NewMeta(page.Page, page.Limit, total))
}

// GetContent
// @Summary Get content by ID
// @Tags CMS
// @Security BearerAuth
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cms/content/{id} [get]
func (h *ContentHandler) GetContent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "content")
	if !ok {
		return
	}

	item, err := h.contentUsecase.GetContent(r.Context(), id)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Content retrieved successfully", item)
}

// CreateContent
// @Summary Create content
// @Description Slug, excerpt, SEO fields and rendered HTML are derived when omitted
// @Tags CMS
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateContentRequest true "Content"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /cms/content [post]
func (h *ContentHandler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.contentUsecase.CreateContent(r.Context(), actorID(r), &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "Content created successfully", item)
}

// UpdateContent
// @Summary Update content
// @Description A body or title change snapshots the previous revision
// @Tags CMS
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Content ID"
// @Param request body dto.UpdateContentRequest true "Fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cms/content/{id} [put]
func (h *ContentHandler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "content")
	if !ok {
		return
	}

	var req dto.UpdateContentRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	item, err := h.contentUsecase.UpdateContent(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Content updated successfully", item)
}

// DeleteContent
// @Summary Delete content
// @Tags CMS
// @Security BearerAuth
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cms/content/{id} [delete]
func (h *ContentHandler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "content")
	if !ok {
		return
	}

	if err := h.contentUsecase.DeleteContent(r.Context(), actorID(r), id); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Content deleted successfully", nil)
}

// PublishContent
// @Summary Publish content
// @Tags CMS
// @Security BearerAuth
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} response.Response
// @Router /cms/content/{id}/publish [patch]
func (h *ContentHandler) PublishContent(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.contentUsecase.PublishContent, "Content published successfully")
}

// UnpublishContent
// @Summary Move content back to draft
// @Tags CMS
// @Security BearerAuth
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} response.Response
// @Router /cms/content/{id}/unpublish [patch]
func (h *ContentHandler) UnpublishContent(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.contentUsecase.UnpublishContent, "Content unpublished successfully")
}

// ArchiveContent
// @Summary Archive content
// @Tags CMS
// @Security BearerAuth
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} response.Response
// @Router /cms/content/{id}/archive [patch]
func (h *ContentHandler) ArchiveContent(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.contentUsecase.ArchiveContent, "Content archived successfully")
}

type contentTransition func(ctx context.Context, actorID, id uuid.UUID) (*dto.ContentResponse, error)

func (h *ContentHandler) transition(w http.ResponseWriter, r *http.Request, fn contentTransition, message string) {
	id, ok := pathUUID(w, r, "content")
	if !ok {
		return
	}

	item, err := fn(r.Context(), actorID(r), id)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, message, item)
}

// GetVersions
// @Summary List previous revisions
// @Tags CMS
// @Security BearerAuth
// @Produce json
// @Param id path string true "Content ID"
// @Success 200 {object} response.Response
// @Router /cms/content/{id}/versions [get]
func (h *ContentHandler) GetVersions(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "content")
	if !ok {
		return
	}

	versions, err := h.contentUsecase.GetVersions(r.Context(), id)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Versions retrieved successfully", versions)
}

// RestoreVersion
// @Summary Restore a previous revision
// @Tags CMS
// @Security BearerAuth
// @Produce json
// @Param id path string true "Content ID"
// @Param version path int true "Version number"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cms/content/{id}/versions/{version}/restore [post]
func (h *ContentHandler) RestoreVersion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "content")
	if !ok {
		return
	}

	version, err := strconv.Atoi(mux.Vars(r)["version"])
	if err != nil || version < 1 {
		response.Error(w, http.StatusBadRequest, "Invalid version number", nil)
		return
	}

	item, err := h.contentUsecase.RestoreVersion(r.Context(), actorID(r), id, version)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Version restored successfully", item)
}

// GetAnalytics
// @Summary Content analytics
// @Tags CMS
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /cms/analytics [get]
func (h *ContentHandler) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	analytics, err := h.contentUsecase.GetAnalytics(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Analytics retrieved successfully", analytics)
}

// GetCategories
// @Summary Categories of published content with counts
// @Tags CMS
// @Produce json
// @Success 200 {object} response.Response
// @Router /cms/categories [get]
func (h *ContentHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.contentUsecase.GetCategories(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Categories retrieved successfully", categories)
}

// GetTags
// @Summary Tags of published content with counts
// @Tags CMS
// @Produce json
// @Success 200 {object} response.Response
// @Router /cms/tags [get]
func (h *ContentHandler) GetTags(w http.ResponseWriter, r *http.Request) {
	tags, err := h.contentUsecase.GetTags(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Tags retrieved successfully", tags)
}

// GetPublishedContent
// @Summary List published content
// @Tags CMS
// @Produce json
// @Param type query string false "Content type"
// @Param category query string false "Category"
// @Param tag query string false "Tag"
// @Param search query string false "Title or excerpt"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /cms/public [get]
func (h *ContentHandler) GetPublishedContent(w http.ResponseWriter, r *http.Request) {
	filter := contentFilter(r)
	filter.Status = ""
	filter.AuthorID = nil
	page := pagination.FromRequest(r, contentSortable...)

	items, total, err := h.contentUsecase.GetPublishedContent(r.Context(), filter, page)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Content retrieved successfully", items, pagination.NewMeta(page.Page, page.Limit, total))
}

// GetPublishedBySlug
// @Summary Get published content by slug
// @Description Counts a view
// @Tags CMS
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cms/public/{slug} [get]
func (h *ContentHandler) GetPublishedBySlug(w http.ResponseWriter, r *http.Request) {
	item, err := h.contentUsecase.GetPublishedBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Content retrieved successfully", item)
}

// GetServices
// @Summary List published service pages
// @Tags Services
// @Produce json
// @Success 200 {object} response.Response
// @Router /services [get]
func (h *ContentHandler) GetServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.contentUsecase.GetServices(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Services retrieved successfully", services)
}

// GetServiceBySlug
// @Summary Get a service page
// @Tags Services
// @Produce json
// @Param slug path string true "Slug"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /services/{slug} [get]
func (h *ContentHandler) GetServiceBySlug(w http.ResponseWriter, r *http.Request) {
	service, err := h.contentUsecase.GetServiceBySlug(r.Context(), mux.Vars(r)["slug"])
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Service retrieved successfully", service)
}
