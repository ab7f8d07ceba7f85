package handler

import (
	"context"
	"net/http"

	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/delivery/http/middleware"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/usecase"
	"teleradiology-api/pkg/pagination"
	"teleradiology-api/pkg/response"
	"teleradiology-api/pkg/validator"

	"github.com/google/uuid"
)

var applicationSortable = []string{"created_at", "updated_at", "status", "experience", "last_name"}

type ApplicationHandler struct {
	applicationUsecase usecase.ApplicationUsecase
	validator          *validator.CustomValidator
	errorHandler       *middleware.ErrorHandler
}

func NewApplicationHandler(applicationUsecase usecase.ApplicationUsecase, validator *validator.CustomValidator, errorHandler *middleware.ErrorHandler) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUsecase: applicationUsecase,
		validator:          validator,
		errorHandler:       errorHandler,
	}
}

// CreateApplication
// @Summary Apply as a radiologist
// @Tags Radiologist Applications
// @Accept json
// @Produce json
// @Param request body dto.CreateApplicationRequest true "Application"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /radiologist-applications [post]
func (h *ApplicationHandler) CreateApplication(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateApplicationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	receipt, err := h.applicationUsecase.CreateApplication(r.Context(), &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "Application submitted successfully", receipt)
}

// GetAllApplications
// @Summary List applications
// @Tags Radiologist Applications
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status"
// @Param specialization query string false "Specialization"
// @Param min_experience query int false "Minimum years of experience"
// @Param search query string false "Name, email or license number"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /radiologist-applications [get]
func (h *ApplicationHandler) GetAllApplications(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.ApplicationFilter{
		Status:         entity.ApplicationStatus(q.Get("status")),
		Specialization: entity.Specialization(q.Get("specialization")),
		MinExperience:  queryInt(q, "min_experience"),
		Search:         q.Get("search"),
	}
	page := pagination.FromRequest(r, applicationSortable...)

	apps, total, err := h.applicationUsecase.GetAllApplications(r.Context(), filter, page)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Applications retrieved successfully", apps, pagination.NewMeta(page.Page, page.Limit, total))
}

// GetStats
// @Summary Application statistics
// @Tags Radiologist Applications
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /radiologist-applications/stats [get]
func (h *ApplicationHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.applicationUsecase.GetStats(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Application stats retrieved successfully", stats)
}

// GetApplication
// @Summary Get an application
// @Tags Radiologist Applications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /radiologist-applications/{id} [get]
func (h *ApplicationHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "application")
	if !ok {
		return
	}

	app, err := h.applicationUsecase.GetApplication(r.Context(), id)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Application retrieved successfully", app)
}

// UpdateApplication
// @Summary Update an application
// @Tags Radiologist Applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body dto.UpdateApplicationRequest true "Fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /radiologist-applications/{id} [put]
func (h *ApplicationHandler) UpdateApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "application")
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	app, err := h.applicationUsecase.UpdateApplication(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Application updated successfully", app)
}

type reviewFunc func(ctx context.Context, actorID, id uuid.UUID, req *dto.ReviewApplicationRequest) (*dto.ApplicationResponse, error)

func (h *ApplicationHandler) review(w http.ResponseWriter, r *http.Request, fn reviewFunc, message string) {
	id, ok := pathUUID(w, r, "application")
	if !ok {
		return
	}

	var req dto.ReviewApplicationRequest
	if !decodeOptional(w, r, h.validator, &req) {
		return
	}

	app, err := fn(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, message, app)
}

// MarkUnderReview
// @Summary Start reviewing an application
// @Tags Radiologist Applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body dto.ReviewApplicationRequest false "Notes"
// @Success 200 {object} response.Response
// @Router /radiologist-applications/{id}/review [patch]
func (h *ApplicationHandler) MarkUnderReview(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.applicationUsecase.MarkUnderReview, "Application marked under review")
}

// ApproveApplication
// @Summary Approve an application
// @Tags Radiologist Applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body dto.ReviewApplicationRequest false "Notes"
// @Success 200 {object} response.Response
// @Router /radiologist-applications/{id}/approve [patch]
func (h *ApplicationHandler) ApproveApplication(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.applicationUsecase.ApproveApplication, "Application approved")
}

// HoldApplication
// @Summary Put an application on hold
// @Tags Radiologist Applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body dto.ReviewApplicationRequest false "Notes"
// @Success 200 {object} response.Response
// @Router /radiologist-applications/{id}/hold [patch]
func (h *ApplicationHandler) HoldApplication(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, h.applicationUsecase.HoldApplication, "Application put on hold")
}

// RejectApplication
// @Summary Reject an application
// @Description A rejection reason is required
// @Tags Radiologist Applications
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Application ID"
// @Param request body dto.RejectApplicationRequest true "Reason"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /radiologist-applications/{id}/reject [patch]
func (h *ApplicationHandler) RejectApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "application")
	if !ok {
		return
	}

	var req dto.RejectApplicationRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	app, err := h.applicationUsecase.RejectApplication(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Application rejected", app)
}

// DeleteApplication
// @Summary Delete an application
// @Tags Radiologist Applications
// @Security BearerAuth
// @Produce json
// @Param id path string true "Application ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /radiologist-applications/{id} [delete]
func (h *ApplicationHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "application")
	if !ok {
		return
	}

	if err := h.applicationUsecase.DeleteApplication(r.Context(), actorID(r), id); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Application deleted successfully", nil)
}
