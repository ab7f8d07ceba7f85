package handler

import (
	"net/http"

	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/delivery/http/middleware"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/usecase"
	"teleradiology-api/pkg/pagination"
	"teleradiology-api/pkg/response"
	"teleradiology-api/pkg/validator"
)

var leadSortable = []string{"created_at", "updated_at", "lead_score", "estimated_value", "status", "company_name", "expected_close_date"}

type SalesLeadHandler struct {
	leadUsecase  usecase.SalesLeadUsecase
	validator    *validator.CustomValidator
	errorHandler *middleware.ErrorHandler
}

func NewSalesLeadHandler(leadUsecase usecase.SalesLeadUsecase, validator *validator.CustomValidator, errorHandler *middleware.ErrorHandler) *SalesLeadHandler {
	return &SalesLeadHandler{
		leadUsecase:  leadUsecase,
		validator:    validator,
		errorHandler: errorHandler,
	}
}

// CreateLead
// @Summary Submit the sales inquiry form
// @Description The lead is scored on creation
// @Tags Sales Leads
// @Accept json
// @Produce json
// @Param request body dto.CreateLeadRequest true "Lead"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /sales-leads [post]
func (h *SalesLeadHandler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateLeadRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	receipt, err := h.leadUsecase.CreateLead(r.Context(), &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "Thank you for your interest. Our team will reach out shortly.", receipt)
}

// GetAllLeads
// @Summary List sales leads
// @Tags Sales Leads
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status"
// @Param industry query string false "Industry"
// @Param source query string false "Source"
// @Param assigned_to query string false "Assignee ID"
// @Param min_score query int false "Minimum lead score"
// @Param search query string false "Company, contact or email"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD, inclusive"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /sales-leads [get]
func (h *SalesLeadHandler) GetAllLeads(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to, ok := queryDateRange(q)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	filter := entity.LeadFilter{
		Status:       entity.LeadStatus(q.Get("status")),
		Industry:     entity.LeadIndustry(q.Get("industry")),
		Source:       entity.LeadSource(q.Get("source")),
		AssignedToID: queryUUID(q, "assigned_to"),
		MinScore:     queryInt(q, "min_score"),
		Search:       q.Get("search"),
		From:         from,
		To:           to,
	}
	page := pagination.FromRequest(r, leadSortable...)

	leads, total, err := h.leadUsecase.GetAllLeads(r.Context(), filter, page)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Leads retrieved successfully", leads, pagination.NewMeta(page.Page, page.Limit, total))
}

// GetStats
// @Summary Pipeline statistics
// @Tags Sales Leads
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /sales-leads/stats [get]
func (h *SalesLeadHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.leadUsecase.GetStats(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Lead stats retrieved successfully", stats)
}

// GetLead
// @Summary Get a lead
// @Tags Sales Leads
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sales-leads/{id} [get]
func (h *SalesLeadHandler) GetLead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "lead")
	if !ok {
		return
	}

	lead, err := h.leadUsecase.GetLead(r.Context(), id)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Lead retrieved successfully", lead)
}

// UpdateLead
// @Summary Update a lead
// @Description The lead score is recomputed
// @Tags Sales Leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.UpdateLeadRequest true "Fields"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /sales-leads/{id} [put]
func (h *SalesLeadHandler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "lead")
	if !ok {
		return
	}

	var req dto.UpdateLeadRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	lead, err := h.leadUsecase.UpdateLead(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Lead updated successfully", lead)
}

// UpdateStatus
// @Summary Move a lead through the pipeline
// @Tags Sales Leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.UpdateLeadStatusRequest true "Status"
// @Success 200 {object} response.Response
// @Router /sales-leads/{id}/status [patch]
func (h *SalesLeadHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "lead")
	if !ok {
		return
	}

	var req dto.UpdateLeadStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	lead, err := h.leadUsecase.UpdateStatus(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Lead status updated successfully", lead)
}

// AssignLead
// @Summary Assign a lead
// @Tags Sales Leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.AssignRequest true "Assignee"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sales-leads/{id}/assign [patch]
func (h *SalesLeadHandler) AssignLead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "lead")
	if !ok {
		return
	}

	var req dto.AssignRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	lead, err := h.leadUsecase.AssignLead(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Lead assigned successfully", lead)
}

// QualifyLead
// @Summary Qualify a lead
// @Tags Sales Leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.QualifyLeadRequest false "Note"
// @Success 200 {object} response.Response
// @Router /sales-leads/{id}/qualify [patch]
func (h *SalesLeadHandler) QualifyLead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "lead")
	if !ok {
		return
	}

	var req dto.QualifyLeadRequest
	if !decodeOptional(w, r, h.validator, &req) {
		return
	}

	lead, err := h.leadUsecase.QualifyLead(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Lead qualified successfully", lead)
}

// CloseLead
// @Summary Close a lead as won or lost
// @Tags Sales Leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.CloseLeadRequest true "Outcome"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /sales-leads/{id}/close [patch]
func (h *SalesLeadHandler) CloseLead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "lead")
	if !ok {
		return
	}

	var req dto.CloseLeadRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	lead, err := h.leadUsecase.CloseLead(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Lead closed successfully", lead)
}

// AddNote
// @Summary Add a note to a lead
// @Tags Sales Leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Param request body dto.LeadNoteRequest true "Note"
// @Success 201 {object} response.Response
// @Router /sales-leads/{id}/notes [post]
func (h *SalesLeadHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "lead")
	if !ok {
		return
	}

	var req dto.LeadNoteRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	lead, err := h.leadUsecase.AddNote(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "Note added successfully", lead)
}

// DeleteLead
// @Summary Delete a lead
// @Tags Sales Leads
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sales-leads/{id} [delete]
func (h *SalesLeadHandler) DeleteLead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "lead")
	if !ok {
		return
	}

	if err := h.leadUsecase.DeleteLead(r.Context(), actorID(r), id); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Lead deleted successfully", nil)
}
