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

var contactSortable = []string{"created_at", "updated_at", "status", "priority", "spam_score", "name"}

type ContactHandler struct {
	contactUsecase usecase.ContactUsecase
	validator      *validator.CustomValidator
	errorHandler   *middleware.ErrorHandler
}

func NewContactHandler(contactUsecase usecase.ContactUsecase, validator *validator.CustomValidator, errorHandler *middleware.ErrorHandler) *ContactHandler {
	return &ContactHandler{
		contactUsecase: contactUsecase,
		validator:      validator,
		errorHandler:   errorHandler,
	}
}

// CreateContact
// @Summary Submit the contact form
// @Description Scores the message for spam and records the caller's IP and user agent
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body dto.CreateContactRequest true "Message"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 429 {object} response.Response
// @Router /contact [post]
func (h *ContactHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateContactRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	meta := usecase.RequestMeta{
		IPAddress: middleware.ClientIP(r),
		UserAgent: r.UserAgent(),
	}

	receipt, err := h.contactUsecase.CreateContact(r.Context(), &req, meta)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "Thank you for contacting us. We will get back to you soon.", receipt)
}

// GetAllContacts
// @Summary List contact submissions
// @Description Spam is hidden unless include_spam=true or status=spam
// @Tags Contact
// @Security BearerAuth
// @Produce json
// @Param status query string false "Status"
// @Param inquiry_type query string false "Inquiry type"
// @Param priority query string false "Priority"
// @Param assigned_to query string false "Assignee ID"
// @Param search query string false "Name, email, company or subject"
// @Param from query string false "YYYY-MM-DD"
// @Param to query string false "YYYY-MM-DD, inclusive"
// @Param include_spam query bool false "Include spam"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /contact [get]
func (h *ContactHandler) GetAllContacts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to, ok := queryDateRange(q)
	if !ok {
		response.Error(w, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD", nil)
		return
	}

	filter := entity.ContactFilter{
		Status:       entity.ContactStatus(q.Get("status")),
		InquiryType:  entity.InquiryType(q.Get("inquiry_type")),
		Priority:     entity.Priority(q.Get("priority")),
		AssignedToID: queryUUID(q, "assigned_to"),
		Search:       q.Get("search"),
		From:         from,
		To:           to,
	}
	if includeSpam := queryBool(q, "include_spam"); includeSpam != nil {
		filter.IncludeSpam = *includeSpam
	}
	page := pagination.FromRequest(r, contactSortable...)

	contacts, total, err := h.contactUsecase.GetAllContacts(r.Context(), filter, page)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Contacts retrieved successfully", contacts, pagination.NewMeta(page.Page, page.Limit, total))
}

// GetStats
// @Summary Contact statistics
// @Tags Contact
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /contact/stats [get]
func (h *ContactHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.contactUsecase.GetStats(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Contact stats retrieved successfully", stats)
}

// GetContact
// @Summary Get a contact submission
// @Tags Contact
// @Security BearerAuth
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contact/{id} [get]
func (h *ContactHandler) GetContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "contact")
	if !ok {
		return
	}

	contact, err := h.contactUsecase.GetContact(r.Context(), id)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Contact retrieved successfully", contact)
}

// UpdateStatus
// @Summary Change status or priority
// @Tags Contact
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body dto.UpdateContactStatusRequest true "Status"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /contact/{id}/status [patch]
func (h *ContactHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "contact")
	if !ok {
		return
	}

	var req dto.UpdateContactStatusRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	contact, err := h.contactUsecase.UpdateStatus(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Contact status updated successfully", contact)
}

// AssignContact
// @Summary Assign to a staff member
// @Tags Contact
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body dto.AssignRequest true "Assignee"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contact/{id}/assign [patch]
func (h *ContactHandler) AssignContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "contact")
	if !ok {
		return
	}

	var req dto.AssignRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	contact, err := h.contactUsecase.AssignContact(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Contact assigned successfully", contact)
}

// AddNote
// @Summary Add an internal note
// @Tags Contact
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Contact ID"
// @Param request body dto.AddNoteRequest true "Note"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /contact/{id}/notes [post]
func (h *ContactHandler) AddNote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "contact")
	if !ok {
		return
	}

	var req dto.AddNoteRequest
	if !decodeAndValidate(w, r, h.validator, &req) {
		return
	}

	contact, err := h.contactUsecase.AddNote(r.Context(), actorID(r), id, &req)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusCreated, "Note added successfully", contact)
}

// DeleteContact
// @Summary Delete a contact submission
// @Tags Contact
// @Security BearerAuth
// @Produce json
// @Param id path string true "Contact ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /contact/{id} [delete]
func (h *ContactHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "contact")
	if !ok {
		return
	}

	if err := h.contactUsecase.DeleteContact(r.Context(), actorID(r), id); err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Contact deleted successfully", nil)
}
