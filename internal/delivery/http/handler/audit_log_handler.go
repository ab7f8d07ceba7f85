package handler

import (
	"net/http"
	"strconv"

	"teleradiology-api/internal/delivery/http/middleware"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/usecase"
	"teleradiology-api/pkg/pagination"
	"teleradiology-api/pkg/response"

	"github.com/gorilla/mux"
)

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	errorHandler    *middleware.ErrorHandler
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, errorHandler *middleware.ErrorHandler) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		errorHandler:    errorHandler,
	}
}

// GetAuditLog
// @Summary Get an audit log entry
// @Tags Audit Logs
// @Security BearerAuth
// @Produce json
// @Param id path int true "Audit log ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /audit-logs/{id} [get]
func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	auditLogID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid audit log ID", nil)
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

// GetAllAuditLogs
// @Summary List audit log entries
// @Tags Audit Logs
// @Security BearerAuth
// @Produce json
// @Param action query string false "Action, e.g. lead.close"
// @Param entity_type query string false "Entity type"
// @Param user_id query string false "Acting user ID"
// @Param page query int false "Page"
// @Param limit query int false "Limit"
// @Success 200 {object} response.Response
// @Router /audit-logs [get]
func (h *AuditLogHandler) GetAllAuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := entity.AuditLogFilter{
		Action:     q.Get("action"),
		EntityType: q.Get("entity_type"),
		UserID:     queryUUID(q, "user_id"),
	}
	page := pagination.FromRequest(r, "created_at", "action")

	auditLogs, total, err := h.auditLogUsecase.GetAllAuditLogs(r.Context(), filter, page)
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", auditLogs, pagination.NewMeta(page.Page, page.Limit, total))
}
