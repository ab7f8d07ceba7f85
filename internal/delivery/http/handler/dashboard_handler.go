package handler

import (
	"net/http"

	"teleradiology-api/internal/delivery/http/middleware"
	"teleradiology-api/internal/usecase"
	"teleradiology-api/pkg/response"
)

type DashboardHandler struct {
	dashboardUsecase usecase.DashboardUsecase
	errorHandler     *middleware.ErrorHandler
}

func NewDashboardHandler(dashboardUsecase usecase.DashboardUsecase, errorHandler *middleware.ErrorHandler) *DashboardHandler {
	return &DashboardHandler{
		dashboardUsecase: dashboardUsecase,
		errorHandler:     errorHandler,
	}
}

// GetStats
// @Summary Aggregate statistics for the admin dashboard
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardUsecase.GetStats(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Dashboard stats retrieved successfully", stats)
}

// GetRecent
// @Summary Latest contacts, applications and leads
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response
// @Router /dashboard/recent [get]
func (h *DashboardHandler) GetRecent(w http.ResponseWriter, r *http.Request) {
	recent, err := h.dashboardUsecase.GetRecent(r.Context())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response.Success(w, http.StatusOK, "Recent activity retrieved successfully", recent)
}
