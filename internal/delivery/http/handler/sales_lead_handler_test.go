package handler

import (
	"net/http"
	"testing"

	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/pkg/validator"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSalesLeadHandler_ListParsesFilters(t *testing.T) {
	uc := new(mockLeadUsecase)
	uc.On("GetAllLeads", mock.Anything, mock.MatchedBy(func(f entity.LeadFilter) bool {
		return f.Status == entity.LeadStatusQualified &&
			f.Industry == entity.IndustryHospital &&
			f.MinScore != nil && *f.MinScore == 60 &&
			f.AssignedToID == nil &&
			f.Search == "acme"
	}), mock.Anything).Return([]dto.LeadResponse{}, int64(0), nil)

	req := jsonRequest(t, http.MethodGet, "/api/sales-leads?status=qualified&industry=hospital&min_score=60&assigned_to=nobody&search=acme", nil)
	rec := record(NewSalesLeadHandler(uc, validator.NewValidator(), newErrorHandler()).GetAllLeads, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Leads retrieved successfully", decode(t, rec).Message)
	uc.AssertExpectations(t)
}

func TestSalesLeadHandler_QualifyAcceptsEmptyBody(t *testing.T) {
	manager := staff(entity.RoleSalesManager)
	leadID := uuid.New()
	uc := new(mockLeadUsecase)
	uc.On("QualifyLead", mock.Anything, manager.ID, leadID, &dto.QualifyLeadRequest{}).
		Return(&dto.LeadResponse{ID: leadID, Status: string(entity.LeadStatusQualified)}, nil)
	h := NewSalesLeadHandler(uc, validator.NewValidator(), newErrorHandler())

	req := asUser(withVars(jsonRequest(t, http.MethodPatch, "/api/sales-leads/x/qualify", nil), map[string]string{"id": leadID.String()}), manager, "t")
	rec := record(h.QualifyLead, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Lead qualified successfully", decode(t, rec).Message)

	req = asUser(withVars(jsonRequest(t, http.MethodPatch, "/api/sales-leads/x/qualify", "[1,2"), map[string]string{"id": leadID.String()}), manager, "t")
	assert.Equal(t, http.StatusBadRequest, record(h.QualifyLead, req).Code)
	uc.AssertNumberOfCalls(t, "QualifyLead", 1)
}
