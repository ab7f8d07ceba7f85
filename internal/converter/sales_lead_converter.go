package converter

import (
	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"

	"github.com/samber/lo"
)

// LeadToResponse converts a SalesLead entity to LeadResponse DTO
func LeadToResponse(l *entity.SalesLead) *dto.LeadResponse {
	if l == nil {
		return nil
	}

	return &dto.LeadResponse{
		ID:                 l.ID,
		CompanyName:        l.CompanyName,
		ContactName:        l.ContactName,
		ContactTitle:       l.ContactTitle,
		Email:              l.Email,
		Phone:              l.Phone,
		Website:            l.Website,
		Industry:           string(l.Industry),
		CompanySize:        string(l.CompanySize),
		Budget:             string(l.Budget),
		Timeline:           string(l.Timeline),
		Source:             string(l.Source),
		ServicesInterested: stringsOrEmpty(l.ServicesInterested),
		MonthlyStudyVolume: l.MonthlyStudyVolume,
		Message:            l.Message,
		Status:             string(l.Status),
		EstimatedValue:     l.EstimatedValue,
		Probability:        l.Probability,
		ExpectedCloseDate:  l.ExpectedCloseDate,
		LeadScore:          l.LeadScore,
		Notes: lo.Map(l.Notes, func(n entity.LeadNote, _ int) dto.LeadNoteResponse {
			return dto.LeadNoteResponse(n)
		}),
		AssignedTo:      UserToSummary(l.AssignedTo),
		QualifiedAt:     l.QualifiedAt,
		ClosedAt:        l.ClosedAt,
		CloseReason:     l.CloseReason,
		LastContactedAt: l.LastContactedAt,
		NextFollowUpAt:  l.NextFollowUpAt,
		AgeInDays:       l.AgeInDays(now()),
		CreatedAt:       l.CreatedAt,
		UpdatedAt:       l.UpdatedAt,
	}
}

// LeadsToResponses converts a slice of SalesLead entities to slice of LeadResponse DTOs
func LeadsToResponses(leads []entity.SalesLead) []dto.LeadResponse {
	return lo.Map(leads, func(l entity.SalesLead, _ int) dto.LeadResponse {
		return *LeadToResponse(&l)
	})
}
