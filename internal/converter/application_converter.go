package converter

import (
	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"

	"github.com/samber/lo"
)

// ApplicationToResponse converts a RadiologistApplication entity to ApplicationResponse DTO
func ApplicationToResponse(a *entity.RadiologistApplication) *dto.ApplicationResponse {
	if a == nil {
		return nil
	}

	return &dto.ApplicationResponse{
		ID:              a.ID,
		FirstName:       a.FirstName,
		LastName:        a.LastName,
		FullName:        a.FullName(),
		Email:           a.Email,
		Phone:           a.Phone,
		LicenseNumber:   a.LicenseNumber,
		LicenseStates:   stringsOrEmpty(a.LicenseStates),
		BoardCertified:  a.BoardCertified,
		Specialization:  string(a.Specialization),
		Experience:      a.Experience,
		Availability:    string(a.Availability),
		CoverLetter:     a.CoverLetter,
		ResumeURL:       a.ResumeURL,
		Status:          string(a.Status),
		ReviewedBy:      UserToSummary(a.ReviewedBy),
		ReviewedAt:      a.ReviewedAt,
		ReviewNotes:     a.ReviewNotes,
		RejectionReason: a.RejectionReason,
		AgeInDays:       a.AgeInDays(now()),
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// ApplicationsToResponses converts a slice of RadiologistApplication entities to slice of ApplicationResponse DTOs
func ApplicationsToResponses(apps []entity.RadiologistApplication) []dto.ApplicationResponse {
	return lo.Map(apps, func(a entity.RadiologistApplication, _ int) dto.ApplicationResponse {
		return *ApplicationToResponse(&a)
	})
}
