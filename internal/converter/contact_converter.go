package converter

import (
	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"

	"github.com/samber/lo"
)

// ContactToResponse converts a Contact entity to ContactResponse DTO
func ContactToResponse(c *entity.Contact) *dto.ContactResponse {
	if c == nil {
		return nil
	}

	return &dto.ContactResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Company:     c.Company,
		Subject:     c.Subject,
		Message:     c.Message,
		InquiryType: string(c.InquiryType),
		Priority:    string(c.Priority),
		Status:      string(c.Status),
		SpamScore:   c.SpamScore,
		IsSpam:      c.IsSpam,
		Source:      c.Source,
		IPAddress:   c.IPAddress,
		UserAgent:   c.UserAgent,
		AssignedTo:  UserToSummary(c.AssignedTo),
		InternalNotes: lo.Map(c.InternalNotes, func(n entity.ContactNote, _ int) dto.ContactNoteResponse {
			return dto.ContactNoteResponse(n)
		}),
		AgeInDays:  c.AgeInDays(now()),
		ResolvedAt: c.ResolvedAt,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

// ContactsToResponses converts a slice of Contact entities to slice of ContactResponse DTOs
func ContactsToResponses(contacts []entity.Contact) []dto.ContactResponse {
	return lo.Map(contacts, func(c entity.Contact, _ int) dto.ContactResponse {
		return *ContactToResponse(&c)
	})
}
