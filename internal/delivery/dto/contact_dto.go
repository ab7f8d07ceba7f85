package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateContactRequest struct {
	Name        string `json:"name" validate:"required,notblank,max=100"`
	Email       string `json:"email" validate:"required,email,max=255"`
	Phone       string `json:"phone" validate:"omitempty,max=30"`
	Company     string `json:"company" validate:"omitempty,max=200"`
	Subject     string `json:"subject" validate:"required,notblank,max=200"`
	Message     string `json:"message" validate:"required,notblank,min=10,max=5000"`
	InquiryType string `json:"inquiry_type" validate:"omitempty,oneof=general teleradiology_services partnership careers billing technical_support other"`
	Source      string `json:"source" validate:"omitempty,max=50"`
}

type UpdateContactStatusRequest struct {
	Status   string `json:"status" validate:"required,oneof=new in_progress resolved closed spam"`
	Priority string `json:"priority" validate:"omitempty,oneof=low medium high urgent"`
}

type AssignRequest struct {
	AssignedTo uuid.UUID `json:"assigned_to" validate:"required"`
}

type AddNoteRequest struct {
	Text string `json:"text" validate:"required,notblank,max=2000"`
}

// Response DTOs

type ContactNoteResponse struct {
	Text      string     `json:"text"`
	AuthorID  *uuid.UUID `json:"author_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type ContactResponse struct {
	ID            uuid.UUID             `json:"id"`
	Name          string                `json:"name"`
	Email         string                `json:"email"`
	Phone         string                `json:"phone,omitempty"`
	Company       string                `json:"company,omitempty"`
	Subject       string                `json:"subject"`
	Message       string                `json:"message"`
	InquiryType   string                `json:"inquiry_type"`
	Priority      string                `json:"priority"`
	Status        string                `json:"status"`
	SpamScore     int                   `json:"spam_score"`
	IsSpam        bool                  `json:"is_spam"`
	Source        string                `json:"source,omitempty"`
	IPAddress     string                `json:"ip_address,omitempty"`
	UserAgent     string                `json:"user_agent,omitempty"`
	AssignedTo    *UserSummary          `json:"assigned_to,omitempty"`
	InternalNotes []ContactNoteResponse `json:"internal_notes"`
	AgeInDays     int                   `json:"age_in_days"`
	ResolvedAt    *time.Time            `json:"resolved_at,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
	UpdatedAt     time.Time             `json:"updated_at"`
}

// ContactReceipt is returned to the public form; it never exposes scoring.
type ContactReceipt struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
