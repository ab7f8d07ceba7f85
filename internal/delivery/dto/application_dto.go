package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type CreateApplicationRequest struct {
	FirstName      string   `json:"first_name" validate:"required,notblank,max=50"`
	LastName       string   `json:"last_name" validate:"required,notblank,max=50"`
	Email          string   `json:"email" validate:"required,email,max=255"`
	Phone          string   `json:"phone" validate:"required,notblank,max=30"`
	LicenseNumber  string   `json:"license_number" validate:"required,notblank,max=50"`
	LicenseStates  []string `json:"license_states" validate:"required,min=1,max=60,dive,len=2"`
	BoardCertified bool     `json:"board_certified"`
	Specialization string   `json:"specialization" validate:"required,oneof=general_radiology neuroradiology musculoskeletal body_imaging breast_imaging pediatric interventional nuclear_medicine cardiothoracic emergency"`
	Experience     int      `json:"experience" validate:"gte=0,lte=60"`
	Availability   string   `json:"availability" validate:"required,oneof=full_time part_time per_diem nights weekends"`
	CoverLetter    string   `json:"cover_letter" validate:"omitempty,max=5000"`
	ResumeURL      string   `json:"resume_url" validate:"omitempty,max=500"`
}

type UpdateApplicationRequest struct {
	FirstName      *string  `json:"first_name" validate:"omitempty,notblank,max=50"`
	LastName       *string  `json:"last_name" validate:"omitempty,notblank,max=50"`
	Phone          *string  `json:"phone" validate:"omitempty,notblank,max=30"`
	LicenseNumber  *string  `json:"license_number" validate:"omitempty,notblank,max=50"`
	LicenseStates  []string `json:"license_states" validate:"omitempty,max=60,dive,len=2"`
	BoardCertified *bool    `json:"board_certified"`
	Specialization *string  `json:"specialization" validate:"omitempty,oneof=general_radiology neuroradiology musculoskeletal body_imaging breast_imaging pediatric interventional nuclear_medicine cardiothoracic emergency"`
	Experience     *int     `json:"experience" validate:"omitempty,gte=0,lte=60"`
	Availability   *string  `json:"availability" validate:"omitempty,oneof=full_time part_time per_diem nights weekends"`
	CoverLetter    *string  `json:"cover_letter" validate:"omitempty,max=5000"`
	ResumeURL      *string  `json:"resume_url" validate:"omitempty,max=500"`
}

type ReviewApplicationRequest struct {
	Notes string `json:"notes" validate:"omitempty,max=2000"`
}

// RejectApplicationRequest leaves the reason check to the usecase so that a
// blank reason gets the same message from every caller.
type RejectApplicationRequest struct {
	Reason string `json:"reason" validate:"max=2000"`
}

// Response DTOs

type ApplicationResponse struct {
	ID              uuid.UUID    `json:"id"`
	FirstName       string       `json:"first_name"`
	LastName        string       `json:"last_name"`
	FullName        string       `json:"full_name"`
	Email           string       `json:"email"`
	Phone           string       `json:"phone"`
	LicenseNumber   string       `json:"license_number"`
	LicenseStates   []string     `json:"license_states"`
	BoardCertified  bool         `json:"board_certified"`
	Specialization  string       `json:"specialization"`
	Experience      int          `json:"experience"`
	Availability    string       `json:"availability"`
	CoverLetter     string       `json:"cover_letter,omitempty"`
	ResumeURL       string       `json:"resume_url,omitempty"`
	Status          string       `json:"status"`
	ReviewedBy      *UserSummary `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time   `json:"reviewed_at,omitempty"`
	ReviewNotes     string       `json:"review_notes,omitempty"`
	RejectionReason string       `json:"rejection_reason,omitempty"`
	AgeInDays       int          `json:"age_in_days"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

type ApplicationReceipt struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
