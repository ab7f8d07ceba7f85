package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Specialization string

const (
	SpecGeneralRadiology Specialization = "general_radiology"
	SpecNeuroradiology   Specialization = "neuroradiology"
	SpecMusculoskeletal  Specialization = "musculoskeletal"
	SpecBodyImaging      Specialization = "body_imaging"
	SpecBreastImaging    Specialization = "breast_imaging"
	SpecPediatric        Specialization = "pediatric"
	SpecInterventional   Specialization = "interventional"
	SpecNuclearMedicine  Specialization = "nuclear_medicine"
	SpecCardiothoracic   Specialization = "cardiothoracic"
	SpecEmergency        Specialization = "emergency"
)

type Availability string

const (
	AvailabilityFullTime Availability = "full_time"
	AvailabilityPartTime Availability = "part_time"
	AvailabilityPerDiem  Availability = "per_diem"
	AvailabilityNights   Availability = "nights"
	AvailabilityWeekends Availability = "weekends"
)

type ApplicationStatus string

const (
	ApplicationStatusPending     ApplicationStatus = "pending"
	ApplicationStatusUnderReview ApplicationStatus = "under_review"
	ApplicationStatusApproved    ApplicationStatus = "approved"
	ApplicationStatusRejected    ApplicationStatus = "rejected"
	ApplicationStatusOnHold      ApplicationStatus = "on_hold"
)

var ApplicationStatuses = []ApplicationStatus{
	ApplicationStatusPending, ApplicationStatusUnderReview, ApplicationStatusApproved,
	ApplicationStatusRejected, ApplicationStatusOnHold,
}

// RadiologistApplication is a job application submitted through the careers form.
type RadiologistApplication struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName       string            `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName        string            `gorm:"type:varchar(50);not null" json:"last_name"`
	Email           string            `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Phone           string            `gorm:"type:varchar(30);not null" json:"phone"`
	LicenseNumber   string            `gorm:"type:varchar(50);not null" json:"license_number"`
	LicenseStates   StringList        `gorm:"type:jsonb" json:"license_states"`
	BoardCertified  bool              `gorm:"not null" json:"board_certified"`
	Specialization  Specialization    `gorm:"type:varchar(40);not null;index" json:"specialization"`
	Experience      int               `gorm:"not null" json:"experience"`
	Availability    Availability      `gorm:"type:varchar(20);not null" json:"availability"`
	CoverLetter     string            `gorm:"type:text" json:"cover_letter,omitempty"`
	ResumeURL       string            `gorm:"type:text" json:"resume_url,omitempty"`
	Status          ApplicationStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	ReviewedByID    *uuid.UUID        `gorm:"type:uuid" json:"reviewed_by_id,omitempty"`
	ReviewedAt      *time.Time        `json:"reviewed_at,omitempty"`
	ReviewNotes     string            `gorm:"type:text" json:"review_notes,omitempty"`
	RejectionReason string            `gorm:"type:text" json:"rejection_reason,omitempty"`
	CreatedAt       time.Time         `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt       time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	ReviewedBy *User `gorm:"foreignKey:ReviewedByID" json:"reviewed_by,omitempty"`
}

func (RadiologistApplication) TableName() string {
	return "radiologist_applications"
}

func (a *RadiologistApplication) BeforeCreate(tx *gorm.DB) error {
	ensureID(&a.ID)
	return nil
}

func (a *RadiologistApplication) BeforeSave(tx *gorm.DB) error {
	a.Email = normalizeEmail(a.Email)
	if a.Status == "" {
		a.Status = ApplicationStatusPending
	}
	return nil
}

func (a *RadiologistApplication) FullName() string {
	return strings.TrimSpace(a.FirstName + " " + a.LastName)
}

func (a *RadiologistApplication) AgeInDays(now time.Time) int {
	return ageInDays(a.CreatedAt, now)
}

func (a *RadiologistApplication) MarkUnderReview(by uuid.UUID, now time.Time) {
	a.review(ApplicationStatusUnderReview, by, now)
}

func (a *RadiologistApplication) Approve(by uuid.UUID, notes string, now time.Time) {
	a.review(ApplicationStatusApproved, by, now)
	if notes != "" {
		a.ReviewNotes = notes
	}
	a.RejectionReason = ""
}

// Reject requires a reason and reports whether the transition happened.
func (a *RadiologistApplication) Reject(by uuid.UUID, reason string, now time.Time) bool {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return false
	}
	a.review(ApplicationStatusRejected, by, now)
	a.RejectionReason = reason
	return true
}

func (a *RadiologistApplication) Hold(by uuid.UUID, notes string, now time.Time) {
	a.review(ApplicationStatusOnHold, by, now)
	if notes != "" {
		a.ReviewNotes = notes
	}
}

func (a *RadiologistApplication) review(status ApplicationStatus, by uuid.UUID, now time.Time) {
	a.Status = status
	a.ReviewedByID = &by
	a.ReviewedAt = &now
}

// ApplicationFilter narrows the application listing.
type ApplicationFilter struct {
	Status         ApplicationStatus
	Specialization Specialization
	MinExperience  *int
	Search         string
}
