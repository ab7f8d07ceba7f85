package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateLeadRequest struct {
	CompanyName        string           `json:"company_name" validate:"required,notblank,max=200"`
	ContactName        string           `json:"contact_name" validate:"required,notblank,max=100"`
	ContactTitle       string           `json:"contact_title" validate:"omitempty,max=100"`
	Email              string           `json:"email" validate:"required,email,max=255"`
	Phone              string           `json:"phone" validate:"omitempty,max=30"`
	Website            string           `json:"website" validate:"omitempty,url,max=500"`
	Industry           string           `json:"industry" validate:"required,oneof=healthcare hospital imaging_center urgent_care telemedicine clinic other"`
	CompanySize        string           `json:"company_size" validate:"omitempty,oneof=small_1_50 medium_51_200 large_201_1000 enterprise_1000_plus"`
	Budget             string           `json:"budget" validate:"omitempty,oneof=under_50k 50k_100k 100k_500k 500k_1m over_1m"`
	Timeline           string           `json:"timeline" validate:"omitempty,oneof=immediate within_3_months within_6_months within_1_year exploring"`
	Source             string           `json:"source" validate:"omitempty,oneof=referral website trade_show linkedin cold_outreach other"`
	ServicesInterested []string         `json:"services_interested" validate:"omitempty,max=20,dive,max=100"`
	MonthlyStudyVolume int              `json:"monthly_study_volume" validate:"gte=0"`
	Message            string           `json:"message" validate:"omitempty,max=5000"`
	EstimatedValue     *decimal.Decimal `json:"estimated_value" validate:"omitempty,gte=0"`
}

type UpdateLeadRequest struct {
	CompanyName        *string          `json:"company_name" validate:"omitempty,notblank,max=200"`
	ContactName        *string          `json:"contact_name" validate:"omitempty,notblank,max=100"`
	ContactTitle       *string          `json:"contact_title" validate:"omitempty,max=100"`
	Email              *string          `json:"email" validate:"omitempty,email,max=255"`
	Phone              *string          `json:"phone" validate:"omitempty,max=30"`
	Website            *string          `json:"website" validate:"omitempty,url,max=500"`
	Industry           *string          `json:"industry" validate:"omitempty,oneof=healthcare hospital imaging_center urgent_care telemedicine clinic other"`
	CompanySize        *string          `json:"company_size" validate:"omitempty,oneof=small_1_50 medium_51_200 large_201_1000 enterprise_1000_plus"`
	Budget             *string          `json:"budget" validate:"omitempty,oneof=under_50k 50k_100k 100k_500k 500k_1m over_1m"`
	Timeline           *string          `json:"timeline" validate:"omitempty,oneof=immediate within_3_months within_6_months within_1_year exploring"`
	Source             *string          `json:"source" validate:"omitempty,oneof=referral website trade_show linkedin cold_outreach other"`
	ServicesInterested []string         `json:"services_interested" validate:"omitempty,max=20,dive,max=100"`
	MonthlyStudyVolume *int             `json:"monthly_study_volume" validate:"omitempty,gte=0"`
	Message            *string          `json:"message" validate:"omitempty,max=5000"`
	EstimatedValue     *decimal.Decimal `json:"estimated_value" validate:"omitempty,gte=0"`
	Probability        *int             `json:"probability" validate:"omitempty,gte=0,lte=100"`
	ExpectedCloseDate  *string          `json:"expected_close_date" validate:"omitempty,datetime=2006-01-02"`
	NextFollowUpAt     *time.Time       `json:"next_follow_up_at"`
}

type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=new contacted qualified proposal negotiation closed_won closed_lost"`
}

type QualifyLeadRequest struct {
	Note string `json:"note" validate:"omitempty,max=2000"`
}

type CloseLeadRequest struct {
	Outcome string `json:"outcome" validate:"required,oneof=won lost"`
	Reason  string `json:"reason" validate:"omitempty,max=2000"`
}

type LeadNoteRequest struct {
	Text string `json:"text" validate:"required,notblank,max=2000"`
	Type string `json:"type" validate:"omitempty,oneof=general status_change assignment qualification close"`
}

// Response DTOs

type LeadNoteResponse struct {
	Text      string     `json:"text"`
	Type      string     `json:"type"`
	AuthorID  *uuid.UUID `json:"author_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type LeadResponse struct {
	ID                 uuid.UUID          `json:"id"`
	CompanyName        string             `json:"company_name"`
	ContactName        string             `json:"contact_name"`
	ContactTitle       string             `json:"contact_title,omitempty"`
	Email              string             `json:"email"`
	Phone              string             `json:"phone,omitempty"`
	Website            string             `json:"website,omitempty"`
	Industry           string             `json:"industry"`
	CompanySize        string             `json:"company_size,omitempty"`
	Budget             string             `json:"budget,omitempty"`
	Timeline           string             `json:"timeline,omitempty"`
	Source             string             `json:"source"`
	ServicesInterested []string           `json:"services_interested"`
	MonthlyStudyVolume int                `json:"monthly_study_volume"`
	Message            string             `json:"message,omitempty"`
	Status             string             `json:"status"`
	EstimatedValue     decimal.Decimal    `json:"estimated_value"`
	Probability        int                `json:"probability"`
	ExpectedCloseDate  *time.Time         `json:"expected_close_date,omitempty"`
	LeadScore          int                `json:"lead_score"`
	Notes              []LeadNoteResponse `json:"notes"`
	AssignedTo         *UserSummary       `json:"assigned_to,omitempty"`
	QualifiedAt        *time.Time         `json:"qualified_at,omitempty"`
	ClosedAt           *time.Time         `json:"closed_at,omitempty"`
	CloseReason        string             `json:"close_reason,omitempty"`
	LastContactedAt    *time.Time         `json:"last_contacted_at,omitempty"`
	NextFollowUpAt     *time.Time         `json:"next_follow_up_at,omitempty"`
	AgeInDays          int                `json:"age_in_days"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

type LeadReceipt struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}
