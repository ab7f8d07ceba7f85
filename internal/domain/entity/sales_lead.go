package entity

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type LeadIndustry string

const (
	IndustryHealthcare    LeadIndustry = "healthcare"
	IndustryHospital      LeadIndustry = "hospital"
	IndustryImagingCenter LeadIndustry = "imaging_center"
	IndustryUrgentCare    LeadIndustry = "urgent_care"
	IndustryTelemedicine  LeadIndustry = "telemedicine"
	IndustryClinic        LeadIndustry = "clinic"
	IndustryOther         LeadIndustry = "other"
)

type CompanySize string

const (
	CompanySizeSmall      CompanySize = "small_1_50"
	CompanySizeMedium     CompanySize = "medium_51_200"
	CompanySizeLarge      CompanySize = "large_201_1000"
	CompanySizeEnterprise CompanySize = "enterprise_1000_plus"
)

type LeadBudget string

const (
	BudgetUnder50k   LeadBudget = "under_50k"
	Budget50kTo100k  LeadBudget = "50k_100k"
	Budget100kTo500k LeadBudget = "100k_500k"
	Budget500kTo1M   LeadBudget = "500k_1m"
	BudgetOver1M     LeadBudget = "over_1m"
)

type LeadTimeline string

const (
	TimelineImmediate     LeadTimeline = "immediate"
	TimelineWithin3Months LeadTimeline = "within_3_months"
	TimelineWithin6Months LeadTimeline = "within_6_months"
	TimelineWithin1Year   LeadTimeline = "within_1_year"
	TimelineExploring     LeadTimeline = "exploring"
)

type LeadSource string

const (
	SourceReferral     LeadSource = "referral"
	SourceWebsite      LeadSource = "website"
	SourceTradeShow    LeadSource = "trade_show"
	SourceLinkedIn     LeadSource = "linkedin"
	SourceColdOutreach LeadSource = "cold_outreach"
	SourceOther        LeadSource = "other"
)

type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "new"
	LeadStatusContacted   LeadStatus = "contacted"
	LeadStatusQualified   LeadStatus = "qualified"
	LeadStatusProposal    LeadStatus = "proposal"
	LeadStatusNegotiation LeadStatus = "negotiation"
	LeadStatusClosedWon   LeadStatus = "closed_won"
	LeadStatusClosedLost  LeadStatus = "closed_lost"
)

var LeadStatuses = []LeadStatus{
	LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusProposal,
	LeadStatusNegotiation, LeadStatusClosedWon, LeadStatusClosedLost,
}

// OpenLeadStatuses are the pipeline stages before a close.
var OpenLeadStatuses = LeadStatuses[:5]

func (s LeadStatus) IsClosed() bool {
	return s == LeadStatusClosedWon || s == LeadStatusClosedLost
}

const (
	LeadNoteGeneral       = "general"
	LeadNoteStatusChange  = "status_change"
	LeadNoteAssignment    = "assignment"
	LeadNoteQualification = "qualification"
	LeadNoteClose         = "close"
)

// SalesLead is a prospective client from the sales form or entered by staff.
type SalesLead struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	CompanyName        string          `gorm:"type:varchar(200);not null" json:"company_name"`
	ContactName        string          `gorm:"type:varchar(100);not null" json:"contact_name"`
	ContactTitle       string          `gorm:"type:varchar(100)" json:"contact_title,omitempty"`
	Email              string          `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone              string          `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Website            string          `gorm:"type:text" json:"website,omitempty"`
	Industry           LeadIndustry    `gorm:"type:varchar(30);not null;index" json:"industry"`
	CompanySize        CompanySize     `gorm:"type:varchar(30)" json:"company_size,omitempty"`
	Budget             LeadBudget      `gorm:"type:varchar(20)" json:"budget,omitempty"`
	Timeline           LeadTimeline    `gorm:"type:varchar(20)" json:"timeline,omitempty"`
	Source             LeadSource      `gorm:"type:varchar(20);not null;index" json:"source"`
	ServicesInterested StringList      `gorm:"type:jsonb" json:"services_interested"`
	MonthlyStudyVolume int             `gorm:"not null" json:"monthly_study_volume"`
	Message            string          `gorm:"type:text" json:"message,omitempty"`
	Status             LeadStatus      `gorm:"type:varchar(20);not null;index" json:"status"`
	EstimatedValue     decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"estimated_value"`
	Probability        int             `gorm:"not null" json:"probability"`
	ExpectedCloseDate  *time.Time      `json:"expected_close_date,omitempty"`
	LeadScore          int             `gorm:"not null;index" json:"lead_score"`
	Notes              LeadNotes       `gorm:"type:jsonb" json:"notes,omitempty"`
	AssignedToID       *uuid.UUID      `gorm:"type:uuid;index" json:"assigned_to_id,omitempty"`
	QualifiedByID      *uuid.UUID      `gorm:"type:uuid" json:"qualified_by_id,omitempty"`
	ClosedByID         *uuid.UUID      `gorm:"type:uuid" json:"closed_by_id,omitempty"`
	QualifiedAt        *time.Time      `json:"qualified_at,omitempty"`
	ClosedAt           *time.Time      `json:"closed_at,omitempty"`
	CloseReason        string          `gorm:"type:text" json:"close_reason,omitempty"`
	LastContactedAt    *time.Time      `json:"last_contacted_at,omitempty"`
	NextFollowUpAt     *time.Time      `json:"next_follow_up_at,omitempty"`
	CreatedAt          time.Time       `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	AssignedTo *User `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
}

func (SalesLead) TableName() string {
	return "sales_leads"
}

func (l *SalesLead) BeforeCreate(tx *gorm.DB) error {
	ensureID(&l.ID)
	return nil
}

func (l *SalesLead) BeforeSave(tx *gorm.DB) error {
	l.Prepare()
	return nil
}

// Prepare normalizes the lead and recomputes its score.
func (l *SalesLead) Prepare() {
	l.Email = normalizeEmail(l.Email)
	if l.Status == "" {
		l.Status = LeadStatusNew
	}
	if l.Source == "" {
		l.Source = SourceWebsite
	}
	if l.EstimatedValue.IsNegative() {
		l.EstimatedValue = decimal.Zero
	}
	l.Probability = clampScore(l.Probability)
	l.LeadScore = LeadScore(l)
}

func (l *SalesLead) AddNote(text, noteType string, author *uuid.UUID, now time.Time) {
	if noteType == "" {
		noteType = LeadNoteGeneral
	}
	l.Notes = append(l.Notes, LeadNote{Text: text, Type: noteType, AuthorID: author, CreatedAt: now})
}

// SetStatus moves the lead and leaves a note. Contact-type stages update
// LastContactedAt.
func (l *SalesLead) SetStatus(status LeadStatus, by uuid.UUID, now time.Time) {
	if l.Status == status {
		return
	}
	l.AddNote(fmt.Sprintf("Status changed from %s to %s", l.Status, status), LeadNoteStatusChange, &by, now)
	l.Status = status
	if status == LeadStatusContacted {
		l.LastContactedAt = &now
	}
}

func (l *SalesLead) Qualify(by uuid.UUID, note string, now time.Time) {
	l.Status = LeadStatusQualified
	l.QualifiedByID = &by
	l.QualifiedAt = &now
	if note == "" {
		note = "Lead qualified"
	}
	l.AddNote(note, LeadNoteQualification, &by, now)
}

func (l *SalesLead) Close(won bool, by uuid.UUID, reason string, now time.Time) {
	l.Status = LeadStatusClosedLost
	outcome := "lost"
	if won {
		l.Status = LeadStatusClosedWon
		l.Probability = 100
		outcome = "won"
	} else {
		l.Probability = 0
	}
	l.ClosedByID = &by
	l.ClosedAt = &now
	l.CloseReason = reason

	text := "Lead closed as " + outcome
	if reason != "" {
		text += ": " + reason
	}
	l.AddNote(text, LeadNoteClose, &by, now)
}

func (l *SalesLead) Assign(to, by uuid.UUID, now time.Time) {
	l.AssignedToID = &to
	l.AddNote("Lead assigned to "+to.String(), LeadNoteAssignment, &by, now)
}

func (l *SalesLead) AgeInDays(now time.Time) int {
	return ageInDays(l.CreatedAt, now)
}

type LeadNote struct {
	Text      string     `json:"text"`
	Type      string     `json:"type"`
	AuthorID  *uuid.UUID `json:"author_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type LeadNotes []LeadNote

func (n LeadNotes) Value() (driver.Value, error) {
	if n == nil {
		return "[]", nil
	}
	return marshalJSON([]LeadNote(n))
}

func (n *LeadNotes) Scan(value interface{}) error {
	var out []LeadNote
	if err := scanJSON(value, &out); err != nil {
		return err
	}
	*n = out
	return nil
}

// LeadFilter narrows the lead listing.
type LeadFilter struct {
	Status       LeadStatus
	Industry     LeadIndustry
	Source       LeadSource
	AssignedToID *uuid.UUID
	MinScore     *int
	Search       string
	From         *time.Time
	To           *time.Time
}
