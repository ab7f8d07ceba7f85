package entity

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InquiryType string

const (
	InquiryGeneral          InquiryType = "general"
	InquiryTeleradiology    InquiryType = "teleradiology_services"
	InquiryPartnership      InquiryType = "partnership"
	InquiryCareers          InquiryType = "careers"
	InquiryBilling          InquiryType = "billing"
	InquiryTechnicalSupport InquiryType = "technical_support"
	InquiryOther            InquiryType = "other"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

type ContactStatus string

const (
	ContactStatusNew        ContactStatus = "new"
	ContactStatusInProgress ContactStatus = "in_progress"
	ContactStatusResolved   ContactStatus = "resolved"
	ContactStatusClosed     ContactStatus = "closed"
	ContactStatusSpam       ContactStatus = "spam"
)

var ContactStatuses = []ContactStatus{
	ContactStatusNew, ContactStatusInProgress, ContactStatusResolved,
	ContactStatusClosed, ContactStatusSpam,
}

// Contact is a submission from the public contact form.
type Contact struct {
	ID            uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string        `gorm:"type:varchar(100);not null" json:"name"`
	Email         string        `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone         string        `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Company       string        `gorm:"type:varchar(200)" json:"company,omitempty"`
	Subject       string        `gorm:"type:varchar(200);not null" json:"subject"`
	Message       string        `gorm:"type:text;not null" json:"message"`
	InquiryType   InquiryType   `gorm:"type:varchar(30);not null;index" json:"inquiry_type"`
	Priority      Priority      `gorm:"type:varchar(10);not null" json:"priority"`
	Status        ContactStatus `gorm:"type:varchar(20);not null;index" json:"status"`
	AssignedToID  *uuid.UUID    `gorm:"type:uuid;index" json:"assigned_to_id,omitempty"`
	InternalNotes ContactNotes  `gorm:"type:jsonb" json:"internal_notes,omitempty"`
	SpamScore     int           `gorm:"not null" json:"spam_score"`
	IsSpam        bool          `gorm:"not null;index" json:"is_spam"`
	Source        string        `gorm:"type:varchar(50)" json:"source,omitempty"`
	IPAddress     string        `gorm:"type:varchar(64)" json:"ip_address,omitempty"`
	UserAgent     string        `gorm:"type:text" json:"user_agent,omitempty"`
	ResolvedAt    *time.Time    `json:"resolved_at,omitempty"`
	CreatedAt     time.Time     `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"updated_at"`

	AssignedTo *User `gorm:"foreignKey:AssignedToID" json:"assigned_to,omitempty"`
}

func (Contact) TableName() string {
	return "contacts"
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}

func (c *Contact) BeforeSave(tx *gorm.DB) error {
	c.Prepare(time.Now())
	return nil
}

// Prepare rescores the submission and applies status side effects. A spam
// verdict forces the spam status; resolving stamps ResolvedAt once.
func (c *Contact) Prepare(now time.Time) {
	c.Email = normalizeEmail(c.Email)
	if c.Priority == "" {
		c.Priority = PriorityMedium
	}
	if c.InquiryType == "" {
		c.InquiryType = InquiryGeneral
	}
	if c.Status == "" {
		c.Status = ContactStatusNew
	}

	c.SpamScore = SpamScore(c.Subject, c.Message)
	c.IsSpam = c.SpamScore >= SpamThreshold
	if c.IsSpam {
		c.Status = ContactStatusSpam
	}

	if c.Status == ContactStatusResolved && c.ResolvedAt == nil {
		c.ResolvedAt = &now
	}
}

func (c *Contact) AgeInDays(now time.Time) int {
	return ageInDays(c.CreatedAt, now)
}

func (c *Contact) AddNote(text string, author *uuid.UUID, now time.Time) {
	c.InternalNotes = append(c.InternalNotes, ContactNote{Text: text, AuthorID: author, CreatedAt: now})
}

type ContactNote struct {
	Text      string     `json:"text"`
	AuthorID  *uuid.UUID `json:"author_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

type ContactNotes []ContactNote

func (n ContactNotes) Value() (driver.Value, error) {
	if n == nil {
		return "[]", nil
	}
	return marshalJSON([]ContactNote(n))
}

func (n *ContactNotes) Scan(value interface{}) error {
	var out []ContactNote
	if err := scanJSON(value, &out); err != nil {
		return err
	}
	*n = out
	return nil
}

// ContactFilter narrows the contact listing.
type ContactFilter struct {
	Status       ContactStatus
	InquiryType  InquiryType
	Priority     Priority
	AssignedToID *uuid.UUID
	Search       string
	From         *time.Time
	To           *time.Time
	IncludeSpam  bool
}

func ageInDays(created, now time.Time) int {
	if created.IsZero() || now.Before(created) {
		return 0
	}
	return int(now.Sub(created).Hours() / 24)
}
