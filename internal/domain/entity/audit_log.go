package entity

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
)

// AuditLog records who changed what. Rows are written in the same
// transaction as the change they describe.
type AuditLog struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Action     string     `gorm:"type:varchar(100);not null;index" json:"action"`
	EntityType string     `gorm:"type:varchar(50);index" json:"entity_type,omitempty"`
	EntityID   string     `gorm:"type:varchar(64);index" json:"entity_id,omitempty"`
	Metadata   JSON       `gorm:"type:jsonb" json:"metadata,omitempty"`
	CreatedAt  time.Time  `gorm:"autoCreateTime;index" json:"created_at"`

	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSON is a free-form object stored as jsonb.
type JSON map[string]interface{}

func (j JSON) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return marshalJSON(map[string]interface{}(j))
}

func (j *JSON) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	result := map[string]interface{}{}
	err := scanJSON(value, &result)
	*j = JSON(result)
	return err
}

// AuditLogFilter narrows the audit log listing.
type AuditLogFilter struct {
	Action     string
	EntityType string
	UserID     *uuid.UUID
}

const (
	AuditActionUserLogin         = "user.login"
	AuditActionUserLogout        = "user.logout"
	AuditActionUserRegister      = "user.register"
	AuditActionUserCreate        = "user.create"
	AuditActionUserUpdate        = "user.update"
	AuditActionUserRoleChange    = "user.role_change"
	AuditActionUserStatusChange  = "user.status_change"
	AuditActionUserUnlock        = "user.unlock"
	AuditActionUserDelete        = "user.delete"
	AuditActionPasswordChange    = "user.password_change"
	AuditActionPasswordReset     = "user.password_reset"
	AuditActionContentCreate     = "content.create"
	AuditActionContentUpdate     = "content.update"
	AuditActionContentDelete     = "content.delete"
	AuditActionContentPublish    = "content.publish"
	AuditActionContentUnpublish  = "content.unpublish"
	AuditActionContentArchive    = "content.archive"
	AuditActionContentRestore    = "content.restore"
	AuditActionContactStatus     = "contact.status_change"
	AuditActionContactAssign     = "contact.assign"
	AuditActionContactDelete     = "contact.delete"
	AuditActionApplicationUpdate = "application.update"
	AuditActionApplicationReview = "application.review"
	AuditActionApplicationDelete = "application.delete"
	AuditActionLeadUpdate        = "lead.update"
	AuditActionLeadStatus        = "lead.status_change"
	AuditActionLeadAssign        = "lead.assign"
	AuditActionLeadQualify       = "lead.qualify"
	AuditActionLeadClose         = "lead.close"
	AuditActionLeadDelete        = "lead.delete"
)
