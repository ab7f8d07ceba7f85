package entity

import (
	"database/sql/driver"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MaxLoginAttempts = 5
	LockDuration     = 2 * time.Hour
)

// User is a staff member or registered site user.
type User struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string          `gorm:"type:varchar(100);not null" json:"name"`
	Email         string          `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Password      string          `gorm:"type:text;not null" json:"-"`
	Role          Role            `gorm:"type:varchar(30);not null;index" json:"role"`
	IsActive      bool            `gorm:"not null;index" json:"is_active"`
	IsVerified    bool            `gorm:"not null" json:"is_verified"`
	LoginAttempts int             `gorm:"not null" json:"-"`
	LockUntil     *time.Time      `json:"lock_until,omitempty"`
	LastLoginAt   *time.Time      `json:"last_login_at,omitempty"`
	Phone         string          `gorm:"type:varchar(30)" json:"phone,omitempty"`
	Department    string          `gorm:"type:varchar(100)" json:"department,omitempty"`
	Avatar        string          `gorm:"type:text" json:"avatar,omitempty"`
	Preferences   UserPreferences `gorm:"type:jsonb" json:"preferences"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	ensureID(&u.ID)
	return nil
}

func (u *User) BeforeSave(tx *gorm.DB) error {
	u.Email = normalizeEmail(u.Email)
	if u.Role == "" {
		u.Role = RoleUser
	}
	return nil
}

// IsLocked reports whether a lockout is still in force at now.
func (u *User) IsLocked(now time.Time) bool {
	return u.LockUntil != nil && u.LockUntil.After(now)
}

// IncLoginAttempts records a failed login. An expired lock restarts the count;
// reaching MaxLoginAttempts locks the account for LockDuration.
func (u *User) IncLoginAttempts(now time.Time) {
	if u.LockUntil != nil && !u.LockUntil.After(now) {
		u.LoginAttempts = 1
		u.LockUntil = nil
		return
	}
	u.LoginAttempts++
	if u.LoginAttempts >= MaxLoginAttempts && !u.IsLocked(now) {
		until := now.Add(LockDuration)
		u.LockUntil = &until
	}
}

func (u *User) ResetLoginAttempts() {
	u.LoginAttempts = 0
	u.LockUntil = nil
}

// UserPreferences holds per-user UI settings.
type UserPreferences struct {
	Theme              string `json:"theme,omitempty"`
	Language           string `json:"language,omitempty"`
	Timezone           string `json:"timezone,omitempty"`
	EmailNotifications bool   `json:"email_notifications"`
	DashboardLayout    string `json:"dashboard_layout,omitempty"`
}

func (p UserPreferences) Value() (driver.Value, error) {
	return marshalJSON(p)
}

func (p *UserPreferences) Scan(value interface{}) error {
	return scanJSON(value, p)
}

func DefaultPreferences() UserPreferences {
	return UserPreferences{
		Theme:              "light",
		Language:           "en",
		Timezone:           "UTC",
		EmailNotifications: true,
		DashboardLayout:    "default",
	}
}

// UserFilter narrows the user listing.
type UserFilter struct {
	Role     Role
	IsActive *bool
	Search   string
}
