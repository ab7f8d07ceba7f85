package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,notblank,min=2,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Phone    string `json:"phone" validate:"omitempty,max=30"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

type UpdateProfileRequest struct {
	Name        *string             `json:"name" validate:"omitempty,notblank,min=2,max=100"`
	Phone       *string             `json:"phone" validate:"omitempty,max=30"`
	Department  *string             `json:"department" validate:"omitempty,max=100"`
	Avatar      *string             `json:"avatar" validate:"omitempty,max=500"`
	Preferences *PreferencesRequest `json:"preferences"`
}

type PreferencesRequest struct {
	Theme              *string `json:"theme" validate:"omitempty,oneof=light dark system"`
	Language           *string `json:"language" validate:"omitempty,min=2,max=10"`
	Timezone           *string `json:"timezone" validate:"omitempty,max=64"`
	EmailNotifications *bool   `json:"email_notifications"`
	DashboardLayout    *string `json:"dashboard_layout" validate:"omitempty,max=30"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8,max=128,nefield=CurrentPassword"`
}

type ForgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type ResetPasswordRequest struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

type VerifyEmailRequest struct {
	Token string `json:"token" validate:"required"`
}

// Response DTOs

type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

type AuthResponse struct {
	User   *UserResponse  `json:"user"`
	Tokens *TokenResponse `json:"tokens"`
}

type PreferencesResponse struct {
	Theme              string `json:"theme,omitempty"`
	Language           string `json:"language,omitempty"`
	Timezone           string `json:"timezone,omitempty"`
	EmailNotifications bool   `json:"email_notifications"`
	DashboardLayout    string `json:"dashboard_layout,omitempty"`
}

type UserResponse struct {
	ID          uuid.UUID           `json:"id"`
	Name        string              `json:"name"`
	Email       string              `json:"email"`
	Role        string              `json:"role"`
	Permissions []string            `json:"permissions"`
	IsActive    bool                `json:"is_active"`
	IsVerified  bool                `json:"is_verified"`
	IsLocked    bool                `json:"is_locked"`
	Phone       string              `json:"phone,omitempty"`
	Department  string              `json:"department,omitempty"`
	Avatar      string              `json:"avatar,omitempty"`
	Preferences PreferencesResponse `json:"preferences"`
	LastLoginAt *time.Time          `json:"last_login_at,omitempty"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

// UserSummary is the short form embedded in other resources.
type UserSummary struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
