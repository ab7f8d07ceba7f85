package usecase

import (
	"errors"
	"strings"
	"time"

	"teleradiology-api/pkg/apperror"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrEmailAlreadyRegistered = apperror.BadRequest("Email already registered")
	ErrEmailInUse             = apperror.BadRequest("Email is already in use")
	ErrInvalidCredentials     = apperror.Unauthorized("Invalid email or password")
	ErrAccountInactive        = apperror.Forbidden("Account has been deactivated")
	ErrAccountLocked          = apperror.Forbidden("Account is temporarily locked due to too many failed login attempts")
	ErrInvalidToken           = apperror.Unauthorized("Invalid or expired token")
	ErrTokenRevoked           = apperror.Unauthorized("Token has been revoked.")
	ErrUserNotFound           = apperror.NotFound("User not found")
	ErrIncorrectPassword      = apperror.BadRequest("Current password is incorrect")
	ErrInvalidResetToken      = apperror.BadRequest("Invalid or expired reset token")
	ErrInvalidVerifyToken     = apperror.BadRequest("Invalid or expired verification token")
	ErrAlreadyVerified        = apperror.BadRequest("Email is already verified")
	ErrCannotDeleteSelf       = apperror.BadRequest("You cannot delete your own account")
	ErrCannotDemoteSelf       = apperror.BadRequest("You cannot change your own role or status")

	ErrContentNotFound = apperror.NotFound("Content not found")
	ErrVersionNotFound = apperror.NotFound("Content version not found")

	ErrContactNotFound  = apperror.NotFound("Contact not found")
	ErrAssigneeNotFound = apperror.BadRequest("Assignee not found or inactive")

	ErrApplicationNotFound     = apperror.NotFound("Application not found")
	ErrApplicationExists       = apperror.BadRequest("An application with this email already exists")
	ErrRejectionReasonRequired = apperror.BadRequest("Rejection reason is required")

	ErrLeadNotFound = apperror.NotFound("Sales lead not found")

	ErrAuditLogNotFound = apperror.NotFound("Audit log not found")

	ErrUploadCategoryNotFound = apperror.NotFound("Upload category not found")
	ErrFileNotFound           = apperror.NotFound("File not found")
	ErrFileRequired           = apperror.BadRequest("File is required")
	ErrFileTypeNotAllowed     = apperror.BadRequest("File type not allowed")

	ErrInvalidDateFormat = apperror.BadRequest("invalid date format, use YYYY-MM-DD")
)

// isDuplicateKeyError checks if the error is a unique constraint violation
// containing the specified constraint name
func isDuplicateKeyError(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// PostgreSQL error code 23505 = unique_violation
		return pgErr.Code == "23505" && strings.Contains(strings.ToLower(pgErr.ConstraintName), strings.ToLower(constraintName))
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}
	return &t, nil
}

func derefOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

func errSlugTaken(s string) error {
	return apperror.BadRequest("Duplicate field value entered").WithDetails(map[string]string{"slug": s})
}
