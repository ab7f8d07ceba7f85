package usecase

import (
	"teleradiology-api/internal/domain/entity"
	"teleradiology-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RequestMeta describes where a public submission came from.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// loadAssignee returns the staff member work is being handed to. Inactive
// accounts and plain site users cannot be assigned anything.
func loadAssignee(db *gorm.DB, userRepo repository.UserRepository, id uuid.UUID) (*entity.User, error) {
	user, err := userRepo.FindByID(db, id)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.IsActive || !user.Role.IsStaff() {
		return nil, ErrAssigneeNotFound
	}
	return user, nil
}
