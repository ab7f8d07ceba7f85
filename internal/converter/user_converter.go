package converter

import (
	"teleradiology-api/internal/delivery/dto"
	"teleradiology-api/internal/domain/entity"

	"github.com/samber/lo"
)

// UserToResponse converts a User entity to UserResponse DTO
func UserToResponse(user *entity.User) *dto.UserResponse {
	if user == nil {
		return nil
	}

	return &dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.Role),
		Permissions: user.Role.Permissions(),
		IsActive:    user.IsActive,
		IsVerified:  user.IsVerified,
		IsLocked:    user.IsLocked(now()),
		Phone:       user.Phone,
		Department:  user.Department,
		Avatar:      user.Avatar,
		Preferences: dto.PreferencesResponse(user.Preferences),
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

// UsersToResponses converts a slice of User entities to slice of UserResponse DTOs
func UsersToResponses(users []entity.User) []dto.UserResponse {
	return lo.Map(users, func(u entity.User, _ int) dto.UserResponse {
		return *UserToResponse(&u)
	})
}

// UserToSummary returns nil for relations that were not loaded.
func UserToSummary(user *entity.User) *dto.UserSummary {
	if user == nil {
		return nil
	}
	return &dto.UserSummary{ID: user.ID, Name: user.Name, Email: user.Email}
}
