package dto

type CreateUserRequest struct {
	Name       string `json:"name" validate:"required,notblank,min=2,max=100"`
	Email      string `json:"email" validate:"required,email,max=255"`
	Password   string `json:"password" validate:"required,min=8,max=128"`
	Role       string `json:"role" validate:"required,oneof=super_admin admin cms_editor sales_manager sales_rep hr_manager support user"`
	Phone      string `json:"phone" validate:"omitempty,max=30"`
	Department string `json:"department" validate:"omitempty,max=100"`
	IsVerified bool   `json:"is_verified"`
}

type UpdateUserRequest struct {
	Name       *string `json:"name" validate:"omitempty,notblank,min=2,max=100"`
	Email      *string `json:"email" validate:"omitempty,email,max=255"`
	Phone      *string `json:"phone" validate:"omitempty,max=30"`
	Department *string `json:"department" validate:"omitempty,max=100"`
	Avatar     *string `json:"avatar" validate:"omitempty,max=500"`
	IsVerified *bool   `json:"is_verified"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=super_admin admin cms_editor sales_manager sales_rep hr_manager support user"`
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}
