package user

import (
	"time"

	"github.com/nishan-khiva/HRMS-project/internal/pkg/pagination"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/validator"
)

type UpdateUserRequest struct {
	ID       string  `json:"-"`
	FullName *string `json:"fullName,omitempty"`
	Email    *string `json:"email,omitempty"`
	Role     *string `json:"role,omitempty"`
}

func (r *UpdateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "fullName cannot be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be a valid email address"})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, Roles()) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee, hr or admin"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRoleRequest struct {
	ID   string `json:"-"`
	Role string `json:"role"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if !validator.IsInSlice(r.Role, Roles()) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee, hr or admin"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserFilter struct {
	Role     *string
	IsActive *bool
	Search   *string

	pagination.Params
}

func (f *UserFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Role != nil && !validator.IsInSlice(*f.Role, Roles()) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UserResponse struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"isActive"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func NewUserResponse(u User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      string(u.Role),
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
		UpdatedAt: u.UpdatedAt.Format(time.RFC3339),
	}
}

type ListUsersResponse struct {
	Users []UserResponse  `json:"users"`
	Meta  pagination.Meta `json:"-"`
}
