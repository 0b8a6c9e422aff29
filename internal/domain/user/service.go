package user

import "context"

type UserService interface {
	Get(ctx context.Context, id string) (*UserResponse, error)
	List(ctx context.Context, filter UserFilter) (*ListUsersResponse, error)
	Update(ctx context.Context, req UpdateUserRequest) (*UserResponse, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (*UserResponse, error)
	ToggleStatus(ctx context.Context, id string) (*UserResponse, error)
	Delete(ctx context.Context, id string) error
}
