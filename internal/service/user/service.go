package user

import (
	"context"
	"log/slog"

	"github.com/nishan-khiva/HRMS-project/internal/domain/user"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/pagination"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
	logger   *slog.Logger
}

func NewUserService(userRepo user.UserRepository, logger *slog.Logger) user.UserService {
	return &UserServiceImpl{userRepo: userRepo, logger: logger}
}

// Get implements user.UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id string) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := user.NewUserResponse(*u)
	return &resp, nil
}

// List implements user.UserService.
func (s *UserServiceImpl) List(ctx context.Context, filter user.UserFilter) (*user.ListUsersResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	users, total, err := s.userRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, user.NewUserResponse(u))
	}

	return &user.ListUsersResponse{
		Users: responses,
		Meta:  pagination.NewMeta(filter.Page, filter.Limit, total),
	}, nil
}

// Update implements user.UserService.
func (s *UserServiceImpl) Update(ctx context.Context, req user.UpdateUserRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		u.FullName = *req.FullName
	}
	if req.Email != nil {
		u.Email = *req.Email
	}
	if req.Role != nil {
		u.Role = user.Role(*req.Role)
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	resp := user.NewUserResponse(*u)
	return &resp, nil
}

// UpdateRole implements user.UserService.
func (s *UserServiceImpl) UpdateRole(ctx context.Context, req user.UpdateRoleRequest) (*user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	u.Role = user.Role(req.Role)
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user role updated",
		slog.String("user_id", u.ID),
		slog.String("role", req.Role),
	)

	resp := user.NewUserResponse(*u)
	return &resp, nil
}

// ToggleStatus implements user.UserService.
func (s *UserServiceImpl) ToggleStatus(ctx context.Context, id string) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	u.IsActive = !u.IsActive
	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Info("user status toggled",
		slog.String("user_id", u.ID),
		slog.Bool("is_active", u.IsActive),
	)

	resp := user.NewUserResponse(*u)
	return &resp, nil
}

// Delete implements user.UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id string) error {
	return s.userRepo.Delete(ctx, id)
}
