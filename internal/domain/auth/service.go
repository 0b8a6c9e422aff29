package auth

import (
	"context"

	"github.com/nishan-khiva/HRMS-project/internal/domain/user"
)

type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*LoginResponse, error)
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	Me(ctx context.Context, userID string) (*user.UserResponse, error)
}
