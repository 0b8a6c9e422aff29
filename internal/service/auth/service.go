package auth

import (
	"context"
	"log/slog"

	"github.com/nishan-khiva/HRMS-project/internal/domain/auth"
	"github.com/nishan-khiva/HRMS-project/internal/domain/user"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	userRepo   user.UserRepository
	jwtService jwt.Service
	logger     *slog.Logger
}

func NewAuthService(userRepo user.UserRepository, jwtService jwt.Service, logger *slog.Logger) auth.AuthService {
	return &AuthServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register implements auth.AuthService. New accounts default to the employee
// role unless one is supplied.
func (s *AuthServiceImpl) Register(ctx context.Context, req auth.RegisterRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, user.ErrEmailExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	u := user.User{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, &u); err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.String("user_id", u.ID),
		slog.String("role", string(u.Role)),
	)

	return s.loginResponse(u)
}

// Login implements auth.AuthService. A missing account and a wrong password
// are indistinguishable to the caller.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, auth.ErrInvalidCredentials
	}
	if !u.IsActive {
		return nil, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	s.logger.Info("user logged in", slog.String("user_id", u.ID))

	return s.loginResponse(*u)
}

// Me implements auth.AuthService.
func (s *AuthServiceImpl) Me(ctx context.Context, userID string) (*user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := user.NewUserResponse(*u)
	return &resp, nil
}

func (s *AuthServiceImpl) loginResponse(u user.User) (*auth.LoginResponse, error) {
	token, _, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}

	return &auth.LoginResponse{
		AccessToken: token,
		User:        user.NewUserResponse(u),
	}, nil
}
