package auth

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/nishan-khiva/HRMS-project/internal/domain/auth"
	"github.com/nishan-khiva/HRMS-project/internal/domain/user"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	users map[string]*user.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*user.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return user.ErrEmailExists
		}
	}
	r.seq++
	u.ID = "user-" + strconv.Itoa(r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	copy := *u
	r.users[u.ID] = &copy
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	copy := *u
	return &copy, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			copy := *u
			return &copy, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) List(_ context.Context, _ user.UserFilter) ([]user.User, int64, error) {
	var out []user.User
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return user.ErrUserNotFound
	}
	copy := *u
	r.users[u.ID] = &copy
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return user.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

func newTestService(repo *fakeUserRepo) *AuthServiceImpl {
	return &AuthServiceImpl{
		userRepo:   repo,
		jwtService: jwt.NewJWTService("test-secret-key-for-unit-tests", "1h"),
		logger:     testLogger(),
	}
}

func registerRequest() auth.RegisterRequest {
	return auth.RegisterRequest{
		FullName: "Jane Roe",
		Email:    "jane@example.com",
		Password: "s3cret-pass",
	}
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), registerRequest())

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "jane@example.com", resp.User.Email)
	assert.Equal(t, "employee", resp.User.Role)
	assert.True(t, resp.User.IsActive)

	stored, err := repo.GetByID(context.Background(), resp.User.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("s3cret-pass")))
}

func TestAuthService_Register_ExplicitRole(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	req := registerRequest()
	req.Role = "hr"
	resp, err := svc.Register(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "hr", resp.User.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), registerRequest())
	assert.ErrorIs(t, err, user.ErrEmailExists)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	req := registerRequest()
	req.Password = "abc"
	_, err := svc.Register(context.Background(), req)

	assert.Error(t, err)
}

func TestAuthService_Login_Success(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "s3cret-pass",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, "jane@example.com", resp.User.Email)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "wrong-pass",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), auth.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthService_Login_InactiveUser(t *testing.T) {
	repo := newFakeUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	stored := repo.users[resp.User.ID]
	stored.IsActive = false

	_, err = svc.Login(context.Background(), auth.LoginRequest{
		Email:    "jane@example.com",
		Password: "s3cret-pass",
	})

	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestAuthService_Me(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	resp, err := svc.Register(context.Background(), registerRequest())
	require.NoError(t, err)

	me, err := svc.Me(context.Background(), resp.User.ID)

	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, me.ID)
	assert.Equal(t, "Jane Roe", me.FullName)
}

func TestAuthService_Me_Unknown(t *testing.T) {
	svc := newTestService(newFakeUserRepo())

	_, err := svc.Me(context.Background(), "missing")

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
