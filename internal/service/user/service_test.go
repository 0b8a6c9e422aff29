package user

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/nishan-khiva/HRMS-project/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	users map[string]*user.User
}

func seededUserRepo() *fakeUserRepo {
	now := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	return &fakeUserRepo{users: map[string]*user.User{
		"user-1": {
			ID:        "user-1",
			FullName:  "Jane Roe",
			Email:     "jane@example.com",
			Role:      user.RoleEmployee,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
		"user-2": {
			ID:        "user-2",
			FullName:  "Sam Admin",
			Email:     "sam@example.com",
			Role:      user.RoleAdmin,
			IsActive:  true,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
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
		if u.Email == email {
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

func newTestService(repo *fakeUserRepo) *UserServiceImpl {
	return &UserServiceImpl{userRepo: repo, logger: testLogger()}
}

func TestUserService_Get(t *testing.T) {
	svc := newTestService(seededUserRepo())

	resp, err := svc.Get(context.Background(), "user-1")

	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", resp.FullName)
	assert.Equal(t, "employee", resp.Role)
}

func TestUserService_Get_NotFound(t *testing.T) {
	svc := newTestService(seededUserRepo())

	_, err := svc.Get(context.Background(), "missing")

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestUserService_List(t *testing.T) {
	svc := newTestService(seededUserRepo())

	resp, err := svc.List(context.Background(), user.UserFilter{})

	require.NoError(t, err)
	assert.Len(t, resp.Users, 2)
	assert.Equal(t, int64(2), resp.Meta.Total)
}

func TestUserService_Update_PatchesFields(t *testing.T) {
	svc := newTestService(seededUserRepo())

	name := "Jane R. Roe"
	email := "jane.roe@example.com"
	resp, err := svc.Update(context.Background(), user.UpdateUserRequest{
		ID:       "user-1",
		FullName: &name,
		Email:    &email,
	})

	require.NoError(t, err)
	assert.Equal(t, "Jane R. Roe", resp.FullName)
	assert.Equal(t, "jane.roe@example.com", resp.Email)
	assert.Equal(t, "employee", resp.Role)
}

func TestUserService_Update_InvalidEmail(t *testing.T) {
	svc := newTestService(seededUserRepo())

	email := "not-an-email"
	_, err := svc.Update(context.Background(), user.UpdateUserRequest{ID: "user-1", Email: &email})

	assert.Error(t, err)
}

func TestUserService_UpdateRole(t *testing.T) {
	svc := newTestService(seededUserRepo())

	resp, err := svc.UpdateRole(context.Background(), user.UpdateRoleRequest{ID: "user-1", Role: "hr"})

	require.NoError(t, err)
	assert.Equal(t, "hr", resp.Role)
}

func TestUserService_UpdateRole_Unknown(t *testing.T) {
	svc := newTestService(seededUserRepo())

	_, err := svc.UpdateRole(context.Background(), user.UpdateRoleRequest{ID: "user-1", Role: "superuser"})

	assert.Error(t, err)
}

func TestUserService_ToggleStatus(t *testing.T) {
	svc := newTestService(seededUserRepo())

	resp, err := svc.ToggleStatus(context.Background(), "user-1")
	require.NoError(t, err)
	assert.False(t, resp.IsActive)

	resp, err = svc.ToggleStatus(context.Background(), "user-1")
	require.NoError(t, err)
	assert.True(t, resp.IsActive)
}

func TestUserService_Delete(t *testing.T) {
	repo := seededUserRepo()
	svc := newTestService(repo)

	require.NoError(t, svc.Delete(context.Background(), "user-2"))

	_, err := svc.Get(context.Background(), "user-2")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
