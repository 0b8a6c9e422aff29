package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/nishan-khiva/HRMS-project/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserService struct {
	deleted []string
	toggled []string
	roled   []string
}

func (s *fakeUserService) Get(_ context.Context, id string) (*user.UserResponse, error) {
	return &user.UserResponse{ID: id}, nil
}

func (s *fakeUserService) List(_ context.Context, _ user.UserFilter) (*user.ListUsersResponse, error) {
	return &user.ListUsersResponse{}, nil
}

func (s *fakeUserService) Update(_ context.Context, req user.UpdateUserRequest) (*user.UserResponse, error) {
	return &user.UserResponse{ID: req.ID}, nil
}

func (s *fakeUserService) UpdateRole(_ context.Context, req user.UpdateRoleRequest) (*user.UserResponse, error) {
	s.roled = append(s.roled, req.ID)
	return &user.UserResponse{ID: req.ID, Role: req.Role}, nil
}

func (s *fakeUserService) ToggleStatus(_ context.Context, id string) (*user.UserResponse, error) {
	s.toggled = append(s.toggled, id)
	return &user.UserResponse{ID: id}, nil
}

func (s *fakeUserService) Delete(_ context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func authenticatedRequest(t *testing.T, method, target, body, userID, paramID string) *http.Request {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("{}")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"user_id": userID, "type": "access"})
	require.NoError(t, err)

	ctx := jwtauth.NewContext(req.Context(), token, nil)
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", paramID)
	ctx = context.WithValue(ctx, chi.RouteCtxKey, rctx)

	return req.WithContext(ctx)
}

func TestUserHandler_Delete_RejectsOwnAccount(t *testing.T) {
	svc := &fakeUserService{}
	h := NewUserHandler(svc)

	req := authenticatedRequest(t, http.MethodDelete, "/users/user-1", "", "user-1", "user-1")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.deleted)
}

func TestUserHandler_Delete_AllowsOtherAccount(t *testing.T) {
	svc := &fakeUserService{}
	h := NewUserHandler(svc)

	req := authenticatedRequest(t, http.MethodDelete, "/users/user-2", "", "user-1", "user-2")
	rec := httptest.NewRecorder()
	h.Delete(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"user-2"}, svc.deleted)
}

func TestUserHandler_ToggleStatus_RejectsOwnAccount(t *testing.T) {
	svc := &fakeUserService{}
	h := NewUserHandler(svc)

	req := authenticatedRequest(t, http.MethodPatch, "/users/user-1/toggle-status", "", "user-1", "user-1")
	rec := httptest.NewRecorder()
	h.ToggleStatus(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.toggled)
}

func TestUserHandler_UpdateRole_RejectsOwnAccount(t *testing.T) {
	svc := &fakeUserService{}
	h := NewUserHandler(svc)

	req := authenticatedRequest(t, http.MethodPatch, "/users/user-1/role", `{"role":"employee"}`, "user-1", "user-1")
	rec := httptest.NewRecorder()
	h.UpdateRole(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, svc.roled)
}

func TestUserHandler_UpdateRole_AllowsOtherAccount(t *testing.T) {
	svc := &fakeUserService{}
	h := NewUserHandler(svc)

	req := authenticatedRequest(t, http.MethodPatch, "/users/user-2/role", `{"role":"admin"}`, "user-1", "user-2")
	rec := httptest.NewRecorder()
	h.UpdateRole(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"user-2"}, svc.roled)
}
