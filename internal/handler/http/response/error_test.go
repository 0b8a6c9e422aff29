package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nishan-khiva/HRMS-project/internal/domain/attendance"
	"github.com/nishan-khiva/HRMS-project/internal/domain/auth"
	"github.com/nishan-khiva/HRMS-project/internal/domain/candidate"
	"github.com/nishan-khiva/HRMS-project/internal/domain/employee"
	"github.com/nishan-khiva/HRMS-project/internal/domain/leave"
	"github.com/nishan-khiva/HRMS-project/internal/domain/user"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/validator"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid credentials", auth.ErrInvalidCredentials, http.StatusUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"user not found", user.ErrUserNotFound, http.StatusNotFound},
		{"user email exists", user.ErrEmailExists, http.StatusConflict},
		{"user inactive", user.ErrUserInactive, http.StatusForbidden},
		{"user self action", user.ErrSelfAction, http.StatusBadRequest},
		{"employee not found", employee.ErrEmployeeNotFound, http.StatusNotFound},
		{"employee not active", employee.ErrEmployeeNotActive, http.StatusBadRequest},
		{"employee email exists", employee.ErrEmailExists, http.StatusConflict},
		{"candidate converted", employee.ErrCandidateConverted, http.StatusConflict},
		{"no employees updated", employee.ErrNoEmployeesUpdated, http.StatusNotFound},
		{"candidate not found", candidate.ErrCandidateNotFound, http.StatusNotFound},
		{"candidate email exists", candidate.ErrEmailExists, http.StatusConflict},
		{"already checked in", attendance.ErrAlreadyCheckedIn, http.StatusConflict},
		{"not checked in", attendance.ErrNotCheckedIn, http.StatusConflict},
		{"already checked out", attendance.ErrAlreadyCheckedOut, http.StatusConflict},
		{"attendance not found", attendance.ErrAttendanceNotFound, http.StatusNotFound},
		{"leave not found", leave.ErrLeaveNotFound, http.StatusNotFound},
		{"overlapping leave", leave.ErrOverlappingLeave, http.StatusConflict},
		{"not present today", leave.ErrNotPresentToday, http.StatusBadRequest},
		{"invalid transition", leave.ErrInvalidTransition, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			if rec.Code != tt.want {
				t.Errorf("HandleError(%v) status = %d, want %d", tt.err, rec.Code, tt.want)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("Content-Type = %q, want application/json", ct)
			}

			var body Response
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decoding body: %v", err)
			}
			if body.Status != "error" {
				t.Errorf("Status = %q, want error", body.Status)
			}
			if body.Message == "" {
				t.Error("Message is empty")
			}
		})
	}
}

func TestHandleError_WrappedError(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, errors.Join(errors.New("query failed"), leave.ErrLeaveNotFound))

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestHandleError_ValidationErrors(t *testing.T) {
	errs := validator.ValidationErrors{
		{Field: "email", Message: "email must be a valid email address"},
		{Field: "password", Message: "password is required"},
	}

	rec := httptest.NewRecorder()
	HandleError(rec, errs)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var body Response
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Details["email"] == "" || body.Details["password"] == "" {
		t.Errorf("Details = %v, want both fields present", body.Details)
	}
}
