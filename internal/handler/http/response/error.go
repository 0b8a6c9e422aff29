package response

import (
	"errors"
	"net/http"

	"github.com/nishan-khiva/HRMS-project/internal/domain/attendance"
	"github.com/nishan-khiva/HRMS-project/internal/domain/auth"
	"github.com/nishan-khiva/HRMS-project/internal/domain/candidate"
	"github.com/nishan-khiva/HRMS-project/internal/domain/employee"
	"github.com/nishan-khiva/HRMS-project/internal/domain/leave"
	"github.com/nishan-khiva/HRMS-project/internal/domain/user"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, "Invalid email or password")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is deactivated")
	case errors.Is(err, user.ErrSelfAction):
		BadRequest(w, "You cannot perform this action on your own account", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNotActive):
		BadRequest(w, "Employee is not active", nil)
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrCandidateConverted):
		Conflict(w, "Candidate already converted to an employee")
	case errors.Is(err, employee.ErrNoEmployeesUpdated):
		NotFound(w, "No employees matched the given ids")

	// Candidate domain errors
	case errors.Is(err, candidate.ErrCandidateNotFound):
		NotFound(w, "Candidate not found")
	case errors.Is(err, candidate.ErrAlreadyConverted):
		Conflict(w, "Candidate already converted to an employee")
	case errors.Is(err, candidate.ErrEmailExists):
		Conflict(w, "Candidate email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Employee already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "No check-in record found for today")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Employee already checked out today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrOverlappingLeave):
		Conflict(w, "Leave request overlaps with an existing approved or pending leave")
	case errors.Is(err, leave.ErrNotPresentToday):
		BadRequest(w, "Only present employees can request leaves", nil)
	case errors.Is(err, leave.ErrInvalidTransition):
		BadRequest(w, "Leave request already processed", nil)

	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
