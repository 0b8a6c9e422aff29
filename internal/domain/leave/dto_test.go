package leave

import (
	"errors"
	"testing"

	"github.com/nishan-khiva/HRMS-project/internal/pkg/validator"
)

func TestCreateLeaveRequest_Validate(t *testing.T) {
	valid := CreateLeaveRequest{
		EmployeeID: "emp-1",
		LeaveType:  "Casual",
		StartDate:  "2025-03-10",
		EndDate:    "2025-03-12",
		Reason:     "family function",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid request rejected: %v", err)
	}

	endBeforeStart := valid
	endBeforeStart.EndDate = "2025-03-09"
	assertFieldError(t, endBeforeStart.Validate(), "endDate")

	badType := valid
	badType.LeaveType = "Sabbatical"
	assertFieldError(t, badType.Validate(), "leaveType")

	noReason := valid
	noReason.Reason = "  "
	assertFieldError(t, noReason.Validate(), "reason")
}

func TestUpdateStatusRequest_Validate(t *testing.T) {
	approve := UpdateStatusRequest{ID: "leave-1", Status: "Approved"}
	if err := approve.Validate(); err != nil {
		t.Fatalf("approve rejected: %v", err)
	}

	// Rejection without a reason is invalid.
	reject := UpdateStatusRequest{ID: "leave-1", Status: "Rejected"}
	assertFieldError(t, reject.Validate(), "rejectionReason")

	reason := "insufficient balance"
	reject.RejectionReason = &reason
	if err := reject.Validate(); err != nil {
		t.Fatalf("reject with reason rejected: %v", err)
	}

	// Pending is not a settable target.
	pending := UpdateStatusRequest{ID: "leave-1", Status: "Pending"}
	assertFieldError(t, pending.Validate(), "status")
}

func assertFieldError(t *testing.T, err error, field string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected validation error on %s, got nil", field)
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if _, ok := errs.ToMap()[field]; !ok {
		t.Errorf("expected error on field %s, got %v", field, errs.ToMap())
	}
}
