package leave

import (
	"time"

	"github.com/nishan-khiva/HRMS-project/internal/pkg/pagination"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/validator"
)

type CreateLeaveRequest struct {
	EmployeeID string `json:"employeeId"`
	LeaveType  string `json:"leaveType"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	HalfDay    bool   `json:"halfDay"`
	Reason     string `json:"reason"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}
	if !validator.IsInSlice(r.LeaveType, Types()) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "leaveType must be Casual, Sick, Earned or Unpaid"})
	}
	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be YYYY-MM-DD"})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be YYYY-MM-DD"})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must not be before startDate"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason is required"})
	}
	if len(r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason cannot exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateLeaveRequest struct {
	ID        string  `json:"-"`
	LeaveType *string `json:"leaveType,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	HalfDay   *bool   `json:"halfDay,omitempty"`
	Reason    *string `json:"reason,omitempty"`
}

func (r *UpdateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.LeaveType != nil && !validator.IsInSlice(*r.LeaveType, Types()) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "leaveType must be Casual, Sick, Earned or Unpaid"})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be YYYY-MM-DD"})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be YYYY-MM-DD"})
		}
	}
	if r.Reason != nil && len(*r.Reason) > 500 {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "reason cannot exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateStatusRequest struct {
	ID              string  `json:"-"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejectionReason,omitempty"`

	// ApproverID is taken from the authenticated user, not the payload.
	ApproverID string `json:"-"`
}

func (r *UpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if !validator.IsInSlice(r.Status, []string{"Approved", "Rejected", "Cancelled"}) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Approved, Rejected or Cancelled"})
	}
	if r.Status == "Rejected" && (r.RejectionReason == nil || validator.IsEmpty(*r.RejectionReason)) {
		errs = append(errs, validator.ValidationError{Field: "rejectionReason", Message: "rejectionReason is required when rejecting a leave"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AddDocumentsRequest struct {
	ID        string     `json:"-"`
	Documents []Document `json:"documents"`
}

func (r *AddDocumentsRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if len(r.Documents) == 0 {
		errs = append(errs, validator.ValidationError{Field: "documents", Message: "documents must be a non-empty array"})
	}
	for _, doc := range r.Documents {
		if validator.IsEmpty(doc.FileName) || validator.IsEmpty(doc.FileURL) {
			errs = append(errs, validator.ValidationError{Field: "documents", Message: "every document needs fileName and fileUrl"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveFilter struct {
	EmployeeID *string
	Status     *string
	LeaveType  *string
	StartDate  *string
	EndDate    *string
	Search     *string

	pagination.Params
}

func (f *LeaveFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}
	if f.LeaveType != nil && !validator.IsInSlice(*f.LeaveType, Types()) {
		errs = append(errs, validator.ValidationError{Field: "leaveType", Message: "unknown leave type"})
	}
	if f.StartDate != nil {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be YYYY-MM-DD"})
		}
	}
	if f.EndDate != nil {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be YYYY-MM-DD"})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LeaveResponse struct {
	ID              string     `json:"id"`
	EmployeeID      string     `json:"employeeId"`
	EmployeeName    *string    `json:"employeeName,omitempty"`
	EmployeeCode    *string    `json:"employeeCode,omitempty"`
	Department      *string    `json:"department,omitempty"`
	LeaveType       string     `json:"leaveType"`
	StartDate       string     `json:"startDate"`
	EndDate         string     `json:"endDate"`
	HalfDay         bool       `json:"halfDay"`
	Reason          string     `json:"reason"`
	Status          string     `json:"status"`
	TotalDays       float64    `json:"totalDays"`
	ApprovedBy      *string    `json:"approvedBy,omitempty"`
	ApprovedAt      *string    `json:"approvedAt,omitempty"`
	RejectionReason *string    `json:"rejectionReason,omitempty"`
	Documents       []Document `json:"documents,omitempty"`
	CreatedAt       string     `json:"createdAt"`
	UpdatedAt       string     `json:"updatedAt"`
}

func NewLeaveResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID,
		EmployeeID:      l.EmployeeID,
		EmployeeName:    l.EmployeeName,
		EmployeeCode:    l.EmployeeCode,
		Department:      l.EmployeeDepartment,
		LeaveType:       string(l.LeaveType),
		StartDate:       l.StartDate.Format("2006-01-02"),
		EndDate:         l.EndDate.Format("2006-01-02"),
		HalfDay:         l.HalfDay,
		Reason:          l.Reason,
		Status:          string(l.Status),
		TotalDays:       l.TotalDays,
		ApprovedBy:      l.ApprovedBy,
		RejectionReason: l.RejectionReason,
		Documents:       l.Documents,
		CreatedAt:       l.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       l.UpdatedAt.Format(time.RFC3339),
	}
	if l.ApprovedAt != nil {
		at := l.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	return resp
}

type ListLeavesResponse struct {
	Leaves []LeaveResponse `json:"leaves"`
	Meta   pagination.Meta `json:"-"`
}

// CalendarEntry is one employee's approved leave on a specific day.
type CalendarEntry struct {
	ID           string `json:"id"`
	EmployeeName string `json:"employeeName"`
	EmployeeCode string `json:"employeeCode"`
	Department   string `json:"department"`
	LeaveType    string `json:"leaveType"`
	Reason       string `json:"reason"`
	HalfDay      bool   `json:"halfDay"`
}

// CalendarResponse maps ISO dates to the employees on approved leave that day.
type CalendarResponse map[string][]CalendarEntry

type TypeCount struct {
	LeaveType string `json:"leaveType"`
	Count     int64  `json:"count"`
	Approved  int64  `json:"approved"`
	Pending   int64  `json:"pending"`
	Rejected  int64  `json:"rejected"`
}

type MonthlyBucket struct {
	Month          int     `json:"month"`
	TotalLeaves    int64   `json:"totalLeaves"`
	ApprovedLeaves int64   `json:"approvedLeaves"`
	TotalDays      float64 `json:"totalDays"`
}

type StatsResponse struct {
	TotalLeaves    int64           `json:"totalLeaves"`
	PendingLeaves  int64           `json:"pendingLeaves"`
	ApprovedLeaves int64           `json:"approvedLeaves"`
	RejectedLeaves int64           `json:"rejectedLeaves"`
	LeaveTypeStats []TypeCount     `json:"leaveTypeStats"`
	MonthlyStats   []MonthlyBucket `json:"monthlyStats"`
}
