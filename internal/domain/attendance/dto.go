package attendance

import (
	"time"

	"github.com/nishan-khiva/HRMS-project/internal/pkg/pagination"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/validator"
)

// CheckRequest is shared by check-in and check-out. Origin metadata is filled
// in by the handler from the request, not the client payload.
type CheckRequest struct {
	EmployeeID string  `json:"employeeId"`
	Location   *string `json:"location,omitempty"`

	IPAddress  string `json:"-"`
	DeviceInfo string `json:"-"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employeeId", Message: "employeeId is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAttendanceRequest struct {
	ID           string  `json:"-"`
	CheckInTime  *string `json:"checkInTime,omitempty"`
	CheckOutTime *string `json:"checkOutTime,omitempty"`
	Status       *string `json:"status,omitempty"`
	Notes        *string `json:"notes,omitempty"`
	ApprovedBy   *string `json:"approvedBy,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.CheckInTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckInTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "checkInTime", Message: "checkInTime must be an ISO8601 timestamp"})
		}
	}
	if r.CheckOutTime != nil {
		if _, ok := validator.IsValidDateTime(*r.CheckOutTime); !ok {
			errs = append(errs, validator.ValidationError{Field: "checkOutTime", Message: "checkOutTime must be an ISO8601 timestamp"})
		}
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Present, Absent, Late, Half Day or Work From Home"})
	}
	if r.Notes != nil && len(*r.Notes) > 500 {
		errs = append(errs, validator.ValidationError{Field: "notes", Message: "notes cannot exceed 500 characters"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceFilter struct {
	EmployeeID *string
	Status     *string
	Date       *string
	StartDate  *string
	EndDate    *string

	pagination.Params
}

func (f *AttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}
	if f.Date != nil {
		if _, ok := validator.IsValidDate(*f.Date); !ok {
			errs = append(errs, validator.ValidationError{Field: "date", Message: "date must be YYYY-MM-DD"})
		}
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

type AttendanceResponse struct {
	ID           string      `json:"id"`
	EmployeeID   string      `json:"employeeId"`
	EmployeeName *string     `json:"employeeName,omitempty"`
	EmployeeCode *string     `json:"employeeCode,omitempty"`
	Department   *string     `json:"department,omitempty"`
	Date         string      `json:"date"`
	CheckIn      *CheckEvent `json:"checkIn,omitempty"`
	CheckOut     *CheckEvent `json:"checkOut,omitempty"`
	Status       string      `json:"status"`
	TotalHours   float64     `json:"totalHours"`
	Overtime     float64     `json:"overtime"`
	Notes        *string     `json:"notes,omitempty"`
	ApprovedBy   *string     `json:"approvedBy,omitempty"`
	ApprovedAt   *string     `json:"approvedAt,omitempty"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt"`
}

func NewAttendanceResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:           a.ID,
		EmployeeID:   a.EmployeeID,
		EmployeeName: a.EmployeeName,
		EmployeeCode: a.EmployeeCode,
		Department:   a.EmployeeDepartment,
		Date:         a.Date.Format("2006-01-02"),
		CheckIn:      a.CheckIn,
		CheckOut:     a.CheckOut,
		Status:       string(a.Status),
		TotalHours:   a.TotalHours,
		Overtime:     a.Overtime,
		Notes:        a.Notes,
		ApprovedBy:   a.ApprovedBy,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
	if a.ApprovedAt != nil {
		at := a.ApprovedAt.Format(time.RFC3339)
		resp.ApprovedAt = &at
	}
	return resp
}

type ListAttendanceResponse struct {
	Attendance []AttendanceResponse `json:"attendance"`
	Meta       pagination.Meta      `json:"-"`
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

// DailyBucket is one day of the current month's attendance breakdown.
type DailyBucket struct {
	Date    string `json:"date"`
	Present int64  `json:"present"`
	Absent  int64  `json:"absent"`
	Late    int64  `json:"late"`
}

type StatsResponse struct {
	TodayAttendance int64         `json:"todayAttendance"`
	ActiveEmployees int64         `json:"activeEmployees"`
	StatusStats     []StatusCount `json:"statusStats"`
	MonthlyStats    []DailyBucket `json:"monthlyStats"`
}
