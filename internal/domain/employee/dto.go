package employee

import (
	"time"

	"github.com/nishan-khiva/HRMS-project/internal/pkg/pagination"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FullName    string  `json:"fullName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	DateOfBirth *string `json:"dateOfBirth,omitempty"`
	Gender      *string `json:"gender,omitempty"`
	Department  string  `json:"department"`
	Position    string  `json:"position"`
	Role        *string `json:"role,omitempty"`
	JoiningDate string  `json:"joiningDate"`
	Salary      float64 `json:"salary"`
	Status      *string `json:"status,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "fullName is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "a valid email is required"})
	}
	if !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a 10-digit number"})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "dateOfBirth", Message: "dateOfBirth must be YYYY-MM-DD"})
		}
	}
	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{"Male", "Female", "Other"}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be Male, Female or Other"})
	}
	if !validator.IsInSlice(r.Department, Departments()) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must be one of IT, HR, Finance, Marketing, Sales, Operations"})
	}
	if validator.IsEmpty(r.Position) {
		errs = append(errs, validator.ValidationError{Field: "position", Message: "position is required"})
	}
	if r.Role != nil && !validator.IsInSlice(*r.Role, Roles()) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee, hr or admin"})
	}
	if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "joiningDate", Message: "joiningDate must be YYYY-MM-DD"})
	}
	if r.Salary < 0 {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Active, Inactive or Terminated"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateEmployeeRequest struct {
	ID          string   `json:"-"`
	FullName    *string  `json:"fullName,omitempty"`
	Email       *string  `json:"email,omitempty"`
	Phone       *string  `json:"phone,omitempty"`
	DateOfBirth *string  `json:"dateOfBirth,omitempty"`
	Gender      *string  `json:"gender,omitempty"`
	Department  *string  `json:"department,omitempty"`
	Position    *string  `json:"position,omitempty"`
	JoiningDate *string  `json:"joiningDate,omitempty"`
	Salary      *float64 `json:"salary,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "fullName", Message: "fullName must not be empty"})
	}
	if r.Email != nil && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "email must be valid"})
	}
	if r.Phone != nil && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "phone must be a 10-digit number"})
	}
	if r.DateOfBirth != nil {
		if _, ok := validator.IsValidDate(*r.DateOfBirth); !ok {
			errs = append(errs, validator.ValidationError{Field: "dateOfBirth", Message: "dateOfBirth must be YYYY-MM-DD"})
		}
	}
	if r.Gender != nil && !validator.IsInSlice(*r.Gender, []string{"Male", "Female", "Other"}) {
		errs = append(errs, validator.ValidationError{Field: "gender", Message: "gender must be Male, Female or Other"})
	}
	if r.Department != nil && !validator.IsInSlice(*r.Department, Departments()) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must be one of IT, HR, Finance, Marketing, Sales, Operations"})
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joiningDate", Message: "joiningDate must be YYYY-MM-DD"})
		}
	}
	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}
	if r.Status != nil && !validator.IsInSlice(*r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Active, Inactive or Terminated"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateRoleRequest struct {
	ID   string `json:"-"`
	Role string `json:"role"`
}

func (r *UpdateRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{Field: "id", Message: "id is required"})
	}
	if !validator.IsInSlice(r.Role, Roles()) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "role must be employee, hr or admin"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BulkUpdateStatusRequest struct {
	EmployeeIDs []string `json:"employeeIds"`
	Status      string   `json:"status"`
}

func (r *BulkUpdateStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "employeeIds", Message: "employeeIds must be a non-empty array"})
	}
	if !validator.IsInSlice(r.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "status must be Active, Inactive or Terminated"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ConvertCandidateRequest carries optional overrides applied on top of the
// candidate's own data during an explicit conversion.
type ConvertCandidateRequest struct {
	CandidateID string   `json:"-"`
	Department  *string  `json:"department,omitempty"`
	Position    *string  `json:"position,omitempty"`
	JoiningDate *string  `json:"joiningDate,omitempty"`
	Salary      *float64 `json:"salary,omitempty"`
}

func (r *ConvertCandidateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.CandidateID) {
		errs = append(errs, validator.ValidationError{Field: "candidateId", Message: "candidateId is required"})
	}
	if r.Department != nil && !validator.IsInSlice(*r.Department, Departments()) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "department must be one of IT, HR, Finance, Marketing, Sales, Operations"})
	}
	if r.JoiningDate != nil {
		if _, ok := validator.IsValidDate(*r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joiningDate", Message: "joiningDate must be YYYY-MM-DD"})
		}
	}
	if r.Salary != nil && *r.Salary < 0 {
		errs = append(errs, validator.ValidationError{Field: "salary", Message: "salary must not be negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeFilter struct {
	Department *string
	Status     *string
	Role       *string
	Search     *string

	pagination.Params
}

func (f *EmployeeFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.Department != nil && !validator.IsInSlice(*f.Department, Departments()) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "unknown department"})
	}
	if f.Status != nil && !validator.IsInSlice(*f.Status, Statuses()) {
		errs = append(errs, validator.ValidationError{Field: "status", Message: "unknown status"})
	}
	if f.Role != nil && !validator.IsInSlice(*f.Role, Roles()) {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "unknown role"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	ID                     string  `json:"id"`
	EmployeeID             string  `json:"employeeId"`
	FullName               string  `json:"fullName"`
	Email                  string  `json:"email"`
	Phone                  string  `json:"phone"`
	DateOfBirth            *string `json:"dateOfBirth,omitempty"`
	Gender                 *string `json:"gender,omitempty"`
	Department             string  `json:"department"`
	Position               string  `json:"position"`
	Role                   string  `json:"role"`
	JoiningDate            string  `json:"joiningDate"`
	Salary                 string  `json:"salary"`
	Status                 string  `json:"status"`
	ConvertedFromCandidate *string `json:"convertedFromCandidate,omitempty"`
	CreatedAt              string  `json:"createdAt"`
	UpdatedAt              string  `json:"updatedAt"`
}

func NewEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:                     e.ID,
		EmployeeID:             e.EmployeeCode,
		FullName:               e.FullName,
		Email:                  e.Email,
		Phone:                  e.Phone,
		Department:             string(e.Department),
		Position:               e.Position,
		Role:                   string(e.Role),
		JoiningDate:            e.JoiningDate.Format("2006-01-02"),
		Salary:                 e.Salary.StringFixed(2),
		Status:                 string(e.Status),
		ConvertedFromCandidate: e.ConvertedFromCandidateID,
		CreatedAt:              e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:              e.UpdatedAt.Format(time.RFC3339),
	}
	if e.DateOfBirth != nil {
		dob := e.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &dob
	}
	if e.Gender != nil {
		g := string(*e.Gender)
		resp.Gender = &g
	}
	return resp
}

type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
	Meta      pagination.Meta    `json:"-"`
}

type DepartmentCount struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type RoleCount struct {
	Role  string `json:"role"`
	Count int64  `json:"count"`
}

type StatsResponse struct {
	TotalEmployees  int64              `json:"totalEmployees"`
	ActiveEmployees int64              `json:"activeEmployees"`
	DepartmentStats []DepartmentCount  `json:"departmentStats"`
	RoleStats       []RoleCount        `json:"roleStats"`
	RecentEmployees []EmployeeResponse `json:"recentEmployees"`
}
