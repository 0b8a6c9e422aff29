package employee

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID                       string
	EmployeeCode             string
	FullName                 string
	Email                    string
	Phone                    string
	DateOfBirth              *time.Time
	Gender                   *Gender
	Department               Department
	Position                 string
	Role                     Role
	JoiningDate              time.Time
	Salary                   decimal.Decimal
	Status                   Status
	ConvertedFromCandidateID *string
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type Department string

const (
	DepartmentIT         Department = "IT"
	DepartmentHR         Department = "HR"
	DepartmentFinance    Department = "Finance"
	DepartmentMarketing  Department = "Marketing"
	DepartmentSales      Department = "Sales"
	DepartmentOperations Department = "Operations"
)

func Departments() []string {
	return []string{"IT", "HR", "Finance", "Marketing", "Sales", "Operations"}
}

type Role string

const (
	RoleEmployee Role = "employee"
	RoleHR       Role = "hr"
	RoleAdmin    Role = "admin"
)

func Roles() []string {
	return []string{"employee", "hr", "admin"}
}

type Status string

const (
	StatusActive     Status = "Active"
	StatusInactive   Status = "Inactive"
	StatusTerminated Status = "Terminated"
)

func Statuses() []string {
	return []string{"Active", "Inactive", "Terminated"}
}

// FormatCode renders the human-readable employee code for the nth employee.
// n comes from a database sequence so concurrent creations never collide.
func FormatCode(n int64) string {
	return fmt.Sprintf("EMP%04d", n)
}
