package leave

import "time"

type Leave struct {
	ID              string
	EmployeeID      string
	LeaveType       Type
	StartDate       time.Time
	EndDate         time.Time
	HalfDay         bool
	Reason          string
	Status          Status
	TotalDays       float64
	ApprovedBy      *string
	ApprovedAt      *time.Time
	RejectionReason *string
	Documents       []Document
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined employee fields for responses
	EmployeeName       *string
	EmployeeCode       *string
	EmployeeDepartment *string
}

type Document struct {
	FileName   string    `json:"fileName"`
	FileURL    string    `json:"fileUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Type string

const (
	TypeCasual Type = "Casual"
	TypeSick   Type = "Sick"
	TypeEarned Type = "Earned"
	TypeUnpaid Type = "Unpaid"
)

func Types() []string {
	return []string{"Casual", "Sick", "Earned", "Unpaid"}
}

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

func Statuses() []string {
	return []string{"Pending", "Approved", "Rejected", "Cancelled"}
}

// Overlaps reports whether [s1,e1] and [s2,e2] share at least one calendar
// day. Both ends are inclusive: s1 <= e2 && s2 <= e1.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !s2.After(e1)
}

// TotalDays derives the day count of a leave range. A half-day request counts
// as 0.5 regardless of the range; otherwise the count is inclusive of both
// ends.
func TotalDays(start, end time.Time, halfDay bool) float64 {
	if halfDay {
		return 0.5
	}
	days := int(end.Sub(start).Hours()/24) + 1
	return float64(days)
}

// CanTransition reports whether a leave may move from one status to another.
// Pending can be approved, rejected or cancelled; an approved leave can only
// be cancelled; Rejected and Cancelled are terminal.
func CanTransition(from, to Status) bool {
	switch from {
	case StatusPending:
		return to == StatusApproved || to == StatusRejected || to == StatusCancelled
	case StatusApproved:
		return to == StatusCancelled
	default:
		return false
	}
}
