package candidate

import "time"

type Candidate struct {
	ID         string
	FullName   string
	Email      string
	Phone      string
	Experience int
	Position   Position
	Status     Status
	Resume     *Resume
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Resume holds attachment metadata; the file itself lives in external storage.
type Resume struct {
	FileName   string    `json:"fileName"`
	FileURL    string    `json:"fileUrl"`
	UploadedAt time.Time `json:"uploadedAt"`
}

type Position string

const (
	PositionDesigner      Position = "Designer"
	PositionDeveloper     Position = "Developer"
	PositionHumanResource Position = "Human Resource"
)

func Positions() []string {
	return []string{"Designer", "Developer", "Human Resource"}
}

type Status string

const (
	StatusPending     Status = "Pending"
	StatusShortlisted Status = "Shortlisted"
	StatusSelected    Status = "Selected"
	StatusRejected    Status = "Rejected"
)

func Statuses() []string {
	return []string{"Pending", "Shortlisted", "Selected", "Rejected"}
}

// DepartmentForPosition maps a candidate position to the department the
// converted employee is placed in.
func DepartmentForPosition(position Position) string {
	switch position {
	case PositionDeveloper, PositionDesigner:
		return "IT"
	case PositionHumanResource:
		return "HR"
	default:
		return "Operations"
	}
}
