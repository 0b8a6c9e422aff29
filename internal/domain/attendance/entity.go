package attendance

import (
	"math"
	"time"
)

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time
	CheckIn    *CheckEvent
	CheckOut   *CheckEvent
	Status     Status
	TotalHours float64
	Overtime   float64
	Notes      *string
	ApprovedBy *string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined employee fields for responses
	EmployeeName       *string
	EmployeeCode       *string
	EmployeeDepartment *string
	EmployeeStatus     *string
}

// CheckEvent is one side of the attendance pair: the moment, where it
// happened, and the request origin.
type CheckEvent struct {
	Time       time.Time `json:"time"`
	Location   string    `json:"location"`
	IPAddress  string    `json:"ipAddress,omitempty"`
	DeviceInfo string    `json:"deviceInfo,omitempty"`
}

type Status string

const (
	StatusPresent      Status = "Present"
	StatusAbsent       Status = "Absent"
	StatusLate         Status = "Late"
	StatusHalfDay      Status = "Half Day"
	StatusWorkFromHome Status = "Work From Home"
)

func Statuses() []string {
	return []string{"Present", "Absent", "Late", "Half Day", "Work From Home"}
}

// DefaultLocation is stamped when a check-in or check-out omits a location.
const DefaultLocation = "Office"

// StandardWorkDayHours is the threshold above which time counts as overtime.
const StandardWorkDayHours = 8.0

// DayOf truncates a timestamp to midnight in its own location. The attendance
// day window is [midnight, midnight+24h).
func DayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ComputeWorkHours derives totalHours and overtime from the check-in and
// check-out times. Both values are rounded to 2 decimal places; overtime is
// the portion beyond the standard work day, never negative. Recomputing from
// the same inputs always yields the same outputs.
func ComputeWorkHours(checkIn, checkOut time.Time) (totalHours, overtime float64) {
	totalHours = round2(checkOut.Sub(checkIn).Hours())
	if totalHours > StandardWorkDayHours {
		overtime = round2(totalHours - StandardWorkDayHours)
	}
	return totalHours, overtime
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
