package attendance

import "errors"

var (
	ErrAlreadyCheckedIn  = errors.New("employee already checked in today")
	ErrNotCheckedIn      = errors.New("no check-in record found for today")
	ErrAlreadyCheckedOut = errors.New("employee already checked out today")

	ErrAttendanceNotFound = errors.New("attendance record not found")
)
