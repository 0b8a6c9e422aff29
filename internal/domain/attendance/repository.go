package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access for attendance records. The store
// enforces the one-record-per-(employee, day) invariant with a unique index.
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)

	// GetByEmployeeAndDate returns nil when no record exists for that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*Attendance, error)

	Update(ctx context.Context, att Attendance) error
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]Attendance, int64, error)

	// ListToday returns the day's records restricted to currently Active
	// employees (join-time filter).
	ListToday(ctx context.Context, day time.Time) ([]Attendance, error)

	CountByDay(ctx context.Context, day time.Time) (int64, error)
	CountByStatusForDay(ctx context.Context, day time.Time) ([]StatusCount, error)
	DailyBucketsForMonth(ctx context.Context, monthStart time.Time) ([]DailyBucket, error)
}
