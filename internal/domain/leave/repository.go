package leave

import (
	"context"
	"time"
)

type LeaveRepository interface {
	Create(ctx context.Context, l *Leave) error
	GetByID(ctx context.Context, id string) (*Leave, error)
	List(ctx context.Context, filter LeaveFilter) ([]Leave, int64, error)
	ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]Leave, int64, error)

	// ListOverlapping returns the Pending and Approved leaves of an employee
	// whose date range intersects [start, end]. excludeID, when non-empty,
	// drops that leave from the result so an update does not collide with
	// itself.
	ListOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) ([]Leave, error)

	// ListApprovedInRange returns approved leaves intersecting [start, end]
	// with joined employee fields, for the calendar view. A nil bound leaves
	// that side of the range open.
	ListApprovedInRange(ctx context.Context, start, end *time.Time) ([]Leave, error)

	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, id string) error

	CountByStatus(ctx context.Context, status *Status) (int64, error)
	CountGroupedByType(ctx context.Context) ([]TypeCount, error)
	MonthlyBucketsForYear(ctx context.Context, year int) ([]MonthlyBucket, error)
}
