package employee

import "context"

// EmployeeRepository defines data access for employee records. Create assigns
// the employee code from a database sequence inside the insert round-trip.
type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByCandidateID(ctx context.Context, candidateID string) (*Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	ListByDepartment(ctx context.Context, department string) ([]Employee, error)
	Update(ctx context.Context, emp Employee) error
	Delete(ctx context.Context, id string) error
	BulkUpdateStatus(ctx context.Context, ids []string, status Status) (int64, error)
	CountByStatus(ctx context.Context, status *Status) (int64, error)
	CountGroupedByDepartment(ctx context.Context) ([]DepartmentCount, error)
	CountGroupedByRole(ctx context.Context) ([]RoleCount, error)
	ListRecent(ctx context.Context, limit int) ([]Employee, error)
}
