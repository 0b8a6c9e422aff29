package employee

import "context"

type EmployeeService interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	ConvertCandidate(ctx context.Context, req ConvertCandidateRequest) (EmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeesResponse, error)
	ListByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
	UpdateRole(ctx context.Context, req UpdateRoleRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
	BulkUpdateStatus(ctx context.Context, req BulkUpdateStatusRequest) (int64, error)
	Stats(ctx context.Context) (StatsResponse, error)
}
