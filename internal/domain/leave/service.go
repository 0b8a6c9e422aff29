package leave

import (
	"context"
	"time"
)

type LeaveService interface {
	Create(ctx context.Context, req CreateLeaveRequest) (*LeaveResponse, error)
	Get(ctx context.Context, id string) (*LeaveResponse, error)
	List(ctx context.Context, filter LeaveFilter) (*ListLeavesResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, page, limit int) (*ListLeavesResponse, error)
	Calendar(ctx context.Context, start, end *time.Time) (CalendarResponse, error)
	Update(ctx context.Context, req UpdateLeaveRequest) (*LeaveResponse, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (*LeaveResponse, error)
	AddDocuments(ctx context.Context, req AddDocumentsRequest) (*LeaveResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*StatsResponse, error)
}
