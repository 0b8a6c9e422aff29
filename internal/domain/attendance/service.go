package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context, req CheckRequest) (AttendanceResponse, error)
	CheckOut(ctx context.Context, req CheckRequest) (AttendanceResponse, error)
	Get(ctx context.Context, id string) (AttendanceResponse, error)
	List(ctx context.Context, filter AttendanceFilter) (ListAttendanceResponse, error)
	ListByEmployee(ctx context.Context, employeeID string, page, limit int) (ListAttendanceResponse, error)
	ListToday(ctx context.Context) ([]AttendanceResponse, error)
	Update(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Stats(ctx context.Context) (StatsResponse, error)
}
