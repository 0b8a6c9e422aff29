package leave

import (
	"context"
	"log/slog"
	"time"

	"github.com/nishan-khiva/HRMS-project/internal/domain/attendance"
	"github.com/nishan-khiva/HRMS-project/internal/domain/employee"
	"github.com/nishan-khiva/HRMS-project/internal/domain/leave"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

type LeaveServiceImpl struct {
	leaveRepo      leave.LeaveRepository
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	logger         *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

func NewLeaveService(
	leaveRepo leave.LeaveRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	logger *slog.Logger,
) leave.LeaveService {
	return &LeaveServiceImpl{
		leaveRepo:      leaveRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// Create implements leave.LeaveService. The employee must be active, present
// today and free of overlapping pending or approved leaves.
func (s *LeaveServiceImpl) Create(ctx context.Context, req leave.CreateLeaveRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if emp.Status != employee.StatusActive {
		return nil, employee.ErrEmployeeNotActive
	}

	today := attendance.DayOf(s.now())
	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return nil, err
	}
	if att == nil || att.CheckIn == nil {
		return nil, leave.ErrNotPresentToday
	}

	start := mustDate(req.StartDate)
	end := mustDate(req.EndDate)

	overlapping, err := s.leaveRepo.ListOverlapping(ctx, req.EmployeeID, start, end, "")
	if err != nil {
		return nil, err
	}
	if len(overlapping) > 0 {
		return nil, leave.ErrOverlappingLeave
	}

	l := leave.Leave{
		EmployeeID: req.EmployeeID,
		LeaveType:  leave.Type(req.LeaveType),
		StartDate:  start,
		EndDate:    end,
		HalfDay:    req.HalfDay,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
		TotalDays:  leave.TotalDays(start, end, req.HalfDay),
	}

	if err := s.leaveRepo.Create(ctx, &l); err != nil {
		return nil, err
	}

	s.logger.Info("leave requested",
		slog.String("leave_id", l.ID),
		slog.String("employee_id", l.EmployeeID),
		slog.Float64("total_days", l.TotalDays),
	)

	l.EmployeeName = &emp.FullName
	l.EmployeeCode = &emp.EmployeeCode
	dept := string(emp.Department)
	l.EmployeeDepartment = &dept

	resp := leave.NewLeaveResponse(l)
	return &resp, nil
}

// Get implements leave.LeaveService.
func (s *LeaveServiceImpl) Get(ctx context.Context, id string) (*leave.LeaveResponse, error) {
	l, err := s.leaveRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := leave.NewLeaveResponse(*l)
	return &resp, nil
}

// List implements leave.LeaveService.
func (s *LeaveServiceImpl) List(ctx context.Context, filter leave.LeaveFilter) (*leave.ListLeavesResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	leaves, total, err := s.leaveRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.NewLeaveResponse(l))
	}

	return &leave.ListLeavesResponse{
		Leaves: responses,
		Meta:   pagination.NewMeta(filter.Page, filter.Limit, total),
	}, nil
}

// ListByEmployee implements leave.LeaveService.
func (s *LeaveServiceImpl) ListByEmployee(ctx context.Context, employeeID string, page, limit int) (*leave.ListLeavesResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	leaves, total, err := s.leaveRepo.ListByEmployee(ctx, employeeID, page, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.LeaveResponse, 0, len(leaves))
	for _, l := range leaves {
		responses = append(responses, leave.NewLeaveResponse(l))
	}

	return &leave.ListLeavesResponse{
		Leaves: responses,
		Meta:   pagination.NewMeta(page, limit, total),
	}, nil
}

// Calendar implements leave.LeaveService. Each approved leave is expanded to
// one entry per day it covers inside the requested range. A nil bound leaves
// that side open, so a call without bounds expands every approved leave.
func (s *LeaveServiceImpl) Calendar(ctx context.Context, start, end *time.Time) (leave.CalendarResponse, error) {
	leaves, err := s.leaveRepo.ListApprovedInRange(ctx, start, end)
	if err != nil {
		return nil, err
	}

	calendar := make(leave.CalendarResponse)
	for _, l := range leaves {
		entry := leave.CalendarEntry{
			ID:        l.ID,
			LeaveType: string(l.LeaveType),
			Reason:    l.Reason,
			HalfDay:   l.HalfDay,
		}
		if l.EmployeeName != nil {
			entry.EmployeeName = *l.EmployeeName
		}
		if l.EmployeeCode != nil {
			entry.EmployeeCode = *l.EmployeeCode
		}
		if l.EmployeeDepartment != nil {
			entry.Department = *l.EmployeeDepartment
		}

		day := l.StartDate
		if start != nil && day.Before(*start) {
			day = *start
		}
		last := l.EndDate
		if end != nil && last.After(*end) {
			last = *end
		}
		for !day.After(last) {
			key := day.Format("2006-01-02")
			calendar[key] = append(calendar[key], entry)
			day = day.AddDate(0, 0, 1)
		}
	}

	return calendar, nil
}

// Update implements leave.LeaveService. Only pending leaves can be edited;
// date changes are re-checked for overlaps against the employee's other
// leaves.
func (s *LeaveServiceImpl) Update(ctx context.Context, req leave.UpdateLeaveRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if l.Status != leave.StatusPending {
		return nil, leave.ErrInvalidTransition
	}

	if req.LeaveType != nil {
		l.LeaveType = leave.Type(*req.LeaveType)
	}
	if req.StartDate != nil {
		l.StartDate = mustDate(*req.StartDate)
	}
	if req.EndDate != nil {
		l.EndDate = mustDate(*req.EndDate)
	}
	if req.HalfDay != nil {
		l.HalfDay = *req.HalfDay
	}
	if req.Reason != nil {
		l.Reason = *req.Reason
	}

	if req.StartDate != nil || req.EndDate != nil {
		overlapping, err := s.leaveRepo.ListOverlapping(ctx, l.EmployeeID, l.StartDate, l.EndDate, l.ID)
		if err != nil {
			return nil, err
		}
		if len(overlapping) > 0 {
			return nil, leave.ErrOverlappingLeave
		}
	}

	l.TotalDays = leave.TotalDays(l.StartDate, l.EndDate, l.HalfDay)

	if err := s.leaveRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	resp := leave.NewLeaveResponse(*l)
	return &resp, nil
}

// UpdateStatus implements leave.LeaveService. Transitions follow the leave
// state machine; every transition stamps who processed it and when, and
// rejecting also records the reason.
func (s *LeaveServiceImpl) UpdateStatus(ctx context.Context, req leave.UpdateStatusRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	target := leave.Status(req.Status)
	if !leave.CanTransition(l.Status, target) {
		return nil, leave.ErrInvalidTransition
	}

	// Every transition records who processed it and when.
	now := s.now()
	l.Status = target
	l.ApprovedBy = &req.ApproverID
	l.ApprovedAt = &now
	if target == leave.StatusRejected {
		l.RejectionReason = req.RejectionReason
	}

	if err := s.leaveRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	s.logger.Info("leave status updated",
		slog.String("leave_id", l.ID),
		slog.String("status", string(target)),
	)

	resp := leave.NewLeaveResponse(*l)
	return &resp, nil
}

// AddDocuments implements leave.LeaveService.
func (s *LeaveServiceImpl) AddDocuments(ctx context.Context, req leave.AddDocumentsRequest) (*leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	l, err := s.leaveRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	for _, doc := range req.Documents {
		if doc.UploadedAt.IsZero() {
			doc.UploadedAt = now
		}
		l.Documents = append(l.Documents, doc)
	}

	if err := s.leaveRepo.Update(ctx, l); err != nil {
		return nil, err
	}

	resp := leave.NewLeaveResponse(*l)
	return &resp, nil
}

// Delete implements leave.LeaveService.
func (s *LeaveServiceImpl) Delete(ctx context.Context, id string) error {
	return s.leaveRepo.Delete(ctx, id)
}

// Stats implements leave.LeaveService.
func (s *LeaveServiceImpl) Stats(ctx context.Context) (*leave.StatsResponse, error) {
	var stats leave.StatsResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.leaveRepo.CountByStatus(gCtx, nil)
		if err != nil {
			return err
		}
		stats.TotalLeaves = total
		return nil
	})
	for _, pair := range []struct {
		status leave.Status
		dest   *int64
	}{
		{leave.StatusPending, &stats.PendingLeaves},
		{leave.StatusApproved, &stats.ApprovedLeaves},
		{leave.StatusRejected, &stats.RejectedLeaves},
	} {
		pair := pair
		g.Go(func() error {
			count, err := s.leaveRepo.CountByStatus(gCtx, &pair.status)
			if err != nil {
				return err
			}
			*pair.dest = count
			return nil
		})
	}
	g.Go(func() error {
		counts, err := s.leaveRepo.CountGroupedByType(gCtx)
		if err != nil {
			return err
		}
		stats.LeaveTypeStats = counts
		return nil
	})
	g.Go(func() error {
		buckets, err := s.leaveRepo.MonthlyBucketsForYear(gCtx, s.now().Year())
		if err != nil {
			return err
		}
		stats.MonthlyStats = buckets
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &stats, nil
}

// mustDate parses a date already checked by request validation.
func mustDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}
