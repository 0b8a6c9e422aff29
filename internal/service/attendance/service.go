package attendance

import (
	"context"
	"log/slog"
	"time"

	"github.com/nishan-khiva/HRMS-project/internal/domain/attendance"
	"github.com/nishan-khiva/HRMS-project/internal/domain/employee"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
	logger         *slog.Logger

	// now is swappable in tests.
	now func() time.Time
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	logger *slog.Logger,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		logger:         logger,
		now:            time.Now,
	}
}

// CheckIn implements attendance.AttendanceService. One check-in per employee
// per day; a second attempt is rejected.
func (s *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if emp.Status != employee.StatusActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotActive
	}

	now := s.now()
	today := attendance.DayOf(now)

	existing, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if existing != nil && existing.CheckIn != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	location := attendance.DefaultLocation
	if req.Location != nil && *req.Location != "" {
		location = *req.Location
	}

	checkIn := &attendance.CheckEvent{
		Time:       now,
		Location:   location,
		IPAddress:  req.IPAddress,
		DeviceInfo: req.DeviceInfo,
	}

	// A record for today without a check-in (administratively created) is
	// reused rather than conflicting.
	if existing != nil {
		existing.CheckIn = checkIn
		existing.Status = attendance.StatusPresent
		if err := s.attendanceRepo.Update(ctx, *existing); err != nil {
			return attendance.AttendanceResponse{}, err
		}

		s.logger.Info("employee checked in",
			slog.String("employee_id", req.EmployeeID),
			slog.String("attendance_id", existing.ID),
		)

		return attendance.NewAttendanceResponse(*existing), nil
	}

	att := attendance.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       today,
		CheckIn:    checkIn,
		Status:     attendance.StatusPresent,
	}

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.logger.Info("employee checked in",
		slog.String("employee_id", req.EmployeeID),
		slog.String("attendance_id", created.ID),
	)

	return attendance.NewAttendanceResponse(created), nil
}

// CheckOut implements attendance.AttendanceService. Requires an active
// employee with a same-day check-in and no check-out yet, then derives work
// hours.
func (s *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if emp.Status != employee.StatusActive {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotActive
	}

	now := s.now()
	today := attendance.DayOf(now)

	att, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, req.EmployeeID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if att == nil || att.CheckIn == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if att.CheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	location := attendance.DefaultLocation
	if req.Location != nil && *req.Location != "" {
		location = *req.Location
	}

	att.CheckOut = &attendance.CheckEvent{
		Time:       now,
		Location:   location,
		IPAddress:  req.IPAddress,
		DeviceInfo: req.DeviceInfo,
	}
	att.TotalHours, att.Overtime = attendance.ComputeWorkHours(att.CheckIn.Time, now)

	if err := s.attendanceRepo.Update(ctx, *att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	s.logger.Info("employee checked out",
		slog.String("employee_id", req.EmployeeID),
		slog.Float64("total_hours", att.TotalHours),
		slog.Float64("overtime", att.Overtime),
	)

	return attendance.NewAttendanceResponse(*att), nil
}

// Get implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Get(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	att, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return attendance.NewAttendanceResponse(att), nil
}

// List implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) List(ctx context.Context, filter attendance.AttendanceFilter) (attendance.ListAttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := s.attendanceRepo.List(ctx, filter)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, attendance.NewAttendanceResponse(att))
	}

	return attendance.ListAttendanceResponse{
		Attendance: responses,
		Meta:       pagination.NewMeta(filter.Page, filter.Limit, total),
	}, nil
}

// ListByEmployee implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListByEmployee(ctx context.Context, employeeID string, page, limit int) (attendance.ListAttendanceResponse, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	attendances, total, err := s.attendanceRepo.ListByEmployee(ctx, employeeID, page, limit)
	if err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, attendance.NewAttendanceResponse(att))
	}

	return attendance.ListAttendanceResponse{
		Attendance: responses,
		Meta:       pagination.NewMeta(page, limit, total),
	}, nil
}

// ListToday implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) ListToday(ctx context.Context) ([]attendance.AttendanceResponse, error) {
	attendances, err := s.attendanceRepo.ListToday(ctx, attendance.DayOf(s.now()))
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(attendances))
	for _, att := range attendances {
		responses = append(responses, attendance.NewAttendanceResponse(att))
	}

	return responses, nil
}

// Update implements attendance.AttendanceService. When either check time
// changes and both ends are present, hours are recomputed from the stored
// pair so manual corrections stay consistent.
func (s *AttendanceServiceImpl) Update(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	att, err := s.attendanceRepo.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.CheckInTime != nil {
		t := mustDateTime(*req.CheckInTime)
		if att.CheckIn == nil {
			att.CheckIn = &attendance.CheckEvent{Location: attendance.DefaultLocation}
		}
		att.CheckIn.Time = t
	}
	if req.CheckOutTime != nil {
		t := mustDateTime(*req.CheckOutTime)
		if att.CheckOut == nil {
			att.CheckOut = &attendance.CheckEvent{Location: attendance.DefaultLocation}
		}
		att.CheckOut.Time = t
	}
	if req.Status != nil {
		att.Status = attendance.Status(*req.Status)
	}
	if req.Notes != nil {
		att.Notes = req.Notes
	}
	if req.ApprovedBy != nil {
		att.ApprovedBy = req.ApprovedBy
		now := s.now()
		att.ApprovedAt = &now
	}

	if att.CheckIn != nil && att.CheckOut != nil {
		att.TotalHours, att.Overtime = attendance.ComputeWorkHours(att.CheckIn.Time, att.CheckOut.Time)
	}

	if err := s.attendanceRepo.Update(ctx, att); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return attendance.NewAttendanceResponse(att), nil
}

// Stats implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) Stats(ctx context.Context) (attendance.StatsResponse, error) {
	var stats attendance.StatsResponse

	now := s.now()
	today := attendance.DayOf(now)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.attendanceRepo.CountByDay(gCtx, today)
		if err != nil {
			return err
		}
		stats.TodayAttendance = count
		return nil
	})
	g.Go(func() error {
		active := employee.StatusActive
		count, err := s.employeeRepo.CountByStatus(gCtx, &active)
		if err != nil {
			return err
		}
		stats.ActiveEmployees = count
		return nil
	})
	g.Go(func() error {
		counts, err := s.attendanceRepo.CountByStatusForDay(gCtx, today)
		if err != nil {
			return err
		}
		stats.StatusStats = counts
		return nil
	})
	g.Go(func() error {
		buckets, err := s.attendanceRepo.DailyBucketsForMonth(gCtx, monthStart)
		if err != nil {
			return err
		}
		stats.MonthlyStats = buckets
		return nil
	})

	if err := g.Wait(); err != nil {
		return attendance.StatsResponse{}, err
	}

	return stats, nil
}

// mustDateTime parses a timestamp already checked by request validation.
func mustDateTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		t, _ = time.Parse(time.RFC3339Nano, s)
	}
	return t
}
