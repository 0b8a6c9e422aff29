package employee

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/nishan-khiva/HRMS-project/internal/domain/candidate"
	"github.com/nishan-khiva/HRMS-project/internal/domain/employee"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/pagination"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type EmployeeServiceImpl struct {
	employeeRepo  employee.EmployeeRepository
	candidateRepo candidate.CandidateRepository
	logger        *slog.Logger
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	candidateRepo candidate.CandidateRepository,
	logger *slog.Logger,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:  employeeRepo,
		candidateRepo: candidateRepo,
		logger:        logger,
	}
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		Department:  employee.Department(req.Department),
		Position:    req.Position,
		Role:        employee.RoleEmployee,
		Salary:      decimal.NewFromFloat(req.Salary),
		Status:      employee.StatusActive,
		JoiningDate: mustDate(req.JoiningDate),
	}
	if req.DateOfBirth != nil {
		dob := mustDate(*req.DateOfBirth)
		emp.DateOfBirth = &dob
	}
	if req.Gender != nil {
		g := employee.Gender(*req.Gender)
		emp.Gender = &g
	}
	if req.Role != nil {
		emp.Role = employee.Role(*req.Role)
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.logger.Info("employee created",
		slog.String("employee_id", created.ID),
		slog.String("employee_code", created.EmployeeCode),
	)

	return employee.NewEmployeeResponse(created), nil
}

// ConvertCandidate implements employee.EmployeeService. The candidate's data
// seeds the employee record; request fields override it. Converting the same
// candidate twice returns the existing employee instead of a duplicate.
func (s *EmployeeServiceImpl) ConvertCandidate(ctx context.Context, req employee.ConvertCandidateRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	cand, err := s.candidateRepo.GetByID(ctx, req.CandidateID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FullName:                 cand.FullName,
		Email:                    cand.Email,
		Phone:                    cand.Phone,
		Department:               employee.Department(candidate.DepartmentForPosition(cand.Position)),
		Position:                 string(cand.Position),
		Role:                     employee.RoleEmployee,
		JoiningDate:              time.Now(),
		Salary:                   decimal.Zero,
		Status:                   employee.StatusActive,
		ConvertedFromCandidateID: &cand.ID,
	}
	if req.Department != nil {
		emp.Department = employee.Department(*req.Department)
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.JoiningDate != nil {
		emp.JoiningDate = mustDate(*req.JoiningDate)
	}
	if req.Salary != nil {
		emp.Salary = decimal.NewFromFloat(*req.Salary)
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		if errors.Is(err, employee.ErrCandidateConverted) {
			// A concurrent conversion won the race; return the winner.
			existing, getErr := s.employeeRepo.GetByCandidateID(ctx, cand.ID)
			if getErr == nil && existing != nil {
				return employee.NewEmployeeResponse(*existing), nil
			}
		}
		return employee.EmployeeResponse{}, err
	}

	s.logger.Info("candidate converted to employee",
		slog.String("candidate_id", cand.ID),
		slog.String("employee_id", created.ID),
		slog.String("employee_code", created.EmployeeCode),
	)

	return employee.NewEmployeeResponse(created), nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.NewEmployeeResponse(emp), nil
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}

	return employee.ListEmployeesResponse{
		Employees: responses,
		Meta:      pagination.NewMeta(filter.Page, filter.Limit, total),
	}, nil
}

// ListByDepartment implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListByDepartment(ctx context.Context, department string) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.ListByDepartment(ctx, department)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.NewEmployeeResponse(emp))
	}

	return responses, nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	if req.FullName != nil {
		emp.FullName = *req.FullName
	}
	if req.Email != nil {
		emp.Email = *req.Email
	}
	if req.Phone != nil {
		emp.Phone = *req.Phone
	}
	if req.DateOfBirth != nil {
		dob := mustDate(*req.DateOfBirth)
		emp.DateOfBirth = &dob
	}
	if req.Gender != nil {
		g := employee.Gender(*req.Gender)
		emp.Gender = &g
	}
	if req.Department != nil {
		emp.Department = employee.Department(*req.Department)
	}
	if req.Position != nil {
		emp.Position = *req.Position
	}
	if req.JoiningDate != nil {
		emp.JoiningDate = mustDate(*req.JoiningDate)
	}
	if req.Salary != nil {
		emp.Salary = decimal.NewFromFloat(*req.Salary)
	}
	if req.Status != nil {
		emp.Status = employee.Status(*req.Status)
	}

	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	return s.Get(ctx, req.ID)
}

// UpdateRole implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UpdateRole(ctx context.Context, req employee.UpdateRoleRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp.Role = employee.Role(req.Role)
	if err := s.employeeRepo.Update(ctx, emp); err != nil {
		return employee.EmployeeResponse{}, err
	}

	s.logger.Info("employee role updated",
		slog.String("employee_id", emp.ID),
		slog.String("role", req.Role),
	)

	return s.Get(ctx, req.ID)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	return s.employeeRepo.Delete(ctx, id)
}

// BulkUpdateStatus implements employee.EmployeeService.
func (s *EmployeeServiceImpl) BulkUpdateStatus(ctx context.Context, req employee.BulkUpdateStatusRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	affected, err := s.employeeRepo.BulkUpdateStatus(ctx, req.EmployeeIDs, employee.Status(req.Status))
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, employee.ErrNoEmployeesUpdated
	}

	s.logger.Info("bulk employee status update",
		slog.Int64("affected", affected),
		slog.String("status", req.Status),
	)

	return affected, nil
}

// Stats implements employee.EmployeeService. The independent aggregates are
// fetched concurrently.
func (s *EmployeeServiceImpl) Stats(ctx context.Context) (employee.StatsResponse, error) {
	var stats employee.StatsResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.employeeRepo.CountByStatus(gCtx, nil)
		if err != nil {
			return err
		}
		stats.TotalEmployees = total
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
		counts, err := s.employeeRepo.CountGroupedByDepartment(gCtx)
		if err != nil {
			return err
		}
		stats.DepartmentStats = counts
		return nil
	})
	g.Go(func() error {
		counts, err := s.employeeRepo.CountGroupedByRole(gCtx)
		if err != nil {
			return err
		}
		stats.RoleStats = counts
		return nil
	})
	g.Go(func() error {
		recent, err := s.employeeRepo.ListRecent(gCtx, 5)
		if err != nil {
			return err
		}
		responses := make([]employee.EmployeeResponse, 0, len(recent))
		for _, emp := range recent {
			responses = append(responses, employee.NewEmployeeResponse(emp))
		}
		stats.RecentEmployees = responses
		return nil
	})

	if err := g.Wait(); err != nil {
		return employee.StatsResponse{}, err
	}

	return stats, nil
}

// mustDate parses a date already checked by request validation.
func mustDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}
