package candidate

import (
	"context"
	"log/slog"
	"time"

	"github.com/nishan-khiva/HRMS-project/internal/domain/candidate"
	"github.com/nishan-khiva/HRMS-project/internal/domain/employee"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/pagination"
	"golang.org/x/sync/errgroup"
)

type CandidateServiceImpl struct {
	candidateRepo   candidate.CandidateRepository
	employeeService employee.EmployeeService
	logger          *slog.Logger
}

func NewCandidateService(
	candidateRepo candidate.CandidateRepository,
	employeeService employee.EmployeeService,
	logger *slog.Logger,
) candidate.CandidateService {
	return &CandidateServiceImpl{
		candidateRepo:   candidateRepo,
		employeeService: employeeService,
		logger:          logger,
	}
}

// Create implements candidate.CandidateService.
func (s *CandidateServiceImpl) Create(ctx context.Context, req candidate.CreateCandidateRequest) (candidate.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return candidate.CandidateResponse{}, err
	}

	cand := candidate.Candidate{
		FullName:   req.FullName,
		Email:      req.Email,
		Phone:      req.Phone,
		Experience: req.Experience,
		Position:   candidate.Position(req.Position),
		Status:     candidate.StatusPending,
	}

	created, err := s.candidateRepo.Create(ctx, cand)
	if err != nil {
		return candidate.CandidateResponse{}, err
	}

	s.logger.Info("candidate created", slog.String("candidate_id", created.ID))

	return candidate.NewCandidateResponse(created), nil
}

// Get implements candidate.CandidateService.
func (s *CandidateServiceImpl) Get(ctx context.Context, id string) (candidate.CandidateResponse, error) {
	cand, err := s.candidateRepo.GetByID(ctx, id)
	if err != nil {
		return candidate.CandidateResponse{}, err
	}
	return candidate.NewCandidateResponse(cand), nil
}

// List implements candidate.CandidateService.
func (s *CandidateServiceImpl) List(ctx context.Context, filter candidate.CandidateFilter) (candidate.ListCandidatesResponse, error) {
	if err := filter.Validate(); err != nil {
		return candidate.ListCandidatesResponse{}, err
	}

	candidates, total, err := s.candidateRepo.List(ctx, filter)
	if err != nil {
		return candidate.ListCandidatesResponse{}, err
	}

	responses := make([]candidate.CandidateResponse, 0, len(candidates))
	for _, cand := range candidates {
		responses = append(responses, candidate.NewCandidateResponse(cand))
	}

	return candidate.ListCandidatesResponse{
		Candidates: responses,
		Meta:       pagination.NewMeta(filter.Page, filter.Limit, total),
	}, nil
}

// ListByPosition implements candidate.CandidateService.
func (s *CandidateServiceImpl) ListByPosition(ctx context.Context, position string) ([]candidate.CandidateResponse, error) {
	candidates, err := s.candidateRepo.ListByPosition(ctx, position)
	if err != nil {
		return nil, err
	}

	responses := make([]candidate.CandidateResponse, 0, len(candidates))
	for _, cand := range candidates {
		responses = append(responses, candidate.NewCandidateResponse(cand))
	}

	return responses, nil
}

// Update implements candidate.CandidateService. A status change to Selected
// goes through the same conversion path as UpdateStatus.
func (s *CandidateServiceImpl) Update(ctx context.Context, req candidate.UpdateCandidateRequest) (candidate.StatusUpdateResult, error) {
	if err := req.Validate(); err != nil {
		return candidate.StatusUpdateResult{}, err
	}

	cand, err := s.candidateRepo.GetByID(ctx, req.ID)
	if err != nil {
		return candidate.StatusUpdateResult{}, err
	}

	if req.FullName != nil {
		cand.FullName = *req.FullName
	}
	if req.Email != nil {
		cand.Email = *req.Email
	}
	if req.Phone != nil {
		cand.Phone = *req.Phone
	}
	if req.Experience != nil {
		cand.Experience = *req.Experience
	}
	if req.Position != nil {
		cand.Position = candidate.Position(*req.Position)
	}
	if req.Status != nil {
		cand.Status = candidate.Status(*req.Status)
	}

	if err := s.candidateRepo.Update(ctx, cand); err != nil {
		return candidate.StatusUpdateResult{}, err
	}

	result := candidate.StatusUpdateResult{Candidate: candidate.NewCandidateResponse(cand)}
	if req.Status != nil && cand.Status == candidate.StatusSelected {
		s.convert(ctx, cand, &result)
	}

	return result, nil
}

// UpdateStatus implements candidate.CandidateService. A Selected candidate is
// converted to an employee on every Selected update; the conversion is
// idempotent, so a repeat returns the existing employee, and an earlier
// failed conversion gets retried. A conversion failure is reported as a
// warning and does not undo the status change.
func (s *CandidateServiceImpl) UpdateStatus(ctx context.Context, req candidate.UpdateStatusRequest) (candidate.StatusUpdateResult, error) {
	if err := req.Validate(); err != nil {
		return candidate.StatusUpdateResult{}, err
	}

	cand, err := s.candidateRepo.GetByID(ctx, req.ID)
	if err != nil {
		return candidate.StatusUpdateResult{}, err
	}

	cand.Status = candidate.Status(req.Status)
	if err := s.candidateRepo.Update(ctx, cand); err != nil {
		return candidate.StatusUpdateResult{}, err
	}

	result := candidate.StatusUpdateResult{Candidate: candidate.NewCandidateResponse(cand)}
	if cand.Status == candidate.StatusSelected {
		s.convert(ctx, cand, &result)
	}

	return result, nil
}

func (s *CandidateServiceImpl) convert(ctx context.Context, cand candidate.Candidate, result *candidate.StatusUpdateResult) {
	emp, err := s.employeeService.ConvertCandidate(ctx, employee.ConvertCandidateRequest{CandidateID: cand.ID})
	if err != nil {
		s.logger.Warn("candidate selected but conversion failed",
			slog.String("candidate_id", cand.ID),
			slog.String("error", err.Error()),
		)
		result.ConversionWarning = "candidate selected but employee conversion failed: " + err.Error()
		return
	}
	result.Employee = emp
}

// UploadResume implements candidate.CandidateService.
func (s *CandidateServiceImpl) UploadResume(ctx context.Context, req candidate.UploadResumeRequest) (candidate.CandidateResponse, error) {
	if err := req.Validate(); err != nil {
		return candidate.CandidateResponse{}, err
	}

	cand, err := s.candidateRepo.GetByID(ctx, req.ID)
	if err != nil {
		return candidate.CandidateResponse{}, err
	}

	cand.Resume = &candidate.Resume{
		FileName:   req.FileName,
		FileURL:    req.FileURL,
		UploadedAt: time.Now(),
	}

	if err := s.candidateRepo.Update(ctx, cand); err != nil {
		return candidate.CandidateResponse{}, err
	}

	return candidate.NewCandidateResponse(cand), nil
}

// Delete implements candidate.CandidateService.
func (s *CandidateServiceImpl) Delete(ctx context.Context, id string) error {
	return s.candidateRepo.Delete(ctx, id)
}

// BulkDelete implements candidate.CandidateService.
func (s *CandidateServiceImpl) BulkDelete(ctx context.Context, req candidate.BulkDeleteRequest) (int64, error) {
	if err := req.Validate(); err != nil {
		return 0, err
	}

	deleted, err := s.candidateRepo.BulkDelete(ctx, req.CandidateIDs)
	if err != nil {
		return 0, err
	}

	s.logger.Info("bulk candidate delete", slog.Int64("deleted", deleted))

	return deleted, nil
}

// Stats implements candidate.CandidateService.
func (s *CandidateServiceImpl) Stats(ctx context.Context) (candidate.StatsResponse, error) {
	var stats candidate.StatsResponse

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		total, err := s.candidateRepo.Count(gCtx)
		if err != nil {
			return err
		}
		stats.TotalCandidates = total
		return nil
	})
	g.Go(func() error {
		counts, err := s.candidateRepo.CountGroupedByPosition(gCtx)
		if err != nil {
			return err
		}
		stats.PositionStats = counts
		return nil
	})
	g.Go(func() error {
		exp, err := s.candidateRepo.ExperienceStats(gCtx)
		if err != nil {
			return err
		}
		stats.ExperienceStats = exp
		return nil
	})
	g.Go(func() error {
		recent, err := s.candidateRepo.ListRecent(gCtx, 5)
		if err != nil {
			return err
		}
		responses := make([]candidate.CandidateResponse, 0, len(recent))
		for _, cand := range recent {
			responses = append(responses, candidate.NewCandidateResponse(cand))
		}
		stats.RecentCandidates = responses
		return nil
	})

	if err := g.Wait(); err != nil {
		return candidate.StatsResponse{}, err
	}

	return stats, nil
}
