package candidate

import "context"

type CandidateService interface {
	Create(ctx context.Context, req CreateCandidateRequest) (CandidateResponse, error)
	Get(ctx context.Context, id string) (CandidateResponse, error)
	List(ctx context.Context, filter CandidateFilter) (ListCandidatesResponse, error)
	ListByPosition(ctx context.Context, position string) ([]CandidateResponse, error)
	Update(ctx context.Context, req UpdateCandidateRequest) (StatusUpdateResult, error)
	UpdateStatus(ctx context.Context, req UpdateStatusRequest) (StatusUpdateResult, error)
	UploadResume(ctx context.Context, req UploadResumeRequest) (CandidateResponse, error)
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, req BulkDeleteRequest) (int64, error)
	Stats(ctx context.Context) (StatsResponse, error)
}
