package candidate

import "context"

type CandidateRepository interface {
	Create(ctx context.Context, cand Candidate) (Candidate, error)
	GetByID(ctx context.Context, id string) (Candidate, error)
	List(ctx context.Context, filter CandidateFilter) ([]Candidate, int64, error)
	ListByPosition(ctx context.Context, position string) ([]Candidate, error)
	Update(ctx context.Context, cand Candidate) error
	Delete(ctx context.Context, id string) error
	BulkDelete(ctx context.Context, ids []string) (int64, error)
	Count(ctx context.Context) (int64, error)
	CountGroupedByPosition(ctx context.Context) ([]PositionCount, error)
	ExperienceStats(ctx context.Context) (ExperienceStats, error)
	ListRecent(ctx context.Context, limit int) ([]Candidate, error)
}
