package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nishan-khiva/HRMS-project/internal/domain/candidate"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/database"
)

const candidateColumns = `
	id, full_name, email, phone, experience, position, status, resume,
	created_at, updated_at`

type candidateRepositoryImpl struct {
	db *database.DB
}

func NewCandidateRepository(db *database.DB) candidate.CandidateRepository {
	return &candidateRepositoryImpl{db: db}
}

func scanCandidate(row pgx.Row) (candidate.Candidate, error) {
	var cand candidate.Candidate
	err := row.Scan(
		&cand.ID, &cand.FullName, &cand.Email, &cand.Phone, &cand.Experience,
		&cand.Position, &cand.Status, &cand.Resume,
		&cand.CreatedAt, &cand.UpdatedAt,
	)
	return cand, err
}

// Create implements candidate.CandidateRepository.
func (c *candidateRepositoryImpl) Create(ctx context.Context, cand candidate.Candidate) (candidate.Candidate, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO candidates (full_name, email, phone, experience, position, status, resume)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + candidateColumns

	created, err := scanCandidate(q.QueryRow(ctx, query,
		cand.FullName, cand.Email, cand.Phone, cand.Experience,
		cand.Position, cand.Status, cand.Resume,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return candidate.Candidate{}, candidate.ErrEmailExists
		}
		return candidate.Candidate{}, fmt.Errorf("failed to create candidate: %w", err)
	}

	return created, nil
}

// GetByID implements candidate.CandidateRepository.
func (c *candidateRepositoryImpl) GetByID(ctx context.Context, id string) (candidate.Candidate, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE id = $1`

	cand, err := scanCandidate(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.Candidate{}, candidate.ErrCandidateNotFound
		}
		return candidate.Candidate{}, fmt.Errorf("failed to get candidate: %w", err)
	}

	return cand, nil
}

// List implements candidate.CandidateRepository.
func (c *candidateRepositoryImpl) List(ctx context.Context, filter candidate.CandidateFilter) ([]candidate.Candidate, int64, error) {
	q := GetQuerier(ctx, c.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Position != nil && *filter.Position != "" {
		conditions = append(conditions, fmt.Sprintf("position = $%d", argIdx))
		args = append(args, *filter.Position)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.MinExperience != nil {
		conditions = append(conditions, fmt.Sprintf("experience >= $%d", argIdx))
		args = append(args, *filter.MinExperience)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d)", argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM candidates WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	validSortColumns := map[string]string{
		"full_name":  "full_name",
		"experience": "experience",
		"position":   "position",
		"status":     "status",
		"created_at": "created_at",
	}
	sortColumn, ok := validSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "created_at"
	}

	sortOrder := "DESC"
	if strings.ToUpper(filter.SortOrder) == "ASC" {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM candidates
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, candidateColumns, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	candidates, err := collectCandidates(rows)
	if err != nil {
		return nil, 0, err
	}

	return candidates, total, nil
}

// ListByPosition implements candidate.CandidateRepository.
func (c *candidateRepositoryImpl) ListByPosition(ctx context.Context, position string) ([]candidate.Candidate, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates WHERE position = $1 ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, position)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates by position: %w", err)
	}
	defer rows.Close()

	return collectCandidates(rows)
}

func collectCandidates(rows pgx.Rows) ([]candidate.Candidate, error) {
	var candidates []candidate.Candidate
	for rows.Next() {
		cand, err := scanCandidate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		candidates = append(candidates, cand)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return candidates, nil
}

// Update implements candidate.CandidateRepository.
func (c *candidateRepositoryImpl) Update(ctx context.Context, cand candidate.Candidate) error {
	q := GetQuerier(ctx, c.db)

	query := `
		UPDATE candidates
		SET full_name = $1, email = $2, phone = $3, experience = $4,
			position = $5, status = $6, resume = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		cand.FullName, cand.Email, cand.Phone, cand.Experience,
		cand.Position, cand.Status, cand.Resume, cand.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return candidate.ErrCandidateNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return candidate.ErrEmailExists
		}
		return fmt.Errorf("failed to update candidate: %w", err)
	}

	return nil
}

// Delete implements candidate.CandidateRepository.
func (c *candidateRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM candidates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete candidate: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return candidate.ErrCandidateNotFound
	}

	return nil
}

// BulkDelete implements candidate.CandidateRepository.
func (c *candidateRepositoryImpl) BulkDelete(ctx context.Context, ids []string) (int64, error) {
	q := GetQuerier(ctx, c.db)

	tag, err := q.Exec(ctx, `DELETE FROM candidates WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk delete candidates: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Count implements candidate.CandidateRepository.
func (c *candidateRepositoryImpl) Count(ctx context.Context) (int64, error) {
	q := GetQuerier(ctx, c.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM candidates`).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}

	return total, nil
}

// CountGroupedByPosition implements candidate.CandidateRepository.
func (c *candidateRepositoryImpl) CountGroupedByPosition(ctx context.Context) ([]candidate.PositionCount, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT position, COUNT(*)
		FROM candidates
		GROUP BY position
		ORDER BY COUNT(*) DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count candidates by position: %w", err)
	}
	defer rows.Close()

	var counts []candidate.PositionCount
	for rows.Next() {
		var pc candidate.PositionCount
		if err := rows.Scan(&pc.Position, &pc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan position count: %w", err)
		}
		counts = append(counts, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// ExperienceStats implements candidate.CandidateRepository.
func (c *candidateRepositoryImpl) ExperienceStats(ctx context.Context) (candidate.ExperienceStats, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT COALESCE(AVG(experience), 0), COALESCE(MIN(experience), 0), COALESCE(MAX(experience), 0)
		FROM candidates
	`

	var stats candidate.ExperienceStats
	err := q.QueryRow(ctx, query).Scan(&stats.AvgExperience, &stats.MinExperience, &stats.MaxExperience)
	if err != nil {
		return candidate.ExperienceStats{}, fmt.Errorf("failed to aggregate candidate experience: %w", err)
	}

	return stats, nil
}

// ListRecent implements candidate.CandidateRepository.
func (c *candidateRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]candidate.Candidate, error) {
	q := GetQuerier(ctx, c.db)

	query := `SELECT ` + candidateColumns + ` FROM candidates ORDER BY created_at DESC LIMIT $1`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent candidates: %w", err)
	}
	defer rows.Close()

	return collectCandidates(rows)
}
