package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/nishan-khiva/HRMS-project/internal/domain/leave"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/database"
)

const leaveColumns = `
	l.id, l.employee_id, l.leave_type, l.start_date, l.end_date, l.half_day,
	l.reason, l.status, l.total_days, l.approved_by, l.approved_at,
	l.rejection_reason, l.documents, l.created_at, l.updated_at`

const leaveJoinedColumns = leaveColumns + `,
	e.full_name, e.employee_code, e.department`

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

func scanLeave(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.HalfDay,
		&l.Reason, &l.Status, &l.TotalDays, &l.ApprovedBy, &l.ApprovedAt,
		&l.RejectionReason, &l.Documents, &l.CreatedAt, &l.UpdatedAt,
	)
	return l, err
}

func scanLeaveWithEmployee(row pgx.Row) (leave.Leave, error) {
	var l leave.Leave
	err := row.Scan(
		&l.ID, &l.EmployeeID, &l.LeaveType, &l.StartDate, &l.EndDate, &l.HalfDay,
		&l.Reason, &l.Status, &l.TotalDays, &l.ApprovedBy, &l.ApprovedAt,
		&l.RejectionReason, &l.Documents, &l.CreatedAt, &l.UpdatedAt,
		&l.EmployeeName, &l.EmployeeCode, &l.EmployeeDepartment,
	)
	return l, err
}

// Create implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l *leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.New().String()
	}

	query := `
		INSERT INTO leaves (id, employee_id, leave_type, start_date, end_date, half_day, reason, status, total_days, documents)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		l.ID, l.EmployeeID, l.LeaveType, l.StartDate, l.EndDate, l.HalfDay,
		l.Reason, l.Status, l.TotalDays, l.Documents,
	).Scan(&l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create leave: %w", err)
	}

	return nil
}

// GetByID implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (*leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + leaveJoinedColumns + `
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id
		WHERE l.id = $1
	`

	l, err := scanLeaveWithEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, leave.ErrLeaveNotFound
		}
		return nil, fmt.Errorf("failed to get leave: %w", err)
	}

	return &l, nil
}

// List implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) List(ctx context.Context, filter leave.LeaveFilter) ([]leave.Leave, int64, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("l.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("l.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.LeaveType != nil && *filter.LeaveType != "" {
		conditions = append(conditions, fmt.Sprintf("l.leave_type = $%d", argIdx))
		args = append(args, *filter.LeaveType)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("l.end_date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("l.start_date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(e.full_name ILIKE $%d OR e.employee_code ILIKE $%d OR l.reason ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id
		WHERE %s
	`, whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	validSortColumns := map[string]string{
		"start_date": "l.start_date",
		"end_date":   "l.end_date",
		"status":     "l.status",
		"leave_type": "l.leave_type",
		"created_at": "l.created_at",
	}
	sortColumn, ok := validSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "l.created_at"
	}

	sortOrder := "DESC"
	if strings.ToUpper(filter.SortOrder) == "ASC" {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, leaveJoinedColumns, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leaves: %w", err)
	}
	defer rows.Close()

	leaves, err := collectLeavesWithEmployee(rows)
	if err != nil {
		return nil, 0, err
	}

	return leaves, total, nil
}

// ListByEmployee implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]leave.Leave, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM leaves WHERE employee_id = $1`, employeeID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employee leaves: %w", err)
	}

	query := `
		SELECT ` + leaveJoinedColumns + `
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id
		WHERE l.employee_id = $1
		ORDER BY l.start_date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, employeeID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employee leaves: %w", err)
	}
	defer rows.Close()

	leaves, err := collectLeavesWithEmployee(rows)
	if err != nil {
		return nil, 0, err
	}

	return leaves, total, nil
}

// ListOverlapping implements leave.LeaveRepository. Only Pending and Approved
// leaves block a new request.
func (r *leaveRepositoryImpl) ListOverlapping(ctx context.Context, employeeID string, start, end time.Time, excludeID string) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{
		"l.employee_id = $1",
		"l.status IN ('Pending', 'Approved')",
		"l.start_date <= $2",
		"l.end_date >= $3",
	}
	args := []interface{}{employeeID, end, start}

	if excludeID != "" {
		conditions = append(conditions, "l.id <> $4")
		args = append(args, excludeID)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leaves l
		WHERE %s
	`, leaveColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leaves: %w", err)
	}
	defer rows.Close()

	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeave(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return leaves, nil
}

// ListApprovedInRange implements leave.LeaveRepository. Nil bounds are
// skipped so the query can return all approved leaves.
func (r *leaveRepositoryImpl) ListApprovedInRange(ctx context.Context, start, end *time.Time) ([]leave.Leave, error) {
	q := GetQuerier(ctx, r.db)

	conditions := []string{"l.status = 'Approved'"}
	args := []interface{}{}
	argIdx := 1

	if end != nil {
		conditions = append(conditions, fmt.Sprintf("l.start_date <= $%d", argIdx))
		args = append(args, *end)
		argIdx++
	}
	if start != nil {
		conditions = append(conditions, fmt.Sprintf("l.end_date >= $%d", argIdx))
		args = append(args, *start)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM leaves l
		JOIN employees e ON l.employee_id = e.id
		WHERE %s
		ORDER BY l.start_date ASC
	`, leaveJoinedColumns, strings.Join(conditions, " AND "))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves in range: %w", err)
	}
	defer rows.Close()

	return collectLeavesWithEmployee(rows)
}

func collectLeavesWithEmployee(rows pgx.Rows) ([]leave.Leave, error) {
	var leaves []leave.Leave
	for rows.Next() {
		l, err := scanLeaveWithEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		leaves = append(leaves, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leaves, nil
}

// Update implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, l *leave.Leave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leaves
		SET leave_type = $1, start_date = $2, end_date = $3, half_day = $4,
			reason = $5, status = $6, total_days = $7, approved_by = $8,
			approved_at = $9, rejection_reason = $10, documents = $11,
			updated_at = NOW()
		WHERE id = $12
		RETURNING updated_at
	`

	err := q.QueryRow(ctx, query,
		l.LeaveType, l.StartDate, l.EndDate, l.HalfDay,
		l.Reason, l.Status, l.TotalDays, l.ApprovedBy,
		l.ApprovedAt, l.RejectionReason, l.Documents,
		l.ID,
	).Scan(&l.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return leave.ErrLeaveNotFound
		}
		return fmt.Errorf("failed to update leave: %w", err)
	}

	return nil
}

// Delete implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM leaves WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}

	return nil
}

// CountByStatus implements leave.LeaveRepository. A nil status counts all
// leaves.
func (r *leaveRepositoryImpl) CountByStatus(ctx context.Context, status *leave.Status) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	var err error
	if status == nil {
		err = q.QueryRow(ctx, `SELECT COUNT(*) FROM leaves`).Scan(&total)
	} else {
		err = q.QueryRow(ctx, `SELECT COUNT(*) FROM leaves WHERE status = $1`, *status).Scan(&total)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count leaves: %w", err)
	}

	return total, nil
}

// CountGroupedByType implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) CountGroupedByType(ctx context.Context) ([]leave.TypeCount, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Approved'),
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'Rejected')
		FROM leaves
		GROUP BY leave_type
		ORDER BY COUNT(*) DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count leaves by type: %w", err)
	}
	defer rows.Close()

	var counts []leave.TypeCount
	for rows.Next() {
		var tc leave.TypeCount
		if err := rows.Scan(&tc.LeaveType, &tc.Count, &tc.Approved, &tc.Pending, &tc.Rejected); err != nil {
			return nil, fmt.Errorf("failed to scan type count: %w", err)
		}
		counts = append(counts, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// MonthlyBucketsForYear implements leave.LeaveRepository. Leaves are bucketed
// by the month their range starts in.
func (r *leaveRepositoryImpl) MonthlyBucketsForYear(ctx context.Context, year int) ([]leave.MonthlyBucket, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXTRACT(MONTH FROM start_date)::int,
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Approved'),
			COALESCE(SUM(total_days) FILTER (WHERE status = 'Approved'), 0)
		FROM leaves
		WHERE EXTRACT(YEAR FROM start_date) = $1
		GROUP BY 1
		ORDER BY 1 ASC
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to bucket leaves by month: %w", err)
	}
	defer rows.Close()

	var buckets []leave.MonthlyBucket
	for rows.Next() {
		var b leave.MonthlyBucket
		if err := rows.Scan(&b.Month, &b.TotalLeaves, &b.ApprovedLeaves, &b.TotalDays); err != nil {
			return nil, fmt.Errorf("failed to scan monthly bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}
