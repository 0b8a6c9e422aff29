package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nishan-khiva/HRMS-project/internal/domain/attendance"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/database"
)

const attendanceColumns = `
	a.id, a.employee_id, a.date, a.check_in, a.check_out, a.status,
	a.total_hours, a.overtime, a.notes, a.approved_by, a.approved_at,
	a.created_at, a.updated_at`

const attendanceJoinedColumns = attendanceColumns + `,
	e.full_name, e.employee_code, e.department, e.status`

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &att.Status,
		&att.TotalHours, &att.Overtime, &att.Notes, &att.ApprovedBy, &att.ApprovedAt,
		&att.CreatedAt, &att.UpdatedAt,
	)
	return att, err
}

func scanAttendanceWithEmployee(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.CheckIn, &att.CheckOut, &att.Status,
		&att.TotalHours, &att.Overtime, &att.Notes, &att.ApprovedBy, &att.ApprovedAt,
		&att.CreatedAt, &att.UpdatedAt,
		&att.EmployeeName, &att.EmployeeCode, &att.EmployeeDepartment, &att.EmployeeStatus,
	)
	return att, err
}

// Create implements attendance.AttendanceRepository. The unique index on
// (employee_id, date) rejects a second record for the same day.
func (a *attendanceRepositoryImpl) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (employee_id, date, check_in, check_out, status, total_hours, overtime, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, employee_id, date, check_in, check_out, status,
			total_hours, overtime, notes, approved_by, approved_at,
			created_at, updated_at`

	created, err := scanAttendance(q.QueryRow(ctx, query,
		att.EmployeeID, att.Date, att.CheckIn, att.CheckOut, att.Status,
		att.TotalHours, att.Overtime, att.Notes,
	))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return created, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceJoinedColumns + `
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.id = $1
	`

	att, err := scanAttendanceWithEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository. Returns nil
// when the employee has no record for the day.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, day time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances a
		WHERE a.employee_id = $1 AND a.date = $2
	`

	att, err := scanAttendance(q.QueryRow(ctx, query, employeeID, day))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &att, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendances
		SET check_in = $1, check_out = $2, status = $3, total_hours = $4,
			overtime = $5, notes = $6, approved_by = $7, approved_at = $8,
			updated_at = NOW()
		WHERE id = $9
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		att.CheckIn, att.CheckOut, att.Status, att.TotalHours,
		att.Overtime, att.Notes, att.ApprovedBy, att.ApprovedAt,
		att.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to update attendance: %w", err)
	}

	return nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.AttendanceFilter) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		conditions = append(conditions, fmt.Sprintf("a.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Date != nil && *filter.Date != "" {
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", argIdx))
		args = append(args, *filter.Date)
		argIdx++
	}
	if filter.StartDate != nil && *filter.StartDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date >= $%d", argIdx))
		args = append(args, *filter.StartDate)
		argIdx++
	}
	if filter.EndDate != nil && *filter.EndDate != "" {
		conditions = append(conditions, fmt.Sprintf("a.date <= $%d", argIdx))
		args = append(args, *filter.EndDate)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM attendances a WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count attendances: %w", err)
	}

	validSortColumns := map[string]string{
		"date":        "a.date",
		"status":      "a.status",
		"total_hours": "a.total_hours",
		"created_at":  "a.created_at",
	}
	sortColumn, ok := validSortColumns[filter.SortBy]
	if !ok {
		sortColumn = "a.date"
	}

	sortOrder := "DESC"
	if strings.ToUpper(filter.SortOrder) == "ASC" {
		sortOrder = "ASC"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, attendanceJoinedColumns, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendances: %w", err)
	}
	defer rows.Close()

	attendances, err := collectAttendancesWithEmployee(rows)
	if err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string, page, limit int) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, a.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances WHERE employee_id = $1`, employeeID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employee attendances: %w", err)
	}

	query := `
		SELECT ` + attendanceJoinedColumns + `
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.employee_id = $1
		ORDER BY a.date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, employeeID, limit, (page-1)*limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employee attendances: %w", err)
	}
	defer rows.Close()

	attendances, err := collectAttendancesWithEmployee(rows)
	if err != nil {
		return nil, 0, err
	}

	return attendances, total, nil
}

// ListToday implements attendance.AttendanceRepository. Records of employees
// who are no longer Active are filtered out at join time.
func (a *attendanceRepositoryImpl) ListToday(ctx context.Context, day time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceJoinedColumns + `
		FROM attendances a
		JOIN employees e ON a.employee_id = e.id
		WHERE a.date = $1 AND e.status = $2
		ORDER BY a.created_at DESC
	`

	rows, err := q.Query(ctx, query, day, "Active")
	if err != nil {
		return nil, fmt.Errorf("failed to list today's attendances: %w", err)
	}
	defer rows.Close()

	return collectAttendancesWithEmployee(rows)
}

func collectAttendancesWithEmployee(rows pgx.Rows) ([]attendance.Attendance, error) {
	var attendances []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendanceWithEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return attendances, nil
}

// CountByDay implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CountByDay(ctx context.Context, day time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM attendances WHERE date = $1`, day).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count attendances for day: %w", err)
	}

	return total, nil
}

// CountByStatusForDay implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) CountByStatusForDay(ctx context.Context, day time.Time) ([]attendance.StatusCount, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT status, COUNT(*)
		FROM attendances
		WHERE date = $1
		GROUP BY status
	`

	rows, err := q.Query(ctx, query, day)
	if err != nil {
		return nil, fmt.Errorf("failed to count attendances by status: %w", err)
	}
	defer rows.Close()

	var counts []attendance.StatusCount
	for rows.Next() {
		var sc attendance.StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, fmt.Errorf("failed to scan status count: %w", err)
		}
		counts = append(counts, sc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// DailyBucketsForMonth implements attendance.AttendanceRepository. monthStart
// must be the first day of the month.
func (a *attendanceRepositoryImpl) DailyBucketsForMonth(ctx context.Context, monthStart time.Time) ([]attendance.DailyBucket, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT to_char(date, 'YYYY-MM-DD'),
			COUNT(*) FILTER (WHERE status = 'Present'),
			COUNT(*) FILTER (WHERE status = 'Absent'),
			COUNT(*) FILTER (WHERE status = 'Late')
		FROM attendances
		WHERE date >= $1 AND date < $2
		GROUP BY date
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to bucket attendances by day: %w", err)
	}
	defer rows.Close()

	var buckets []attendance.DailyBucket
	for rows.Next() {
		var b attendance.DailyBucket
		if err := rows.Scan(&b.Date, &b.Present, &b.Absent, &b.Late); err != nil {
			return nil, fmt.Errorf("failed to scan daily bucket: %w", err)
		}
		buckets = append(buckets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return buckets, nil
}
