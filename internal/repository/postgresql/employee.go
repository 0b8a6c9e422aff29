package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nishan-khiva/HRMS-project/internal/domain/employee"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/database"
)

const employeeColumns = `
	id, employee_code, full_name, email, phone, date_of_birth, gender,
	department, position, role, joining_date, salary, status,
	converted_from_candidate_id, created_at, updated_at`

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Email, &emp.Phone,
		&emp.DateOfBirth, &emp.Gender, &emp.Department, &emp.Position, &emp.Role,
		&emp.JoiningDate, &emp.Salary, &emp.Status,
		&emp.ConvertedFromCandidateID, &emp.CreatedAt, &emp.UpdatedAt,
	)
	return emp, err
}

// Create implements employee.EmployeeRepository. The employee code is drawn
// from a sequence so concurrent inserts never produce duplicates.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	var seq int64
	if err := q.QueryRow(ctx, `SELECT nextval('employee_code_seq')`).Scan(&seq); err != nil {
		return employee.Employee{}, fmt.Errorf("failed to allocate employee code: %w", err)
	}
	emp.EmployeeCode = employee.FormatCode(seq)

	query := `
		INSERT INTO employees (
			employee_code, full_name, email, phone, date_of_birth, gender,
			department, position, role, joining_date, salary, status,
			converted_from_candidate_id
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12,
			$13
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.EmployeeCode, emp.FullName, emp.Email, emp.Phone, emp.DateOfBirth, emp.Gender,
		emp.Department, emp.Position, emp.Role, emp.JoiningDate, emp.Salary, emp.Status,
		emp.ConvertedFromCandidateID,
	))
	if err != nil {
		if mapped := mapEmployeeUniqueViolation(err); mapped != nil {
			return employee.Employee{}, mapped
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

func mapEmployeeUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "employees_email_key":
		return employee.ErrEmailExists
	case "employees_converted_from_candidate_id_key":
		return employee.ErrCandidateConverted
	}
	return nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return emp, nil
}

// GetByCandidateID implements employee.EmployeeRepository. Returns nil when no
// employee originated from the candidate.
func (e *employeeRepositoryImpl) GetByCandidateID(ctx context.Context, candidateID string) (*employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE converted_from_candidate_id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, candidateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get employee by candidate: %w", err)
	}

	return &emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, e.db)

	conditions := []string{"TRUE"}
	args := []interface{}{}
	argIdx := 1

	if filter.Department != nil && *filter.Department != "" {
		conditions = append(conditions, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *filter.Department)
		argIdx++
	}
	if filter.Status != nil && *filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, *filter.Status)
		argIdx++
	}
	if filter.Role != nil && *filter.Role != "" {
		conditions = append(conditions, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, *filter.Role)
		argIdx++
	}
	if filter.Search != nil && *filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(full_name ILIKE $%d OR email ILIKE $%d OR employee_code ILIKE $%d)", argIdx, argIdx, argIdx))
		args = append(args, "%"+*filter.Search+"%")
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM employees WHERE %s", whereClause)
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	validSortColumns := map[string]string{
		"full_name":     "full_name",
		"employee_code": "employee_code",
		"joining_date":  "joining_date",
		"department":    "department",
		"created_at":    "created_at",
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
		FROM employees
		WHERE %s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, employeeColumns, whereClause, sortColumn, sortOrder, argIdx, argIdx+1)

	args = append(args, filter.Limit, filter.Offset())

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListByDepartment implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByDepartment(ctx context.Context, department string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE department = $1 ORDER BY full_name ASC`

	rows, err := q.Query(ctx, query, department)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees by department: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}

func collectEmployees(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return employees, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, emp employee.Employee) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET full_name = $1, email = $2, phone = $3, date_of_birth = $4, gender = $5,
			department = $6, position = $7, role = $8, joining_date = $9,
			salary = $10, status = $11, updated_at = NOW()
		WHERE id = $12
		RETURNING id
	`

	var updatedID string
	err := q.QueryRow(ctx, query,
		emp.FullName, emp.Email, emp.Phone, emp.DateOfBirth, emp.Gender,
		emp.Department, emp.Position, emp.Role, emp.JoiningDate,
		emp.Salary, emp.Status, emp.ID,
	).Scan(&updatedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		if mapped := mapEmployeeUniqueViolation(err); mapped != nil {
			return mapped
		}
		return fmt.Errorf("failed to update employee: %w", err)
	}

	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}

// BulkUpdateStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) BulkUpdateStatus(ctx context.Context, ids []string, status employee.Status) (int64, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET status = $1, updated_at = NOW()
		WHERE id = ANY($2)
	`

	tag, err := q.Exec(ctx, query, status, ids)
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update employee status: %w", err)
	}

	return tag.RowsAffected(), nil
}

// CountByStatus implements employee.EmployeeRepository. A nil status counts
// all employees.
func (e *employeeRepositoryImpl) CountByStatus(ctx context.Context, status *employee.Status) (int64, error) {
	q := GetQuerier(ctx, e.db)

	var total int64
	var err error
	if status == nil {
		err = q.QueryRow(ctx, `SELECT COUNT(*) FROM employees`).Scan(&total)
	} else {
		err = q.QueryRow(ctx, `SELECT COUNT(*) FROM employees WHERE status = $1`, *status).Scan(&total)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return total, nil
}

// CountGroupedByDepartment implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountGroupedByDepartment(ctx context.Context) ([]employee.DepartmentCount, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT department, COUNT(*)
		FROM employees
		GROUP BY department
		ORDER BY COUNT(*) DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by department: %w", err)
	}
	defer rows.Close()

	var counts []employee.DepartmentCount
	for rows.Next() {
		var c employee.DepartmentCount
		if err := rows.Scan(&c.Department, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan department count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// CountGroupedByRole implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountGroupedByRole(ctx context.Context) ([]employee.RoleCount, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT role, COUNT(*)
		FROM employees
		GROUP BY role
		ORDER BY COUNT(*) DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to count employees by role: %w", err)
	}
	defer rows.Close()

	var counts []employee.RoleCount
	for rows.Next() {
		var c employee.RoleCount
		if err := rows.Scan(&c.Role, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan role count: %w", err)
		}
		counts = append(counts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return counts, nil
}

// ListRecent implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListRecent(ctx context.Context, limit int) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `SELECT ` + employeeColumns + ` FROM employees ORDER BY created_at DESC LIMIT $1`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent employees: %w", err)
	}
	defer rows.Close()

	return collectEmployees(rows)
}
