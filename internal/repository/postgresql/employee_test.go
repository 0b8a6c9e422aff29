package postgresql

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nishan-khiva/HRMS-project/internal/domain/employee"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/database"
	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
)

type stubRow struct {
	scanFn func(dest ...interface{}) error
}

func (s stubRow) Scan(dest ...interface{}) error {
	return s.scanFn(dest...)
}

// mockContext wires a pgxmock pool in as the active transaction so
// repositories run their queries against it.
func mockContext(t *testing.T, mock pgxmock.PgxPoolIface) context.Context {
	t.Helper()
	mock.ExpectBegin()
	tx, err := mock.Begin(context.Background())
	if err != nil {
		t.Fatalf("begin mock transaction: %v", err)
	}
	return InjectTx(context.Background(), tx)
}

func TestScanEmployee_Success(t *testing.T) {
	createdAt := time.Now().UTC()
	joining := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	salary := decimal.NewFromInt(50000)

	row := stubRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 16 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "emp-1"
		*(dest[1].(*string)) = "EMP0001"
		*(dest[2].(*string)) = "Jane Roe"
		*(dest[3].(*string)) = "jane@example.com"
		*(dest[4].(*string)) = "9876543210"
		*(dest[7].(*employee.Department)) = employee.DepartmentIT
		*(dest[8].(*string)) = "Developer"
		*(dest[9].(*employee.Role)) = employee.RoleEmployee
		*(dest[10].(*time.Time)) = joining
		*(dest[11].(*decimal.Decimal)) = salary
		*(dest[12].(*employee.Status)) = employee.StatusActive
		*(dest[14].(*time.Time)) = createdAt
		*(dest[15].(*time.Time)) = createdAt
		return nil
	}}

	emp, err := scanEmployee(row)
	if err != nil {
		t.Fatalf("scanEmployee returned error: %v", err)
	}

	if emp.ID != "emp-1" || emp.EmployeeCode != "EMP0001" {
		t.Fatalf("unexpected employee %+v", emp)
	}
	if !emp.Salary.Equal(salary) {
		t.Errorf("Salary = %s, want %s", emp.Salary, salary)
	}
	if emp.DateOfBirth != nil || emp.ConvertedFromCandidateID != nil {
		t.Errorf("expected nil optional fields, got %+v", emp)
	}
}

func TestMapEmployeeUniqueViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{
			"email conflict",
			&pgconn.PgError{Code: "23505", ConstraintName: "employees_email_key"},
			employee.ErrEmailExists,
		},
		{
			"candidate already converted",
			&pgconn.PgError{Code: "23505", ConstraintName: "employees_converted_from_candidate_id_key"},
			employee.ErrCandidateConverted,
		},
		{
			"other constraint",
			&pgconn.PgError{Code: "23505", ConstraintName: "employees_pkey"},
			nil,
		},
		{
			"not a unique violation",
			&pgconn.PgError{Code: "23503"},
			nil,
		},
		{
			"plain error",
			errors.New("boom"),
			nil,
		},
	}
	for _, c := range cases {
		if got := mapEmployeeUniqueViolation(c.err); !errors.Is(got, c.want) {
			t.Errorf("%s: mapEmployeeUniqueViolation = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestEmployeeRepository_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := mockContext(t, mock)
	repo := NewEmployeeRepository(&database.DB{})

	query := regexp.QuoteMeta(`SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`)
	mock.ExpectQuery(query).WithArgs("missing").WillReturnError(pgx.ErrNoRows)

	_, err = repo.GetByID(ctx, "missing")
	if !errors.Is(err, employee.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_GetByCandidateID_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := mockContext(t, mock)
	repo := NewEmployeeRepository(&database.DB{})

	query := regexp.QuoteMeta(`SELECT ` + employeeColumns + ` FROM employees WHERE converted_from_candidate_id = $1`)
	mock.ExpectQuery(query).WithArgs("cand-1").WillReturnError(pgx.ErrNoRows)

	emp, err := repo.GetByCandidateID(ctx, "cand-1")
	if err != nil {
		t.Fatalf("GetByCandidateID returned error: %v", err)
	}
	if emp != nil {
		t.Fatalf("expected nil employee, got %+v", emp)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEmployeeRepository_Create_AssignsCodeFromSequence(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := mockContext(t, mock)
	repo := NewEmployeeRepository(&database.DB{})

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT nextval('employee_code_seq')`)).
		WillReturnRows(pgxmock.NewRows([]string{"nextval"}).AddRow(int64(7)))

	now := time.Now().UTC()
	joining := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	salary := decimal.NewFromInt(50000)

	mock.ExpectQuery(`INSERT INTO employees`).
		WithArgs("EMP0007", "Jane Roe", "jane@example.com", "9876543210", pgxmock.AnyArg(), pgxmock.AnyArg(),
			employee.DepartmentIT, "Developer", employee.RoleEmployee, joining, salary, employee.StatusActive,
			pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "employee_code", "full_name", "email", "phone", "date_of_birth", "gender",
			"department", "position", "role", "joining_date", "salary", "status",
			"converted_from_candidate_id", "created_at", "updated_at",
		}).AddRow(
			"emp-1", "EMP0007", "Jane Roe", "jane@example.com", "9876543210", nil, nil,
			employee.DepartmentIT, "Developer", employee.RoleEmployee, joining, salary, employee.StatusActive,
			nil, now, now,
		))

	created, err := repo.Create(ctx, employee.Employee{
		FullName:    "Jane Roe",
		Email:       "jane@example.com",
		Phone:       "9876543210",
		Department:  employee.DepartmentIT,
		Position:    "Developer",
		Role:        employee.RoleEmployee,
		JoiningDate: joining,
		Salary:      salary,
		Status:      employee.StatusActive,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if created.EmployeeCode != "EMP0007" {
		t.Errorf("EmployeeCode = %q, want EMP0007", created.EmployeeCode)
	}
	if created.ID != "emp-1" {
		t.Errorf("ID = %q, want emp-1", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
