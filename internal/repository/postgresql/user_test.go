package postgresql

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/nishan-khiva/HRMS-project/internal/domain/user"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/database"
	pgxmock "github.com/pashagolub/pgxmock/v4"
)

func TestScanUser_Success(t *testing.T) {
	createdAt := time.Now().UTC()

	row := stubRow{scanFn: func(dest ...interface{}) error {
		if len(dest) != 8 {
			return errors.New("unexpected dest length")
		}
		*(dest[0].(*string)) = "user-1"
		*(dest[1].(*string)) = "Jane Roe"
		*(dest[2].(*string)) = "jane@example.com"
		*(dest[3].(*string)) = "hashed"
		*(dest[4].(*user.Role)) = user.RoleHR
		*(dest[5].(*bool)) = true
		*(dest[6].(*time.Time)) = createdAt
		*(dest[7].(*time.Time)) = createdAt
		return nil
	}}

	u, err := scanUser(row)
	if err != nil {
		t.Fatalf("scanUser returned error: %v", err)
	}

	if u.ID != "user-1" || u.Email != "jane@example.com" || u.Role != user.RoleHR {
		t.Fatalf("unexpected user %+v", u)
	}
	if !u.IsActive {
		t.Error("IsActive = false, want true")
	}
}

func TestUserRepository_GetByEmail_Found(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := mockContext(t, mock)
	repo := NewUserRepository(&database.DB{})

	now := time.Now().UTC()
	query := regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`)
	mock.ExpectQuery(query).
		WithArgs("jane@example.com").
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "full_name", "email", "password_hash", "role", "is_active", "created_at", "updated_at",
		}).AddRow("user-1", "Jane Roe", "jane@example.com", "hashed", user.RoleAdmin, true, now, now))

	u, err := repo.GetByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("GetByEmail returned error: %v", err)
	}
	if u == nil || u.ID != "user-1" || u.Role != user.RoleAdmin {
		t.Fatalf("unexpected user %+v", u)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_GetByEmail_NoRows(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := mockContext(t, mock)
	repo := NewUserRepository(&database.DB{})

	query := regexp.QuoteMeta(`SELECT ` + userColumns + ` FROM users WHERE LOWER(email) = LOWER($1)`)
	mock.ExpectQuery(query).WithArgs("nobody@example.com").WillReturnError(pgx.ErrNoRows)

	u, err := repo.GetByEmail(ctx, "nobody@example.com")
	if err != nil {
		t.Fatalf("GetByEmail returned error: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil user, got %+v", u)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("failed to create mock pool: %v", err)
	}
	defer mock.Close()

	ctx := mockContext(t, mock)
	repo := NewUserRepository(&database.DB{})

	mock.ExpectQuery(`INSERT INTO users`).
		WithArgs("Jane Roe", "jane@example.com", "hashed", user.RoleEmployee, true).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	u := user.User{
		FullName:     "Jane Roe",
		Email:        "jane@example.com",
		PasswordHash: "hashed",
		Role:         user.RoleEmployee,
		IsActive:     true,
	}
	if err := repo.Create(ctx, &u); !errors.Is(err, user.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
