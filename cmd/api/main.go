package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/httplog/v3"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/nishan-khiva/HRMS-project/internal/config"
	appHTTP "github.com/nishan-khiva/HRMS-project/internal/handler/http"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/database"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/jwt"
	"github.com/nishan-khiva/HRMS-project/internal/repository/postgresql"
	attendanceService "github.com/nishan-khiva/HRMS-project/internal/service/attendance"
	authService "github.com/nishan-khiva/HRMS-project/internal/service/auth"
	candidateService "github.com/nishan-khiva/HRMS-project/internal/service/candidate"
	employeeService "github.com/nishan-khiva/HRMS-project/internal/service/employee"
	leaveService "github.com/nishan-khiva/HRMS-project/internal/service/leave"
	userService "github.com/nishan-khiva/HRMS-project/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("env", cfg.App.Env),
	)

	dsn := cfg.DatabaseURL()
	if err := runMigrations(cfg.App.MigrationsDir, dsn); err != nil {
		logger.Error("migration failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		logger.Error("database connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	candidateRepo := postgresql.NewCandidateRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewAuthService(userRepo, jwtService, logger)
	userSvc := userService.NewUserService(userRepo, logger)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, candidateRepo, logger)
	candidateSvc := candidateService.NewCandidateService(candidateRepo, employeeSvc, logger)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, logger)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo, attendanceRepo, logger)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	userHandler := appHTTP.NewUserHandler(userSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	candidateHandler := appHTTP.NewCandidateHandler(candidateSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			FrontendURL: cfg.App.FrontendURL,
			Logger:      logger,
		},
		jwtService,
		authHandler,
		userHandler,
		employeeHandler,
		candidateHandler,
		attendanceHandler,
		leaveHandler,
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	logger.Info("server starting", slog.String("addr", addr))
	if err := http.ListenAndServe(addr, router); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func runMigrations(dir, dsn string) error {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolve migrations dir %s: %w", dir, err)
	}

	m, err := migrate.New(fmt.Sprintf("file://%s", filepath.ToSlash(absDir)), dsn)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}
