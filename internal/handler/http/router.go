package http

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/nishan-khiva/HRMS-project/internal/handler/http/middleware"
	"github.com/nishan-khiva/HRMS-project/internal/pkg/jwt"
)

type RouterConfig struct {
	FrontendURL string
	Logger      *slog.Logger
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	employeeHandler EmployeeHandler,
	candidateHandler CandidateHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(cfg.Logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService.JWTAuth()))
				r.Get("/me", authHandler.Me)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/users", func(r chi.Router) {
				r.Use(middleware.AdminOnly)
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.Get)
				r.Put("/{id}", userHandler.Update)
				r.Delete("/{id}", userHandler.Delete)
				r.Patch("/{id}/toggle-status", userHandler.ToggleStatus)
				r.Patch("/{id}/role", userHandler.UpdateRole)
			})

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
				r.Get("/department/{department}", employeeHandler.ListByDepartment)
				r.Get("/stats/overview", employeeHandler.Stats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROrAdmin)
					r.Post("/", employeeHandler.Create)
					r.Post("/convert-candidate/{candidateId}", employeeHandler.ConvertCandidate)
					r.Patch("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
					r.Patch("/bulk-status", employeeHandler.BulkUpdateStatus)
				})

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Patch("/{id}/role", employeeHandler.UpdateRole)
				})
			})

			r.Route("/candidates", func(r chi.Router) {
				r.Get("/", candidateHandler.List)
				r.Get("/{id}", candidateHandler.Get)
				r.Get("/position/{position}", candidateHandler.ListByPosition)
				r.Get("/stats/overview", candidateHandler.Stats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROrAdmin)
					r.Post("/", candidateHandler.Create)
					r.Patch("/{id}", candidateHandler.Update)
					r.Patch("/{id}/status", candidateHandler.UpdateStatus)
					r.Post("/{id}/resume", candidateHandler.UploadResume)
					r.Delete("/{id}", candidateHandler.Delete)
					r.Post("/bulk-delete", candidateHandler.BulkDelete)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", attendanceHandler.List)
				r.Get("/today", attendanceHandler.ListToday)
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/{id}", attendanceHandler.Get)
				r.Get("/employee/{employeeId}", attendanceHandler.ListByEmployee)
				r.Get("/stats/overview", attendanceHandler.Stats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROrAdmin)
					r.Patch("/{id}", attendanceHandler.Update)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Get("/", leaveHandler.List)
				r.Get("/calendar", leaveHandler.Calendar)
				r.Post("/", leaveHandler.Create)
				r.Get("/{id}", leaveHandler.Get)
				r.Patch("/{id}", leaveHandler.Update)
				r.Get("/employee/{employeeId}", leaveHandler.ListByEmployee)
				r.Post("/{id}/documents", leaveHandler.AddDocuments)
				r.Get("/stats/overview", leaveHandler.Stats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROrAdmin)
					r.Patch("/{id}/status", leaveHandler.UpdateStatus)
					r.Delete("/{id}", leaveHandler.Delete)
				})
			})
		})
	})

	return r
}
