package http

import (
	"log/slog"
	"os"

	"github.com/dayflow-hr/hrms-backend-go/internal/config"
	"github.com/dayflow-hr/hrms-backend-go/internal/domain/employee"
	"github.com/dayflow-hr/hrms-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterDeps struct {
	JWTService        jwt.Service
	RoleResolver      employee.RoleResolver
	AuthHandler       AuthHandler
	EmployeeHandler   EmployeeHandler
	AttendanceHandler AttendanceHandler
	LeaveHandler      LeaveHandler
	SalaryHandler     SalaryHandler
	ReportHandler     ReportHandler
}

func NewRouter(cfg *config.Config, deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dayflow-hrms"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	requireHR := middleware.RequireHR(deps.RoleResolver)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", deps.AuthHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))
				r.Post("/change-password", deps.AuthHandler.ChangePassword)
			})
		})

		// Everything below requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(deps.JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(deps.JWTService.JWTAuth()))

			r.Route("/hr", func(r chi.Router) {
				r.Use(requireHR)
				r.Post("/create-employee", deps.EmployeeHandler.Create)
				r.Post("/deactivate-employee", deps.EmployeeHandler.Deactivate)
				r.Get("/employees", deps.EmployeeHandler.List)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", deps.AttendanceHandler.CheckIn)
				r.Post("/check-out", deps.AttendanceHandler.CheckOut)
				r.Get("/my", deps.AttendanceHandler.GetMyAttendance)

				r.Group(func(r chi.Router) {
					r.Use(requireHR)
					r.Get("/all", deps.AttendanceHandler.List)
				})
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/apply", deps.LeaveHandler.Apply)
				r.Get("/my", deps.LeaveHandler.GetMyLeaves)

				r.Group(func(r chi.Router) {
					r.Use(requireHR)
					r.Post("/approve", deps.LeaveHandler.Approve)
					r.Post("/reject", deps.LeaveHandler.Reject)
					r.Get("/all", deps.LeaveHandler.List)
				})
			})

			r.Route("/salary", func(r chi.Router) {
				r.Get("/my", deps.SalaryHandler.GetMySalary)

				r.Group(func(r chi.Router) {
					r.Use(requireHR)
					r.Post("/set", deps.SalaryHandler.Set)
					r.Get("/all", deps.SalaryHandler.List)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Use(requireHR)
				r.Get("/attendance", deps.ReportHandler.Attendance)
				r.Get("/salary", deps.ReportHandler.Salary)
			})
		})
	})

	return r
}
