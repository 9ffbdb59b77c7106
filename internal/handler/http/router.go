package http

import (
	"log/slog"
	"os"

	"github.com/dayflow/hrms-backend-go/internal/handler/http/middleware"
	"github.com/dayflow/hrms-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type RouterConfig struct {
	FrontendURL string
	Env         string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	salaryHandler SalaryHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "dayflow-hrms"),
		slog.String("env", cfg.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Post("/auth/change-password", authHandler.ChangePassword)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/me", employeeHandler.GetMe)
				r.Get("/{id}", employeeHandler.Get)
				r.Get("/{id}/stats", attendanceHandler.MonthlyStats)
				r.Get("/{id}/salary", salaryHandler.Get)
				r.Get("/{id}/salary/slip", salaryHandler.Slip)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Get("/", employeeHandler.List)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Put("/{id}/salary", salaryHandler.Update)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/check-in", attendanceHandler.CheckIn)
				r.Post("/check-out", attendanceHandler.CheckOut)
				r.Get("/today", attendanceHandler.Today)
				r.Get("/", attendanceHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Patch("/{id}/status", attendanceHandler.UpdateStatus)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateRequest)
				r.Get("/", leaveHandler.ListRequests)
				r.Get("/{id}", leaveHandler.GetRequest)
				r.Get("/allocations", leaveHandler.ListAllocations)

				r.Group(func(r chi.Router) {
					r.Use(middleware.StaffOnly)
					r.Post("/{id}/approve", leaveHandler.ApproveRequest)
					r.Post("/{id}/reject", leaveHandler.RejectRequest)
					r.Post("/allocations", leaveHandler.CreateAllocation)
				})
			})

			r.Group(func(r chi.Router) {
				r.Use(middleware.StaffOnly)
				r.Post("/salary/calculate", salaryHandler.Calculate)
			})
		})
	})

	return r
}
