package main

import (
	"fmt"
	"net/http"

	"github.com/dayflow/hrms-backend-go/internal/config"
	appHTTP "github.com/dayflow/hrms-backend-go/internal/handler/http"
	"github.com/dayflow/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow/hrms-backend-go/internal/service/attendance"
	authService "github.com/dayflow/hrms-backend-go/internal/service/auth"
	employeeService "github.com/dayflow/hrms-backend-go/internal/service/employee"
	leaveService "github.com/dayflow/hrms-backend-go/internal/service/leave"
	salaryService "github.com/dayflow/hrms-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	allocationRepo := postgresql.NewAllocationRepository(db)
	salaryRepo := postgresql.NewSalaryInfoRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	authSvc := authService.NewService(userRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewService(employeeRepo, userRepo, allocationRepo, txManager)
	attendanceSvc := attendanceService.NewService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewService(leaveRepo, allocationRepo, employeeRepo, attendanceRepo, txManager)
	salarySvc := salaryService.NewService(salaryRepo, employeeRepo, attendanceRepo, leaveRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	salaryHandler := appHTTP.NewSalaryHandler(salarySvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{FrontendURL: cfg.App.FrontendURL, Env: cfg.App.Env},
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		leaveHandler,
		salaryHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
