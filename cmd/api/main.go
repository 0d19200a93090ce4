package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/dayflow-hr/hrms-backend-go/internal/config"
	appHTTP "github.com/dayflow-hr/hrms-backend-go/internal/handler/http"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/database"
	"github.com/dayflow-hr/hrms-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hr/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hr/hrms-backend-go/internal/service/attendance"
	authService "github.com/dayflow-hr/hrms-backend-go/internal/service/auth"
	employeeService "github.com/dayflow-hr/hrms-backend-go/internal/service/employee"
	leaveService "github.com/dayflow-hr/hrms-backend-go/internal/service/leave"
	reportService "github.com/dayflow-hr/hrms-backend-go/internal/service/report"
	salaryService "github.com/dayflow-hr/hrms-backend-go/internal/service/salary"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	companyRepo := postgresql.NewCompanyRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	roleRepo := postgresql.NewRoleRepository(db)
	roleResolver := postgresql.NewRoleResolver(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	approvalRepo := postgresql.NewApprovalRepository(db)
	salaryRepo := postgresql.NewSalaryRepository(db)
	reportRepo := postgresql.NewReportRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.Expiration)

	authSvc := authService.NewAuthService(employeeRepo, roleRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, roleRepo, companyRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, cfg)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, approvalRepo, attendanceRepo)
	salarySvc := salaryService.NewSalaryService(salaryRepo, employeeRepo)
	reportSvc := reportService.NewReportService(reportRepo)

	router := appHTTP.NewRouter(cfg, appHTTP.RouterDeps{
		JWTService:        jwtService,
		RoleResolver:      roleResolver,
		AuthHandler:       appHTTP.NewAuthHandler(authSvc),
		EmployeeHandler:   appHTTP.NewEmployeeHandler(employeeSvc),
		AttendanceHandler: appHTTP.NewAttendanceHandler(attendanceSvc),
		LeaveHandler:      appHTTP.NewLeaveHandler(leaveSvc),
		SalaryHandler:     appHTTP.NewSalaryHandler(salarySvc),
		ReportHandler:     appHTTP.NewReportHandler(reportSvc),
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
