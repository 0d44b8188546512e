package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/staffhub/hrms/docs"
	"github.com/staffhub/hrms/internal/api/handler"
	"github.com/staffhub/hrms/internal/api/middleware"
	"github.com/staffhub/hrms/internal/core/domain"
	"github.com/staffhub/hrms/internal/core/ports"
	"github.com/staffhub/hrms/internal/core/service"
	mongodb "github.com/staffhub/hrms/internal/infrastructure/db/mongo"
	redisdb "github.com/staffhub/hrms/internal/infrastructure/db/redis"
	"github.com/staffhub/hrms/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger, audit ports.AuditSink) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("hrms"))

	// --- Dependencies ---
	accountRepo := mongodb.NewAccountRepository(db)
	employeeRepo := mongodb.NewEmployeeRepository(db)
	throttle := redisdb.NewLoginThrottle(rdb)

	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := service.NewAuthService(accountRepo, tokenService, throttle, audit, log)
	employeeService := service.NewEmployeeService(employeeRepo, audit, log)
	reportService := service.NewReportService(employeeRepo)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	reportHandler := handler.NewReportHandler(reportService)
	healthHandler := handler.NewHealthHandler(db, rdb)

	authMW := middleware.Auth(tokenService)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/login", authHandler.Login)
	auth.POST("/register", authHandler.Register)
	auth.POST("/reset-password", authHandler.ResetPassword)
	auth.PUT("/update-profile/:id", authHandler.UpdateProfile, authMW)

	// --- Employee routes ---
	employees := e.Group("/api/employees", authMW)
	employees.GET("", employeeHandler.List, middleware.RBAC(domain.RoleAdmin.String(), domain.RoleHR.String(), domain.RoleManager.String()))
	employees.POST("", employeeHandler.Create, middleware.RBAC(domain.RoleAdmin.String(), domain.RoleHR.String()))
	employees.GET("/count", employeeHandler.Count)
	employees.GET("/search", employeeHandler.Search)
	employees.GET("/hr-stats", employeeHandler.HRStats, middleware.RBAC(domain.RoleHR.String()))
	employees.GET("/manager-stats", employeeHandler.ManagerStats, middleware.RBAC(domain.RoleManager.String()))
	employees.GET("/ceo-stats", employeeHandler.CEOStats, middleware.RBAC(domain.RoleCEO.String()))
	employees.GET("/:id", employeeHandler.Get)
	employees.PUT("/:id", employeeHandler.Update, middleware.RBAC(domain.RoleAdmin.String(), domain.RoleHR.String()))
	employees.DELETE("/:id", employeeHandler.Delete, middleware.RBAC(domain.RoleAdmin.String(), domain.RoleHR.String()))

	// --- Report routes ---
	e.GET("/api/attendance/monthly/:year/:month", reportHandler.MonthlyAttendance, authMW)
	e.GET("/api/attendance/user/:userId/today", reportHandler.TodayAttendance, authMW)
	e.GET("/api/leaves/user/:userId", reportHandler.Leaves, authMW)
	e.GET("/api/payroll/user/:userId", reportHandler.Payslips, authMW)
	e.GET("/api/payroll/salary-details", reportHandler.SalaryDetails, authMW)
	e.GET("/api/performance/manager", reportHandler.ManagerPerformance, authMW)
	e.GET("/api/tasks/employee/:id", reportHandler.EmployeeTasks, authMW)
	e.GET("/api/training/courses", reportHandler.Courses, authMW)
	e.GET("/api/projects", reportHandler.Projects, authMW)
	e.GET("/api/reports/attendance", reportHandler.AttendanceReport, authMW)
	e.GET("/api/department/list", reportHandler.Departments, authMW)
	e.GET("/api/department/stats", reportHandler.DepartmentStats, authMW)

	// --- Operational endpoints (no auth required) ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
