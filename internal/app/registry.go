package app

import (
	"database/sql"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/admin"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/allowance"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/analytics"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/auth"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/dashboard"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/employee"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/expense"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/messaging/kafka"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/payroll"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/rbac"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/selfservice"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/counter"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	logger := zap.L()

	// --- Repositories ---
	adminRepo := admin.NewRepository(gormDB)
	allowanceRepo := allowance.NewRepository(gormDB)
	analyticsRepo := analytics.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	counterRepo := counter.NewRepository(gormDB)
	dashboardRepo := dashboard.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	payrollRepo := payroll.NewRepository(gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewService()
	if err != nil {
		return err
	}

	// --- Services ---
	adminService := admin.NewService(db, adminRepo)
	allowanceService := allowance.NewService(db, allowanceRepo)
	analyticsService := analytics.NewService(analyticsRepo)
	authService := auth.NewService(db, authRepo)
	dashboardService := dashboard.NewService(db, dashboardRepo, rdb)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, counterRepo, outboxRepo)
	expenseService := expense.NewService(db, expenseRepo)
	payrollService := payroll.NewServiceWithOutbox(db, payrollRepo, outboxRepo)
	selfServiceService := selfservice.NewService(employeeRepo, payrollRepo, allowanceRepo)

	// --- Handlers ---
	adminHandler := admin.NewHandler(adminService)
	allowanceHandler := allowance.NewHandler(allowanceService)
	analyticsHandler := analytics.NewHandler(analyticsService)
	authHandler := auth.NewHandler(authService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	employeeHandler := employee.NewHandler(employeeService)
	expenseHandler := expense.NewHandler(expenseService)
	payrollHandler := payroll.NewHandler(payrollService, rdb)
	selfServiceHandler := selfservice.NewHandler(selfServiceService)

	// --- Routes Registration ---
	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		admin.RegisterRoutes(api, adminHandler, rbacService, logger)
		allowance.RegisterRoutes(api, allowanceHandler, rbacService, logger)
		analytics.RegisterRoutes(api, analyticsHandler, rbacService, logger)
		dashboard.RegisterRoutes(api, dashboardHandler, rbacService, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, logger)
		expense.RegisterRoutes(api, expenseHandler, rbacService, logger)
		payroll.RegisterRoutes(api, payrollHandler, rbacService, rdb, logger)
		selfservice.RegisterRoutes(api, selfServiceHandler, rbacService, logger)
	}

	return nil
}
