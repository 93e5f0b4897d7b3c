package analytics

import (
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/middleware"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	group := r.Group("/analytics")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	group.Use(middleware.RateLimitByUser(3, 10))
	group.Use(rbac.Authorize(rbacService, "analytics", "read"))
	{
		group.GET("/monthly-summary", handler.MonthlySummary)
		group.GET("/metrics", handler.Metrics)
		group.GET("/income-breakdown", handler.IncomeBreakdown)
		group.GET("/expense-breakdown", handler.ExpenseBreakdown)
	}
}
