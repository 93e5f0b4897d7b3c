package selfservice

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
	group := r.Group("/user")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	group.Use(middleware.RateLimitByUser(3, 10))
	group.Use(rbac.Authorize(rbacService, "selfservice", "read"))
	{
		group.GET("/profile/:employeeId", handler.Profile)
		group.GET("/allowances/:employeeId", handler.Allowances)
		group.GET("/payroll/:employeeId", handler.Payrolls)
		group.GET("/dashboard/:employeeId", handler.Dashboard)
	}
}
