package allowance

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
	allowances := r.Group("/allowances")
	allowances.Use(middleware.AuthMiddleware())
	allowances.Use(middleware.ContextLogger(logger))
	{
		allowances.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "allowance", "read"),
			handler.GetAll,
		)

		// Unlike payroll and expenses this endpoint has no /stats segment;
		// the frontend has always called it this way.
		allowances.GET("/summary",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "allowance", "read"),
			handler.Summary,
		)

		allowances.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "allowance", "read"),
			handler.GetById,
		)

		allowances.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "allowance", "create"),
			handler.Create,
		)

		allowances.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "allowance", "update"),
			handler.Update,
		)

		allowances.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "allowance", "delete"),
			handler.Delete,
		)
	}
}
