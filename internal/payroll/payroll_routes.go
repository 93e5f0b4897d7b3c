package payroll

import (
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/middleware"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	payrolls := r.Group("/payroll")
	payrolls.Use(middleware.AuthMiddleware())
	payrolls.Use(middleware.ContextLogger(logger))
	{
		payrolls.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "payroll", "read"),
			handler.GetAll,
		)

		// Registered before /:id so gin does not treat "stats" as an id.
		payrolls.GET("/stats/summary",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "payroll", "read"),
			handler.Summary,
		)

		payrolls.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "payroll", "read"),
			handler.GetById,
		)

		payrolls.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "payroll", "create"),
			handler.Create,
		)

		payrolls.POST("/process",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "payroll", "process"),
			middleware.Idempotency(rdb),
			handler.Process,
		)

		payrolls.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "payroll", "update"),
			handler.Update,
		)

		payrolls.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "payroll", "delete"),
			handler.Delete,
		)
	}
}
