package dashboard

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
	dashboards := r.Group("/dashboard")
	dashboards.Use(middleware.AuthMiddleware())
	dashboards.Use(middleware.ContextLogger(logger))
	{
		dashboards.GET("",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "dashboard", "read"),
			handler.GetAll,
		)

		dashboards.GET("/stats",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "dashboard", "read"),
			handler.Stats,
		)

		dashboards.GET("/:id",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "dashboard", "read"),
			handler.GetById,
		)

		dashboards.POST("",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "dashboard", "create"),
			handler.Create,
		)

		dashboards.POST("/refresh",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "dashboard", "update"),
			handler.Refresh,
		)

		dashboards.PUT("/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "dashboard", "update"),
			handler.Update,
		)

		dashboards.DELETE("/:id",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "dashboard", "delete"),
			handler.Delete,
		)
	}
}
