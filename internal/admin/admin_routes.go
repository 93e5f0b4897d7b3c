package admin

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
	group := r.Group("/admin")
	group.Use(middleware.AuthMiddleware())
	group.Use(middleware.ContextLogger(logger))
	{
		group.GET("/stats",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "admin", "read"),
			handler.Stats,
		)

		group.GET("/overview",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "admin", "read"),
			handler.Overview,
		)

		group.GET("/users",
			middleware.RateLimitByUser(3, 10),
			rbac.Authorize(rbacService, "admin", "read"),
			handler.ListUsers,
		)

		group.PUT("/users/:id",
			middleware.RateLimitByUser(0.5, 2),
			rbac.Authorize(rbacService, "admin", "update"),
			handler.UpdateUser,
		)

		group.DELETE("/users/:id",
			middleware.RateLimitByUser(0.2, 1),
			rbac.Authorize(rbacService, "admin", "delete"),
			handler.DeleteUser,
		)
	}
}
