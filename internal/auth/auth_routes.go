package auth

import (
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	logger *zap.Logger,
) {
	group := r.Group("/auth")
	group.Use(middleware.ContextLogger(logger))
	{
		group.POST("/login", middleware.RateLimitByIP(1, 5), handler.Login)
		group.POST("/register", middleware.RateLimitByIP(0.5, 2), handler.Register)
		group.POST("/refresh", middleware.RateLimitByIP(1, 5), handler.Refresh)
		group.GET("/me", middleware.AuthMiddleware(), handler.Me)
	}
}
