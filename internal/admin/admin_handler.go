package admin

import (
	"net/http"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/middleware"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/apperror"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/period"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("admin.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("admin request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Stats(c *gin.Context) {
	resp, err := h.service.Stats(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Overview(c *gin.Context) {
	p := period.FromQuery(c.Query("month"), c.Query("year"))

	resp, err := h.service.Overview(c.Request.Context(), p)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) ListUsers(c *gin.Context) {
	resp, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, resp, len(resp))
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update user validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.UpdateUser(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	actor := middleware.GetActor(c)

	if err := h.service.DeleteUser(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
