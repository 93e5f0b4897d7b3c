package selfservice

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
	l := zap.L().Named("selfservice.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("selfservice.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("self-service request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Profile(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.GetActor(c)

	resp, err := h.service.Profile(ctx, actor, c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Allowances(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.GetActor(c)

	resp, err := h.service.Allowances(ctx, actor, c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, resp, len(resp))
}

func (h *Handler) Payrolls(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.GetActor(c)

	resp, err := h.service.Payrolls(ctx, actor, c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, resp, len(resp))
}

func (h *Handler) Dashboard(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.GetActor(c)
	p := period.FromQuery(c.Query("month"), c.Query("year"))

	resp, err := h.service.Dashboard(ctx, actor, c.Param("employeeId"), p)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
