package analytics

import (
	"net/http"

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
	l := zap.L().Named("analytics.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("analytics request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) MonthlySummary(c *gin.Context) {
	p := period.FromQuery("", c.Query("year"))

	resp, err := h.service.MonthlySummary(c.Request.Context(), p.Year)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, resp, len(resp))
}

func (h *Handler) Metrics(c *gin.Context) {
	resp, err := h.service.Metrics(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) IncomeBreakdown(c *gin.Context) {
	p := period.FromQuery(c.Query("month"), c.Query("year"))

	resp, err := h.service.IncomeBreakdown(c.Request.Context(), p)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) ExpenseBreakdown(c *gin.Context) {
	p := period.FromQuery(c.Query("month"), c.Query("year"))

	resp, err := h.service.ExpenseBreakdown(c.Request.Context(), p)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
