package allowance

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
	l := zap.L().Named("allowance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("allowance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("allowance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func filterFromQuery(c *gin.Context) AllowanceQueryFilter {
	p := period.FromQuery(c.Query("month"), c.Query("year"))
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		// Older clients send the camelCase form.
		employeeID = c.Query("employeeId")
	}
	return AllowanceQueryFilter{
		Month:      p.Month,
		Year:       p.Year,
		EmployeeID: employeeID,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAllowanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create allowance validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp)
}

func (h *Handler) GetAll(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.GetActor(c)

	resp, err := h.service.GetAll(ctx, actor, filterFromQuery(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.List(c, http.StatusOK, resp, len(resp))
}

func (h *Handler) GetById(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.GetActor(c)

	resp, err := h.service.GetByID(ctx, actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	var req UpdateAllowanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update allowance validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Update(ctx, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *Handler) Summary(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.GetActor(c)

	resp, err := h.service.Summary(ctx, actor, filterFromQuery(c))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp)
}
