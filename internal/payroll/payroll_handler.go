package payroll

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/middleware"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/apperror"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/period"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("payroll.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("payroll request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// filterFromQuery tolerates malformed month/year values; they parse to zero
// and simply do not constrain the query.
func filterFromQuery(c *gin.Context) PayrollQueryFilter {
	p := period.FromQuery(c.Query("month"), c.Query("year"))
	employeeID := c.Query("employee_id")
	if employeeID == "" {
		// Older clients send the camelCase form.
		employeeID = c.Query("employeeId")
	}
	return PayrollQueryFilter{
		Month:      p.Month,
		Year:       p.Year,
		EmployeeID: employeeID,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create payroll validation failed", zap.Error(err))
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

	var req UpdatePayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update payroll validation failed", zap.Error(err))
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

func (h *Handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	var req ProcessPayrollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http process payroll validation failed", zap.Error(err))
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		h.releaseIdempotencyLock(c)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	resp, err := h.service.Process(ctx, req)
	if err != nil {
		h.releaseIdempotencyLock(c)
		h.writeServiceError(c, err)
		return
	}

	h.cacheIdempotentResponse(c, resp)
	response.Success(c, http.StatusOK, resp)
}

func (h *Handler) cacheIdempotentResponse(c *gin.Context, resp ProcessPayrollResponse) {
	cacheKey := c.GetString("idempotency_cache_key")
	if cacheKey == "" || h.rdb == nil {
		return
	}

	payload, err := json.Marshal(resp)
	if err == nil {
		if err := h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour).Err(); err != nil {
			h.logger.Warn("idempotency cache store failed", zap.Error(err))
		}
	}
	h.releaseIdempotencyLock(c)
}

func (h *Handler) releaseIdempotencyLock(c *gin.Context) {
	lockKey := c.GetString("idempotency_lock_key")
	if lockKey == "" || h.rdb == nil {
		return
	}
	if err := h.rdb.Del(c.Request.Context(), lockKey).Err(); err != nil {
		h.logger.Warn("idempotency lock release failed", zap.Error(err))
	}
}
