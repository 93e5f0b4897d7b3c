package payroll_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/payroll"
	payrollerrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/payroll/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Count   *int            `json:"count"`
	Code    string          `json:"code"`
	Message string          `json:"message"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakePayrollService struct {
	createFn  func(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error)
	getAllFn  func(ctx context.Context, actor domain.Actor, filter payroll.PayrollQueryFilter) ([]payroll.PayrollResponse, error)
	getByIDFn func(ctx context.Context, actor domain.Actor, id string) (payroll.PayrollResponse, error)
	updateFn  func(ctx context.Context, id string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error)
	deleteFn  func(ctx context.Context, id string) error
	summaryFn func(ctx context.Context, actor domain.Actor, filter payroll.PayrollQueryFilter) (payroll.PayrollSummaryResponse, error)
	processFn func(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.ProcessPayrollResponse, error)
}

func (f *fakePayrollService) Create(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
	return f.createFn(ctx, req)
}

func (f *fakePayrollService) GetAll(ctx context.Context, actor domain.Actor, filter payroll.PayrollQueryFilter) ([]payroll.PayrollResponse, error) {
	return f.getAllFn(ctx, actor, filter)
}

func (f *fakePayrollService) GetByID(ctx context.Context, actor domain.Actor, id string) (payroll.PayrollResponse, error) {
	return f.getByIDFn(ctx, actor, id)
}

func (f *fakePayrollService) Update(ctx context.Context, id string, req payroll.UpdatePayrollRequest) (payroll.PayrollResponse, error) {
	return f.updateFn(ctx, id, req)
}

func (f *fakePayrollService) Delete(ctx context.Context, id string) error {
	return f.deleteFn(ctx, id)
}

func (f *fakePayrollService) Summary(ctx context.Context, actor domain.Actor, filter payroll.PayrollQueryFilter) (payroll.PayrollSummaryResponse, error) {
	return f.summaryFn(ctx, actor, filter)
}

func (f *fakePayrollService) Process(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.ProcessPayrollResponse, error) {
	return f.processFn(ctx, req)
}

func TestPayrollHandler_Create(t *testing.T) {
	employeeID := uuid.New().String()

	svc := &fakePayrollService{
		createFn: func(ctx context.Context, req payroll.CreatePayrollRequest) (payroll.PayrollResponse, error) {
			assert.Equal(t, employeeID, req.EmployeeID)
			assert.Equal(t, 3, req.Month)
			return payroll.PayrollResponse{
				ID:         uuid.New().String(),
				EmployeeID: req.EmployeeID,
				Month:      req.Month,
				Year:       req.Year,
				Status:     payroll.StatusPending,
			}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	body := `{"employee_id":"` + employeeID + `","month":3,"year":2024,"base_salary":45000}`
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Success)
}

func TestPayrollHandler_GetAll_MalformedFilterPassesThrough(t *testing.T) {
	svc := &fakePayrollService{
		getAllFn: func(ctx context.Context, actor domain.Actor, filter payroll.PayrollQueryFilter) ([]payroll.PayrollResponse, error) {
			// Unparseable month is carried as zero, not rejected.
			assert.Equal(t, 0, filter.Month)
			assert.Equal(t, 2024, filter.Year)
			return []payroll.PayrollResponse{}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll?month=March&year=2024", nil)
	c.Set("role", domain.RoleAdmin)
	c.Set("user_id", uuid.New().String())

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Success)
	assert.NotNil(t, env.Count)
	assert.Equal(t, 0, *env.Count)
}

func TestPayrollHandler_GetById_Forbidden(t *testing.T) {
	svc := &fakePayrollService{
		getByIDFn: func(ctx context.Context, actor domain.Actor, id string) (payroll.PayrollResponse, error) {
			return payroll.PayrollResponse{}, payrollerrors.ErrForeignPayrollRecord
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	id := uuid.New().String()
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/"+id, nil)
	c.Params = []gin.Param{{Key: "id", Value: id}}
	c.Set("role", domain.RoleEmployee)
	c.Set("user_id", uuid.New().String())
	c.Set("employee_id", uuid.New().String())

	h.GetById(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Success)
	assert.Equal(t, "FORBIDDEN", env.Code)
}

func TestPayrollHandler_Process(t *testing.T) {
	svc := &fakePayrollService{
		processFn: func(ctx context.Context, req payroll.ProcessPayrollRequest) (payroll.ProcessPayrollResponse, error) {
			return payroll.ProcessPayrollResponse{Month: req.Month, Year: req.Year, Created: 5, Skipped: 1}, nil
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/payroll/process", strings.NewReader(`{"month":4,"year":2024}`))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Process(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Success)

	var resp payroll.ProcessPayrollResponse
	assert.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, 5, resp.Created)
}

func TestPayrollHandler_InternalErrorIsOpaque(t *testing.T) {
	svc := &fakePayrollService{
		summaryFn: func(ctx context.Context, actor domain.Actor, filter payroll.PayrollQueryFilter) (payroll.PayrollSummaryResponse, error) {
			return payroll.PayrollSummaryResponse{}, assert.AnError
		},
	}

	h := payroll.NewHandler(svc, nil)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/payroll/stats/summary", nil)
	c.Set("role", domain.RoleAdmin)
	c.Set("user_id", uuid.New().String())

	h.Summary(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Success)
	assert.Equal(t, "INTERNAL_ERROR", env.Code)
	// The raw error text stays server-side.
	assert.NotContains(t, env.Message, assert.AnError.Error())
}
