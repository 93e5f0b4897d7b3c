package selfservice_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/allowance"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/employee"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/payroll"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/selfservice"
	selfserviceerrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/selfservice/errors"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/period"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type stubEmployeeRepository struct {
	findByNumberFn func(ctx context.Context, number string, caseInsensitive bool) (*employee.Employee, error)
}

func (s *stubEmployeeRepository) WithTx(tx *sql.Tx) employee.Repository { return s }
func (s *stubEmployeeRepository) Create(ctx context.Context, empl *employee.Employee) error {
	return nil
}
func (s *stubEmployeeRepository) FindAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}
func (s *stubEmployeeRepository) FindByID(ctx context.Context, id string) (*employee.Employee, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubEmployeeRepository) FindByNumber(ctx context.Context, number string, caseInsensitive bool) (*employee.Employee, error) {
	if s.findByNumberFn != nil {
		return s.findByNumberFn(ctx, number, caseInsensitive)
	}
	return nil, gorm.ErrRecordNotFound
}
func (s *stubEmployeeRepository) Update(ctx context.Context, empl *employee.Employee) error {
	return nil
}
func (s *stubEmployeeRepository) Delete(ctx context.Context, id string) error { return nil }
func (s *stubEmployeeRepository) CountActive(ctx context.Context) (int64, error) {
	return 0, nil
}
func (s *stubEmployeeRepository) SumActiveMonthlySalary(ctx context.Context) (int64, error) {
	return 0, nil
}
func (s *stubEmployeeRepository) GroupByDepartment(ctx context.Context) ([]employee.DepartmentStat, error) {
	return nil, nil
}

type stubPayrollRepository struct {
	findAllFn     func(ctx context.Context, filter payroll.PayrollQueryFilter) ([]payroll.Payroll, error)
	sumByFilterFn func(ctx context.Context, filter payroll.PayrollQueryFilter) (payroll.PayrollSums, error)
}

func (s *stubPayrollRepository) WithTx(tx *sql.Tx) payroll.Repository { return s }
func (s *stubPayrollRepository) Create(ctx context.Context, p *payroll.Payroll) error {
	return nil
}
func (s *stubPayrollRepository) CreateBatch(ctx context.Context, ps []*payroll.Payroll) error {
	return nil
}
func (s *stubPayrollRepository) FindAll(ctx context.Context, filter payroll.PayrollQueryFilter) ([]payroll.Payroll, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx, filter)
	}
	return nil, nil
}
func (s *stubPayrollRepository) FindByID(ctx context.Context, id string) (*payroll.Payroll, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubPayrollRepository) Update(ctx context.Context, p *payroll.Payroll) error {
	return nil
}
func (s *stubPayrollRepository) Delete(ctx context.Context, id string) error { return nil }
func (s *stubPayrollRepository) EmployeeMonthlySalary(ctx context.Context, employeeID string) (int64, bool, error) {
	return 0, false, nil
}
func (s *stubPayrollRepository) ActiveEmployeesWithoutPayroll(ctx context.Context, month, year int) ([]payroll.EmployeeSnapshot, error) {
	return nil, nil
}
func (s *stubPayrollRepository) SumByFilter(ctx context.Context, filter payroll.PayrollQueryFilter) (payroll.PayrollSums, error) {
	if s.sumByFilterFn != nil {
		return s.sumByFilterFn(ctx, filter)
	}
	return payroll.PayrollSums{}, nil
}

type stubAllowanceRepository struct {
	findAllFn     func(ctx context.Context, filter allowance.AllowanceQueryFilter) ([]allowance.Allowance, error)
	sumByFilterFn func(ctx context.Context, filter allowance.AllowanceQueryFilter) (allowance.AllowanceSums, error)
}

func (s *stubAllowanceRepository) WithTx(tx *sql.Tx) allowance.Repository { return s }
func (s *stubAllowanceRepository) Create(ctx context.Context, a *allowance.Allowance) error {
	return nil
}
func (s *stubAllowanceRepository) FindAll(ctx context.Context, filter allowance.AllowanceQueryFilter) ([]allowance.Allowance, error) {
	if s.findAllFn != nil {
		return s.findAllFn(ctx, filter)
	}
	return nil, nil
}
func (s *stubAllowanceRepository) FindByID(ctx context.Context, id string) (*allowance.Allowance, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubAllowanceRepository) Update(ctx context.Context, a *allowance.Allowance) error {
	return nil
}
func (s *stubAllowanceRepository) Delete(ctx context.Context, id string) error { return nil }
func (s *stubAllowanceRepository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	return true, nil
}
func (s *stubAllowanceRepository) SumByFilter(ctx context.Context, filter allowance.AllowanceQueryFilter) (allowance.AllowanceSums, error) {
	if s.sumByFilterFn != nil {
		return s.sumByFilterFn(ctx, filter)
	}
	return allowance.AllowanceSums{}, nil
}
func (s *stubAllowanceRepository) SumIncentiveByPeriod(ctx context.Context, month, year int) (int64, error) {
	return 0, nil
}

func employeeActor(number string) domain.Actor {
	return domain.Actor{
		UserID:         uuid.New().String(),
		Role:           domain.RoleEmployee,
		EmployeeID:     uuid.New().String(),
		EmployeeNumber: number,
	}
}

func TestSelfServiceService_Profile_ExactNumberMatch(t *testing.T) {
	ctx := context.Background()
	emplID := uuid.New()

	employees := &stubEmployeeRepository{
		findByNumberFn: func(ctx context.Context, number string, caseInsensitive bool) (*employee.Employee, error) {
			assert.False(t, caseInsensitive)
			assert.Equal(t, "EMP-000042", number)
			return &employee.Employee{ID: emplID, EmployeeNumber: number, FullName: "Asha Kulkarni"}, nil
		},
	}

	svc := selfservice.NewService(employees, &stubPayrollRepository{}, &stubAllowanceRepository{})

	resp, err := svc.Profile(ctx, employeeActor("EMP-000042"), "EMP-000042")

	assert.NoError(t, err)
	assert.Equal(t, emplID.String(), resp.ID)
}

func TestSelfServiceService_Profile_CasingMismatchForbidden(t *testing.T) {
	ctx := context.Background()

	svc := selfservice.NewService(&stubEmployeeRepository{}, &stubPayrollRepository{}, &stubAllowanceRepository{})

	// The profile path matches exactly; a lowercased badge number is someone
	// else's as far as this endpoint is concerned.
	_, err := svc.Profile(ctx, employeeActor("EMP-000042"), "emp-000042")
	assert.ErrorIs(t, err, selfserviceerrors.ErrForeignRecord)
}

func TestSelfServiceService_Profile_ForeignNumberForbidden(t *testing.T) {
	ctx := context.Background()

	employees := &stubEmployeeRepository{
		findByNumberFn: func(ctx context.Context, number string, caseInsensitive bool) (*employee.Employee, error) {
			t.Fatal("lookup must not run for a foreign number")
			return nil, nil
		},
	}

	svc := selfservice.NewService(employees, &stubPayrollRepository{}, &stubAllowanceRepository{})

	_, err := svc.Profile(ctx, employeeActor("EMP-000042"), "EMP-000099")
	assert.ErrorIs(t, err, selfserviceerrors.ErrForeignRecord)
}

func TestSelfServiceService_Profile_AdminBypassesScope(t *testing.T) {
	ctx := context.Background()

	employees := &stubEmployeeRepository{
		findByNumberFn: func(ctx context.Context, number string, caseInsensitive bool) (*employee.Employee, error) {
			return &employee.Employee{ID: uuid.New(), EmployeeNumber: number}, nil
		},
	}

	svc := selfservice.NewService(employees, &stubPayrollRepository{}, &stubAllowanceRepository{})

	admin := domain.Actor{UserID: uuid.New().String(), Role: domain.RoleAdmin}
	_, err := svc.Profile(ctx, admin, "EMP-000099")
	assert.NoError(t, err)
}

func TestSelfServiceService_Profile_UnknownNumber(t *testing.T) {
	ctx := context.Background()

	svc := selfservice.NewService(&stubEmployeeRepository{}, &stubPayrollRepository{}, &stubAllowanceRepository{})

	admin := domain.Actor{UserID: uuid.New().String(), Role: domain.RoleAdmin}
	_, err := svc.Profile(ctx, admin, "EMP-404404")
	assert.ErrorIs(t, err, selfserviceerrors.ErrEmployeeNotFound)
}

func TestSelfServiceService_Payrolls_FiltersByResolvedEmployee(t *testing.T) {
	ctx := context.Background()
	emplID := uuid.New()

	employees := &stubEmployeeRepository{
		findByNumberFn: func(ctx context.Context, number string, caseInsensitive bool) (*employee.Employee, error) {
			return &employee.Employee{ID: emplID, EmployeeNumber: number, FullName: "Asha Kulkarni"}, nil
		},
	}
	payrolls := &stubPayrollRepository{
		findAllFn: func(ctx context.Context, filter payroll.PayrollQueryFilter) ([]payroll.Payroll, error) {
			assert.Equal(t, emplID.String(), filter.EmployeeID)
			return []payroll.Payroll{
				{ID: uuid.New(), EmployeeID: emplID, Month: 4, Year: 2024, Total: 52000, Status: payroll.StatusProcessed},
			}, nil
		},
	}

	svc := selfservice.NewService(employees, payrolls, &stubAllowanceRepository{})

	rows, err := svc.Payrolls(ctx, employeeActor("EMP-000042"), "EMP-000042")

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "EMP-000042", rows[0].EmployeeNumber)
	assert.Equal(t, "Asha Kulkarni", rows[0].EmployeeName)
}

func TestSelfServiceService_Dashboard_CaseInsensitiveNumber(t *testing.T) {
	ctx := context.Background()
	emplID := uuid.New()

	employees := &stubEmployeeRepository{
		findByNumberFn: func(ctx context.Context, number string, caseInsensitive bool) (*employee.Employee, error) {
			assert.True(t, caseInsensitive)
			assert.Equal(t, "emp-000042", number)
			return &employee.Employee{ID: emplID, EmployeeNumber: "EMP-000042", FullName: "Asha Kulkarni"}, nil
		},
	}
	payrolls := &stubPayrollRepository{
		sumByFilterFn: func(ctx context.Context, filter payroll.PayrollQueryFilter) (payroll.PayrollSums, error) {
			assert.Equal(t, 4, filter.Month)
			assert.Equal(t, 2024, filter.Year)
			assert.Equal(t, emplID.String(), filter.EmployeeID)
			return payroll.PayrollSums{Count: 1, BaseSalary: 50000, Total: 52000}, nil
		},
	}
	allowances := &stubAllowanceRepository{
		sumByFilterFn: func(ctx context.Context, filter allowance.AllowanceQueryFilter) (allowance.AllowanceSums, error) {
			return allowance.AllowanceSums{Count: 1, Incentive: 2000, Total: 4150}, nil
		},
	}

	svc := selfservice.NewService(employees, payrolls, allowances)

	resp, err := svc.Dashboard(ctx, employeeActor("EMP-000042"), "emp-000042", period.Period{Month: 4, Year: 2024})

	assert.NoError(t, err)
	assert.Equal(t, "EMP-000042", resp.Employee.EmployeeNumber)
	assert.Equal(t, int64(52000), resp.PayrollSummary.Total)
	assert.Equal(t, int64(4150), resp.AllowanceSummary.Total)
	assert.Equal(t, 4, resp.Month)
}
