package selfservice

import (
	"context"
	"errors"
	"strings"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/allowance"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/domain"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/employee"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/payroll"
	selfserviceerrors "github.com/roshan749997/PravaraHealthCare-sub000/internal/selfservice/errors"
	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/period"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=selfservice_service.go -destination=mock/selfservice_service_mock.go -package=mock
type Service interface {
	Profile(ctx context.Context, actor domain.Actor, employeeNumber string) (employee.EmployeeResponse, error)
	Allowances(ctx context.Context, actor domain.Actor, employeeNumber string) ([]allowance.AllowanceResponse, error)
	Payrolls(ctx context.Context, actor domain.Actor, employeeNumber string) ([]payroll.PayrollResponse, error)
	Dashboard(ctx context.Context, actor domain.Actor, employeeNumber string, p period.Period) (DashboardResponse, error)
}

type service struct {
	employees  employee.Repository
	payrolls   payroll.Repository
	allowances allowance.Repository
	logger     *zap.Logger
}

func NewService(
	employees employee.Repository,
	payrolls payroll.Repository,
	allowances allowance.Repository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("selfservice.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("selfservice.service")
	}
	return &service{
		employees:  employees,
		payrolls:   payrolls,
		allowances: allowances,
		logger:     l,
	}
}

// checkScope rejects employee-role callers asking for someone else's number
// before any lookup happens.
func checkScope(actor domain.Actor, employeeNumber string, caseInsensitive bool) error {
	if actor.IsAdmin() {
		return nil
	}
	if caseInsensitive {
		if strings.EqualFold(actor.EmployeeNumber, employeeNumber) {
			return nil
		}
	} else if actor.EmployeeNumber == employeeNumber {
		return nil
	}
	return selfserviceerrors.ErrForeignRecord
}

func (s *service) lookup(
	ctx context.Context,
	employeeNumber string,
	caseInsensitive bool,
) (*employee.Employee, error) {
	empl, err := s.employees.FindByNumber(ctx, employeeNumber, caseInsensitive)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, selfserviceerrors.ErrEmployeeNotFound
		}
		return nil, err
	}
	return empl, nil
}

func mapEmployee(empl employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             empl.ID.String(),
		EmployeeNumber: empl.EmployeeNumber,
		FullName:       empl.FullName,
		Department:     empl.Department,
		Status:         empl.Status,
		MonthlySalary:  empl.MonthlySalary,
		AnnualSalary:   empl.AnnualSalary,
	}
}

func (s *service) Profile(
	ctx context.Context,
	actor domain.Actor,
	employeeNumber string,
) (employee.EmployeeResponse, error) {
	if err := checkScope(actor, employeeNumber, false); err != nil {
		return employee.EmployeeResponse{}, err
	}

	empl, err := s.lookup(ctx, employeeNumber, false)
	if err != nil {
		s.logger.Warn("self-service profile lookup failed",
			zap.String("employee_number", employeeNumber),
			zap.Error(err),
		)
		return employee.EmployeeResponse{}, err
	}

	return mapEmployee(*empl), nil
}

func (s *service) Allowances(
	ctx context.Context,
	actor domain.Actor,
	employeeNumber string,
) ([]allowance.AllowanceResponse, error) {
	if err := checkScope(actor, employeeNumber, false); err != nil {
		return nil, err
	}

	empl, err := s.lookup(ctx, employeeNumber, false)
	if err != nil {
		return nil, err
	}

	rows, err := s.allowances.FindAll(ctx, allowance.AllowanceQueryFilter{
		EmployeeID: empl.ID.String(),
	})
	if err != nil {
		s.logger.Error("self-service allowances query failed", zap.Error(err))
		return nil, err
	}

	resp := make([]allowance.AllowanceResponse, len(rows))
	for i, row := range rows {
		resp[i] = allowance.AllowanceResponse{
			ID:             row.ID.String(),
			EmployeeID:     row.EmployeeID.String(),
			EmployeeNumber: empl.EmployeeNumber,
			EmployeeName:   empl.FullName,
			Month:          row.Month,
			Year:           row.Year,
			MobileRecharge: row.MobileRecharge,
			Petrol:         row.Petrol,
			VehicleTag:     row.VehicleTag,
			Incentive:      row.Incentive,
			Gift:           row.Gift,
			Total:          row.Total,
		}
	}
	return resp, nil
}

func (s *service) Payrolls(
	ctx context.Context,
	actor domain.Actor,
	employeeNumber string,
) ([]payroll.PayrollResponse, error) {
	if err := checkScope(actor, employeeNumber, false); err != nil {
		return nil, err
	}

	empl, err := s.lookup(ctx, employeeNumber, false)
	if err != nil {
		return nil, err
	}

	rows, err := s.payrolls.FindAll(ctx, payroll.PayrollQueryFilter{
		EmployeeID: empl.ID.String(),
	})
	if err != nil {
		s.logger.Error("self-service payrolls query failed", zap.Error(err))
		return nil, err
	}

	resp := make([]payroll.PayrollResponse, len(rows))
	for i, row := range rows {
		resp[i] = payroll.PayrollResponse{
			ID:             row.ID.String(),
			EmployeeID:     row.EmployeeID.String(),
			EmployeeNumber: empl.EmployeeNumber,
			EmployeeName:   empl.FullName,
			Month:          row.Month,
			Year:           row.Year,
			BaseSalary:     row.BaseSalary,
			Incentive:      row.Incentive,
			Allowance:      row.Allowance,
			Total:          row.Total,
			Status:         row.Status,
		}
	}
	return resp, nil
}

// Dashboard matches the number case-insensitively. The legacy clients send
// whatever casing the badge printer produced.
func (s *service) Dashboard(
	ctx context.Context,
	actor domain.Actor,
	employeeNumber string,
	p period.Period,
) (DashboardResponse, error) {
	if err := checkScope(actor, employeeNumber, true); err != nil {
		return DashboardResponse{}, err
	}

	if !p.Valid() {
		p = period.Current()
	}

	empl, err := s.lookup(ctx, employeeNumber, true)
	if err != nil {
		return DashboardResponse{}, err
	}

	payrollSums, err := s.payrolls.SumByFilter(ctx, payroll.PayrollQueryFilter{
		Month:      p.Month,
		Year:       p.Year,
		EmployeeID: empl.ID.String(),
	})
	if err != nil {
		s.logger.Error("self-service dashboard payroll sums failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	allowanceSums, err := s.allowances.SumByFilter(ctx, allowance.AllowanceQueryFilter{
		Month:      p.Month,
		Year:       p.Year,
		EmployeeID: empl.ID.String(),
	})
	if err != nil {
		s.logger.Error("self-service dashboard allowance sums failed", zap.Error(err))
		return DashboardResponse{}, err
	}

	return DashboardResponse{
		Employee: mapEmployee(*empl),
		Month:    p.Month,
		Year:     p.Year,
		PayrollSummary: payroll.PayrollSummaryResponse{
			Count:      payrollSums.Count,
			BaseSalary: payrollSums.BaseSalary,
			Incentive:  payrollSums.Incentive,
			Allowance:  payrollSums.Allowance,
			Total:      payrollSums.Total,
		},
		AllowanceSummary: allowance.AllowanceSummaryResponse{
			Count:          allowanceSums.Count,
			MobileRecharge: allowanceSums.MobileRecharge,
			Petrol:         allowanceSums.Petrol,
			VehicleTag:     allowanceSums.VehicleTag,
			Incentive:      allowanceSums.Incentive,
			Gift:           allowanceSums.Gift,
			Total:          allowanceSums.Total,
		},
	}, nil
}
