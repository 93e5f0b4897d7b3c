package analytics

import (
	"context"

	"github.com/roshan749997/PravaraHealthCare-sub000/internal/shared/period"

	"go.uber.org/zap"
)

//go:generate mockgen -source=analytics_service.go -destination=mock/analytics_service_mock.go -package=mock
type Service interface {
	MonthlySummary(ctx context.Context, year int) ([]MonthlySummaryEntry, error)
	Metrics(ctx context.Context) (MetricsResponse, error)
	IncomeBreakdown(ctx context.Context, p period.Period) (IncomeBreakdownResponse, error)
	ExpenseBreakdown(ctx context.Context, p period.Period) (ExpenseBreakdownResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("analytics.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("analytics.service")
	}
	return &service{repo: repo, logger: l}
}

// MonthlySummary always returns exactly twelve entries, January through
// December, each month queried on its own so an empty month contributes a
// zero row instead of a gap.
func (s *service) MonthlySummary(
	ctx context.Context,
	year int,
) ([]MonthlySummaryEntry, error) {
	if year == 0 {
		year = period.Current().Year
	}

	entries := make([]MonthlySummaryEntry, 0, 12)
	for month := 1; month <= 12; month++ {
		totals, err := s.repo.PeriodTotals(ctx, month, year)
		if err != nil {
			s.logger.Error("monthly summary period query failed",
				zap.Int("month", month),
				zap.Int("year", year),
				zap.Error(err),
			)
			return nil, err
		}

		entries = append(entries, MonthlySummaryEntry{
			Month:          month,
			MonthName:      period.MonthName(month),
			Year:           year,
			PayrollTotal:   totals.PayrollTotal,
			AllowanceTotal: totals.AllowanceTotal,
			ExpenseTotal:   totals.ExpenseTotal,
			Net:            totals.PayrollTotal + totals.AllowanceTotal - totals.ExpenseTotal,
		})
	}

	return entries, nil
}

func (s *service) Metrics(ctx context.Context) (MetricsResponse, error) {
	totals, err := s.repo.EmployeeTotals(ctx)
	if err != nil {
		s.logger.Error("metrics employee totals failed", zap.Error(err))
		return MetricsResponse{}, err
	}

	departments, err := s.repo.GroupByDepartment(ctx)
	if err != nil {
		s.logger.Error("metrics department grouping failed", zap.Error(err))
		return MetricsResponse{}, err
	}

	return MetricsResponse{
		TotalEmployees:     totals.Total,
		ActiveEmployees:    totals.Active,
		TotalMonthlySalary: totals.MonthlySalary,
		TotalAnnualSalary:  totals.AnnualSalary,
		Departments:        departments,
	}, nil
}

// IncomeBreakdown combines the active salary mass with the period's
// allowance incentives arithmetically, no join.
func (s *service) IncomeBreakdown(
	ctx context.Context,
	p period.Period,
) (IncomeBreakdownResponse, error) {
	if !p.Valid() {
		p = period.Current()
	}

	salaryMass, err := s.repo.ActiveSalaryMass(ctx)
	if err != nil {
		s.logger.Error("income breakdown salary mass failed", zap.Error(err))
		return IncomeBreakdownResponse{}, err
	}

	incentive, err := s.repo.AllowanceIncentive(ctx, p.Month, p.Year)
	if err != nil {
		s.logger.Error("income breakdown incentive failed", zap.Error(err))
		return IncomeBreakdownResponse{}, err
	}

	return IncomeBreakdownResponse{
		Month:              p.Month,
		Year:               p.Year,
		SalaryMass:         salaryMass,
		AllowanceIncentive: incentive,
		TotalCompensation:  salaryMass + incentive,
	}, nil
}

func (s *service) ExpenseBreakdown(
	ctx context.Context,
	p period.Period,
) (ExpenseBreakdownResponse, error) {
	if !p.Valid() {
		p = period.Current()
	}

	parts, err := s.repo.ExpenseParts(ctx, p.Month, p.Year)
	if err != nil {
		s.logger.Error("expense breakdown failed", zap.Error(err))
		return ExpenseBreakdownResponse{}, err
	}

	return ExpenseBreakdownResponse{
		Month:      p.Month,
		Year:       p.Year,
		OfficeRent: parts.OfficeRent,
		LightBill:  parts.LightBill,
		Other:      parts.Other,
		Total:      parts.OfficeRent + parts.LightBill + parts.Other,
	}, nil
}
