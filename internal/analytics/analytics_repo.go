package analytics

import (
	"context"

	"gorm.io/gorm"
)

// PeriodTotals is the per-month slice of the series.
type PeriodTotals struct {
	PayrollTotal   int64
	AllowanceTotal int64
	ExpenseTotal   int64
}

type EmployeeTotals struct {
	Total         int64
	Active        int64
	MonthlySalary int64
	AnnualSalary  int64
}

type ExpenseParts struct {
	OfficeRent int64
	LightBill  int64
	Other      int64
}

//go:generate mockgen -source=analytics_repo.go -destination=mock/analytics_repo_mock.go -package=mock
type Repository interface {
	PeriodTotals(ctx context.Context, month, year int) (PeriodTotals, error)
	EmployeeTotals(ctx context.Context) (EmployeeTotals, error)
	GroupByDepartment(ctx context.Context) ([]DepartmentStat, error)
	ActiveSalaryMass(ctx context.Context) (int64, error)
	AllowanceIncentive(ctx context.Context, month, year int) (int64, error)
	ExpenseParts(ctx context.Context, month, year int) (ExpenseParts, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) PeriodTotals(ctx context.Context, month, year int) (PeriodTotals, error) {
	var totals PeriodTotals

	err := r.db.WithContext(ctx).
		Table("payrolls").
		Where("month = ? AND year = ? AND deleted_at IS NULL", month, year).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totals.PayrollTotal).Error
	if err != nil {
		return totals, err
	}

	err = r.db.WithContext(ctx).
		Table("allowances").
		Where("month = ? AND year = ? AND deleted_at IS NULL", month, year).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totals.AllowanceTotal).Error
	if err != nil {
		return totals, err
	}

	err = r.db.WithContext(ctx).
		Table("expenses").
		Where("month = ? AND year = ? AND deleted_at IS NULL", month, year).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totals.ExpenseTotal).Error
	return totals, err
}

func (r *repository) EmployeeTotals(ctx context.Context) (EmployeeTotals, error) {
	var totals EmployeeTotals
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("deleted_at IS NULL").
		Select(`COUNT(*) as total,
			COUNT(*) FILTER (WHERE status = 'Active') as active,
			COALESCE(SUM(monthly_salary) FILTER (WHERE status = 'Active'), 0) as monthly_salary,
			COALESCE(SUM(annual_salary) FILTER (WHERE status = 'Active'), 0) as annual_salary`).
		Scan(&totals).Error
	return totals, err
}

// GroupByDepartment keeps the database's default group order.
func (r *repository) GroupByDepartment(ctx context.Context) ([]DepartmentStat, error) {
	var stats []DepartmentStat
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("deleted_at IS NULL").
		Select("department, COUNT(*) as count, COALESCE(AVG(monthly_salary), 0) as avg_salary").
		Group("department").
		Scan(&stats).Error
	return stats, err
}

func (r *repository) ActiveSalaryMass(ctx context.Context) (int64, error) {
	var mass int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("status = ? AND deleted_at IS NULL", "Active").
		Select("COALESCE(SUM(monthly_salary), 0)").
		Scan(&mass).Error
	return mass, err
}

func (r *repository) AllowanceIncentive(ctx context.Context, month, year int) (int64, error) {
	var incentive int64
	err := r.db.WithContext(ctx).
		Table("allowances").
		Where("month = ? AND year = ? AND deleted_at IS NULL", month, year).
		Select("COALESCE(SUM(incentive), 0)").
		Scan(&incentive).Error
	return incentive, err
}

func (r *repository) ExpenseParts(ctx context.Context, month, year int) (ExpenseParts, error) {
	var parts ExpenseParts
	err := r.db.WithContext(ctx).
		Table("expenses").
		Where("month = ? AND year = ? AND deleted_at IS NULL", month, year).
		Select(`COALESCE(SUM(office_rent), 0) as office_rent,
			COALESCE(SUM(light_bill), 0) as light_bill,
			COALESCE(SUM(other), 0) as other`).
		Scan(&parts).Error
	return parts, err
}
