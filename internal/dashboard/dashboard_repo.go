package dashboard

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LiveAggregates is what a snapshot refresh reads from the record store.
type LiveAggregates struct {
	TotalEmployees     int64
	ActiveEmployees    int64
	TotalMonthlySalary int64
	PayrollCount       int64
	PayrollTotal       int64
	AllowanceTotal     int64
	ExpenseTotal       int64
}

//go:generate mockgen -source=dashboard_repo.go -destination=mock/dashboard_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, data *DashboardData) error
	FindAll(ctx context.Context, year int) ([]DashboardData, error)
	FindByID(ctx context.Context, id string) (*DashboardData, error)
	Update(ctx context.Context, data *DashboardData) error
	Delete(ctx context.Context, id string) error
	Upsert(ctx context.Context, data *DashboardData) error
	LiveAggregates(ctx context.Context, month, year int) (LiveAggregates, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx points a fresh session at the caller's transaction; *sql.Tx
// satisfies gorm.ConnPool, so every query on the returned repository runs
// inside it.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	session := r.db.Session(&gorm.Session{NewDB: true, Context: context.Background()})
	session.Statement.ConnPool = tx
	return &repository{db: session}
}

func (r *repository) Create(ctx context.Context, data *DashboardData) error {
	return r.db.WithContext(ctx).Create(data).Error
}

func (r *repository) FindAll(ctx context.Context, year int) ([]DashboardData, error) {
	db := r.db.WithContext(ctx)
	if year != 0 {
		db = db.Where("year = ?", year)
	}
	var entries []DashboardData
	err := db.Order("year DESC, month ASC").Find(&entries).Error
	return entries, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*DashboardData, error) {
	var data DashboardData
	err := r.db.WithContext(ctx).First(&data, "id = ?", id).Error
	return &data, err
}

func (r *repository) Update(ctx context.Context, data *DashboardData) error {
	return r.db.WithContext(ctx).Save(data).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&DashboardData{}, "id = ?", id).Error
}

// Upsert writes a refreshed snapshot over any existing row for the period.
func (r *repository) Upsert(ctx context.Context, data *DashboardData) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "month"}, {Name: "year"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"sales", "revenue", "orders", "customers", "generated_at", "updated_at",
			}),
		}).
		Create(data).Error
}

func (r *repository) LiveAggregates(ctx context.Context, month, year int) (LiveAggregates, error) {
	var agg LiveAggregates

	type employeeRow struct {
		Total  int64
		Active int64
		Salary int64
	}
	var emp employeeRow
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("deleted_at IS NULL").
		Select(`COUNT(*) as total,
			COUNT(*) FILTER (WHERE status = 'Active') as active,
			COALESCE(SUM(monthly_salary) FILTER (WHERE status = 'Active'), 0) as salary`).
		Scan(&emp).Error
	if err != nil {
		return agg, err
	}
	agg.TotalEmployees = emp.Total
	agg.ActiveEmployees = emp.Active
	agg.TotalMonthlySalary = emp.Salary

	type payrollRow struct {
		Count int64
		Total int64
	}
	var pr payrollRow
	err = r.db.WithContext(ctx).
		Table("payrolls").
		Where("month = ? AND year = ? AND deleted_at IS NULL", month, year).
		Select("COUNT(*) as count, COALESCE(SUM(total), 0) as total").
		Scan(&pr).Error
	if err != nil {
		return agg, err
	}
	agg.PayrollCount = pr.Count
	agg.PayrollTotal = pr.Total

	err = r.db.WithContext(ctx).
		Table("allowances").
		Where("month = ? AND year = ? AND deleted_at IS NULL", month, year).
		Select("COALESCE(SUM(total), 0)").
		Scan(&agg.AllowanceTotal).Error
	if err != nil {
		return agg, err
	}

	err = r.db.WithContext(ctx).
		Table("expenses").
		Where("month = ? AND year = ? AND deleted_at IS NULL", month, year).
		Select("COALESCE(SUM(total), 0)").
		Scan(&agg.ExpenseTotal).Error
	return agg, err
}
