package payroll

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type PayrollQueryFilter struct {
	Month      int
	Year       int
	EmployeeID string
}

// EmployeeSnapshot is the slice of the employees table a payroll run needs.
type EmployeeSnapshot struct {
	ID            string
	MonthlySalary int64
}

// PayrollSums mirrors the COALESCE'd aggregate select; every field is zero
// when nothing matches.
type PayrollSums struct {
	Count      int64
	BaseSalary int64
	Incentive  int64
	Allowance  int64
	Total      int64
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, payroll *Payroll) error
	CreateBatch(ctx context.Context, payrolls []*Payroll) error
	FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error)
	FindByID(ctx context.Context, id string) (*Payroll, error)
	Update(ctx context.Context, payroll *Payroll) error
	Delete(ctx context.Context, id string) error
	EmployeeMonthlySalary(ctx context.Context, employeeID string) (int64, bool, error)
	ActiveEmployeesWithoutPayroll(ctx context.Context, month, year int) ([]EmployeeSnapshot, error)
	SumByFilter(ctx context.Context, filter PayrollQueryFilter) (PayrollSums, error)
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

func applyFilter(db *gorm.DB, filter PayrollQueryFilter) *gorm.DB {
	if filter.Month != 0 {
		db = db.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		db = db.Where("year = ?", filter.Year)
	}
	if filter.EmployeeID != "" {
		db = db.Where("employee_id = ?", filter.EmployeeID)
	}
	return db
}

func (r *repository) Create(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Create(payroll).Error
}

func (r *repository) CreateBatch(ctx context.Context, payrolls []*Payroll) error {
	if len(payrolls) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(payrolls).Error
}

func (r *repository) FindAll(ctx context.Context, filter PayrollQueryFilter) ([]Payroll, error) {
	var payrolls []Payroll
	err := applyFilter(r.db.WithContext(ctx), filter).
		Preload("Employee").
		Order("year DESC, month DESC").
		Find(&payrolls).Error
	return payrolls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Payroll, error) {
	var payroll Payroll
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&payroll, "id = ?", id).Error
	return &payroll, err
}

func (r *repository) Update(ctx context.Context, payroll *Payroll) error {
	return r.db.WithContext(ctx).Save(payroll).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Payroll{}, "id = ?", id).Error
}

func (r *repository) EmployeeMonthlySalary(ctx context.Context, employeeID string) (int64, bool, error) {
	var rows []int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("monthly_salary").
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return 0, false, err
	}
	if len(rows) == 0 {
		return 0, false, nil
	}
	return rows[0], true, nil
}

func (r *repository) ActiveEmployeesWithoutPayroll(ctx context.Context, month, year int) ([]EmployeeSnapshot, error) {
	var snapshots []EmployeeSnapshot
	err := r.db.WithContext(ctx).
		Table("employees e").
		Select("e.id::text AS id, e.monthly_salary").
		Where("e.status = ?", "Active").
		Where("e.deleted_at IS NULL").
		Where(`NOT EXISTS (
			SELECT 1 FROM payrolls p
			WHERE p.employee_id = e.id AND p.month = ? AND p.year = ? AND p.deleted_at IS NULL
		)`, month, year).
		Scan(&snapshots).Error
	return snapshots, err
}

func (r *repository) SumByFilter(ctx context.Context, filter PayrollQueryFilter) (PayrollSums, error) {
	var sums PayrollSums
	err := applyFilter(r.db.WithContext(ctx).Model(&Payroll{}), filter).
		Select(`COUNT(*) as count,
			COALESCE(SUM(base_salary), 0) as base_salary,
			COALESCE(SUM(incentive), 0) as incentive,
			COALESCE(SUM(allowance), 0) as allowance,
			COALESCE(SUM(total), 0) as total`).
		Scan(&sums).Error
	return sums, err
}
