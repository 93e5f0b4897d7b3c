package employee

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// DepartmentStat is one group of the department breakdown. Group order is
// whatever the database emits; it is not contractually sorted.
type DepartmentStat struct {
	Department string  `json:"department"`
	Count      int64   `json:"count"`
	AvgSalary  float64 `json:"avg_salary"`
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context) ([]Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByNumber(ctx context.Context, number string, caseInsensitive bool) (*Employee, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, id string) error
	CountActive(ctx context.Context) (int64, error)
	SumActiveMonthlySalary(ctx context.Context) (int64, error)
	GroupByDepartment(ctx context.Context) ([]DepartmentStat, error)
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error
	return &empl, err
}

func (r *repository) FindByNumber(ctx context.Context, number string, caseInsensitive bool) (*Employee, error) {
	var empl Employee
	q := r.db.WithContext(ctx)
	if caseInsensitive {
		q = q.Where("LOWER(employee_number) = LOWER(?)", number)
	} else {
		q = q.Where("employee_number = ?", number)
	}
	err := q.First(&empl).Error
	return &empl, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	// Soft delete only; payroll and allowance history keeps referencing the
	// employee row.
	return r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id).Error
}

func (r *repository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Where("status = ?", StatusActive).
		Count(&count).Error
	return count, err
}

func (r *repository) SumActiveMonthlySalary(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("COALESCE(SUM(monthly_salary), 0)").
		Where("status = ?", StatusActive).
		Scan(&total).Error
	return total, err
}

func (r *repository) GroupByDepartment(ctx context.Context) ([]DepartmentStat, error) {
	var stats []DepartmentStat
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Select("department, COUNT(*) as count, COALESCE(AVG(monthly_salary), 0) as avg_salary").
		Group("department").
		Scan(&stats).Error
	return stats, err
}
