package allowance

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type AllowanceQueryFilter struct {
	Month      int
	Year       int
	EmployeeID string
}

// AllowanceSums mirrors the COALESCE'd aggregate select.
type AllowanceSums struct {
	Count          int64
	MobileRecharge int64
	Petrol         int64
	VehicleTag     int64
	Incentive      int64
	Gift           int64
	Total          int64
}

//go:generate mockgen -source=allowance_repo.go -destination=mock/allowance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, allowance *Allowance) error
	FindAll(ctx context.Context, filter AllowanceQueryFilter) ([]Allowance, error)
	FindByID(ctx context.Context, id string) (*Allowance, error)
	Update(ctx context.Context, allowance *Allowance) error
	Delete(ctx context.Context, id string) error
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	SumByFilter(ctx context.Context, filter AllowanceQueryFilter) (AllowanceSums, error)
	SumIncentiveByPeriod(ctx context.Context, month, year int) (int64, error)
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

func applyFilter(db *gorm.DB, filter AllowanceQueryFilter) *gorm.DB {
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

func (r *repository) Create(ctx context.Context, allowance *Allowance) error {
	return r.db.WithContext(ctx).Create(allowance).Error
}

func (r *repository) FindAll(ctx context.Context, filter AllowanceQueryFilter) ([]Allowance, error) {
	var allowances []Allowance
	err := applyFilter(r.db.WithContext(ctx), filter).
		Preload("Employee").
		Order("year DESC, month DESC").
		Find(&allowances).Error
	return allowances, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Allowance, error) {
	var allowance Allowance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&allowance, "id = ?", id).Error
	return &allowance, err
}

func (r *repository) Update(ctx context.Context, allowance *Allowance) error {
	return r.db.WithContext(ctx).Save(allowance).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Allowance{}, "id = ?", id).Error
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) SumByFilter(ctx context.Context, filter AllowanceQueryFilter) (AllowanceSums, error) {
	var sums AllowanceSums
	err := applyFilter(r.db.WithContext(ctx).Model(&Allowance{}), filter).
		Select(`COUNT(*) as count,
			COALESCE(SUM(mobile_recharge), 0) as mobile_recharge,
			COALESCE(SUM(petrol), 0) as petrol,
			COALESCE(SUM(vehicle_tag), 0) as vehicle_tag,
			COALESCE(SUM(incentive), 0) as incentive,
			COALESCE(SUM(gift), 0) as gift,
			COALESCE(SUM(total), 0) as total`).
		Scan(&sums).Error
	return sums, err
}

func (r *repository) SumIncentiveByPeriod(ctx context.Context, month, year int) (int64, error) {
	var incentive int64
	err := r.db.WithContext(ctx).Model(&Allowance{}).
		Where("month = ? AND year = ?", month, year).
		Select("COALESCE(SUM(incentive), 0)").
		Scan(&incentive).Error
	return incentive, err
}
