package expense

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

type ExpenseQueryFilter struct {
	Month int
	Year  int
}

// ExpenseSums mirrors the COALESCE'd aggregate select.
type ExpenseSums struct {
	Count      int64
	OfficeRent int64
	LightBill  int64
	Other      int64
	Total      int64
}

//go:generate mockgen -source=expense_repo.go -destination=mock/expense_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, expense *Expense) error
	FindAll(ctx context.Context, filter ExpenseQueryFilter) ([]Expense, error)
	FindByID(ctx context.Context, id string) (*Expense, error)
	Update(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id string) error
	SumByFilter(ctx context.Context, filter ExpenseQueryFilter) (ExpenseSums, error)
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

func applyFilter(db *gorm.DB, filter ExpenseQueryFilter) *gorm.DB {
	if filter.Month != 0 {
		db = db.Where("month = ?", filter.Month)
	}
	if filter.Year != 0 {
		db = db.Where("year = ?", filter.Year)
	}
	return db
}

func (r *repository) Create(ctx context.Context, expense *Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *repository) FindAll(ctx context.Context, filter ExpenseQueryFilter) ([]Expense, error) {
	var expenses []Expense
	err := applyFilter(r.db.WithContext(ctx), filter).
		Order("year DESC, month DESC").
		Find(&expenses).Error
	return expenses, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Expense, error) {
	var expense Expense
	err := r.db.WithContext(ctx).First(&expense, "id = ?", id).Error
	return &expense, err
}

func (r *repository) Update(ctx context.Context, expense *Expense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&Expense{}, "id = ?", id).Error
}

func (r *repository) SumByFilter(ctx context.Context, filter ExpenseQueryFilter) (ExpenseSums, error) {
	var sums ExpenseSums
	err := applyFilter(r.db.WithContext(ctx).Model(&Expense{}), filter).
		Select(`COUNT(*) as count,
			COALESCE(SUM(office_rent), 0) as office_rent,
			COALESCE(SUM(light_bill), 0) as light_bill,
			COALESCE(SUM(other), 0) as other,
			COALESCE(SUM(total), 0) as total`).
		Scan(&sums).Error
	return sums, err
}
