package admin

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

type userRow struct {
	ID         string
	Email      string
	Role       string
	EmployeeID *string
	CreatedAt  time.Time
}

type UserCounts struct {
	Total    int64
	Admin    int64
	Employee int64
}

type EmployeeCounts struct {
	Total         int64
	Active        int64
	MonthlySalary int64
}

type PeriodTotals struct {
	PayrollTotal   int64
	AllowanceTotal int64
	ExpenseTotal   int64
}

//go:generate mockgen -source=admin_repo.go -destination=mock/admin_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	ListUsers(ctx context.Context) ([]UserSummary, error)
	FindUser(ctx context.Context, id string) (*UserSummary, error)
	UpdateUser(ctx context.Context, id, role string, employeeID *string) error
	DeleteUser(ctx context.Context, id string) error
	UserCounts(ctx context.Context) (UserCounts, error)
	EmployeeCounts(ctx context.Context) (EmployeeCounts, error)
	PeriodTotals(ctx context.Context, month, year int) (PeriodTotals, error)
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

func mapUserRow(row userRow) UserSummary {
	summary := UserSummary{
		ID:        row.ID,
		Email:     row.Email,
		Role:      row.Role,
		CreatedAt: row.CreatedAt,
	}
	if row.EmployeeID != nil {
		summary.EmployeeID = *row.EmployeeID
	}
	return summary
}

func (r *repository) ListUsers(ctx context.Context) ([]UserSummary, error) {
	var rows []userRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id::text AS id, email, role, employee_id::text AS employee_id, created_at").
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, len(rows))
	for i, row := range rows {
		summaries[i] = mapUserRow(row)
	}
	return summaries, nil
}

func (r *repository) FindUser(ctx context.Context, id string) (*UserSummary, error) {
	var row userRow
	err := r.db.WithContext(ctx).
		Table("users").
		Select("id::text AS id, email, role, employee_id::text AS employee_id, created_at").
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		First(&row).Error
	if err != nil {
		return nil, err
	}

	summary := mapUserRow(row)
	return &summary, nil
}

func (r *repository) UpdateUser(ctx context.Context, id, role string, employeeID *string) error {
	return r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Updates(map[string]any{
			"role":        role,
			"employee_id": employeeID,
			"updated_at":  time.Now(),
		}).Error
}

func (r *repository) DeleteUser(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Table("users").
		Where("id = ?", id).
		Where("deleted_at IS NULL").
		Update("deleted_at", time.Now()).Error
}

func (r *repository) UserCounts(ctx context.Context) (UserCounts, error) {
	var counts UserCounts
	err := r.db.WithContext(ctx).
		Table("users").
		Where("deleted_at IS NULL").
		Select(`COUNT(*) as total,
			COUNT(*) FILTER (WHERE role = 'admin') as admin,
			COUNT(*) FILTER (WHERE role = 'employee') as employee`).
		Scan(&counts).Error
	return counts, err
}

func (r *repository) EmployeeCounts(ctx context.Context) (EmployeeCounts, error) {
	var counts EmployeeCounts
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("deleted_at IS NULL").
		Select(`COUNT(*) as total,
			COUNT(*) FILTER (WHERE status = 'Active') as active,
			COALESCE(SUM(monthly_salary) FILTER (WHERE status = 'Active'), 0) as monthly_salary`).
		Scan(&counts).Error
	return counts, err
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
