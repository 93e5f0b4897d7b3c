package auth

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// EmployeeLink is the slice of the employees table login tokens embed.
type EmployeeLink struct {
	ID             string
	EmployeeNumber string
}

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
	EmployeeLink(ctx context.Context, employeeID string) (*EmployeeLink, error)
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

func (r *repository) Create(ctx context.Context, user *User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).First(&user, "LOWER(email) = LOWER(?)", email).Error
	return &user, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error
	return &user, err
}

func (r *repository) EmployeeLink(ctx context.Context, employeeID string) (*EmployeeLink, error) {
	var link EmployeeLink
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("id::text AS id, employee_number").
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		First(&link).Error
	if err != nil {
		return nil, err
	}
	return &link, nil
}
