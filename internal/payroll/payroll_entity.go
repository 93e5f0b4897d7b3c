package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Payroll struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID    `gorm:"type:uuid;not null;index:uq_payroll_period,unique,where:deleted_at IS NULL"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`

	// Period key. One payroll per employee per calendar month.
	Month int `gorm:"not null;index:uq_payroll_period,unique"`
	Year  int `gorm:"not null;index:uq_payroll_period,unique"`

	// BaseSalary is a snapshot of the employee's monthly salary at create
	// time; later salary edits do not rewrite history.
	BaseSalary int64 `gorm:"type:bigint;not null;default:0"`
	Incentive  int64 `gorm:"type:bigint;not null;default:0"`
	Allowance  int64 `gorm:"type:bigint;not null;default:0"`
	Total      int64 `gorm:"type:bigint;not null;default:0"`

	Status string `gorm:"type:varchar(20);not null;default:'Pending';index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FullName       string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
