package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DepartmentClinical       = "Clinical"
	DepartmentAdministrative = "Administrative"
	DepartmentSupportService = "Support Services"
	DepartmentTechnical      = "Technical"
	DepartmentOther          = "Other"
)

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusOnLeave  = "On Leave"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_employee_number,where:deleted_at IS NULL"`
	FullName       string    `gorm:"type:varchar(255);not null"`
	Department     string    `gorm:"type:varchar(50);not null;index"`
	Status         string    `gorm:"type:varchar(20);not null;default:'Active';index"`

	// Amounts are whole currency units.
	MonthlySalary int64 `gorm:"type:bigint;not null;default:0"`
	AnnualSalary  int64 `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
