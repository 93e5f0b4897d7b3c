package allowance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Allowance is one employee's reimbursable extras for a month. The
// (employee, month, year) triple is unique among live rows.
type Allowance struct {
	ID             uuid.UUID    `gorm:"type:uuid;primaryKey"`
	EmployeeID     uuid.UUID    `gorm:"type:uuid;not null;index:uq_allowance_period,unique,where:deleted_at IS NULL"`
	Employee       *EmployeeRef `gorm:"foreignKey:EmployeeID"`
	Month          int          `gorm:"not null;index:uq_allowance_period,unique"`
	Year           int          `gorm:"not null;index:uq_allowance_period,unique"`
	MobileRecharge int64        `gorm:"not null;default:0"`
	Petrol         int64        `gorm:"not null;default:0"`
	VehicleTag     int64        `gorm:"not null;default:0"`
	Incentive      int64        `gorm:"not null;default:0"`
	Gift           int64        `gorm:"not null;default:0"`
	Total          int64        `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (Allowance) TableName() string {
	return "allowances"
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string
	FullName       string
}

func (EmployeeRef) TableName() string {
	return "employees"
}
