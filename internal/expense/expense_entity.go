package expense

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Expense is the organisation's fixed outgoings for one month. There is at
// most one live row per (month, year).
type Expense struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Month      int       `gorm:"not null;index:uq_expense_period,unique,where:deleted_at IS NULL"`
	Year       int       `gorm:"not null;index:uq_expense_period,unique"`
	OfficeRent int64     `gorm:"not null;default:0"`
	LightBill  int64     `gorm:"not null;default:0"`
	Other      int64     `gorm:"not null;default:0"`
	Total      int64     `gorm:"not null;default:0"`
	Notes      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt `gorm:"index"`
}

func (Expense) TableName() string {
	return "expenses"
}
