package dashboard

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DashboardData is a per-period snapshot of headline figures. Month is kept
// as the string the legacy clients send ("03", sometimes "03-2024"), so the
// unique key is (month, year) over the raw string.
type DashboardData struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Month       string    `gorm:"not null;index:uq_dashboard_period,unique,where:deleted_at IS NULL"`
	Year        int       `gorm:"not null;index:uq_dashboard_period,unique"`
	Sales       int64     `gorm:"not null;default:0"`
	Revenue     int64     `gorm:"not null;default:0"`
	Orders      int64     `gorm:"not null;default:0"`
	Customers   int64     `gorm:"not null;default:0"`
	GeneratedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}

func (DashboardData) TableName() string {
	return "dashboard_data"
}
