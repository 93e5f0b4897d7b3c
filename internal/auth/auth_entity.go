package auth

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User is a login principal. Employee-role users carry a back-reference to
// their employee row; row scoping keys off it.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"not null;uniqueIndex:uq_user_email,where:deleted_at IS NULL"`
	PasswordHash string    `gorm:"not null"`
	Role         string    `gorm:"not null;default:'employee'"`
	EmployeeID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (User) TableName() string {
	return "users"
}
