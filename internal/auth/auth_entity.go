package auth

import (
	"time"

	"github.com/google/uuid"
)

// Credential holds the bcrypt hash of an employee allowed to log in.
type Credential struct {
	EmployeeID   uuid.UUID `gorm:"column:employee_id;type:uuid;primaryKey"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (Credential) TableName() string {
	return "credentials"
}
