package employee

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin = "admin"

	// RegistrationLength is how many leading CPF digits form the registration code.
	RegistrationLength = 5
)

type Employee struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey"`
	Registration string    `gorm:"column:registration;type:varchar(5);not null;uniqueIndex:uq_employee_registration"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	CPF          string    `gorm:"column:cpf;type:char(11);not null;uniqueIndex:uq_employee_cpf"`
	Email        string    `gorm:"column:email;type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	Role         string    `gorm:"column:role;type:varchar(100);not null"`
	Department   string    `gorm:"column:department;type:varchar(255);not null;index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (Employee) TableName() string {
	return "employees"
}

func (e Employee) IsAdmin() bool {
	return strings.EqualFold(strings.TrimSpace(e.Role), RoleAdmin)
}

// RegistrationFromCPF derives the registration code. Callers validate the CPF first.
func RegistrationFromCPF(cpf string) string {
	if len(cpf) < RegistrationLength {
		return cpf
	}
	return cpf[:RegistrationLength]
}
