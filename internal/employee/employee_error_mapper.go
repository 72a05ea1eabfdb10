package employee

import (
	"errors"
	"strings"

	employeeerrors "go-ponto/internal/employee/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		if mapped := byConstraint(pgErr.ConstraintName); mapped != nil {
			return mapped
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		for _, name := range []string{"uq_employee_email", "uq_employee_cpf", "uq_employee_registration"} {
			if strings.Contains(errMsg, name) {
				return byConstraint(name)
			}
		}
	}

	return err
}

func byConstraint(name string) error {
	switch name {
	case "uq_employee_email":
		return employeeerrors.ErrEmailAlreadyExists
	case "uq_employee_cpf":
		return employeeerrors.ErrCPFAlreadyExists
	case "uq_employee_registration":
		return employeeerrors.ErrRegistrationConflict
	}
	return nil
}
