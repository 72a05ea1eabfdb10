package auth

import (
	"context"
	"database/sql"

	"go-ponto/internal/shared/dbscope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, cred *Credential) error
	FindByEmployeeID(ctx context.Context, employeeID string) (*Credential, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, cred *Credential) error {
	return dbscope.Conn(ctx, r.db, r.tx).Create(cred).Error
}

func (r *repository) FindByEmployeeID(ctx context.Context, employeeID string) (*Credential, error) {
	var cred Credential
	err := dbscope.Conn(ctx, r.db, r.tx).First(&cred, "employee_id = ?", employeeID).Error
	return &cred, err
}
