package employee

import (
	"context"
	"database/sql"

	"go-ponto/internal/shared/dbscope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindByEmail(ctx context.Context, email string) (*Employee, error)
	// FindByRegistration matches the registration as a CPF prefix. It returns
	// up to two rows so callers can tell a unique match from a collision.
	FindByRegistration(ctx context.Context, registration string) ([]Employee, error)
	FindAllByDepartment(ctx context.Context, department string) ([]Employee, error)
	ExistsByRegistration(ctx context.Context, registration string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbscope.Conn(ctx, r.db, r.tx)
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.conn(ctx).Create(e).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Employee, error) {
	var e Employee
	err := r.conn(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&e).Error
	return &e, err
}

func (r *repository) FindByRegistration(ctx context.Context, registration string) ([]Employee, error) {
	var rows []Employee
	err := r.conn(ctx).
		Where("cpf LIKE ?", registration+"%").
		Order("created_at ASC").
		Limit(2).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByDepartment(ctx context.Context, department string) ([]Employee, error) {
	var rows []Employee
	err := r.conn(ctx).
		Scopes(dbscope.Department(department)).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ExistsByRegistration(ctx context.Context, registration string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Model(&Employee{}).
		Where("registration = ? OR cpf LIKE ?", registration, registration+"%").
		Count(&count).Error
	return count > 0, err
}
