package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-ponto/internal/sequencer"
	"go-ponto/internal/shared/dbscope"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// LockEmployeeDay serializes marks of one employee on one work date until
	// the surrounding transaction ends. It must run inside WithTx.
	LockEmployeeDay(ctx context.Context, employeeID string, workDate time.Time) error
	FindByEmployeeAndWorkDate(ctx context.Context, employeeID string, workDate time.Time) ([]TimeRecord, error)
	FindAllByEmployee(ctx context.Context, employeeID string) ([]TimeRecord, error)
	Create(ctx context.Context, rec *TimeRecord) error
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

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return dbscope.Conn(ctx, r.db, r.tx)
}

func LockKey(employeeID string, workDate time.Time) string {
	return employeeID + "|" + workDate.Format(sequencer.DateLayout)
}

func (r *repository) LockEmployeeDay(ctx context.Context, employeeID string, workDate time.Time) error {
	return r.conn(ctx).
		Exec("SELECT pg_advisory_xact_lock(hashtext(?))", LockKey(employeeID, workDate)).
		Error
}

func (r *repository) FindByEmployeeAndWorkDate(ctx context.Context, employeeID string, workDate time.Time) ([]TimeRecord, error) {
	var rows []TimeRecord
	err := r.conn(ctx).
		Scopes(dbscope.Employee(employeeID), dbscope.WorkDate(workDate)).
		Order("recorded_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByEmployee(ctx context.Context, employeeID string) ([]TimeRecord, error) {
	var rows []TimeRecord
	err := r.conn(ctx).
		Scopes(dbscope.Employee(employeeID)).
		Order("recorded_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Create(ctx context.Context, rec *TimeRecord) error {
	return r.conn(ctx).Create(rec).Error
}
