package dbscope_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"go-ponto/internal/shared/dbscope"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type row struct {
	EmployeeID string
	Department string
}

func (row) TableName() string { return "rows" }

func newGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	assert.NoError(t, err)
	return db, mock
}

func TestScopes(t *testing.T) {
	db, mock := newGorm(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rows" WHERE department = $1 AND employee_id = $2 AND work_date = $3`)).
		WithArgs("TI", "emp-1", "2026-03-10").
		WillReturnRows(sqlmock.NewRows([]string{"employee_id", "department"}).AddRow("emp-1", "TI"))

	var rows []row
	err := db.
		Scopes(
			dbscope.Department("TI"),
			dbscope.Employee("emp-1"),
			dbscope.WorkDate(time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)),
		).
		Find(&rows).Error

	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConn_UsesTransaction(t *testing.T) {
	db, mock := newGorm(t)
	sqlDB, _ := db.DB()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rows" WHERE department = $1`)).
		WithArgs("RH").
		WillReturnRows(sqlmock.NewRows([]string{"employee_id", "department"}))
	mock.ExpectCommit()

	ctx := context.Background()
	tx, err := sqlDB.BeginTx(ctx, nil)
	assert.NoError(t, err)

	var rows []row
	err = dbscope.Conn(ctx, db, tx).Scopes(dbscope.Department("RH")).Find(&rows).Error
	assert.NoError(t, err)
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
