package dbscope

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

// Conn returns a gorm session bound to ctx that runs on tx when one is given,
// so repositories join the service's *sql.Tx instead of the pool.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	session := db.WithContext(ctx)
	if tx != nil {
		session.Statement.ConnPool = tx
	}
	return session
}

func Department(department string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("department = ?", department)
	}
}

func Employee(employeeID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id = ?", employeeID)
	}
}

func WorkDate(date time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("work_date = ?", date.Format("2006-01-02"))
	}
}
