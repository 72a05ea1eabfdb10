package dailysummary

import (
	"context"
	"time"

	"go-ponto/internal/shared/dbscope"

	"gorm.io/gorm"
)

// Replays are harmless: marks only grows, first_in only moves earlier and
// last_out only moves later. LEAST and GREATEST skip NULLs.
const upsertSQL = `
INSERT INTO attendance_daily_summaries
    (employee_id, work_date, name, registration, department, first_in, last_out, marks, updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, NOW())
ON CONFLICT (employee_id, work_date) DO UPDATE SET
    name         = EXCLUDED.name,
    registration = EXCLUDED.registration,
    department   = EXCLUDED.department,
    first_in     = LEAST(attendance_daily_summaries.first_in, EXCLUDED.first_in),
    last_out     = GREATEST(attendance_daily_summaries.last_out, EXCLUDED.last_out),
    marks        = GREATEST(attendance_daily_summaries.marks, EXCLUDED.marks),
    updated_at   = NOW()`

//go:generate mockgen -source=summary_repo.go -destination=mock/summary_repo_mock.go -package=mock
type Repository interface {
	Upsert(ctx context.Context, s *DailySummary) error
	ListByDepartmentAndDate(ctx context.Context, department string, workDate time.Time) ([]DailySummary, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Upsert(ctx context.Context, s *DailySummary) error {
	return r.db.WithContext(ctx).Exec(upsertSQL,
		s.EmployeeID,
		s.WorkDate,
		s.Name,
		s.Registration,
		s.Department,
		s.FirstIn,
		s.LastOut,
		s.Marks,
	).Error
}

func (r *repository) ListByDepartmentAndDate(ctx context.Context, department string, workDate time.Time) ([]DailySummary, error) {
	var rows []DailySummary
	err := r.db.WithContext(ctx).
		Scopes(dbscope.Department(department), dbscope.WorkDate(workDate)).
		Order("name ASC").
		Find(&rows).Error
	return rows, err
}
