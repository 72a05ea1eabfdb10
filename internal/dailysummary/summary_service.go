package dailysummary

import (
	"context"
	"strings"
	"time"

	summaryerrors "go-ponto/internal/dailysummary/errors"
	"go-ponto/internal/events"
	"go-ponto/internal/sequencer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=summary_service.go -destination=mock/summary_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, event events.AttendanceRecordedEvent) error
	// List returns the summaries of one department on date (YYYY-MM-DD);
	// an empty date means today.
	List(ctx context.Context, department, date string) ([]SummaryResponse, error)
}

type service struct {
	repo   Repository
	loc    *time.Location
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("dailysummary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dailysummary.service")
	}
	if loc == nil {
		loc = time.Local
	}
	return &service{repo: repo, loc: loc, now: time.Now, logger: l}
}

func (s *service) Apply(ctx context.Context, event events.AttendanceRecordedEvent) error {
	employeeID, err := uuid.Parse(event.EmployeeID)
	if err != nil || event.Sequence < 1 {
		return summaryerrors.ErrInvalidEvent
	}
	workDate, err := time.Parse(sequencer.DateLayout, event.WorkDate)
	if err != nil {
		return summaryerrors.ErrInvalidEvent
	}

	row := &DailySummary{
		EmployeeID:   employeeID,
		WorkDate:     workDate,
		Name:         event.Name,
		Registration: event.Registration,
		Department:   event.Department,
		Marks:        event.Sequence,
	}
	recordedAt := event.RecordedAt.UTC()
	switch sequencer.EventKind(event.Kind) {
	case sequencer.ClockIn:
		row.FirstIn = &recordedAt
	case sequencer.ClockOut:
		row.LastOut = &recordedAt
	}

	if err := s.repo.Upsert(ctx, row); err != nil {
		s.logger.Error("upsert daily summary failed",
			zap.String("employee_id", event.EmployeeID),
			zap.String("work_date", event.WorkDate),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func (s *service) List(ctx context.Context, department, date string) ([]SummaryResponse, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return nil, summaryerrors.ErrMissingDepartment
	}

	var workDate time.Time
	if date = strings.TrimSpace(date); date == "" {
		workDate = sequencer.WorkDate(s.now(), s.loc)
	} else {
		d, err := time.ParseInLocation(sequencer.DateLayout, date, s.loc)
		if err != nil {
			return nil, summaryerrors.ErrInvalidDate
		}
		workDate = d
	}

	rows, err := s.repo.ListByDepartmentAndDate(ctx, department, workDate)
	if err != nil {
		s.logger.Error("list daily summaries failed", zap.String("department", department), zap.Error(err))
		return nil, err
	}

	res := make([]SummaryResponse, len(rows))
	for i, r := range rows {
		res[i] = s.toResponse(r)
	}
	return res, nil
}

func (s *service) toResponse(r DailySummary) SummaryResponse {
	resp := SummaryResponse{
		EmployeeID:   r.EmployeeID.String(),
		Name:         r.Name,
		Registration: r.Registration,
		Department:   r.Department,
		WorkDate:     r.WorkDate.Format(sequencer.DateLayout),
		Marks:        r.Marks,
		Complete:     r.Marks >= sequencer.MaxDailyEvents,
	}
	if r.FirstIn != nil {
		v := r.FirstIn.In(s.loc).Format(time.RFC3339)
		resp.FirstIn = &v
	}
	if r.LastOut != nil {
		v := r.LastOut.In(s.loc).Format(time.RFC3339)
		resp.LastOut = &v
	}
	return resp
}
