package attendance

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	attendanceerrors "go-ponto/internal/attendance/errors"
	"go-ponto/internal/employee"
	employeeerrors "go-ponto/internal/employee/errors"
	"go-ponto/internal/events"
	"go-ponto/internal/messaging/kafka"
	"go-ponto/internal/sequencer"
	"go-ponto/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	ReportKeyPrefix        = "report:employee:"
	ReportVersionKeyPrefix = "report:version:"
	defaultReportCacheTTL = 5 * time.Minute

	reportDateLayout = "02/01/2006"
	reportTimeLayout = "15:04:05"
)

// GetReportKey is the cache key of one report generation. Every accepted
// punch bumps the employee's version, so rows built before it are never read.
func GetReportKey(employeeID string, version int64) string {
	return fmt.Sprintf("%s%s:v%d", ReportKeyPrefix, employeeID, version)
}

func GetReportVersionKey(employeeID string) string {
	return ReportVersionKeyPrefix + employeeID
}

// Settings carries the clock and calendar the service works in.
type Settings struct {
	Location       *time.Location
	ReportCacheTTL time.Duration
	// Now defaults to time.Now.
	Now func() time.Time
}

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Punch(ctx context.Context, registration string) (PunchResponse, error)
	ReportByRegistration(ctx context.Context, registration string) (Report, error)
	ReportByEmployeeID(ctx context.Context, employeeID string) (Report, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	outbox    kafka.OutboxRepository
	rdb       *redis.Client
	sf        *singleflight.Group
	loc       *time.Location
	reportTTL time.Duration
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	employees employee.Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	settings Settings,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	loc := settings.Location
	if loc == nil {
		loc = time.Local
	}
	ttl := settings.ReportCacheTTL
	if ttl <= 0 {
		ttl = defaultReportCacheTTL
	}
	now := settings.Now
	if now == nil {
		now = time.Now
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		outbox:    outboxRepo,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		loc:       loc,
		reportTTL: ttl,
		now:       now,
		logger:    l,
	}
}

func (s *service) Punch(ctx context.Context, registration string) (PunchResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	log := contextutil.GetLogger(ctx, s.logger)

	registration = strings.TrimSpace(registration)
	if registration == "" {
		return PunchResponse{}, attendanceerrors.ErrRegistrationRequired
	}

	now := s.now()
	workDate := sequencer.WorkDate(now, s.loc)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("punch begin tx failed", zap.Error(err))
		return PunchResponse{}, err
	}
	defer tx.Rollback()

	empl, err := employee.ResolveRegistration(ctx, s.employees.WithTx(tx), registration)
	if err != nil {
		log.Warn("punch employee lookup failed", zap.String("registration", registration), zap.Error(err))
		return PunchResponse{}, err
	}
	employeeID := empl.ID.String()

	qtx := s.repo.WithTx(tx)
	if err := qtx.LockEmployeeDay(ctx, employeeID, workDate); err != nil {
		log.Error("punch day lock failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PunchResponse{}, err
	}

	today, err := qtx.FindByEmployeeAndWorkDate(ctx, employeeID, workDate)
	if err != nil {
		log.Error("punch load marks failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PunchResponse{}, err
	}

	decision := sequencer.Decide(toEvents(today), now)
	if !decision.Accepted {
		log.Info("punch rejected",
			zap.String("employee_id", employeeID),
			zap.String("reason", decision.Reason),
			zap.Int("marks", len(today)),
		)
		return PunchResponse{}, attendanceerrors.ErrDailyLimitReached
	}

	rec := &TimeRecord{
		ID:         uuid.New(),
		EmployeeID: empl.ID,
		WorkDate:   workDate,
		RecordedAt: decision.Timestamp.UTC(),
		Kind:       decision.Kind,
	}
	if err := qtx.Create(ctx, rec); err != nil {
		log.Error("punch persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return PunchResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(rid, kafka.AggregateTimeRecord, rec.ID.String(),
			events.EventAttendanceRecorded, events.AttendanceRecordedTopic,
			events.AttendanceRecordedEvent{
				EventType:    events.EventAttendanceRecorded,
				RequestID:    rid,
				RecordID:     rec.ID.String(),
				EmployeeID:   employeeID,
				Name:         empl.Name,
				Registration: empl.Registration,
				Department:   empl.Department,
				Kind:         string(rec.Kind),
				Sequence:     len(today) + 1,
				WorkDate:     workDate.Format(sequencer.DateLayout),
				RecordedAt:   rec.RecordedAt,
			})
		if err != nil {
			return PunchResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			log.Error("punch outbox persist failed", zap.String("record_id", rec.ID.String()), zap.Error(err))
			return PunchResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("punch commit failed", zap.Error(err))
		return PunchResponse{}, mapRepositoryError(err)
	}

	s.invalidateReport(ctx, employeeID)

	log.Info("punch accepted",
		zap.String("employee_id", employeeID),
		zap.String("kind", string(rec.Kind)),
		zap.Int("remaining", decision.Remaining),
	)

	return PunchResponse{
		Name:         empl.Name,
		Registration: empl.Registration,
		Role:         empl.Role,
		Email:        empl.Email,
		Department:   empl.Department,
		Kind:         string(rec.Kind),
		KindLabel:    rec.Kind.Label(),
		RecordedAt:   rec.RecordedAt.In(s.loc).Format(time.RFC3339),
		Remaining:    decision.Remaining,
	}, nil
}

func (s *service) ReportByRegistration(ctx context.Context, registration string) (Report, error) {
	empl, err := employee.ResolveRegistration(ctx, s.employees, registration)
	if err != nil {
		return Report{}, err
	}
	return s.report(ctx, empl)
}

func (s *service) ReportByEmployeeID(ctx context.Context, employeeID string) (Report, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return Report{}, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Report{}, employeeerrors.ErrEmployeeNotFound
		}
		return Report{}, err
	}
	return s.report(ctx, empl)
}

func (s *service) report(ctx context.Context, empl *employee.Employee) (Report, error) {
	employeeID := empl.ID.String()

	cacheKey, cacheable := s.reportCacheKey(ctx, employeeID)
	if cacheable {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var rows []ReportRow
			if json.Unmarshal([]byte(cached), &rows) == nil {
				return Report{Registration: empl.Registration, Rows: rows}, nil
			}
		}
	}

	sfKey := cacheKey
	if !cacheable {
		sfKey = ReportKeyPrefix + employeeID
	}
	v, err, _ := s.sf.Do(sfKey, func() (interface{}, error) {
		// shared by every waiter, so one caller going away must not cancel it
		bctx := context.WithoutCancel(ctx)

		records, err := s.repo.FindAllByEmployee(bctx, employeeID)
		if err != nil {
			s.logger.Error("report load marks failed", zap.String("employee_id", employeeID), zap.Error(err))
			return nil, err
		}

		rows := BuildReportRows(*empl, records, s.loc)
		if cacheable {
			if data, err := json.Marshal(rows); err == nil {
				s.rdb.Set(bctx, cacheKey, string(data), s.reportTTL)
			}
		}
		return rows, nil
	})
	if err != nil {
		return Report{}, err
	}
	return Report{Registration: empl.Registration, Rows: v.([]ReportRow)}, nil
}

// reportCacheKey resolves the current versioned key. It reports false when
// redis is not configured or the version cannot be read.
func (s *service) reportCacheKey(ctx context.Context, employeeID string) (string, bool) {
	if s.rdb == nil {
		return "", false
	}
	version, err := s.rdb.Get(ctx, GetReportVersionKey(employeeID)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		s.logger.Warn("report version lookup failed", zap.String("employee_id", employeeID), zap.Error(err))
		return "", false
	}
	return GetReportKey(employeeID, version), true
}

// BuildReportRows formats records in loc and captions them by local hour.
func BuildReportRows(empl employee.Employee, records []TimeRecord, loc *time.Location) []ReportRow {
	if loc == nil {
		loc = time.Local
	}
	rows := make([]ReportRow, len(records))
	for i, rec := range records {
		local := rec.RecordedAt.In(loc)
		rows[i] = ReportRow{
			Name:         empl.Name,
			Registration: empl.Registration,
			Role:         empl.Role,
			Department:   empl.Department,
			Date:         local.Format(reportDateLayout),
			Time:         local.Format(reportTimeLayout),
			Type:         sequencer.LabelForHour(local.Hour()).Label(),
		}
	}
	return rows
}

// invalidateReport moves the employee to a new report version; rows cached
// under older versions expire on their own.
func (s *service) invalidateReport(ctx context.Context, employeeID string) {
	if s.rdb == nil {
		return
	}
	versionKey := GetReportVersionKey(employeeID)
	if err := s.rdb.Incr(context.WithoutCancel(ctx), versionKey).Err(); err != nil {
		s.logger.Error("failed to invalidate report cache",
			zap.Error(err),
			zap.String("key", versionKey),
		)
	}
}
