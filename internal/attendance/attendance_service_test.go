package attendance_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-ponto/internal/attendance"
	attendanceerrors "go-ponto/internal/attendance/errors"
	attendanceMock "go-ponto/internal/attendance/mock"
	"go-ponto/internal/employee"
	employeeerrors "go-ponto/internal/employee/errors"
	employeeMock "go-ponto/internal/employee/mock"
	"go-ponto/internal/events"
	"go-ponto/internal/messaging/kafka"
	kafkaMock "go-ponto/internal/messaging/kafka/mock"
	"go-ponto/internal/sequencer"
	"go-ponto/internal/shared/apperror"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

var brt = time.FixedZone("BRT", -3*60*60)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   attendance.Service
	repo      *attendanceMock.MockRepository
	employees *employeeMock.MockRepository
	outbox    *kafkaMock.MockOutboxRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T, now time.Time) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })
	rdb, redisMock := redismock.NewClientMock()

	deps := &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      attendanceMock.NewMockRepository(ctrl),
		employees: employeeMock.NewMockRepository(ctrl),
		outbox:    kafkaMock.NewMockOutboxRepository(ctrl),
		redismock: redisMock,
	}
	deps.service = attendance.NewService(db, deps.repo, deps.employees, deps.outbox, rdb, attendance.Settings{
		Location:       brt,
		ReportCacheTTL: time.Minute,
		Now:            func() time.Time { return now },
	})
	return deps
}

func sampleEmployee() employee.Employee {
	return employee.Employee{
		ID:           uuid.New(),
		Registration: "12345",
		Name:         "Maria Silva",
		CPF:          "12345678901",
		Email:        "maria@example.com",
		Role:         "Analista",
		Department:   "TI",
	}
}

func marks(n int, day time.Time) []attendance.TimeRecord {
	rows := make([]attendance.TimeRecord, n)
	for i := range rows {
		rows[i] = attendance.TimeRecord{
			ID:         uuid.New(),
			RecordedAt: day.Add(time.Duration(i) * time.Hour),
			Kind:       sequencer.Kinds()[i],
		}
	}
	return rows
}

func expectResolve(deps *serviceDeps, ctx context.Context, empl employee.Employee) {
	deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
	deps.employees.EXPECT().
		FindByRegistration(ctx, empl.Registration).
		Return([]employee.Employee{empl}, nil)
}

func TestAttendanceService_Punch(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 30, 0, 0, brt)
	workDate := sequencer.WorkDate(now, brt)
	ctx := context.Background()

	t.Run("third mark becomes lunch return", func(t *testing.T) {
		deps := setupServiceTest(t, now)
		empl := sampleEmployee()
		id := empl.ID.String()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		expectResolve(deps, ctx, empl)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockEmployeeDay(ctx, id, workDate).Return(nil)
		deps.repo.EXPECT().FindByEmployeeAndWorkDate(ctx, id, workDate).Return(marks(2, workDate.Add(8*time.Hour)), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, rec *attendance.TimeRecord) error {
				assert.Equal(t, sequencer.LunchReturn, rec.Kind)
				assert.Equal(t, empl.ID, rec.EmployeeID)
				assert.True(t, rec.RecordedAt.Equal(now))
				assert.True(t, rec.WorkDate.Equal(workDate))
				return nil
			})
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
				assert.Equal(t, events.AttendanceRecordedTopic, ev.Topic)
				assert.Equal(t, kafka.AggregateTimeRecord, ev.AggregateType)

				var payload events.AttendanceRecordedEvent
				assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
				assert.Equal(t, 3, payload.Sequence)
				assert.Equal(t, "2024-03-05", payload.WorkDate)
				assert.Equal(t, "TI", payload.Department)
				return nil
			})
		deps.redismock.ExpectIncr(attendance.GetReportVersionKey(id)).SetVal(4)

		resp, err := deps.service.Punch(ctx, " 12345 ")

		assert.NoError(t, err)
		assert.Equal(t, string(sequencer.LunchReturn), resp.Kind)
		assert.Equal(t, "Retorno Almoço", resp.KindLabel)
		assert.Equal(t, 1, resp.Remaining)
		assert.Equal(t, "Maria Silva", resp.Name)
		assert.Equal(t, "2024-03-05T14:30:00-03:00", resp.RecordedAt)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("fifth mark is rejected", func(t *testing.T) {
		deps := setupServiceTest(t, now)
		empl := sampleEmployee()
		id := empl.ID.String()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		expectResolve(deps, ctx, empl)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockEmployeeDay(ctx, id, workDate).Return(nil)
		deps.repo.EXPECT().FindByEmployeeAndWorkDate(ctx, id, workDate).Return(marks(4, workDate), nil)

		_, err := deps.service.Punch(ctx, "12345")

		assert.ErrorIs(t, err, attendanceerrors.ErrDailyLimitReached)
		assert.ErrorIs(t, err, sequencer.ErrDailyLimitReached)
		assert.Equal(t, "Limite de 4 marcações diárias atingido", apperror.ToHTTP(err).Message)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown registration", func(t *testing.T) {
		deps := setupServiceTest(t, now)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
		deps.employees.EXPECT().FindByRegistration(ctx, "99999").Return(nil, nil)

		_, err := deps.service.Punch(ctx, "99999")

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("empty registration", func(t *testing.T) {
		deps := setupServiceTest(t, now)

		_, err := deps.service.Punch(ctx, "  ")
		assert.ErrorIs(t, err, attendanceerrors.ErrRegistrationRequired)
	})

	t.Run("duplicate kind maps to conflict", func(t *testing.T) {
		deps := setupServiceTest(t, now)
		empl := sampleEmployee()
		id := empl.ID.String()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		expectResolve(deps, ctx, empl)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockEmployeeDay(ctx, id, workDate).Return(nil)
		deps.repo.EXPECT().FindByEmployeeAndWorkDate(ctx, id, workDate).Return(nil, nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_time_record_kind"})

		_, err := deps.service.Punch(ctx, "12345")

		assert.ErrorIs(t, err, attendanceerrors.ErrConcurrentMark)
	})

	t.Run("lock failure aborts", func(t *testing.T) {
		deps := setupServiceTest(t, now)
		empl := sampleEmployee()

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		expectResolve(deps, ctx, empl)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().LockEmployeeDay(ctx, gomock.Any(), gomock.Any()).Return(errors.New("lock timeout"))

		_, err := deps.service.Punch(ctx, "12345")

		assert.EqualError(t, err, "lock timeout")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestAttendanceService_Report(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 6, 9, 0, 0, 0, brt)

	empl := sampleEmployee()
	records := []attendance.TimeRecord{
		{RecordedAt: time.Date(2024, 3, 5, 11, 0, 0, 0, time.UTC)},  // 08:00 local
		{RecordedAt: time.Date(2024, 3, 5, 15, 30, 0, 0, time.UTC)}, // 12:30 local
		{RecordedAt: time.Date(2024, 3, 6, 2, 30, 0, 0, time.UTC)},  // 23:30 local
	}

	t.Run("by registration builds and caches rows", func(t *testing.T) {
		deps := setupServiceTest(t, now)
		key := attendance.GetReportKey(empl.ID.String(), 0)

		rows := attendance.BuildReportRows(empl, records, brt)
		payload, _ := json.Marshal(rows)

		deps.employees.EXPECT().FindByRegistration(ctx, "12345").Return([]employee.Employee{empl}, nil)
		deps.redismock.ExpectGet(attendance.GetReportVersionKey(empl.ID.String())).RedisNil()
		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().FindAllByEmployee(gomock.Any(), empl.ID.String()).Return(records, nil)
		deps.redismock.ExpectSet(key, string(payload), time.Minute).SetVal("OK")

		report, err := deps.service.ReportByRegistration(ctx, "12345")

		assert.NoError(t, err)
		assert.Equal(t, "12345", report.Registration)
		assert.Len(t, report.Rows, 3)
		assert.Equal(t, "05/03/2024", report.Rows[0].Date)
		assert.Equal(t, "08:00:00", report.Rows[0].Time)
		assert.Equal(t, "Entrada", report.Rows[0].Type)
		assert.Equal(t, "Saída Almoço", report.Rows[1].Type)
		assert.Equal(t, "Entrada", report.Rows[2].Type)
		assert.Equal(t, "23:30:00", report.Rows[2].Time)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t, now)
		cached := []attendance.ReportRow{{Name: "Maria Silva", Date: "01/03/2024", Time: "08:00:00", Type: "Entrada"}}
		payload, _ := json.Marshal(cached)

		deps.employees.EXPECT().FindByRegistration(ctx, "12345").Return([]employee.Employee{empl}, nil)
		deps.redismock.ExpectGet(attendance.GetReportVersionKey(empl.ID.String())).SetVal("3")
		deps.redismock.ExpectGet(attendance.GetReportKey(empl.ID.String(), 3)).SetVal(string(payload))

		report, err := deps.service.ReportByRegistration(ctx, "12345")

		assert.NoError(t, err)
		assert.Equal(t, cached, report.Rows)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("rows cached before a punch are not served after it", func(t *testing.T) {
		deps := setupServiceTest(t, now)
		id := empl.ID.String()

		deps.employees.EXPECT().FindByRegistration(ctx, "12345").Return([]employee.Employee{empl}, nil)
		// version 2 rows may still be in redis; the punch moved the employee to 3
		deps.redismock.ExpectGet(attendance.GetReportVersionKey(id)).SetVal("3")
		deps.redismock.ExpectGet(attendance.GetReportKey(id, 3)).RedisNil()
		deps.repo.EXPECT().FindAllByEmployee(gomock.Any(), id).Return(records, nil)
		payload, _ := json.Marshal(attendance.BuildReportRows(empl, records, brt))
		deps.redismock.ExpectSet(attendance.GetReportKey(id, 3), string(payload), time.Minute).SetVal("OK")

		report, err := deps.service.ReportByRegistration(ctx, "12345")

		assert.NoError(t, err)
		assert.Len(t, report.Rows, 3)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("build survives the caller cancelling", func(t *testing.T) {
		deps := setupServiceTest(t, now)
		id := empl.ID.String()
		cctx, cancel := context.WithCancel(ctx)

		deps.employees.EXPECT().FindByRegistration(cctx, "12345").Return([]employee.Employee{empl}, nil)
		deps.redismock.ExpectGet(attendance.GetReportVersionKey(id)).RedisNil()
		deps.redismock.ExpectGet(attendance.GetReportKey(id, 0)).RedisNil()
		deps.repo.EXPECT().
			FindAllByEmployee(gomock.Any(), id).
			DoAndReturn(func(c context.Context, _ string) ([]attendance.TimeRecord, error) {
				cancel()
				assert.NoError(t, c.Err())
				return records, nil
			})
		payload, _ := json.Marshal(attendance.BuildReportRows(empl, records, brt))
		deps.redismock.ExpectSet(attendance.GetReportKey(id, 0), string(payload), time.Minute).SetVal("OK")

		report, err := deps.service.ReportByRegistration(cctx, "12345")

		assert.NoError(t, err)
		assert.Len(t, report.Rows, 3)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("by employee id not found", func(t *testing.T) {
		deps := setupServiceTest(t, now)
		id := uuid.New().String()

		deps.employees.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.ReportByEmployeeID(ctx, id)
		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})

	t.Run("by employee id invalid", func(t *testing.T) {
		deps := setupServiceTest(t, now)

		_, err := deps.service.ReportByEmployeeID(ctx, "abc")
		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})
}
