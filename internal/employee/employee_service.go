package employee

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	employeeerrors "go-ponto/internal/employee/errors"
	"go-ponto/internal/events"
	"go-ponto/internal/messaging/kafka"
	"go-ponto/internal/shared/apperror"
	"go-ponto/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

const (
	DepartmentKeyPrefix = "employees:department:"
	departmentCacheTTL  = 30 * time.Minute
)

func GetDepartmentKey(department string) string {
	return DepartmentKeyPrefix + strings.ToLower(department)
}

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error)
	GetByRegistration(ctx context.Context, registration string) (EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, rdb, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	rdb *redis.Client,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	req = normalizeCreate(req)
	if err := validateCreate(req); err != nil {
		s.logger.Warn("create employee invalid input", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	registration := RegistrationFromCPF(req.CPF)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("registration", registration),
		zap.String("department", req.Department),
		zap.String("email", req.Email),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByEmail(ctx, req.Email); err == nil {
		s.logger.Warn("create employee email taken", zap.String("email", req.Email))
		return EmployeeResponse{}, employeeerrors.ErrEmailAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("create employee email lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	taken, err := qtx.ExistsByRegistration(ctx, registration)
	if err != nil {
		s.logger.Error("create employee registration lookup failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	if taken {
		s.logger.Warn("create employee registration collision", zap.String("registration", registration))
		return EmployeeResponse{}, employeeerrors.ErrRegistrationConflict
	}

	empl := &Employee{
		ID:           uuid.New(),
		Registration: registration,
		Name:         req.Name,
		CPF:          req.CPF,
		Email:        req.Email,
		Role:         req.Role,
		Department:   req.Department,
		CreatedAt:    time.Now().UTC(),
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event, err := kafka.NewOutboxEvent(rid, kafka.AggregateEmployee, empl.ID.String(),
			events.EventEmployeeCreated, events.EmployeeCreatedTopic,
			events.EmployeeCreatedEvent{
				EventType:    events.EventEmployeeCreated,
				RequestID:    rid,
				EmployeeID:   empl.ID.String(),
				Registration: empl.Registration,
				Role:         empl.Role,
				Department:   empl.Department,
				OccurredAt:   empl.CreatedAt,
			})
		if err != nil {
			s.logger.Error("build employee_created event failed", zap.String("request_id", rid), zap.Error(err))
			return EmployeeResponse{}, err
		}
		if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
			s.logger.Error("create employee outbox persist failed",
				zap.String("employee_id", empl.ID.String()),
				zap.Error(err),
			)
			return EmployeeResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	s.invalidateDepartment(ctx, empl.Department)

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
		zap.String("registration", empl.Registration),
	)
	return mapToResponse(*empl), nil
}

func (s *service) GetByDepartment(ctx context.Context, department string) ([]EmployeeResponse, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return nil, employeeerrors.ErrMissingDepartment
	}
	cacheKey := GetDepartmentKey(department)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []EmployeeResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	// admins refreshing the same department share one query
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rows, err := s.repo.FindAllByDepartment(ctx, department)
		if err != nil {
			s.logger.Error("get employees by department failed",
				zap.String("department", department),
				zap.Error(err),
			)
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(rows)
		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, string(jsonData), departmentCacheTTL)
			}
		}
		return resp, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]EmployeeResponse), nil
}

func (s *service) GetByRegistration(ctx context.Context, registration string) (EmployeeResponse, error) {
	empl, err := ResolveRegistration(ctx, s.repo, registration)
	if err != nil {
		s.logger.Debug("get employee by registration failed",
			zap.String("registration", registration),
			zap.Error(err),
		)
		return EmployeeResponse{}, err
	}
	return mapToResponse(*empl), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Debug("get employee by id failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*empl), nil
}

// ResolveRegistration finds the single employee whose CPF starts with the
// registration code. repo may be transaction-bound.
func ResolveRegistration(ctx context.Context, repo Repository, registration string) (*Employee, error) {
	registration = strings.TrimSpace(registration)
	if !ValidRegistration(registration) {
		return nil, employeeerrors.ErrInvalidRegistration
	}

	rows, err := repo.FindByRegistration(ctx, registration)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	switch len(rows) {
	case 0:
		return nil, employeeerrors.ErrEmployeeNotFound
	case 1:
		return &rows[0], nil
	default:
		return nil, employeeerrors.ErrAmbiguousRegistration
	}
}

// ValidRegistration reports whether s is exactly RegistrationLength digits.
func ValidRegistration(s string) bool {
	return len(s) == RegistrationLength && allDigits(s)
}

func (s *service) invalidateDepartment(ctx context.Context, department string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetDepartmentKey(department)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate department cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func normalizeCreate(req CreateEmployeeRequest) CreateEmployeeRequest {
	req.Name = strings.TrimSpace(req.Name)
	req.CPF = strings.TrimSpace(req.CPF)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Role = strings.TrimSpace(req.Role)
	req.Department = strings.TrimSpace(req.Department)
	return req
}

func validateCreate(req CreateEmployeeRequest) error {
	if req.Name == "" || req.CPF == "" || req.Email == "" || req.Role == "" || req.Department == "" {
		return employeeerrors.ErrMissingRequiredFields
	}
	if err := apperror.ValidateVar(req.CPF, "required,cpf"); err != nil {
		return employeeerrors.ErrInvalidCPF
	}
	if err := apperror.ValidateVar(req.Email, "required,email"); err != nil {
		return employeeerrors.ErrInvalidEmail
	}
	return nil
}

func allDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func mapToResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID.String(),
		Name:         e.Name,
		Registration: e.Registration,
		CPF:          e.CPF,
		Email:        e.Email,
		Role:         e.Role,
		Department:   e.Department,
	}
	if !e.CreatedAt.IsZero() {
		resp.CreatedAt = e.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res
}
