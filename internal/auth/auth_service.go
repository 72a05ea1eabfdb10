package auth

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	autherrors "go-ponto/internal/auth/errors"
	"go-ponto/internal/employee"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const AdminDepartment = "Administrativo"

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, username, password string) (LoginResponse, error)
	// BootstrapAdmin creates the configured administrator when it does not
	// exist yet. It reports whether anything was written.
	BootstrapAdmin(ctx context.Context, seed AdminSeed) (bool, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees employee.Repository
	tokens    TokenConfig
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees employee.Repository, tokens TokenConfig, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		db:        db,
		repo:      repo,
		employees: employees,
		tokens:    tokens,
		now:       time.Now,
		logger:    l,
	}
}

func (s *service) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" || password == "" {
		return LoginResponse{}, autherrors.ErrMissingCredentials
	}

	empl, err := s.employees.FindByEmail(ctx, username)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login employee lookup failed", zap.Error(err))
			return LoginResponse{}, err
		}
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}
	if !empl.IsAdmin() {
		s.logger.Warn("login by non-admin refused", zap.String("employee_id", empl.ID.String()))
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	cred, err := s.repo.FindByEmployeeID(ctx, empl.ID.String())
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Error("login credential lookup failed", zap.Error(err))
			return LoginResponse{}, err
		}
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)); err != nil {
		return LoginResponse{}, autherrors.ErrInvalidCredentials
	}

	token, expiresAt, err := GenerateToken(s.tokens, empl.ID.String(), employee.RoleAdmin, s.now())
	if err != nil {
		s.logger.Error("login sign token failed", zap.Error(err))
		return LoginResponse{}, autherrors.ErrTokenGenerationFailed
	}

	return LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt.UTC().Format(time.RFC3339),
		User: AdminResponse{
			ID:         empl.ID.String(),
			Name:       empl.Name,
			Email:      empl.Email,
			Role:       empl.Role,
			Department: empl.Department,
		},
	}, nil
}

func (s *service) BootstrapAdmin(ctx context.Context, seed AdminSeed) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(seed.Email))
	if email == "" {
		return false, nil
	}
	if seed.Password == "" {
		return false, errors.New("admin password is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	etx := s.employees.WithTx(tx)
	empl, err := etx.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if _, err := s.repo.WithTx(tx).FindByEmployeeID(ctx, empl.ID.String()); err == nil {
			return false, nil
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return false, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		empl = &employee.Employee{
			ID:           uuid.New(),
			Registration: employee.RegistrationFromCPF(seed.CPF),
			Name:         seed.Name,
			CPF:          seed.CPF,
			Email:        email,
			Role:         employee.RoleAdmin,
			Department:   AdminDepartment,
			CreatedAt:    s.now().UTC(),
		}
		if err := etx.Create(ctx, empl); err != nil {
			s.logger.Error("bootstrap admin create employee failed", zap.Error(err))
			return false, err
		}
	default:
		return false, err
	}

	if err := s.repo.WithTx(tx).Create(ctx, &Credential{
		EmployeeID:   empl.ID,
		PasswordHash: string(hash),
	}); err != nil {
		s.logger.Error("bootstrap admin create credential failed", zap.Error(err))
		return false, err
	}

	if err := tx.Commit(); err != nil {
		return false, err
	}

	s.logger.Info("admin bootstrapped",
		zap.String("employee_id", empl.ID.String()),
		zap.String("email", email),
	)
	return true, nil
}
