package auth_test

import (
	"context"
	"testing"
	"time"

	"go-ponto/internal/auth"
	autherrors "go-ponto/internal/auth/errors"
	authMock "go-ponto/internal/auth/mock"
	"go-ponto/internal/employee"
	employeeMock "go-ponto/internal/employee/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const secret = "test-secret"

type authDeps struct {
	sqlMock   sqlmock.Sqlmock
	repo      *authMock.MockRepository
	employees *employeeMock.MockRepository
	service   auth.Service
}

func setupAuthTest(t *testing.T) *authDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, _ := sqlmock.New()
	t.Cleanup(func() { db.Close() })

	deps := &authDeps{
		sqlMock:   sqlMock,
		repo:      authMock.NewMockRepository(ctrl),
		employees: employeeMock.NewMockRepository(ctrl),
	}
	deps.service = auth.NewService(db, deps.repo, deps.employees, auth.TokenConfig{Secret: secret, TTL: time.Hour})
	return deps
}

func hash(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(h)
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	admin := &employee.Employee{ID: uuid.New(), Name: "Admin", Email: "admin@neoponto.com", Role: "admin", Department: "Administrativo"}

	t.Run("success issues token with admin role", func(t *testing.T) {
		deps := setupAuthTest(t)
		deps.employees.EXPECT().FindByEmail(ctx, "admin@neoponto.com").Return(admin, nil)
		deps.repo.EXPECT().
			FindByEmployeeID(ctx, admin.ID.String()).
			Return(&auth.Credential{EmployeeID: admin.ID, PasswordHash: hash(t, "s3cret")}, nil)

		resp, err := deps.service.Login(ctx, " Admin@NeoPonto.com ", "s3cret")

		assert.NoError(t, err)
		assert.Equal(t, admin.ID.String(), resp.User.ID)

		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(resp.Token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(secret), nil
		})
		assert.NoError(t, err)
		assert.Equal(t, admin.ID.String(), claims["user_id"])
		assert.Equal(t, "admin", claims["role"])
	})

	t.Run("wrong password", func(t *testing.T) {
		deps := setupAuthTest(t)
		deps.employees.EXPECT().FindByEmail(ctx, admin.Email).Return(admin, nil)
		deps.repo.EXPECT().
			FindByEmployeeID(ctx, admin.ID.String()).
			Return(&auth.Credential{PasswordHash: hash(t, "s3cret")}, nil)

		_, err := deps.service.Login(ctx, admin.Email, "nope")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		deps := setupAuthTest(t)
		deps.employees.EXPECT().FindByEmail(ctx, "ghost@x.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Login(ctx, "ghost@x.com", "pw")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("non admin refused", func(t *testing.T) {
		deps := setupAuthTest(t)
		worker := &employee.Employee{ID: uuid.New(), Email: "ana@x.com", Role: "Analista"}
		deps.employees.EXPECT().FindByEmail(ctx, worker.Email).Return(worker, nil)

		_, err := deps.service.Login(ctx, worker.Email, "pw")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("missing credentials", func(t *testing.T) {
		deps := setupAuthTest(t)

		_, err := deps.service.Login(ctx, "", "pw")
		assert.ErrorIs(t, err, autherrors.ErrMissingCredentials)
	})
}

func TestService_BootstrapAdmin(t *testing.T) {
	ctx := context.Background()
	seed := auth.AdminSeed{Email: "admin@neoponto.com", Password: "s3cret", Name: "admin", CPF: "00000000000"}

	t.Run("creates employee and credential", func(t *testing.T) {
		deps := setupAuthTest(t)

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectCommit()
		deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
		deps.employees.EXPECT().FindByEmail(ctx, seed.Email).Return(nil, gorm.ErrRecordNotFound)
		deps.employees.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, e *employee.Employee) error {
				assert.Equal(t, employee.RoleAdmin, e.Role)
				assert.Equal(t, "00000", e.Registration)
				assert.Equal(t, auth.AdminDepartment, e.Department)
				return nil
			})
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(_ context.Context, c *auth.Credential) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte("s3cret")))
				return nil
			})

		created, err := deps.service.BootstrapAdmin(ctx, seed)

		assert.NoError(t, err)
		assert.True(t, created)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("existing admin is left alone", func(t *testing.T) {
		deps := setupAuthTest(t)
		existing := &employee.Employee{ID: uuid.New(), Email: seed.Email, Role: "admin"}

		deps.sqlMock.ExpectBegin()
		deps.sqlMock.ExpectRollback()
		deps.employees.EXPECT().WithTx(gomock.Any()).Return(deps.employees)
		deps.employees.EXPECT().FindByEmail(ctx, seed.Email).Return(existing, nil)
		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByEmployeeID(ctx, existing.ID.String()).Return(&auth.Credential{}, nil)

		created, err := deps.service.BootstrapAdmin(ctx, seed)

		assert.NoError(t, err)
		assert.False(t, created)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("no email configured", func(t *testing.T) {
		deps := setupAuthTest(t)

		created, err := deps.service.BootstrapAdmin(ctx, auth.AdminSeed{})
		assert.NoError(t, err)
		assert.False(t, created)
	})
}
