package app

import (
	"context"
	"database/sql"

	"go-ponto/internal/attendance"
	"go-ponto/internal/auth"
	"go-ponto/internal/config"
	"go-ponto/internal/dailysummary"
	"go-ponto/internal/employee"
	"go-ponto/internal/health"
	"go-ponto/internal/messaging/kafka"
	"go-ponto/internal/middleware"
	"go-ponto/internal/rbac"
	"go-ponto/internal/rbac/infra"
	"go-ponto/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type modules struct {
	auth auth.Service
}

func registerModules(
	router *gin.Engine,
	cfg *config.Config,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	auditLogger audit.Logger,
) (*modules, error) {
	logger := zap.L()

	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	summaryRepo := dailysummary.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- RBAC Core ---
	enforcer, err := infra.NewEnforcer()
	if err != nil {
		return nil, err
	}
	rbacService, err := rbac.NewService(enforcer, logger)
	if err != nil {
		return nil, err
	}

	// --- Services ---
	authService := auth.NewService(db, authRepo, employeeRepo, auth.TokenConfig{
		Secret: cfg.JWTSecret,
		TTL:    cfg.JWTTTL,
	}, logger)
	employeeService := employee.NewServiceWithOutbox(db, employeeRepo, outboxRepo, rdb, logger)
	attendanceService := attendance.NewService(db, attendanceRepo, employeeRepo, outboxRepo, rdb, attendance.Settings{
		Location:       cfg.Location,
		ReportCacheTTL: cfg.ReportCacheTTL,
	}, logger)
	summaryService := dailysummary.NewService(summaryRepo, cfg.Location, logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, auditLogger, cfg.IsProduction(), logger)
	employeeHandler := employee.NewHandler(employeeService, auditLogger, logger)
	attendanceHandler := attendance.NewHandler(attendanceService, logger)
	summaryHandler := dailysummary.NewHandler(summaryService, logger)

	// --- Routes Registration ---
	router.Use(middleware.CORS(cfg.CORSOrigins))
	health.RegisterRoutes(router)

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, authHandler, logger)
		employee.RegisterRoutes(api, employeeHandler, rbacService, cfg.JWTSecret, logger)
		attendance.RegisterRoutes(api, attendanceHandler, rdb, logger)
		dailysummary.RegisterRoutes(api, summaryHandler, rbacService, cfg.JWTSecret, logger)
	}

	return &modules{auth: authService}, nil
}

func bootstrapAdmin(ctx context.Context, cfg *config.Config, m *modules, auditLogger audit.Logger) error {
	created, err := m.auth.BootstrapAdmin(ctx, auth.AdminSeed{
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
		Name:     cfg.AdminName,
		CPF:      cfg.AdminCPF,
	})
	if err != nil {
		return err
	}
	if created {
		auditLogger.Log(ctx, audit.AuditLog{
			Action:  audit.ActionAdminBootstrap,
			Message: "Administrator account created",
			Meta:    map[string]any{"email": cfg.AdminEmail},
		})
	}
	return nil
}
