package rbac

import (
	"strings"

	"go-ponto/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

// RoleAdmin is the one reserved role; every other role is free text with no grants.
const RoleAdmin = "admin"

// DefaultPolicies are loaded at start-up: {role, resource, action}.
var DefaultPolicies = [][]string{
	{RoleAdmin, domain.ResourceEmployee, "*"},
	{RoleAdmin, domain.ResourceAttendance, domain.ActionRead},
	{RoleAdmin, domain.ResourceReport, domain.ActionRead},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.SyncedEnforcer
	logger   *zap.Logger
}

func NewService(enforcer *casbin.SyncedEnforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	if _, err := enforcer.AddPolicies(DefaultPolicies); err != nil {
		return nil, err
	}
	l.Info("rbac policies loaded", zap.Int("count", len(DefaultPolicies)))

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	role := NormalizeRole(req.Role)
	if role == "" {
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func NormalizeRole(role string) string {
	return strings.ToLower(strings.TrimSpace(role))
}
