package rbac_test

import (
	"testing"

	"go-ponto/internal/domain"
	"go-ponto/internal/rbac"
	"go-ponto/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

func newService(t *testing.T) rbac.Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer()
	assert.NoError(t, err)
	svc, err := rbac.NewService(enforcer)
	assert.NoError(t, err)
	return svc
}

func TestService_Enforce(t *testing.T) {
	svc := newService(t)

	cases := []struct {
		name    string
		req     domain.EnforceRequest
		allowed bool
	}{
		{"admin creates employee", domain.EnforceRequest{Role: "admin", Resource: domain.ResourceEmployee, Action: domain.ActionCreate}, true},
		{"admin reads employees", domain.EnforceRequest{Role: "Admin ", Resource: domain.ResourceEmployee, Action: domain.ActionRead}, true},
		{"admin reads attendance", domain.EnforceRequest{Role: "admin", Resource: domain.ResourceAttendance, Action: domain.ActionRead}, true},
		{"admin cannot write attendance", domain.EnforceRequest{Role: "admin", Resource: domain.ResourceAttendance, Action: domain.ActionCreate}, false},
		{"free text role has no grants", domain.EnforceRequest{Role: "Analista", Resource: domain.ResourceEmployee, Action: domain.ActionRead}, false},
		{"empty role", domain.EnforceRequest{Resource: domain.ResourceReport, Action: domain.ActionRead}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := svc.Enforce(tc.req)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}
