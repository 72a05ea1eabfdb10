package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-ponto/internal/auth"
	autherrors "go-ponto/internal/auth/errors"
	authMock "go-ponto/internal/auth/mock"
	"go-ponto/internal/middleware"
	"go-ponto/internal/shared/audit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type recordingAudit struct {
	actions []string
}

func (r *recordingAudit) Log(_ context.Context, entry audit.AuditLog) {
	r.actions = append(r.actions, entry.Action)
}

func postLogin(h *auth.Handler, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/admin/login", h.Login)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandler_Login(t *testing.T) {
	t.Run("success sets cookie", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		rec := &recordingAudit{}

		svc.EXPECT().
			Login(gomock.Any(), "admin@neoponto.com", "s3cret").
			Return(auth.LoginResponse{Token: "tok", User: auth.AdminResponse{ID: "a-1"}}, nil)

		w := postLogin(auth.NewHandler(svc, rec, false), `{"username":"admin@neoponto.com","password":"s3cret"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"token":"tok"`)
		assert.Contains(t, w.Header().Get("Set-Cookie"), middleware.AccessTokenCookie+"=tok")
		assert.Equal(t, []string{audit.ActionAdminLogin}, rec.actions)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)
		rec := &recordingAudit{}

		svc.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(auth.LoginResponse{}, autherrors.ErrInvalidCredentials)

		w := postLogin(auth.NewHandler(svc, rec, false), `{"username":"x@y.com","password":"bad"}`)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Credenciais inválidas")
		assert.Equal(t, []string{audit.ActionAdminLoginFailed}, rec.actions)
	})

	t.Run("missing body fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := authMock.NewMockService(ctrl)

		w := postLogin(auth.NewHandler(svc, nil, false), `{"username":"x@y.com"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
