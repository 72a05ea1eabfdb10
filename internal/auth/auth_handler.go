package auth

import (
	"errors"
	"net/http"

	autherrors "go-ponto/internal/auth/errors"
	"go-ponto/internal/middleware"
	"go-ponto/internal/shared/apperror"
	"go-ponto/internal/shared/audit"
	"go-ponto/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service      Service
	audit        audit.Logger
	secureCookie bool
	logger       *zap.Logger
}

func NewHandler(service Service, auditLogger audit.Logger, secureCookie bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop{}
	}
	return &Handler{service: service, audit: auditLogger, secureCookie: secureCookie, logger: l}
}

// Login serves POST /api/admin/login.
func (h *Handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeError(c, autherrors.ErrMissingCredentials)
		return
	}

	resp, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, autherrors.ErrInvalidCredentials) {
			h.audit.Log(ctx, audit.AuditLog{
				Action:  audit.ActionAdminLoginFailed,
				Message: "admin login refused",
				Meta:    map[string]any{"username": req.Username, "ip": c.ClientIP()},
			})
		}
		h.writeError(c, err)
		return
	}

	h.audit.Log(ctx, audit.AuditLog{
		Action:  audit.ActionAdminLogin,
		ActorID: resp.User.ID,
		Message: "admin logged in",
		Meta:    map[string]any{"ip": c.ClientIP()},
	})

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     middleware.AccessTokenCookie,
		Value:    resp.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("auth request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}
