package audit

import (
	"context"
	"time"

	"go-ponto/internal/shared/contextutil"

	"go.uber.org/zap"
)

const (
	ActionServerShutdown   = "SERVER_SHUTDOWN"
	ActionAdminLogin       = "ADMIN_LOGIN"
	ActionAdminLoginFailed = "ADMIN_LOGIN_FAILED"
	ActionEmployeeCreated  = "EMPLOYEE_CREATED"
	ActionAdminBootstrap   = "ADMIN_BOOTSTRAP"
)

type AuditLog struct {
	Action  string
	ActorID string
	Message string
	Meta    map[string]any
}

type Logger interface {
	Log(ctx context.Context, entry AuditLog)
}

type StdoutLogger struct {
	logger *zap.Logger
}

func NewStdoutLogger(logger ...*zap.Logger) *StdoutLogger {
	l := zap.L()
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &StdoutLogger{logger: l.Named("audit")}
}

func (l *StdoutLogger) Log(ctx context.Context, entry AuditLog) {
	actor := entry.ActorID
	if actor == "" {
		actor = contextutil.GetUserID(ctx)
	}
	l.logger.Info("audit event",
		zap.String("timestamp", time.Now().UTC().Format(time.RFC3339)),
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("actor_id", actor),
		zap.String("action", entry.Action),
		zap.String("message", entry.Message),
		zap.Any("meta", entry.Meta),
	)
}

// Nop discards entries; handlers fall back to it when no logger is wired.
type Nop struct{}

func (Nop) Log(context.Context, AuditLog) {}
