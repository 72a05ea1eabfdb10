package employee

import (
	"errors"
	"net/http"

	employeeerrors "go-ponto/internal/employee/errors"
	"go-ponto/internal/middleware"
	"go-ponto/internal/shared/apperror"
	"go-ponto/internal/shared/audit"
	"go-ponto/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const MsgEmployeeCreated = "Usuário cadastrado com sucesso"

type Handler struct {
	service Service
	audit   audit.Logger
	logger  *zap.Logger
}

func NewHandler(service Service, auditLogger audit.Logger, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("employee.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.handler")
	}
	if auditLogger == nil {
		auditLogger = audit.Nop{}
	}
	return &Handler{service: service, audit: auditLogger, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("employee request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) Create(c *gin.Context) {
	actorID := c.GetString(middleware.ContextUserID)
	h.logger.Debug("http create employee", zap.String("actor_id", actorID))

	var req CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create employee validation failed", zap.Error(err))
		h.writeServiceError(c, bindError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.audit.Log(c.Request.Context(), audit.AuditLog{
		Action:  audit.ActionEmployeeCreated,
		ActorID: actorID,
		Message: "employee registered",
		Meta: map[string]any{
			"employee_id":  resp.ID,
			"registration": resp.Registration,
			"department":   resp.Department,
		},
	})

	response.SuccessWithMessage(c, http.StatusCreated, MsgEmployeeCreated, resp)
}

// GetByDepartment serves GET /api/admin/users?department=X.
func (h *Handler) GetByDepartment(c *gin.Context) {
	department := c.Query("department")
	h.logger.Debug("http get employees by department", zap.String("department", department))

	resp, err := h.service.GetByDepartment(c.Request.Context(), department)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) GetByRegistration(c *gin.Context) {
	resp, err := h.service.GetByRegistration(c.Request.Context(), c.Param("registration"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

// bindError keeps the field-level messages the admin page shows.
func bindError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperror.Wrap(err, apperror.CodeInvalidInput, apperror.ErrInvalidInput.Message, http.StatusBadRequest)
	}
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			return employeeerrors.ErrMissingRequiredFields
		}
	}
	for _, fe := range verrs {
		switch fe.Tag() {
		case "cpf":
			return employeeerrors.ErrInvalidCPF
		case "email":
			return employeeerrors.ErrInvalidEmail
		}
	}
	return err
}
