package attendance

import (
	"bytes"
	"net/http"

	attendanceerrors "go-ponto/internal/attendance/errors"
	"go-ponto/internal/shared/apperror"
	"go-ponto/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const MsgPunchRecorded = "Ponto registrado com sucesso"

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Punch serves POST /api/point.
func (h *Handler) Punch(c *gin.Context) {
	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Debug("http punch validation failed", zap.Error(err))
		h.writeServiceError(c, attendanceerrors.ErrRegistrationRequired)
		return
	}

	resp, err := h.service.Punch(c.Request.Context(), req.Registration)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	response.SuccessWithMessage(c, http.StatusOK, MsgPunchRecorded, resp)
}

// TimeReport serves GET /api/time-report/:registration.
func (h *Handler) TimeReport(c *gin.Context) {
	format, ok := ParseFormat(c.Query("format"))
	if !ok {
		h.writeServiceError(c, attendanceerrors.ErrInvalidReportFormat)
		return
	}

	report, err := h.service.ReportByRegistration(c.Request.Context(), c.Param("registration"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.sendReport(c, report, format)
}

// TimeRecords serves GET /api/time-records/:employeeId.
func (h *Handler) TimeRecords(c *gin.Context) {
	format, ok := ParseFormat(c.Query("format"))
	if !ok {
		h.writeServiceError(c, attendanceerrors.ErrInvalidReportFormat)
		return
	}

	report, err := h.service.ReportByEmployeeID(c.Request.Context(), c.Param("employeeId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	h.sendReport(c, report, format)
}

func (h *Handler) sendReport(c *gin.Context, report Report, format ReportFormat) {
	var buf bytes.Buffer
	if err := Render(&buf, format, report.Rows); err != nil {
		h.logger.Error("render report failed",
			zap.String("registration", report.Registration),
			zap.String("format", string(format)),
			zap.Error(err),
		)
		h.writeServiceError(c, attendanceerrors.ErrReportFailed)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+ReportFileName(report.Registration, format))
	c.Data(http.StatusOK, ContentType(format), buf.Bytes())
}
