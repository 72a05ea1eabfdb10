package dailysummary

import (
	"net/http"

	"go-ponto/internal/shared/apperror"
	"go-ponto/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("dailysummary.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dailysummary.handler")
	}
	return &Handler{service: service, logger: l}
}

// List serves GET /api/admin/attendance?department=X&date=YYYY-MM-DD.
func (h *Handler) List(c *gin.Context) {
	resp, err := h.service.List(c.Request.Context(), c.Query("department"), c.Query("date"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("list daily summaries failed", zap.Int("status", httpErr.Status), zap.String("code", httpErr.Code))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}
