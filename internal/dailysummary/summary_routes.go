package dailysummary

import (
	"go-ponto/internal/domain"
	"go-ponto/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService middleware.RBACService,
	jwtSecret string,
	logger *zap.Logger,
) {
	r.GET("/admin/attendance",
		middleware.AuthMiddleware(jwtSecret),
		middleware.ContextLogger(logger),
		middleware.RateLimitByUser(3, 10),
		middleware.RBACAuthorize(rbacService, domain.ResourceAttendance, domain.ActionRead),
		handler.List,
	)
}
