package auth

import (
	"go-ponto/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, logger *zap.Logger) {
	r.POST("/admin/login",
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(0.2, 5),
		handler.Login,
	)
}
