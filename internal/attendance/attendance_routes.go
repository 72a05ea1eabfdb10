package attendance

import (
	"go-ponto/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RegisterRoutes mounts the kiosk endpoints. They are public: an employee
// identifies only by registration.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client, logger *zap.Logger) {
	r.POST("/point",
		middleware.ContextLogger(logger),
		middleware.RateLimitByIP(2, 5),
		middleware.Idempotency(rdb),
		handler.Punch,
	)

	reports := r.Group("")
	reports.Use(middleware.ContextLogger(logger))
	reports.Use(middleware.RateLimitByIP(1, 5))
	{
		reports.GET("/time-report/:registration", handler.TimeReport)
		reports.GET("/time-records/:employeeId", handler.TimeRecords)
	}
}
