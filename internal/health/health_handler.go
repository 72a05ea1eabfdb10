package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatusResponse struct {
	Status string `json:"status"`
}

// Handler answers liveness probes. It does not touch Postgres or Redis.
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, StatusResponse{Status: "ok"})
}

func RegisterRoutes(r gin.IRoutes) {
	r.GET("/healthz", Handler)
}
