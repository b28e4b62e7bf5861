package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"carelink/utils"
)

// HealthHandler handles GET /health based on the background monitor snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()

	healthy := status.Mongo
	for _, ok := range status.Redis {
		healthy = healthy && ok
	}

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
