package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Version é a versão informada pelo health check
const Version = "1.0.0"

// RegisterHealthRoutes registra o health check
func RegisterHealthRoutes(r *gin.RouterGroup, storageDriver string) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": Version,
			"storage": storageDriver,
		})
	})
}
