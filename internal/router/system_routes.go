package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func registerSystemRoutes(api *gin.RouterGroup) {
	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}
