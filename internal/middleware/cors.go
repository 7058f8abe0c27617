package middleware

import (
	"net/http"
	"time"

	"github.com/jackdo69/photo-sharing-server/internal/consts"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS 允许任意来源与请求头，方法限定为 GET/POST/PATCH/DELETE
func CORS() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowHeaders:  []string{"*"},
		ExposeHeaders: []string{"Content-Disposition", consts.HeaderRequestID},
		MaxAge:        12 * time.Hour,
	})
}
