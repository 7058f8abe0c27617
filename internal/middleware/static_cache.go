package middleware

import "github.com/gin-gonic/gin"

// StaticCache 为静态图片添加 Cache-Control 头
func StaticCache(cacheControl string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cacheControl != "" {
			c.Header("Cache-Control", cacheControl)
		}
		c.Next()
	}
}
