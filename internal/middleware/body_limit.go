package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	bytesPerMB = 1024 * 1024

	ctxKeyUploadLimitMB = "uploadLimitMB"
)

func tooLargeMessage(maxSizeMB int) string {
	return fmt.Sprintf("File is too large, the limit is %dMB.", maxSizeMB)
}

// BodyLimit 限制普通请求体大小，exempt 中的路由（c.FullPath）交由 UploadBodyLimit 处理
func BodyLimit(maxSizeMB int, exempt ...string) gin.HandlerFunc {
	if maxSizeMB <= 0 {
		// 如果未设置或为0，默认 2MB
		maxSizeMB = 2
	}
	maxBytes := int64(maxSizeMB) * bytesPerMB

	skip := make(map[string]struct{}, len(exempt))
	for _, p := range exempt {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		if _, ok := skip[c.FullPath()]; ok {
			c.Next()
			return
		}
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// UploadBodyLimit 限制上传接口的请求体大小
func UploadBodyLimit(maxSizeMB int) gin.HandlerFunc {
	if maxSizeMB <= 0 {
		maxSizeMB = 10
	}
	maxBytes := int64(maxSizeMB) * bytesPerMB

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"message": tooLargeMessage(maxSizeMB)})
			return
		}

		c.Set(ctxKeyUploadLimitMB, maxSizeMB)
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}

// AbortIfTooLarge 请求体在读取时超出上限（例如未声明 Content-Length 的分块上传）则返回 413
func AbortIfTooLarge(c *gin.Context, err error) bool {
	var maxErr *http.MaxBytesError
	if !errors.As(err, &maxErr) {
		return false
	}
	maxSizeMB := c.GetInt(ctxKeyUploadLimitMB)
	if maxSizeMB <= 0 {
		maxSizeMB = int((maxErr.Limit + bytesPerMB - 1) / bytesPerMB)
	}
	c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, gin.H{"message": tooLargeMessage(maxSizeMB)})
	return true
}
