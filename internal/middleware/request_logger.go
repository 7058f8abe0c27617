package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackdo69/photo-sharing-server/internal/consts"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const maxRequestIDLength = 128

// RequestLogger 分配或透传 X-Request-Id，并在请求结束后输出访问日志
func RequestLogger(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		start := time.Now()

		requestID := c.GetHeader(consts.HeaderRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = uuid.NewString()
		}
		c.Set(consts.ContextKeyRequestID, requestID)
		c.Header(consts.HeaderRequestID, requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), consts.CtxRequestID, requestID))

		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		switch {
		case status >= 500:
			level = slog.LevelError
		case status >= 400:
			level = slog.LevelWarn
		}

		logger.LogAttrs(c.Request.Context(), level, "request",
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", time.Since(start)),
			slog.String("ip", c.ClientIP()),
			slog.Int("size", c.Writer.Size()),
		)
	}
}

// RequestIDFromContext 从 request context 读取请求 ID
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(consts.CtxRequestID).(string)
	return id
}
