package httpx

import (
	"log/slog"
	"net/http"

	"github.com/jackdo69/photo-sharing-server/internal/consts"
	"github.com/jackdo69/photo-sharing-server/internal/platform/service"

	"github.com/gin-gonic/gin"
)

const (
	// MessageInternal 非业务错误统一对外提示
	MessageInternal = "Something went wrong, please try again."
	// MessageRouteNotFound 未知路由提示
	MessageRouteNotFound = "Could not find this route."
)

// StatusFor 将业务错误码映射为 HTTP 状态码。
// 重复邮箱（conflict）在接口层视为校验失败，同样返回 422。
func StatusFor(code service.ErrorCode) int {
	switch code {
	case service.ErrorCodeValidation, service.ErrorCodeConflict:
		return http.StatusUnprocessableEntity
	case service.ErrorCodeUnauthorized:
		return http.StatusUnauthorized
	case service.ErrorCodeForbidden:
		return http.StatusForbidden
	case service.ErrorCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Abort 记录错误并中断后续处理，响应由 ErrorResponder 统一写出
func Abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// ErrorResponder 在处理链结束后把最后一个错误写为 {message}。
// 响应已写出时只记录日志，不重复写。
func ErrorResponder(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		requestID := c.GetString(consts.ContextKeyRequestID)

		if c.Writer.Written() {
			logger.Warn("⚠️ 响应已写出，忽略错误", "request_id", requestID, "error", err)
			return
		}

		status, message := http.StatusInternalServerError, MessageInternal
		if serviceErr, ok := service.AsServiceError(err); ok {
			status, message = StatusFor(serviceErr.Code), serviceErr.Message
		}
		if status >= http.StatusInternalServerError {
			logger.Error("❌ 请求处理失败", "request_id", requestID, "path", c.Request.URL.Path, "error", err)
		}

		c.JSON(status, gin.H{"message": message})
	}
}

// Recovery 将 panic 转为 500 {message}
func Recovery(logger *slog.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		logger.Error("❌ panic recovered",
			"request_id", c.GetString(consts.ContextKeyRequestID),
			"path", c.Request.URL.Path,
			"panic", recovered,
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": MessageInternal})
	})
}

// NotFound 未知路由处理
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"message": MessageRouteNotFound})
}
