package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/jackdo69/photo-sharing-server/internal/consts"
	"github.com/jackdo69/photo-sharing-server/internal/modules/common/httpx"
	"github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/utils"

	"github.com/gin-gonic/gin"
)

// MessageAuthFailed 认证失败统一提示
const MessageAuthFailed = "Authentication failed"

// JWTAuth 校验 Bearer 令牌，通过后把 userId/email 写入 gin 上下文与 request context。
// CORS 预检请求 (OPTIONS) 直接放行。
func JWTAuth(tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		// 检查格式是否为 "Bearer <token>"
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || strings.TrimSpace(parts[1]) == "" {
			httpx.Abort(c, service.NewUnauthorizedError(MessageAuthFailed))
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httpx.Abort(c, service.NewUnauthorizedError(MessageAuthFailed))
			return
		}

		c.Set(consts.ContextKeyUserID, claims.UserID)
		c.Set(consts.ContextKeyEmail, claims.Email)

		ctx := context.WithValue(c.Request.Context(), consts.CtxUserID, claims.UserID)
		ctx = context.WithValue(ctx, consts.CtxEmail, claims.Email)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// CurrentUserID 返回已认证用户 ID，gin 上下文缺失时回退到 request context
func CurrentUserID(c *gin.Context) (string, bool) {
	uid := c.GetString(consts.ContextKeyUserID)
	if uid == "" {
		uid = userIDFromContext(c.Request.Context())
	}
	return uid, uid != ""
}

func userIDFromContext(ctx context.Context) string {
	uid, _ := ctx.Value(consts.CtxUserID).(string)
	return uid
}
