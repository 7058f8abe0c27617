package consts

type contextKey string

const (

	// ContextKeyUserID 已认证用户 ID（gin.Context 键）
	ContextKeyUserID = "userId"

	// ContextKeyEmail 已认证用户邮箱（gin.Context 键）
	ContextKeyEmail = "email"

	// ContextKeyRequestID 请求 ID（gin.Context 键）
	ContextKeyRequestID = "requestId"

	// HeaderRequestID 请求 ID 响应头
	HeaderRequestID = "X-Request-Id"
)

// 写入 request context.Context 时使用的私有键类型
const (
	CtxUserID    contextKey = "photo_share.user_id"
	CtxEmail     contextKey = "photo_share.email"
	CtxRequestID contextKey = "photo_share.request_id"
)
