package router

import (
	"log/slog"
	"sync"

	"github.com/jackdo69/photo-sharing-server/internal/config"
	"github.com/jackdo69/photo-sharing-server/internal/middleware"
	"github.com/jackdo69/photo-sharing-server/internal/modules"
	"github.com/jackdo69/photo-sharing-server/internal/modules/common/httpx"
	"github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/utils"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type Router struct {
	modules *modules.AppModules
	cfg     *config.Config
	logger  *slog.Logger
	tokens  *utils.TokenManager
	redis   *redis.Client

	done      chan struct{}
	closeOnce sync.Once
}

func NewRouter(appModules *modules.AppModules, appService *service.AppService, tokens *utils.TokenManager, rdb *redis.Client) *Router {
	return &Router{
		modules: appModules,
		cfg:     appService.Config(),
		logger:  appService.Logger(),
		tokens:  tokens,
		redis:   rdb,
		done:    make(chan struct{}),
	}
}

// Close 停止路由持有的后台协程（内存限流清理），可重复调用
func (rt *Router) Close() {
	rt.closeOnce.Do(func() { close(rt.done) })
}

// Engine 创建 gin 引擎并注册全部路由
func (rt *Router) Engine() *gin.Engine {
	r := gin.New()
	rt.Init(r)
	return r
}

func (rt *Router) Init(r *gin.Engine) {
	cfg := rt.cfg

	// 全局中间件：请求 ID 与访问日志、panic 恢复、CORS、安全标头、统一错误响应
	r.Use(
		middleware.RequestLogger(rt.logger),
		httpx.Recovery(rt.logger),
		middleware.CORS(),
		middleware.SecurityHeaders(),
		httpx.ErrorResponder(rt.logger),
	)

	if cfg.Storage.Driver == "local" {
		r.Group(cfg.Storage.Local.URLPrefix, middleware.StaticCache(cfg.Storage.Local.CacheControl)).
			StaticFS("", gin.Dir(cfg.Storage.Local.Path, false))
	}

	if cfg.Server.Pprof {
		pprof.Register(r)
	}

	api := r.Group("/api")
	// 上传接口使用单独的上传大小限制
	api.Use(middleware.BodyLimit(cfg.Server.MaxBodyMB, signupPath, photosPath))

	limits := routeLimits{
		auth:       rt.rateLimit("auth", cfg.RateLimit.AuthRPS, cfg.RateLimit.AuthBurst),
		upload:     rt.rateLimit("upload", cfg.RateLimit.UploadRPS, cfg.RateLimit.UploadBurst),
		uploadBody: middleware.UploadBodyLimit(cfg.Upload.MaxSizeMB),
	}

	registerSystemRoutes(api)
	registerUserRoutes(api, limits, rt.modules.User.Handler)
	registerPhotoRoutes(api, limits, middleware.JWTAuth(rt.tokens), rt.modules.Photo.Handler)

	r.NoRoute(httpx.NotFound)
}

type routeLimits struct {
	auth       gin.HandlerFunc
	upload     gin.HandlerFunc
	uploadBody gin.HandlerFunc
}

func (rt *Router) rateLimit(name string, rps float64, burst int) gin.HandlerFunc {
	return middleware.RateLimit(middleware.RateLimitOptions{
		Name:    name,
		Enabled: rt.cfg.RateLimit.Enabled,
		RPS:     rps,
		Burst:   burst,
		Redis:   rt.redis,
		Prefix:  rt.cfg.Redis.Prefix,
		Done:    rt.done,
	})
}
