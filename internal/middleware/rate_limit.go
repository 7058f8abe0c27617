package middleware

import (
	"context"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/jackdo69/photo-sharing-server/internal/platform/redisx"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"
)

const (
	MessageTooManyRequests = "Too many requests, please try again later."

	limiterIdleTTL      = 3 * time.Minute
	limiterCleanupEvery = time.Minute
	redisTimeout        = 500 * time.Millisecond
)

type IPRateLimiter struct {
	ips sync.Map
	mu  sync.Mutex
	r   rate.Limit
	b   int
}

type client struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64 // UnixNano
}

func (c *client) touch(now time.Time) {
	c.lastSeen.Store(now.UnixNano())
}

// NewIPRateLimiter 创建按 IP 的令牌桶；done 关闭后后台清理协程退出，nil 表示随进程存活
func NewIPRateLimiter(r rate.Limit, b int, done <-chan struct{}) *IPRateLimiter {
	i := &IPRateLimiter{
		r: r,
		b: b,
	}

	go i.cleanupLoop(done)

	return i
}

func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch(time.Now())
		return c.limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// Double check
	if v, ok := i.ips.Load(ip); ok {
		c := v.(*client)
		c.touch(time.Now())
		return c.limiter
	}

	c := &client{limiter: rate.NewLimiter(i.r, i.b)}
	c.touch(time.Now())
	i.ips.Store(ip, c)

	return c.limiter
}

// Allow 判断该 IP 是否还有令牌
func (i *IPRateLimiter) Allow(ip string) bool {
	return i.getLimiter(ip).Allow()
}

func (i *IPRateLimiter) cleanupLoop(done <-chan struct{}) {
	ticker := time.NewTicker(limiterCleanupEvery)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case now := <-ticker.C:
			i.sweep(now)
		}
	}
}

// sweep 移除超过 limiterIdleTTL 未访问的 IP
func (i *IPRateLimiter) sweep(now time.Time) {
	cutoff := now.Add(-limiterIdleTTL).UnixNano()
	i.ips.Range(func(key, value any) bool {
		if value.(*client).lastSeen.Load() < cutoff {
			i.ips.Delete(key)
		}
		return true
	})
}

// RateLimitOptions 限流参数；Redis 非空时使用固定窗口计数，失败时回退内存令牌桶。
// Done 关闭后内存限流的清理协程退出。
type RateLimitOptions struct {
	Name    string
	Enabled bool
	RPS     float64
	Burst   int
	Redis   *redis.Client
	Prefix  string
	Done    <-chan struct{}
}

// RateLimit 按客户端 IP 限流，超限返回 429
func RateLimit(opts RateLimitOptions) gin.HandlerFunc {
	if !opts.Enabled || opts.RPS <= 0 || opts.Burst <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	local := NewIPRateLimiter(rate.Limit(opts.RPS), opts.Burst, opts.Done)

	return func(c *gin.Context) {
		ip := c.ClientIP()

		allowed := false
		if opts.Redis != nil {
			key := redisx.Key(opts.Prefix, "rate", opts.Name, ip)
			ok, err := allowByRedisRateLimit(c.Request.Context(), opts.Redis, key, opts.RPS, opts.Burst)
			if err != nil {
				slog.Warn("⚠️ Redis 限流失败，回退内存限流", "name", opts.Name, "error", err)
				allowed = local.Allow(ip)
			} else {
				allowed = ok
			}
		} else {
			allowed = local.Allow(ip)
		}

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": MessageTooManyRequests})
			return
		}
		c.Next()
	}
}

// redisWindow 返回令牌桶从空到满所需时间，作为固定窗口长度
func redisWindow(rps float64, burst int) time.Duration {
	window := time.Duration(math.Ceil(float64(burst) / rps * float64(time.Second)))
	if window < time.Second {
		window = time.Second
	}
	return window
}

// allowByRedisRateLimit 固定窗口计数：每个窗口内最多 burst 次
func allowByRedisRateLimit(ctx context.Context, rdb *redis.Client, key string, rps float64, burst int) (bool, error) {
	if rdb == nil || rps <= 0 || burst <= 0 {
		return true, nil
	}

	window := redisWindow(rps, burst)
	slot := time.Now().UnixNano() / int64(window)
	windowKey := key + ":" + strconv.FormatInt(slot, 10)

	ctx, cancel := context.WithTimeout(ctx, redisTimeout)
	defer cancel()

	var incr *redis.IntCmd
	_, err := rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		incr = pipe.Incr(ctx, windowKey)
		pipe.PExpire(ctx, windowKey, window)
		return nil
	})
	if err != nil {
		return false, err
	}
	return incr.Val() <= int64(burst), nil
}
