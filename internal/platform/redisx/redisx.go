// Package redisx 封装可选的 Redis 客户端。未启用或不可用时返回 nil，调用方降级为内存实现。
package redisx

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackdo69/photo-sharing-server/internal/config"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "photo_share"

// NewClient 创建并探活 Redis 客户端
func NewClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		slog.Warn("⚠️ Redis 不可用，降级为内存模式", "addr", cfg.Addr, "error", err)
		return nil
	}

	slog.Info("✅ Redis 已连接", "addr", cfg.Addr, "db", cfg.DB)
	return client
}

// Key 基于前缀拼接 Redis 键名
func Key(prefix string, parts ...string) string {
	if prefix == "" {
		prefix = defaultPrefix
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

// Close 关闭客户端，nil 安全
func Close(client *redis.Client) error {
	if client == nil {
		return nil
	}
	if err := client.Close(); err != nil {
		return fmt.Errorf("close redis failed: %w", err)
	}
	return nil
}
