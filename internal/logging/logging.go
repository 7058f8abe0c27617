package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jackdo69/photo-sharing-server/internal/config"

	"github.com/lmittmann/tint"
)

// Setup 根据配置创建 slog.Logger 并设置为全局默认日志。
// release 模式输出 JSON，其余模式使用 tint 彩色输出。
func Setup(cfg config.LogConfig, mode string) *slog.Logger {
	logger := New(cfg, mode, os.Stdout)
	slog.SetDefault(logger)

	// 标准库 log 的输出统一转入 slog
	log.SetFlags(0)
	log.SetOutput(slog.NewLogLogger(logger.Handler(), slog.LevelInfo).Writer())

	return logger
}

// New 创建 logger，但不修改全局状态。
func New(cfg config.LogConfig, mode string, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}

	isRelease := mode == config.ModeRelease

	levelStr := cfg.Level
	if levelStr == "" {
		if isRelease {
			levelStr = "info"
		} else {
			levelStr = "debug"
		}
	}
	level := ParseLevel(levelStr)

	format := strings.ToLower(strings.TrimSpace(cfg.Format))
	if format == "" {
		if isRelease {
			format = "json"
		} else {
			format = "text"
		}
	}

	var h slog.Handler
	if format == "json" {
		h = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.String("ts", a.Value.Time().UTC().Format(time.RFC3339Nano))
				}
				return a
			},
		})
	} else {
		h = tint.NewHandler(w, &tint.Options{
			Level:      level,
			AddSource:  !isRelease,
			TimeFormat: "15:04:05.000",
		})
	}

	return slog.New(h)
}

func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
