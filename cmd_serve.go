package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/jackdo69/photo-sharing-server/internal/config"
	"github.com/jackdo69/photo-sharing-server/internal/consts"
	"github.com/jackdo69/photo-sharing-server/internal/db"
	"github.com/jackdo69/photo-sharing-server/internal/di"
	"github.com/jackdo69/photo-sharing-server/internal/logging"
	"github.com/jackdo69/photo-sharing-server/internal/platform/redisx"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newServeCmd(configDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "启动 HTTP 服务",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), *configDir)
		},
	}
}

// bootstrap 加载配置并组装应用，返回的 cleanup 负责停止路由后台协程并关闭数据库与 Redis
func bootstrap(configDir string) (*config.Config, *di.Application, func(), error) {
	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, nil, nil, err
	}
	logger := logging.Setup(cfg.Log, cfg.Server.Mode)
	gin.SetMode(cfg.Server.Mode)

	if cfg.Storage.Driver == "local" {
		if err := checkSecurePath(cfg.Storage.Local.Path); err != nil {
			return nil, nil, nil, err
		}
		if err := os.MkdirAll(cfg.Storage.Local.Path, 0o755); err != nil {
			return nil, nil, nil, fmt.Errorf("无法创建上传目录: %w", err)
		}
	}

	gdb, err := db.Open(cfg.Database)
	if err != nil {
		return nil, nil, nil, err
	}
	rdb := redisx.NewClient(cfg.Redis)

	closeStores := func() {
		if err := db.Close(gdb); err != nil {
			slog.Warn("⚠️ 关闭数据库失败", "error", err)
		}
		if err := redisx.Close(rdb); err != nil {
			slog.Warn("⚠️ 关闭 Redis 失败", "error", err)
		}
	}

	app, err := di.InitializeApplication(cfg, logger, gdb, rdb)
	if err != nil {
		closeStores()
		return nil, nil, nil, err
	}
	cleanup := func() {
		app.Router.Close()
		closeStores()
	}
	return cfg, app, cleanup, nil
}

func runServe(ctx context.Context, configDir string) error {
	cfg, app, cleanup, err := bootstrap(configDir)
	if err != nil {
		return err
	}
	defer cleanup()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      app.Router.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	printWelcomeMessage(cfg)

	errCh := make(chan error, 1)
	go func() {
		slog.Info("🚀 服务启动成功", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("服务启动失败: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	slog.Info("🛑 正在关闭服务...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout(cfg))
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("服务强制关闭: %w", err)
	}
	slog.Info("✅ 服务已退出")
	return nil
}

func shutdownTimeout(cfg *config.Config) time.Duration {
	if cfg.Server.ShutdownTimeout <= 0 {
		return 5 * time.Second
	}
	return cfg.Server.ShutdownTimeout
}

func printWelcomeMessage(cfg *config.Config) {
	fmt.Println()
	fmt.Println(" ┌───────────────────────────────────────────────────────┐")
	fmt.Printf(" │   🚀  %s\n", consts.AppName)
	fmt.Println(" ├───────────────────────────────────────────────────────┤")
	fmt.Printf(" │   📦  版本     : %s\n", consts.Version)
	fmt.Printf(" │   🗄️   数据库   : %s\n", cfg.Database.Type)
	fmt.Printf(" │   🪣  存储     : %s\n", cfg.Storage.Driver)
	fmt.Printf(" │   🔥  服务端口 : %s\n", cfg.Server.Port)
	fmt.Println(" └───────────────────────────────────────────────────────┘")
	fmt.Println()
}

// checkSecurePath 本地存储目录必须位于工作目录下的安全子目录，避免静态服务暴露源码或配置
func checkSecurePath(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("路径解析失败: %w", err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("无法获取当前工作目录: %w", err)
	}

	if absPath == cwd {
		return fmt.Errorf("安全配置错误: 静态资源目录 '%s' 不能设置为项目根目录", path)
	}

	rel, err := filepath.Rel(cwd, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		// 工作目录之外的绝对路径不做限制
		return nil
	}

	allowedDirs := []string{"uploads", "public", "assets", "static", "tmp"}
	firstComponent := strings.Split(filepath.ToSlash(rel), "/")[0]
	for _, allowed := range allowedDirs {
		if strings.EqualFold(firstComponent, allowed) {
			return nil
		}
	}
	return fmt.Errorf("安全配置错误: 静态资源目录 '%s' 必须位于安全子目录中 (如 %v)", path, allowedDirs)
}
