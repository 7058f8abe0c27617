package di

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jackdo69/photo-sharing-server/internal/testutils"

	"github.com/gin-gonic/gin"
)

// 测试内容：验证依赖注入能组装出可用的路由。
func TestInitializeApplication(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testutils.TestConfig(t.TempDir())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	app, err := InitializeApplication(cfg, logger, testutils.SetupDB(t), nil)
	if err != nil {
		t.Fatalf("InitializeApplication: %v", err)
	}
	defer app.Router.Close()
	if app.Service.Config() != cfg {
		t.Fatalf("应使用传入的配置")
	}

	w := httptest.NewRecorder()
	app.Router.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/ping", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}

// 测试内容：验证未知存储驱动时返回错误。
func TestInitializeApplication_BadStorage(t *testing.T) {
	cfg := testutils.TestConfig(t.TempDir())
	cfg.Storage.Driver = "ftp"

	if _, err := InitializeApplication(cfg, nil, testutils.SetupDB(t), nil); err == nil {
		t.Fatalf("期望返回错误")
	}
}
