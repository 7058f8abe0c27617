package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"

	"github.com/jackdo69/photo-sharing-server/internal/config"
	"github.com/jackdo69/photo-sharing-server/internal/modules/common/httpx"
	"github.com/jackdo69/photo-sharing-server/internal/utils"

	"github.com/gin-gonic/gin"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTokens() *utils.TokenManager {
	return utils.NewTokenManager(config.JWTConfig{Secret: "test_secret", ExpirationHours: 1})
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(httpx.ErrorResponder(quietLogger()))
	r.Use(mw...)
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
