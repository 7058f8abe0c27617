package middleware

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func readAllHandler(c *gin.Context) {
	if _, err := io.ReadAll(c.Request.Body); err != nil {
		c.Status(http.StatusRequestEntityTooLarge)
		return
	}
	c.Status(http.StatusOK)
}

// 测试内容：验证超过限制的普通请求体读取失败。
func TestBodyLimit_RejectsLargeBody(t *testing.T) {
	r := newEngine(BodyLimit(1))
	r.POST("/x", readAllHandler)

	body := bytes.Repeat([]byte("a"), 1024*1024+1)
	if w := serve(r, httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader(body))); w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}
}

// 测试内容：验证豁免路由不受普通请求体限制。
func TestBodyLimit_ExemptRoute(t *testing.T) {
	r := newEngine(BodyLimit(1, "/upload"))
	r.POST("/upload", readAllHandler)

	body := bytes.Repeat([]byte("a"), 1024*1024+1)
	if w := serve(r, httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(body))); w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}

// 测试内容：验证上传接口按 Content-Length 直接拒绝超限请求。
func TestUploadBodyLimit_ContentLength(t *testing.T) {
	r := newEngine(UploadBodyLimit(1))
	r.POST("/upload", readAllHandler)

	body := bytes.Repeat([]byte("a"), 1024*1024+1)
	w := serve(r, httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader(body)))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}

	w = serve(r, httptest.NewRequest(http.MethodPost, "/upload", bytes.NewReader([]byte("small"))))
	if w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}

// 测试内容：验证未声明 Content-Length 的超限请求在绑定阶段返回 413 而非参数错误。
func TestAbortIfTooLarge_ChunkedBody(t *testing.T) {
	r := newEngine(UploadBodyLimit(1))
	r.POST("/x", func(c *gin.Context) {
		if _, err := io.ReadAll(c.Request.Body); err != nil {
			if AbortIfTooLarge(c, err) {
				return
			}
			c.Status(http.StatusUnprocessableEntity)
			return
		}
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/x", bytes.NewReader(bytes.Repeat([]byte("a"), 2*1024*1024)))
	req.ContentLength = -1
	w := serve(r, req)
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("期望 413，实际为 %d", w.Code)
	}
	if w.Body.String() != `{"message":"File is too large, the limit is 1MB."}` {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

// 测试内容：验证非超限错误不被处理。
func TestAbortIfTooLarge_OtherErrors(t *testing.T) {
	r := newEngine()
	r.GET("/x", func(c *gin.Context) {
		if AbortIfTooLarge(c, io.ErrUnexpectedEOF) {
			return
		}
		c.Status(http.StatusOK)
	})
	if w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil)); w.Code != http.StatusOK {
		t.Fatalf("期望 200，实际为 %d", w.Code)
	}
}
