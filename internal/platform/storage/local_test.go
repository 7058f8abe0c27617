package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("stream broken") }

// 测试内容：验证本地上传、读取与删除的完整流程。
func TestLocalStorage_RoundTrip(t *testing.T) {
	root := t.TempDir()
	s := NewLocal(root, "/uploads/images")
	ctx := context.Background()

	url, err := s.Upload(ctx, "my photo.png", bytes.NewReader([]byte("payload")), 7, "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/uploads/images/"))
	assert.True(t, strings.HasSuffix(url, "/my_photo.png"))

	rc, info, err := s.Open(ctx, url)
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	assert.Equal(t, "payload", string(data))
	assert.Equal(t, int64(7), info.Size)
	assert.Equal(t, "image/png", info.ContentType)

	require.NoError(t, s.Delete(ctx, url))
	_, _, err = s.Open(ctx, url)
	assert.ErrorIs(t, err, ErrObjectNotFound)

	// 重复删除不报错
	assert.NoError(t, s.Delete(ctx, url))
}

// 测试内容：验证流读取失败时返回 ErrUploadFailed 且不残留文件。
func TestLocalStorage_UploadStreamError(t *testing.T) {
	root := t.TempDir()
	s := NewLocal(root, "")

	_, err := s.Upload(context.Background(), "a.png", failingReader{}, 1, "image/png")
	assert.ErrorIs(t, err, ErrUploadFailed)

	var files []string
	_ = filepath.Walk(root, func(p string, info os.FileInfo, _ error) error {
		if info != nil && !info.IsDir() {
			files = append(files, p)
		}
		return nil
	})
	assert.Empty(t, files)
}

// 测试内容：验证不属于本存储或越界的 URL 被拒绝。
func TestLocalStorage_RejectsForeignAndTraversal(t *testing.T) {
	s := NewLocal(t.TempDir(), "/uploads/images/")
	ctx := context.Background()

	_, _, err := s.Open(ctx, "https://elsewhere/x.png")
	assert.ErrorIs(t, err, ErrForeignURL)

	_, _, err = s.Open(ctx, "/uploads/images/../../secret")
	assert.Error(t, err)
}

// 测试内容：验证删除根目录下的对象后，空的存储根目录不会被删除。
func TestLocalStorage_DeleteKeepsRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "images")
	s := NewLocal(root, "/uploads/images/")
	ctx := context.Background()

	require.NoError(t, os.MkdirAll(root, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "flat.png"), []byte("x"), 0o644))

	require.NoError(t, s.Delete(ctx, "/uploads/images/flat.png"))
	_, err := os.Stat(filepath.Join(root, "flat.png"))
	assert.True(t, os.IsNotExist(err))
	st, err := os.Stat(root)
	require.NoError(t, err)
	assert.True(t, st.IsDir())

	// uuid 目录在删除后被清理
	url, err := s.Upload(ctx, "a.png", bytes.NewReader([]byte("x")), 1, "image/png")
	require.NoError(t, err)
	key := strings.TrimPrefix(url, "/uploads/images/")
	require.NoError(t, s.Delete(ctx, url))
	_, err = os.Stat(filepath.Join(root, filepath.Dir(filepath.FromSlash(key))))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(root)
	assert.NoError(t, err)
}
