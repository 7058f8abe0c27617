package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jackdo69/photo-sharing-server/internal/utils"
)

// LocalStorage 将对象写入本地目录，并通过静态路由以 URLPrefix 对外暴露
type LocalStorage struct {
	root      string
	urlPrefix string
}

func NewLocal(root, urlPrefix string) *LocalStorage {
	if root == "" {
		root = "uploads/images"
	}
	if urlPrefix == "" {
		urlPrefix = "/uploads/images/"
	}
	if !strings.HasSuffix(urlPrefix, "/") {
		urlPrefix += "/"
	}
	return &LocalStorage{root: root, urlPrefix: urlPrefix}
}

// Root 返回存储根目录
func (s *LocalStorage) Root() string {
	return s.root
}

// URLPrefix 返回对外访问前缀
func (s *LocalStorage) URLPrefix() string {
	return s.urlPrefix
}

func (s *LocalStorage) Upload(ctx context.Context, name string, r io.Reader, _ int64, _ string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", uploadFailed(err)
	}

	key := newObjectKey(name)
	dst, err := utils.SecureJoin(s.root, filepath.FromSlash(key))
	if err != nil {
		return "", uploadFailed(err)
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", uploadFailed(err)
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", uploadFailed(err)
	}
	if _, err := io.Copy(out, r); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return "", uploadFailed(err)
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return "", uploadFailed(err)
	}

	return s.urlPrefix + key, nil
}

func (s *LocalStorage) Open(ctx context.Context, url string) (io.ReadCloser, ObjectInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, ObjectInfo{}, err
	}
	key, full, err := s.resolve(url)
	if err != nil {
		return nil, ObjectInfo{}, err
	}

	f, err := os.Open(full)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ObjectInfo{}, ErrObjectNotFound
		}
		return nil, ObjectInfo{}, err
	}
	st, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, ObjectInfo{}, err
	}

	contentType := mime.TypeByExtension(path.Ext(key))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	return f, ObjectInfo{Key: key, Size: st.Size(), ContentType: contentType}, nil
}

func (s *LocalStorage) Delete(ctx context.Context, url string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, full, err := s.resolve(url)
	if err != nil {
		return err
	}
	if err := os.Remove(full); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	// 清理空的 uuid 目录，根目录本身保留
	rootAbs, err := filepath.Abs(s.root)
	if dir := filepath.Dir(full); err == nil && dir != rootAbs {
		_ = os.Remove(dir)
	}
	return nil
}

func (s *LocalStorage) resolve(url string) (string, string, error) {
	key, ok := strings.CutPrefix(url, s.urlPrefix)
	if !ok || key == "" {
		return "", "", ErrForeignURL
	}
	full, err := utils.SecureJoin(s.root, filepath.FromSlash(key))
	if err != nil {
		return "", "", err
	}
	return key, full, nil
}
