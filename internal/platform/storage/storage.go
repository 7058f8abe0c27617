// Package storage 提供图片对象存储网关：本地文件系统或 S3 兼容存储（GCS / MinIO / AWS）。
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jackdo69/photo-sharing-server/internal/config"

	"github.com/google/uuid"
)

var (
	// ErrUploadFailed 上传失败（流读取或写入错误），不重试
	ErrUploadFailed = errors.New("upload failed")
	// ErrObjectNotFound 对象不存在
	ErrObjectNotFound = errors.New("object not found")
	// ErrForeignURL URL 不属于当前存储
	ErrForeignURL = errors.New("url does not belong to this storage")
)

// ObjectInfo 描述一个已存储对象
type ObjectInfo struct {
	Key         string
	Size        int64
	ContentType string
}

// ObjectStorage 图片对象存储网关
type ObjectStorage interface {
	// Upload 以单次请求写入 payload，返回可公开访问的 URL
	Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error)
	// Open 根据 Upload 返回的 URL 打开对象
	Open(ctx context.Context, url string) (io.ReadCloser, ObjectInfo, error)
	// Delete 删除 URL 对应的对象，对象不存在时返回 nil
	Delete(ctx context.Context, url string) error
}

// New 按配置选择存储驱动
func New(cfg config.StorageConfig) (ObjectStorage, error) {
	switch cfg.Driver {
	case "local", "":
		return NewLocal(cfg.Local.Path, cfg.Local.URLPrefix), nil
	case "s3":
		return NewS3(cfg.S3)
	default:
		return nil, fmt.Errorf("不支持的存储驱动: %s", cfg.Driver)
	}
}

// SanitizeObjectName 去掉路径部分，[A-Za-z0-9._-] 以外的字符替换为下划线，
// 保证拼接出的 URL 无需转义即可公开访问
func SanitizeObjectName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndex(name, "/"); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSpace(name)
	name = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '_', r == '-':
			return r
		default:
			return '_'
		}
	}, name)
	name = strings.TrimLeft(name, ".")
	if name == "" {
		return "image"
	}
	return name
}

// newObjectKey 生成 "<uuid>/<sanitized name>"，同名上传互不覆盖
func newObjectKey(name string) string {
	return uuid.NewString() + "/" + SanitizeObjectName(name)
}

func uploadFailed(err error) error {
	return fmt.Errorf("%w: %v", ErrUploadFailed, err)
}
