package storage

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jackdo69/photo-sharing-server/internal/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultContentType = "application/octet-stream"

// MinioClient 是 S3 驱动用到的 minio 客户端子集，便于测试替换
type MinioClient interface {
	PutObject(ctx context.Context, bucketName, objectName string, reader io.Reader, objectSize int64, opts minio.PutObjectOptions) (minio.UploadInfo, error)
	StatObject(ctx context.Context, bucketName, objectName string, opts minio.StatObjectOptions) (minio.ObjectInfo, error)
	RemoveObject(ctx context.Context, bucketName, objectName string, opts minio.RemoveObjectOptions) error
}

// ObjectGetter 读取对象内容
type ObjectGetter func(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error)

// S3Storage 基于 minio-go 的 S3 兼容存储
type S3Storage struct {
	client  MinioClient
	get     ObjectGetter
	bucket  string
	baseURL string
}

// NewS3 根据配置创建 minio 客户端
func NewS3(cfg config.S3StorageConfig) (*S3Storage, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
		Region: cfg.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("创建 S3 客户端失败: %w", err)
	}

	get := func(ctx context.Context, bucketName, objectName string) (io.ReadCloser, error) {
		return client.GetObject(ctx, bucketName, objectName, minio.GetObjectOptions{})
	}
	return NewS3WithClient(client, get, cfg.Bucket, cfg.PublicBaseURL), nil
}

func NewS3WithClient(client MinioClient, get ObjectGetter, bucket, publicBaseURL string) *S3Storage {
	if publicBaseURL == "" {
		publicBaseURL = "https://storage.googleapis.com"
	}
	return &S3Storage{
		client:  client,
		get:     get,
		bucket:  bucket,
		baseURL: strings.TrimRight(publicBaseURL, "/") + "/" + bucket + "/",
	}
}

func (s *S3Storage) Upload(ctx context.Context, name string, r io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = defaultContentType
	}
	key := newObjectKey(name)
	_, err := s.client.PutObject(ctx, s.bucket, key, r, size, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", uploadFailed(err)
	}
	return s.baseURL + key, nil
}

func (s *S3Storage) Open(ctx context.Context, url string) (io.ReadCloser, ObjectInfo, error) {
	key, err := s.keyFromURL(url)
	if err != nil {
		return nil, ObjectInfo{}, err
	}

	st, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ObjectInfo{}, ErrObjectNotFound
		}
		return nil, ObjectInfo{}, err
	}

	rc, err := s.get(ctx, s.bucket, key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	contentType := st.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}
	return rc, ObjectInfo{Key: key, Size: st.Size, ContentType: contentType}, nil
}

func (s *S3Storage) Delete(ctx context.Context, url string) error {
	key, err := s.keyFromURL(url)
	if err != nil {
		return err
	}
	return s.client.RemoveObject(ctx, s.bucket, key, minio.RemoveObjectOptions{})
}

func (s *S3Storage) keyFromURL(url string) (string, error) {
	key, ok := strings.CutPrefix(url, s.baseURL)
	if !ok || key == "" {
		return "", ErrForeignURL
	}
	return key, nil
}
