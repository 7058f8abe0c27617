package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMinio struct {
	objects map[string][]byte
	types   map[string]string
	putErr  error
}

func newFakeMinio() *fakeMinio {
	return &fakeMinio{objects: map[string][]byte{}, types: map[string]string{}}
}

func (f *fakeMinio) PutObject(_ context.Context, bucket, key string, r io.Reader, _ int64, opts minio.PutObjectOptions) (minio.UploadInfo, error) {
	if f.putErr != nil {
		return minio.UploadInfo{}, f.putErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return minio.UploadInfo{}, err
	}
	f.objects[bucket+"/"+key] = data
	f.types[bucket+"/"+key] = opts.ContentType
	return minio.UploadInfo{Bucket: bucket, Key: key, Size: int64(len(data))}, nil
}

func (f *fakeMinio) StatObject(_ context.Context, bucket, key string, _ minio.StatObjectOptions) (minio.ObjectInfo, error) {
	data, ok := f.objects[bucket+"/"+key]
	if !ok {
		return minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}
	}
	return minio.ObjectInfo{Key: key, Size: int64(len(data)), ContentType: f.types[bucket+"/"+key]}, nil
}

func (f *fakeMinio) RemoveObject(_ context.Context, bucket, key string, _ minio.RemoveObjectOptions) error {
	delete(f.objects, bucket+"/"+key)
	return nil
}

func (f *fakeMinio) get(_ context.Context, bucket, key string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.objects[bucket+"/"+key])), nil
}

// 测试内容：验证 S3 上传返回 <public_base_url>/<bucket>/<key> 形式的公开 URL。
func TestS3Storage_UploadURL(t *testing.T) {
	fake := newFakeMinio()
	s := NewS3WithClient(fake, fake.get, "photos", "https://storage.googleapis.com/")

	url, err := s.Upload(context.Background(), "sunset at sea.jpg", strings.NewReader("jpeg"), 4, "image/jpeg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://storage.googleapis.com/photos/"))
	assert.True(t, strings.HasSuffix(url, "/sunset_at_sea.jpg"))
	assert.Len(t, fake.objects, 1)
}

// 测试内容：验证 S3 读取与删除。
func TestS3Storage_OpenAndDelete(t *testing.T) {
	fake := newFakeMinio()
	s := NewS3WithClient(fake, fake.get, "photos", "")
	ctx := context.Background()

	url, err := s.Upload(ctx, "a.png", strings.NewReader("png!"), 4, "")
	require.NoError(t, err)

	rc, info, err := s.Open(ctx, url)
	require.NoError(t, err)
	data, _ := io.ReadAll(rc)
	_ = rc.Close()
	assert.Equal(t, "png!", string(data))
	assert.Equal(t, int64(4), info.Size)
	assert.Equal(t, defaultContentType, info.ContentType)

	require.NoError(t, s.Delete(ctx, url))
	_, _, err = s.Open(ctx, url)
	assert.ErrorIs(t, err, ErrObjectNotFound)
}

// 测试内容：验证 PutObject 失败时返回 ErrUploadFailed。
func TestS3Storage_UploadFailure(t *testing.T) {
	fake := newFakeMinio()
	fake.putErr = errors.New("network down")
	s := NewS3WithClient(fake, fake.get, "photos", "")

	_, err := s.Upload(context.Background(), "a.png", strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, ErrUploadFailed)
}

// 测试内容：验证非本桶 URL 被拒绝。
func TestS3Storage_ForeignURL(t *testing.T) {
	fake := newFakeMinio()
	s := NewS3WithClient(fake, fake.get, "photos", "")

	assert.ErrorIs(t, s.Delete(context.Background(), "https://storage.googleapis.com/other/x.png"), ErrForeignURL)
}
