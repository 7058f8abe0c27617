package testutils

import (
	"bytes"
	"context"
	"io"
	"strings"
	"sync"

	"github.com/jackdo69/photo-sharing-server/internal/platform/storage"

	"github.com/google/uuid"
)

const memoryURLPrefix = "mem://photos/"

// MemoryStorage is an in-memory storage.ObjectStorage with failure injection.
type MemoryStorage struct {
	mu        sync.Mutex
	objects   map[string][]byte
	types     map[string]string
	Uploads   int
	UploadErr error
	DeleteErr error
	OpenErr   error
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: map[string][]byte{}, types: map[string]string{}}
}

func (m *MemoryStorage) Upload(_ context.Context, name string, r io.Reader, _ int64, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Uploads++
	if m.UploadErr != nil {
		return "", m.UploadErr
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", storage.ErrUploadFailed
	}
	url := memoryURLPrefix + uuid.NewString() + "/" + storage.SanitizeObjectName(name)
	m.objects[url] = data
	m.types[url] = contentType
	return url, nil
}

func (m *MemoryStorage) Open(_ context.Context, url string) (io.ReadCloser, storage.ObjectInfo, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.OpenErr != nil {
		return nil, storage.ObjectInfo{}, m.OpenErr
	}
	data, ok := m.objects[url]
	if !ok {
		return nil, storage.ObjectInfo{}, storage.ErrObjectNotFound
	}
	info := storage.ObjectInfo{
		Key:         strings.TrimPrefix(url, memoryURLPrefix),
		Size:        int64(len(data)),
		ContentType: m.types[url],
	}
	return io.NopCloser(bytes.NewReader(data)), info, nil
}

func (m *MemoryStorage) Delete(_ context.Context, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.objects, url)
	delete(m.types, url)
	return nil
}

// Has reports whether an object is stored under url.
func (m *MemoryStorage) Has(url string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[url]
	return ok
}

// Len returns the number of stored objects.
func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// Put stores data directly under url.
func (m *MemoryStorage) Put(url string, data []byte, contentType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[url] = data
	m.types[url] = contentType
}

var _ storage.ObjectStorage = (*MemoryStorage)(nil)
