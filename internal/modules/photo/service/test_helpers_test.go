package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/jackdo69/photo-sharing-server/internal/model"
	"github.com/jackdo69/photo-sharing-server/internal/modules/photo/repo"
	userrepo "github.com/jackdo69/photo-sharing-server/internal/modules/user/repo"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/platform/uow"
	"github.com/jackdo69/photo-sharing-server/internal/testutils"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var errInjected = errors.New("injected failure")

type testEnv struct {
	svc     *Service
	db      *gorm.DB
	storage *testutils.MemoryStorage
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return setupTestEnvWithStore(t, nil)
}

// setupTestEnvWithStore 允许用 wrap 包装图片仓储以注入故障
func setupTestEnvWithStore(t *testing.T, wrap func(repo.PhotoStore) repo.PhotoStore) *testEnv {
	t.Helper()
	return setupTestEnvWithStores(t, wrap, nil)
}

func setupTestEnvWithStores(
	t *testing.T,
	wrapPhotos func(repo.PhotoStore) repo.PhotoStore,
	wrapUsers func(userrepo.UserStore) userrepo.UserStore,
) *testEnv {
	t.Helper()

	gdb := testutils.SetupDB(t)
	cfg := testutils.TestConfig(t.TempDir())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	objectStorage := testutils.NewMemoryStorage()

	store := repo.NewPhotoRepository(gdb)
	if wrapPhotos != nil {
		store = wrapPhotos(store)
	}
	users := userrepo.NewUserRepository(gdb)
	if wrapUsers != nil {
		users = wrapUsers(users)
	}
	svc := New(
		platformservice.NewAppService(cfg, logger),
		store,
		users,
		uow.New(gdb),
		objectStorage,
	)
	return &testEnv{svc: svc, db: gdb, storage: objectStorage}
}

func (e *testEnv) seedUser(t *testing.T, name, email string) *model.User {
	t.Helper()
	u := &model.User{Name: name, Introduction: "hi", Email: email, Password: "hash", Image: "img"}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

// seedPhoto 写入图片与对象，并同步用户计数
func (e *testEnv) seedPhoto(t *testing.T, name string, creator *model.User) *model.Photo {
	t.Helper()
	p := &model.Photo{Name: name, Description: "a nice photo", Image: "mem://photos/seed/" + name + ".png", CreatorID: creator.ID}
	require.NoError(t, e.db.Create(p).Error)
	require.NoError(t, e.db.Model(&model.User{}).Where("id = ?", creator.ID).
		UpdateColumn("photo_count", gorm.Expr("photo_count + 1")).Error)
	e.storage.Put(p.Image, testutils.MinimalPNG(), "image/png")
	return p
}

func (e *testEnv) photoCount(t *testing.T, userID string) int64 {
	t.Helper()
	var u model.User
	require.NoError(t, e.db.First(&u, "id = ?", userID).Error)
	return u.PhotoCount
}

func (e *testEnv) countRows(t *testing.T, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, e.db.Model(m).Count(&n).Error)
	return n
}

// failingStore 在指定步骤返回错误，WithTx 后仍保持包装
type failingStore struct {
	repo.PhotoStore
	failLikeCount bool
}

func (f *failingStore) WithTx(tx uow.Tx) repo.PhotoStore {
	return &failingStore{PhotoStore: f.PhotoStore.WithTx(tx), failLikeCount: f.failLikeCount}
}

func (f *failingStore) AdjustLikeCount(ctx context.Context, photoID string, delta int64) error {
	if f.failLikeCount {
		return errInjected
	}
	return f.PhotoStore.AdjustLikeCount(ctx, photoID, delta)
}

// failingUserStore 使用户计数更新失败
type failingUserStore struct {
	userrepo.UserStore
	calls *int
}

func (f *failingUserStore) WithTx(tx uow.Tx) userrepo.UserStore {
	return &failingUserStore{UserStore: f.UserStore.WithTx(tx), calls: f.calls}
}

func (f *failingUserStore) AdjustPhotoCount(ctx context.Context, userID string, delta int64) error {
	*f.calls++
	return errInjected
}

func failUserCount(calls *int) func(userrepo.UserStore) userrepo.UserStore {
	return func(s userrepo.UserStore) userrepo.UserStore {
		return &failingUserStore{UserStore: s, calls: calls}
	}
}
