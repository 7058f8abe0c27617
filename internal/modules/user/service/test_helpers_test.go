package service

import (
	"io"
	"log/slog"
	"testing"

	photorepo "github.com/jackdo69/photo-sharing-server/internal/modules/photo/repo"
	"github.com/jackdo69/photo-sharing-server/internal/modules/user/repo"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/testutils"
	"github.com/jackdo69/photo-sharing-server/internal/utils"

	"gorm.io/gorm"
)

type testEnv struct {
	svc     *Service
	db      *gorm.DB
	storage *testutils.MemoryStorage
	tokens  *utils.TokenManager
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb := testutils.SetupDB(t)
	cfg := testutils.TestConfig(t.TempDir())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	objectStorage := testutils.NewMemoryStorage()
	tokens := utils.NewTokenManager(cfg.JWT)

	svc := New(
		platformservice.NewAppService(cfg, logger),
		repo.NewUserRepository(gdb),
		photorepo.NewPhotoRepository(gdb),
		objectStorage,
		tokens,
	)
	return &testEnv{svc: svc, db: gdb, storage: objectStorage, tokens: tokens}
}
