package di

import (
	"github.com/jackdo69/photo-sharing-server/internal/config"
	"github.com/jackdo69/photo-sharing-server/internal/platform/storage"
	"github.com/jackdo69/photo-sharing-server/internal/utils"
)

func provideObjectStorage(cfg *config.Config) (storage.ObjectStorage, error) {
	return storage.New(cfg.Storage)
}

func provideTokenManager(cfg *config.Config) *utils.TokenManager {
	return utils.NewTokenManager(cfg.JWT)
}
