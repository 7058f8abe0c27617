//go:build wireinject
// +build wireinject

package di

import (
	"log/slog"

	"github.com/jackdo69/photo-sharing-server/internal/config"
	"github.com/jackdo69/photo-sharing-server/internal/modules"
	photorepo "github.com/jackdo69/photo-sharing-server/internal/modules/photo/repo"
	userrepo "github.com/jackdo69/photo-sharing-server/internal/modules/user/repo"
	platformservice "github.com/jackdo69/photo-sharing-server/internal/platform/service"
	"github.com/jackdo69/photo-sharing-server/internal/platform/uow"
	"github.com/jackdo69/photo-sharing-server/internal/router"

	"github.com/google/wire"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func InitializeApplication(cfg *config.Config, logger *slog.Logger, gormDB *gorm.DB, rdb *redis.Client) (*Application, error) {
	wire.Build(
		platformservice.NewAppService,
		userrepo.NewUserRepository,
		photorepo.NewPhotoRepository,
		uow.New,
		provideObjectStorage,
		provideTokenManager,
		modules.New,
		router.NewRouter,
		NewApplication,
	)
	return nil, nil
}
