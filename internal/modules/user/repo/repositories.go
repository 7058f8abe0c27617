package repo

import (
	"context"

	"github.com/jackdo69/photo-sharing-server/internal/model"
	"github.com/jackdo69/photo-sharing-server/internal/platform/uow"

	"gorm.io/gorm"
)

type UserStore interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, user *model.User) error
	AdjustPhotoCount(ctx context.Context, userID string, delta int64) error
	WithTx(tx uow.Tx) UserStore
}

// PhotoStore 用户视图所需的图片查询
type PhotoStore interface {
	ListIDsByCreator(ctx context.Context, userID string) ([]string, error)
	ListLikedIDsByUser(ctx context.Context, userID string) ([]string, error)
}

func NewUserRepository(db *gorm.DB) UserStore {
	return &UserRepository{db: db}
}
