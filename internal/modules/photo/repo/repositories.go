package repo

import (
	"context"

	"github.com/jackdo69/photo-sharing-server/internal/model"
	"github.com/jackdo69/photo-sharing-server/internal/platform/uow"

	"gorm.io/gorm"
)

type PhotoStore interface {
	Create(ctx context.Context, photo *model.Photo) error
	FindByID(ctx context.Context, id string) (*model.Photo, error)
	UpdateDetails(ctx context.Context, id, name, description string) error
	Delete(ctx context.Context, id string) error
	AddLike(ctx context.Context, userID, photoID string) (bool, error)
	RemoveLike(ctx context.Context, userID, photoID string) (bool, error)
	AdjustLikeCount(ctx context.Context, photoID string, delta int64) error
	List(ctx context.Context) ([]model.Photo, error)
	ListByCreator(ctx context.Context, userID string) ([]model.Photo, error)
	ListLikedBy(ctx context.Context, userID string) ([]model.Photo, error)
	LikerIDs(ctx context.Context, photoIDs []string) (map[string][]string, error)
	ListIDsByCreator(ctx context.Context, userID string) ([]string, error)
	ListLikedIDsByUser(ctx context.Context, userID string) ([]string, error)
	WithTx(tx uow.Tx) PhotoStore
}

func NewPhotoRepository(db *gorm.DB) PhotoStore {
	return &PhotoRepository{db: db}
}
