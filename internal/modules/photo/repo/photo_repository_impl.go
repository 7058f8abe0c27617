package repo

import (
	"context"

	"github.com/jackdo69/photo-sharing-server/internal/model"
	"github.com/jackdo69/photo-sharing-server/internal/platform/uow"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const newestFirst = "photos.created_at DESC, photos.id DESC"

type PhotoRepository struct {
	db *gorm.DB
}

func (r *PhotoRepository) WithTx(tx uow.Tx) PhotoStore {
	return &PhotoRepository{db: tx.DB()}
}

func (r *PhotoRepository) Create(ctx context.Context, photo *model.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *PhotoRepository) FindByID(ctx context.Context, id string) (*model.Photo, error) {
	var photo model.Photo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) UpdateDetails(ctx context.Context, id, name, description string) error {
	tx := r.db.WithContext(ctx).Model(&model.Photo{}).Where("id = ?", id).
		Updates(map[string]any{"name": name, "description": description})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete 删除图片及其点赞记录，调用方负责放在同一事务内
func (r *PhotoRepository) Delete(ctx context.Context, id string) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("photo_id = ?", id).Delete(&model.PhotoLike{}).Error; err != nil {
		return err
	}
	tx := db.Where("id = ?", id).Delete(&model.Photo{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddLike 写入点赞关系，已存在时不报错，返回是否为新插入
func (r *PhotoRepository) AddLike(ctx context.Context, userID, photoID string) (bool, error) {
	like := model.PhotoLike{UserID: userID, PhotoID: photoID}
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&like)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *PhotoRepository) RemoveLike(ctx context.Context, userID, photoID string) (bool, error) {
	tx := r.db.WithContext(ctx).Where("user_id = ? AND photo_id = ?", userID, photoID).Delete(&model.PhotoLike{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (r *PhotoRepository) AdjustLikeCount(ctx context.Context, photoID string, delta int64) error {
	return adjustCounter(r.db.WithContext(ctx).Model(&model.Photo{}), photoID, "like_count", delta)
}

func adjustCounter(db *gorm.DB, id, column string, delta int64) error {
	tx := db.Where("id = ?", id).UpdateColumn(column, gorm.Expr(column+" + ?", delta))
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *PhotoRepository) List(ctx context.Context) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.db.WithContext(ctx).Order(newestFirst).Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) ListByCreator(ctx context.Context, userID string) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.db.WithContext(ctx).Where("creator_id = ?", userID).Order(newestFirst).Find(&photos).Error
	return photos, err
}

func (r *PhotoRepository) ListLikedBy(ctx context.Context, userID string) ([]model.Photo, error) {
	var photos []model.Photo
	err := r.db.WithContext(ctx).
		Joins("JOIN photo_likes ON photo_likes.photo_id = photos.id").
		Where("photo_likes.user_id = ?", userID).
		Order(newestFirst).
		Find(&photos).Error
	return photos, err
}

// LikerIDs 批量查询每张图片的点赞用户
func (r *PhotoRepository) LikerIDs(ctx context.Context, photoIDs []string) (map[string][]string, error) {
	result := make(map[string][]string, len(photoIDs))
	if len(photoIDs) == 0 {
		return result, nil
	}

	var likes []model.PhotoLike
	if err := r.db.WithContext(ctx).Where("photo_id IN ?", photoIDs).
		Order("created_at ASC").Find(&likes).Error; err != nil {
		return nil, err
	}
	for _, l := range likes {
		result[l.PhotoID] = append(result[l.PhotoID], l.UserID)
	}
	return result, nil
}

func (r *PhotoRepository) ListIDsByCreator(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.Photo{}).
		Where("creator_id = ?", userID).Order(newestFirst).Pluck("id", &ids).Error
	return ids, err
}

func (r *PhotoRepository) ListLikedIDsByUser(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&model.PhotoLike{}).
		Where("user_id = ?", userID).Order("created_at ASC").Pluck("photo_id", &ids).Error
	return ids, err
}
