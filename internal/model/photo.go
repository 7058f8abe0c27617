package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Photo struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
	UpdatedAt   time.Time `json:"updated_at"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description" gorm:"not null"`
	Image       string    `json:"image" gorm:"not null"`
	CreatorID   string    `json:"creator" gorm:"not null;index;size:36"`
	Creator     User      `json:"-" gorm:"foreignKey:CreatorID;references:ID;constraint:OnDelete:CASCADE;"`
	LikeCount   int64     `json:"like_count" gorm:"not null;default:0"`
}

func (p *Photo) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// PhotoLike 用户与图片之间的点赞关系，(user_id, photo_id) 唯一
type PhotoLike struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;size:36"`
	PhotoID   string    `json:"photo_id" gorm:"primaryKey;size:36;index"`
	CreatedAt time.Time `json:"created_at"`
	User      User      `json:"-" gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE;"`
	Photo     Photo     `json:"-" gorm:"foreignKey:PhotoID;references:ID;constraint:OnDelete:CASCADE;"`
}

// AllModels 返回需要自动迁移的全部模型
func AllModels() []any {
	return []any{&User{}, &Photo{}, &PhotoLike{}}
}
