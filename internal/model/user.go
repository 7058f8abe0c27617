package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Name         string    `json:"name" gorm:"not null"`
	Introduction string    `json:"introduction" gorm:"not null"`
	Email        string    `json:"email" gorm:"not null;uniqueIndex;size:255"`
	Password     string    `json:"-" gorm:"not null"`
	Image        string    `json:"image" gorm:"not null"`
	PhotoCount   int64     `json:"photo_count" gorm:"not null;default:0"` // 名下图片数量
	Photos       []Photo   `json:"-" gorm:"foreignKey:CreatorID"`
}

// BeforeCreate 在插入前生成 UUID 主键
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
