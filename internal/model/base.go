package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base 所有实体共用的主键与时间戳，ID 在插入时生成 UUID
type Base struct {
	ID        string    `gorm:"primaryKey;size:36;comment:实体标识" json:"id"`
	CreatedAt time.Time `gorm:"autoCreateTime;index;comment:创建时间" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime;comment:更新时间" json:"updatedAt"`
}

// BeforeCreate 插入前补齐 ID
func (b *Base) BeforeCreate(_ *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// All 返回需要迁移的全部模型
func All() []interface{} {
	return []interface{}{
		&User{},
		&Video{},
		&Comment{},
		&Like{},
		&Tweet{},
		&Playlist{},
		&PlaylistEntry{},
		&Subscription{},
	}
}
