package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription 订阅关系，(subscriber_id, channel_id) 唯一
type Subscription struct {
	ID           string    `gorm:"primaryKey;size:36" json:"id"`
	SubscriberID string    `gorm:"size:36;not null;uniqueIndex:uq_subscriber_channel,priority:1;comment:订阅者ID" json:"subscriberId"`
	ChannelID    string    `gorm:"size:36;not null;uniqueIndex:uq_subscriber_channel,priority:2;index:idx_subscriptions_channel_id;comment:频道ID" json:"channelId"`
	CreatedAt    time.Time `gorm:"autoCreateTime;comment:订阅时间" json:"createdAt"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

func (s *Subscription) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
