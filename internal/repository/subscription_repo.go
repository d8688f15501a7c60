package repository

import (
	"context"

	"vidtube-go/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

// Find 查找订阅关系，不存在时返回 gorm.ErrRecordNotFound
func (r *SubscriptionRepository) Find(ctx context.Context, subscriberID, channelID string) (*model.Subscription, error) {
	var sub model.Subscription
	err := r.db.WithContext(ctx).
		Where("subscriber_id = ? AND channel_id = ?", subscriberID, channelID).
		First(&sub).Error
	if err != nil {
		return nil, errors.Wrap(err, "find subscription")
	}
	return &sub, nil
}

// Create 创建订阅，重复时返回 gorm.ErrDuplicatedKey
func (r *SubscriptionRepository) Create(ctx context.Context, sub *model.Subscription) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(sub).Error, "create subscription")
}

// Delete 删除订阅，返回是否真的删除了记录
func (r *SubscriptionRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Subscription{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "delete subscription %s", id)
	}
	return result.RowsAffected > 0, nil
}

// CountByChannel 频道订阅数
func (r *SubscriptionRepository) CountByChannel(ctx context.Context, channelID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelID).Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count subscribers")
	}
	return count, nil
}

// ListByChannel 频道的订阅者，按订阅时间
func (r *SubscriptionRepository) ListByChannel(ctx context.Context, channelID string) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.WithContext(ctx).Where("channel_id = ?", channelID).Order("created_at ASC").Find(&subs).Error
	if err != nil {
		return nil, errors.Wrap(err, "list subscribers")
	}
	return subs, nil
}

// ListBySubscriber 用户订阅的频道，按订阅时间
func (r *SubscriptionRepository) ListBySubscriber(ctx context.Context, subscriberID string) ([]model.Subscription, error) {
	var subs []model.Subscription
	err := r.db.WithContext(ctx).Where("subscriber_id = ?", subscriberID).Order("created_at ASC").Find(&subs).Error
	if err != nil {
		return nil, errors.Wrap(err, "list subscriptions")
	}
	return subs, nil
}
