package repository

import (
	"context"

	"vidtube-go/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type TweetRepository struct {
	db *gorm.DB
}

func NewTweetRepository(db *gorm.DB) *TweetRepository {
	return &TweetRepository{db: db}
}

func (r *TweetRepository) Create(ctx context.Context, tweet *model.Tweet) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(tweet).Error, "create tweet")
}

func (r *TweetRepository) GetByID(ctx context.Context, id string) (*model.Tweet, error) {
	var tweet model.Tweet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&tweet).Error; err != nil {
		return nil, errors.Wrapf(err, "get tweet %s", id)
	}
	return &tweet, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id, content string) (*model.Tweet, error) {
	result := r.db.WithContext(ctx).Model(&model.Tweet{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "update tweet %s", id)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *TweetRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Tweet{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "delete tweet %s", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByOwner 用户动态，最新的在前
func (r *TweetRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Tweet, error) {
	var tweets []model.Tweet
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("created_at DESC, id DESC").Find(&tweets).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list tweets of %s", ownerID)
	}
	return tweets, nil
}
