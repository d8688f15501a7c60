package repository

import (
	"context"

	"vidtube-go/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type LikeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *LikeRepository {
	return &LikeRepository{db: db}
}

// Find 查找 likedBy 对 target 的点赞，不存在时返回 gorm.ErrRecordNotFound
func (r *LikeRepository) Find(ctx context.Context, likedBy string, target model.LikeTarget) (*model.Like, error) {
	var like model.Like
	err := r.db.WithContext(ctx).
		Where("liked_by = ? AND target_kind = ? AND target_id = ?", likedBy, target.Kind, target.ID).
		First(&like).Error
	if err != nil {
		return nil, errors.Wrap(err, "find like")
	}
	return &like, nil
}

// Create 创建点赞，重复时返回 gorm.ErrDuplicatedKey
func (r *LikeRepository) Create(ctx context.Context, like *model.Like) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(like).Error, "create like")
}

// Delete 删除点赞，返回是否真的删除了记录
func (r *LikeRepository) Delete(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Like{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "delete like %s", id)
	}
	return result.RowsAffected > 0, nil
}

// ListByOwner 某用户对某类目标的全部点赞
func (r *LikeRepository) ListByOwner(ctx context.Context, likedBy string, kind model.LikeKind) ([]model.Like, error) {
	var likes []model.Like
	err := r.db.WithContext(ctx).
		Where("liked_by = ? AND target_kind = ?", likedBy, kind).
		Order("created_at ASC").
		Find(&likes).Error
	if err != nil {
		return nil, errors.Wrap(err, "list likes")
	}
	return likes, nil
}

// CountByTargets 统计指向 targetIDs 的点赞总数
func (r *LikeRepository) CountByTargets(ctx context.Context, kind model.LikeKind, targetIDs []string) (int64, error) {
	if len(targetIDs) == 0 {
		return 0, nil
	}
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Like{}).
		Where("target_kind = ? AND target_id IN ?", kind, targetIDs).
		Count(&count).Error
	if err != nil {
		return 0, errors.Wrap(err, "count likes")
	}
	return count, nil
}
