package repository

import (
	"context"

	"vidtube-go/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(comment).Error, "create comment")
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		return nil, errors.Wrapf(err, "get comment %s", id)
	}
	return &comment, nil
}

// UpdateContent 修改评论内容
func (r *CommentRepository) UpdateContent(ctx context.Context, id, content string) (*model.Comment, error) {
	result := r.db.WithContext(ctx).Model(&model.Comment{}).Where("id = ?", id).Update("content", content)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "update comment %s", id)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *CommentRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Comment{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "delete comment %s", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListByVideo 视频评论分页，最新的在前
func (r *CommentRepository) ListByVideo(ctx context.Context, videoID string, offset, limit int) ([]model.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count comments")
	}

	var comments []model.Comment
	err := query.Order("created_at DESC, id DESC").Offset(offset).Limit(limit).Find(&comments).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list comments")
	}
	return comments, total, nil
}
