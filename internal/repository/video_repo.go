package repository

import (
	"context"
	"strings"

	"vidtube-go/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// 允许排序的列，防止把用户输入直接拼进 ORDER BY
var videoSortColumns = map[string]bool{
	"created_at":       true,
	"views":            true,
	"title":            true,
	"duration_seconds": true,
}

// VideoOrder 视频排序，Column 为空表示按插入顺序
type VideoOrder struct {
	Column string
	Desc   bool
}

func (o VideoOrder) clause() string {
	if !videoSortColumns[o.Column] {
		return "created_at ASC, id ASC"
	}
	if o.Desc {
		return o.Column + " DESC, id DESC"
	}
	return o.Column + " ASC, id ASC"
}

// VideoFilter 公开视频列表的筛选条件
type VideoFilter struct {
	OwnerID string
	Query   string
	Order   VideoOrder
	Offset  int
	Limit   int
}

type VideoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

// GetByID 根据 ID 获取视频
func (r *VideoRepository) GetByID(ctx context.Context, id string) (*model.Video, error) {
	var video model.Video
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&video).Error; err != nil {
		return nil, errors.Wrapf(err, "get video %s", id)
	}
	return &video, nil
}

// GetByIDs 批量获取视频
func (r *VideoRepository) GetByIDs(ctx context.Context, ids []string) ([]model.Video, error) {
	if len(ids) == 0 {
		return []model.Video{}, nil
	}
	var videos []model.Video
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&videos).Error; err != nil {
		return nil, errors.Wrap(err, "get videos by ids")
	}
	return videos, nil
}

// Create 创建视频记录
func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	return errors.Wrap(r.db.WithContext(ctx).Create(video).Error, "create video")
}

// Update 更新视频字段
func (r *VideoRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Video, error) {
	result := r.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "update video %s", id)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete 删除视频记录
func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Video{})
	if result.Error != nil {
		return errors.Wrapf(result.Error, "delete video %s", id)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// IncrementViews 播放数 +1
func (r *VideoRepository) IncrementViews(ctx context.Context, id string) error {
	err := r.db.WithContext(ctx).Model(&model.Video{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
	return errors.Wrapf(err, "increment views %s", id)
}

// ListByOwner 获取某用户的视频，publishedOnly 为 true 时只返回公开视频
func (r *VideoRepository) ListByOwner(ctx context.Context, ownerID string, publishedOnly bool, order VideoOrder) ([]model.Video, error) {
	query := r.db.WithContext(ctx).Where("owner_id = ?", ownerID)
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}

	var videos []model.Video
	if err := query.Order(order.clause()).Find(&videos).Error; err != nil {
		return nil, errors.Wrapf(err, "list videos of %s", ownerID)
	}
	return videos, nil
}

// ListPublished 公开视频列表（分页、筛选、排序），未公开的视频永远不会返回
func (r *VideoRepository) ListPublished(ctx context.Context, f VideoFilter) ([]model.Video, int64, error) {
	query := r.db.WithContext(ctx).Model(&model.Video{}).Where("is_published = ?", true)

	if f.OwnerID != "" {
		query = query.Where("owner_id = ?", f.OwnerID)
	}
	if f.Query != "" {
		like := "%" + strings.ToLower(f.Query) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count published videos")
	}

	var videos []model.Video
	err := query.Order(f.Order.clause()).Offset(f.Offset).Limit(f.Limit).Find(&videos).Error
	if err != nil {
		return nil, 0, errors.Wrap(err, "list published videos")
	}

	return videos, total, nil
}
