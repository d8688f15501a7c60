package repository

import (
	"context"
	"time"

	"vidtube-go/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PlaylistRepository struct {
	db *gorm.DB
}

func NewPlaylistRepository(db *gorm.DB) *PlaylistRepository {
	return &PlaylistRepository{db: db}
}

func preloadEntries(db *gorm.DB) *gorm.DB {
	return db.Preload("Videos", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("seq ASC")
	})
}

func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	return errors.Wrap(r.db.WithContext(ctx).Omit("Videos").Create(playlist).Error, "create playlist")
}

// GetByID 获取播放列表（含条目，按加入顺序）
func (r *PlaylistRepository) GetByID(ctx context.Context, id string) (*model.Playlist, error) {
	var playlist model.Playlist
	if err := preloadEntries(r.db.WithContext(ctx)).Where("id = ?", id).First(&playlist).Error; err != nil {
		return nil, errors.Wrapf(err, "get playlist %s", id)
	}
	return &playlist, nil
}

func (r *PlaylistRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Playlist, error) {
	result := r.db.WithContext(ctx).Model(&model.Playlist{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "update playlist %s", id)
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete 删除播放列表及其条目
func (r *PlaylistRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", id).Delete(&model.PlaylistEntry{}).Error; err != nil {
			return errors.Wrapf(err, "delete entries of playlist %s", id)
		}
		result := tx.Where("id = ?", id).Delete(&model.Playlist{})
		if result.Error != nil {
			return errors.Wrapf(result.Error, "delete playlist %s", id)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ListByOwner 用户的全部播放列表
func (r *PlaylistRepository) ListByOwner(ctx context.Context, ownerID string) ([]model.Playlist, error) {
	var playlists []model.Playlist
	err := preloadEntries(r.db.WithContext(ctx)).Where("owner_id = ?", ownerID).Order("created_at ASC").Find(&playlists).Error
	if err != nil {
		return nil, errors.Wrapf(err, "list playlists of %s", ownerID)
	}
	return playlists, nil
}

// AddEntry 追加条目，同一视频重复加入时返回 gorm.ErrDuplicatedKey
func (r *PlaylistRepository) AddEntry(ctx context.Context, entry *model.PlaylistEntry) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(entry).Error; err != nil {
			return errors.Wrap(err, "add playlist entry")
		}
		err := tx.Model(&model.Playlist{}).Where("id = ?", entry.PlaylistID).Update("updated_at", time.Now()).Error
		return errors.Wrap(err, "touch playlist")
	})
}

// RemoveEntries 移除列表中该视频的所有条目，返回删除的条数
func (r *PlaylistRepository) RemoveEntries(ctx context.Context, playlistID, videoID string) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("playlist_id = ? AND video_id = ?", playlistID, videoID).
		Delete(&model.PlaylistEntry{})
	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "remove playlist entries")
	}
	return result.RowsAffected, nil
}
