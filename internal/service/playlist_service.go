package service

import (
	"context"
	"strings"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PlaylistService struct {
	playlists PlaylistStore
	videos    VideoStore
	users     UserStore
}

func NewPlaylistService(playlists PlaylistStore, videos VideoStore, users UserStore) *PlaylistService {
	return &PlaylistService{playlists: playlists, videos: videos, users: users}
}

func trimPlaylistRequest(req *dto.PlaylistRequest) error {
	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	if req.Name == "" {
		return ErrNameRequired
	}
	if req.Description == "" {
		return ErrDescriptionRequired
	}
	return nil
}

// Create 创建空播放列表
func (s *PlaylistService) Create(ctx context.Context, actorID string, req *dto.PlaylistRequest) (*dto.PlaylistInfo, error) {
	if err := trimPlaylistRequest(req); err != nil {
		return nil, err
	}
	playlist := &model.Playlist{OwnerID: actorID, Name: req.Name, Description: req.Description}
	if err := s.playlists.Create(ctx, playlist); err != nil {
		return nil, err
	}
	info := toPlaylistInfo(playlist)
	return &info, nil
}

// GetByID 播放列表详情
func (s *PlaylistService) GetByID(ctx context.Context, playlistID string) (*dto.PlaylistInfo, error) {
	if !validID(playlistID) {
		return nil, ErrInvalidPlaylistID
	}
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, notFound(err, ErrPlaylistNotFound)
	}
	info := toPlaylistInfo(playlist)
	return &info, nil
}

// ListByUser 用户的全部播放列表，按作者分组
func (s *PlaylistService) ListByUser(ctx context.Context, userID string) ([]dto.PlaylistGroup, error) {
	if !validID(userID) {
		return nil, ErrInvalidUserID
	}
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}
	playlists, err := s.playlists.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}

	group := dto.PlaylistGroup{
		OwnerID:   user.ID,
		Owner:     toUserBrief(user),
		Playlists: make([]dto.PlaylistInfo, 0, len(playlists)),
	}
	for i := range playlists {
		group.Playlists = append(group.Playlists, toPlaylistInfo(&playlists[i]))
	}
	return []dto.PlaylistGroup{group}, nil
}

// ownedPlaylist 先判断存在，再判断归属
func (s *PlaylistService) ownedPlaylist(ctx context.Context, actorID, playlistID string) (*model.Playlist, error) {
	if !validID(playlistID) {
		return nil, ErrInvalidPlaylistID
	}
	playlist, err := s.playlists.GetByID(ctx, playlistID)
	if err != nil {
		return nil, notFound(err, ErrPlaylistNotFound)
	}
	if playlist.OwnerID != actorID {
		return nil, ErrPlaylistNoPermission
	}
	return playlist, nil
}

// Update 修改名称和描述
func (s *PlaylistService) Update(ctx context.Context, actorID, playlistID string, req *dto.PlaylistRequest) (*dto.PlaylistInfo, error) {
	if err := trimPlaylistRequest(req); err != nil {
		return nil, err
	}
	if _, err := s.ownedPlaylist(ctx, actorID, playlistID); err != nil {
		return nil, err
	}
	updated, err := s.playlists.Update(ctx, playlistID, map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
	})
	if err != nil {
		return nil, notFound(err, ErrPlaylistNotFound)
	}
	info := toPlaylistInfo(updated)
	return &info, nil
}

// Delete 删除播放列表及其条目
func (s *PlaylistService) Delete(ctx context.Context, actorID, playlistID string) error {
	if _, err := s.ownedPlaylist(ctx, actorID, playlistID); err != nil {
		return err
	}
	return notFound(s.playlists.Delete(ctx, playlistID), ErrPlaylistNotFound)
}

// AddVideo 把视频快照加入播放列表。列表中已有该视频时不做任何修改，
// 并发重复加入由唯一索引吸收。
func (s *PlaylistService) AddVideo(ctx context.Context, actorID, videoID, playlistID string) (*dto.PlaylistInfo, error) {
	if !validID(videoID) {
		return nil, ErrInvalidVideoID
	}
	playlist, err := s.ownedPlaylist(ctx, actorID, playlistID)
	if err != nil {
		return nil, err
	}

	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, notFound(err, ErrVideoNotFound)
	}
	if !video.IsPublished && video.OwnerID != actorID {
		return nil, ErrVideoNotFound
	}
	channel, err := s.users.GetByID(ctx, video.OwnerID)
	if err != nil {
		return nil, notFound(err, ErrVideoNotFound)
	}

	if !playlist.HasVideo(videoID) {
		err := s.playlists.AddEntry(ctx, &model.PlaylistEntry{
			PlaylistID: playlistID,
			VideoID:    video.ID,
			VideoFile:  video.VideoFile,
			Title:      video.Title,
			Channel:    channel.Username,
		})
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}

	return s.GetByID(ctx, playlistID)
}

// RemoveVideo 从播放列表移除视频的全部条目
func (s *PlaylistService) RemoveVideo(ctx context.Context, actorID, videoID, playlistID string) (*dto.PlaylistInfo, error) {
	if !validID(videoID) {
		return nil, ErrInvalidVideoID
	}
	playlist, err := s.ownedPlaylist(ctx, actorID, playlistID)
	if err != nil {
		return nil, err
	}
	if len(playlist.Videos) == 0 {
		return nil, ErrPlaylistEmpty
	}
	if !playlist.HasVideo(videoID) {
		return nil, ErrVideoNotInList
	}

	if _, err := s.playlists.RemoveEntries(ctx, playlistID, videoID); err != nil {
		return nil, err
	}
	return s.GetByID(ctx, playlistID)
}
