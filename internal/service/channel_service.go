package service

import (
	"context"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"

	"golang.org/x/sync/errgroup"
)

type ChannelService struct {
	users     UserStore
	videos    VideoStore
	playlists PlaylistStore
	subs      SubscriptionStore
}

func NewChannelService(users UserStore, videos VideoStore, playlists PlaylistStore, subs SubscriptionStore) *ChannelService {
	return &ChannelService{users: users, videos: videos, playlists: playlists, subs: subs}
}

// channelVideoOrder popular 按播放量降序，latest 最新在前，oldest 最早在前，其余按插入顺序
func channelVideoOrder(filter string) repository.VideoOrder {
	switch filter {
	case "popular":
		return repository.VideoOrder{Column: "views", Desc: true}
	case "latest":
		return repository.VideoOrder{Column: "created_at", Desc: true}
	case "oldest":
		return repository.VideoOrder{Column: "created_at"}
	default:
		return repository.VideoOrder{}
	}
}

// GetProfile 频道主页：基本信息、订阅数、播放列表与公开视频。
// 格式不合法的 ID 不可能对应任何用户，直接按频道不存在处理。
func (s *ChannelService) GetProfile(ctx context.Context, userID, filter string) (*dto.ChannelProfile, error) {
	if !validID(userID) {
		return nil, ErrChannelNotFound
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, notFound(err, ErrChannelNotFound)
	}

	var (
		subscriberCount int64
		videos          []model.Video
		playlists       []model.Playlist
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subscriberCount, err = s.subs.CountByChannel(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		videos, err = s.videos.ListByOwner(gctx, userID, true, channelVideoOrder(filter))
		return err
	})
	g.Go(func() error {
		var err error
		playlists, err = s.playlists.ListByOwner(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	profile := &dto.ChannelProfile{
		ID:              user.ID,
		Username:        user.Username,
		FullName:        user.FullName,
		Avatar:          user.Avatar,
		CoverImage:      user.CoverImage,
		SubscriberCount: subscriberCount,
		Playlists:       make([]dto.PlaylistInfo, 0, len(playlists)),
		Videos:          make([]dto.ChannelVideo, 0, len(videos)),
	}
	for i := range playlists {
		profile.Playlists = append(profile.Playlists, toPlaylistInfo(&playlists[i]))
	}
	for _, v := range videos {
		profile.Videos = append(profile.Videos, dto.ChannelVideo{
			ID:        v.ID,
			Title:     v.Title,
			VideoFile: v.VideoFile,
			Thumbnail: v.Thumbnail,
			Views:     v.Views,
			CreatedAt: v.CreatedAt,
		})
	}
	return profile, nil
}
