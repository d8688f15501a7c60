package service

import (
	"context"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/metrics"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"

	"golang.org/x/sync/errgroup"
)

type DashboardService struct {
	users  UserStore
	videos VideoStore
	likes  LikeStore
	subs   SubscriptionStore
	stats  StatsCache
}

func NewDashboardService(users UserStore, videos VideoStore, likes LikeStore, subs SubscriptionStore, stats StatsCache) *DashboardService {
	return &DashboardService{users: users, videos: videos, likes: likes, subs: subs, stats: stats}
}

// GetStats 频道统计：公开视频数、全部视频的总播放量、订阅数、全部视频收到的点赞数。
// 没有视频时全部为 0。
func (s *DashboardService) GetStats(ctx context.Context, actorID string) (*dto.ChannelStats, error) {
	if cached, ok := s.stats.Get(ctx, actorID); ok {
		metrics.RecordStatsCache(true)
		return cached, nil
	}
	metrics.RecordStatsCache(false)

	user, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		return nil, notFound(err, ErrUserNotFound)
	}

	var (
		subscribers int64
		videos      []model.Video
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		subscribers, err = s.subs.CountByChannel(gctx, actorID)
		return err
	})
	g.Go(func() error {
		var err error
		videos, err = s.videos.ListByOwner(gctx, actorID, false, repository.VideoOrder{})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &dto.ChannelStats{
		Username:         user.Username,
		Avatar:           user.Avatar,
		TotalSubscribers: subscribers,
	}

	ids := make([]string, 0, len(videos))
	for _, v := range videos {
		ids = append(ids, v.ID)
		stats.TotalViews += v.Views
		if v.IsPublished {
			stats.TotalVideos++
		}
	}

	if stats.TotalLikes, err = s.likes.CountByTargets(ctx, model.LikeKindVideo, ids); err != nil {
		return nil, err
	}

	s.stats.Set(ctx, actorID, stats)
	return stats, nil
}

// GetVideos 创作者自己的全部视频（含未公开），最新在前
func (s *DashboardService) GetVideos(ctx context.Context, actorID string) (*dto.DashboardVideoList, error) {
	videos, err := s.videos.ListByOwner(ctx, actorID, false, repository.VideoOrder{Column: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	list := &dto.DashboardVideoList{Videos: make([]dto.DashboardVideo, 0, len(videos)), Count: len(videos)}
	for _, v := range videos {
		list.Videos = append(list.Videos, dto.DashboardVideo{
			ID:          v.ID,
			Title:       v.Title,
			VideoFile:   v.VideoFile,
			Thumbnail:   v.Thumbnail,
			Duration:    v.Duration,
			Views:       v.Views,
			IsPublished: v.IsPublished,
			CreatedAt:   v.CreatedAt,
		})
	}
	return list, nil
}
