package service

import (
	"context"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"
)

type LikeService struct {
	likes    LikeStore
	videos   VideoStore
	comments CommentStore
	tweets   TweetStore
	stats    StatsCache
}

func NewLikeService(likes LikeStore, videos VideoStore, comments CommentStore, tweets TweetStore, stats StatsCache) *LikeService {
	return &LikeService{likes: likes, videos: videos, comments: comments, tweets: tweets, stats: stats}
}

// ToggleVideoLike 点赞/取消点赞视频
func (s *LikeService) ToggleVideoLike(ctx context.Context, actorID, videoID string) (*dto.LikeToggleData, error) {
	if !validID(videoID) {
		return nil, ErrInvalidVideoID
	}
	video, err := s.videos.GetByID(ctx, videoID)
	if err != nil {
		return nil, notFound(err, ErrVideoNotFound)
	}

	data, err := s.toggle(ctx, "video_like", actorID, model.VideoTarget(videoID))
	if err != nil {
		return nil, err
	}
	s.stats.Invalidate(ctx, video.OwnerID)
	return data, nil
}

// ToggleCommentLike 点赞/取消点赞评论
func (s *LikeService) ToggleCommentLike(ctx context.Context, actorID, commentID string) (*dto.LikeToggleData, error) {
	if !validID(commentID) {
		return nil, ErrInvalidCommentID
	}
	if _, err := s.comments.GetByID(ctx, commentID); err != nil {
		return nil, notFound(err, ErrCommentNotFound)
	}
	return s.toggle(ctx, "comment_like", actorID, model.CommentTarget(commentID))
}

// ToggleTweetLike 点赞/取消点赞动态
func (s *LikeService) ToggleTweetLike(ctx context.Context, actorID, tweetID string) (*dto.LikeToggleData, error) {
	if !validID(tweetID) {
		return nil, ErrInvalidTweetID
	}
	if _, err := s.tweets.GetByID(ctx, tweetID); err != nil {
		return nil, notFound(err, ErrTweetNotFound)
	}
	return s.toggle(ctx, "tweet_like", actorID, model.TweetTarget(tweetID))
}

func (s *LikeService) toggle(ctx context.Context, kind, actorID string, target model.LikeTarget) (*dto.LikeToggleData, error) {
	out, err := toggleEdge(ctx, edgeOps[model.Like]{
		kind: kind,
		find: func(ctx context.Context) (*model.Like, error) {
			return s.likes.Find(ctx, actorID, target)
		},
		id: func(l *model.Like) string { return l.ID },
		create: func(ctx context.Context) (*model.Like, error) {
			like := &model.Like{LikedBy: actorID, Target: target}
			if err := s.likes.Create(ctx, like); err != nil {
				return nil, err
			}
			return like, nil
		},
		remove: s.likes.Delete,
	})
	if err != nil {
		return nil, err
	}

	data := &dto.LikeToggleData{State: out.State}
	if out.Edge != nil {
		data.Like = &dto.LikeInfo{
			ID:         out.Edge.ID,
			LikedBy:    out.Edge.LikedBy,
			TargetKind: string(out.Edge.Target.Kind),
			TargetID:   out.Edge.Target.ID,
			CreatedAt:  out.Edge.CreatedAt,
		}
	}
	return data, nil
}

// GetLikedVideos 当前用户点赞过的视频，按首次点赞顺序。
// likeCount 在当前用户自己的点赞集合内分组计算，因此通常为 1，并不是视频的总点赞数。
// 已被删除的视频不会出现在结果中。
func (s *LikeService) GetLikedVideos(ctx context.Context, actorID string) ([]dto.LikedVideo, error) {
	likes, err := s.likes.ListByOwner(ctx, actorID, model.LikeKindVideo)
	if err != nil {
		return nil, err
	}

	order := make([]string, 0, len(likes))
	counts := make(map[string]int64, len(likes))
	for _, l := range likes {
		if _, seen := counts[l.Target.ID]; !seen {
			order = append(order, l.Target.ID)
		}
		counts[l.Target.ID]++
	}

	videos, err := s.videos.GetByIDs(ctx, order)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*model.Video, len(videos))
	for i := range videos {
		byID[videos[i].ID] = &videos[i]
	}

	out := make([]dto.LikedVideo, 0, len(order))
	for _, id := range order {
		v, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, dto.LikedVideo{
			VideoID:     v.ID,
			LikeCount:   counts[id],
			Title:       v.Title,
			Description: v.Description,
			Thumbnail:   v.Thumbnail,
		})
	}
	return out, nil
}
