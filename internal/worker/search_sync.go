package worker

import (
	"context"

	infraES "vidtube-go/internal/infra/elasticsearch"
	infraKafka "vidtube-go/internal/infra/kafka"
	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
)

// VideoIndex 单个视频文档的写入与删除
type VideoIndex interface {
	IndexVideo(ctx context.Context, doc *infraES.VideoDoc) error
	DeleteVideo(ctx context.Context, videoID string) error
}

// SearchSync 把视频变更事件同步到搜索索引。
// 未公开的视频从索引中移除，搜索结果里永远看不到。
type SearchSync struct {
	index VideoIndex
}

func NewSearchSync(index VideoIndex) *SearchSync {
	return &SearchSync{index: index}
}

// HandleVideoEvent 满足 kafka.VideoEventHandler
func (s *SearchSync) HandleVideoEvent(ctx context.Context, ev *infraKafka.VideoEvent) error {
	if ev.Type == infraKafka.VideoDeleted || !ev.IsPublished {
		if err := s.index.DeleteVideo(ctx, ev.VideoID); err != nil {
			return err
		}
		logger.Debug("Video removed from search index",
			zap.String("video_id", ev.VideoID),
			zap.String("type", string(ev.Type)),
		)
		return nil
	}

	if err := s.index.IndexVideo(ctx, DocFromEvent(ev)); err != nil {
		return err
	}
	logger.Debug("Video indexed", zap.String("video_id", ev.VideoID), zap.String("type", string(ev.Type)))
	return nil
}

// DocFromEvent 事件快照转换为索引文档
func DocFromEvent(ev *infraKafka.VideoEvent) *infraES.VideoDoc {
	return &infraES.VideoDoc{
		ID:            ev.VideoID,
		OwnerID:       ev.OwnerID,
		OwnerUsername: ev.OwnerUsername,
		Title:         ev.Title,
		Description:   ev.Description,
		Thumbnail:     ev.Thumbnail,
		Duration:      ev.Duration,
		Views:         ev.Views,
		IsPublished:   ev.IsPublished,
		CreatedAt:     infraES.FormatTime(ev.CreatedAt),
	}
}
