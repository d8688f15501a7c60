package service

import (
	"context"
	"time"

	"vidtube-go/internal/api/dto"
	infraES "vidtube-go/internal/infra/elasticsearch"
	infraKafka "vidtube-go/internal/infra/kafka"
	"vidtube-go/internal/media"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"
)

// 以下接口由 internal/repository 中的 gorm 实现满足。
// 查询不到时返回 gorm.ErrRecordNotFound，唯一索引冲突时返回 gorm.ErrDuplicatedKey。

type UserStore interface {
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	Create(ctx context.Context, user *model.User) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*model.User, error)
}

type VideoStore interface {
	GetByID(ctx context.Context, id string) (*model.Video, error)
	GetByIDs(ctx context.Context, ids []string) ([]model.Video, error)
	Create(ctx context.Context, video *model.Video) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Video, error)
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string, publishedOnly bool, order repository.VideoOrder) ([]model.Video, error)
	ListPublished(ctx context.Context, f repository.VideoFilter) ([]model.Video, int64, error)
}

type CommentStore interface {
	GetByID(ctx context.Context, id string) (*model.Comment, error)
	Create(ctx context.Context, comment *model.Comment) error
	UpdateContent(ctx context.Context, id, content string) (*model.Comment, error)
	Delete(ctx context.Context, id string) error
	ListByVideo(ctx context.Context, videoID string, offset, limit int) ([]model.Comment, int64, error)
}

type TweetStore interface {
	GetByID(ctx context.Context, id string) (*model.Tweet, error)
	Create(ctx context.Context, tweet *model.Tweet) error
	UpdateContent(ctx context.Context, id, content string) (*model.Tweet, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Tweet, error)
}

type LikeStore interface {
	Find(ctx context.Context, likedBy string, target model.LikeTarget) (*model.Like, error)
	Create(ctx context.Context, like *model.Like) error
	Delete(ctx context.Context, id string) (bool, error)
	ListByOwner(ctx context.Context, likedBy string, kind model.LikeKind) ([]model.Like, error)
	CountByTargets(ctx context.Context, kind model.LikeKind, targetIDs []string) (int64, error)
}

type SubscriptionStore interface {
	Find(ctx context.Context, subscriberID, channelID string) (*model.Subscription, error)
	Create(ctx context.Context, sub *model.Subscription) error
	Delete(ctx context.Context, id string) (bool, error)
	CountByChannel(ctx context.Context, channelID string) (int64, error)
	ListByChannel(ctx context.Context, channelID string) ([]model.Subscription, error)
	ListBySubscriber(ctx context.Context, subscriberID string) ([]model.Subscription, error)
}

type PlaylistStore interface {
	GetByID(ctx context.Context, id string) (*model.Playlist, error)
	Create(ctx context.Context, playlist *model.Playlist) error
	Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Playlist, error)
	Delete(ctx context.Context, id string) error
	ListByOwner(ctx context.Context, ownerID string) ([]model.Playlist, error)
	AddEntry(ctx context.Context, entry *model.PlaylistEntry) error
	RemoveEntries(ctx context.Context, playlistID, videoID string) (int64, error)
}

// MediaHost 媒体托管服务
type MediaHost interface {
	Upload(ctx context.Context, localPath string) (*media.Asset, error)
	Delete(ctx context.Context, publicID string) error
}

// DurationProber 读取本地视频时长
type DurationProber interface {
	Probe(ctx context.Context, localPath string) (media.Duration, error)
}

// VideoEventPublisher 视频变更事件
type VideoEventPublisher interface {
	PublishVideoEvent(ctx context.Context, ev *infraKafka.VideoEvent) error
}

// StatsCache 频道统计缓存
type StatsCache interface {
	Get(ctx context.Context, channelID string) (*dto.ChannelStats, bool)
	Set(ctx context.Context, channelID string, stats *dto.ChannelStats)
	Invalidate(ctx context.Context, channelIDs ...string)
}

// VideoSearcher 全文搜索，返回命中的视频 ID 与总数
type VideoSearcher interface {
	SearchVideos(ctx context.Context, q string, from, size int) ([]string, int64, error)
}

// VideoIndexer 批量写入搜索索引
type VideoIndexer interface {
	BulkIndexVideos(ctx context.Context, docs []infraES.VideoDoc) (success, failed int, err error)
}

// TokenIssuer 登录成功后签发访问令牌
type TokenIssuer interface {
	Generate(userID string) (string, error)
	TTL() time.Duration
}

// NopStatsCache 不缓存
type NopStatsCache struct{}

func (NopStatsCache) Get(context.Context, string) (*dto.ChannelStats, bool) { return nil, false }
func (NopStatsCache) Set(context.Context, string, *dto.ChannelStats)        {}
func (NopStatsCache) Invalidate(context.Context, ...string)                 {}

// NopEventPublisher 丢弃事件
type NopEventPublisher struct{}

func (NopEventPublisher) PublishVideoEvent(context.Context, *infraKafka.VideoEvent) error {
	return nil
}
