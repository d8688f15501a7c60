package redis

import (
	"context"
	"errors"
	"time"

	"vidtube-go/internal/api/dto"
	"vidtube-go/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const statsKeyPrefix = "vidtube:channel_stats:"

func statsKey(channelID string) string {
	return statsKeyPrefix + channelID
}

// StatsCache 频道统计缓存。缓存故障只记录日志，调用方按未命中处理。
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) *StatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

// Get 读取缓存，第二个返回值表示是否命中
func (c *StatsCache) Get(ctx context.Context, channelID string) (*dto.ChannelStats, bool) {
	raw, err := c.client.Get(ctx, statsKey(channelID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn("Stats cache get failed", zap.String("channel_id", channelID), zap.Error(err))
		}
		return nil, false
	}

	var stats dto.ChannelStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		logger.Warn("Stats cache entry corrupted", zap.String("channel_id", channelID), zap.Error(err))
		return nil, false
	}
	return &stats, true
}

func (c *StatsCache) Set(ctx context.Context, channelID string, stats *dto.ChannelStats) {
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, statsKey(channelID), raw, c.ttl).Err(); err != nil {
		logger.Warn("Stats cache set failed", zap.String("channel_id", channelID), zap.Error(err))
	}
}

// Invalidate 清除一个或多个频道的统计缓存
func (c *StatsCache) Invalidate(ctx context.Context, channelIDs ...string) {
	if len(channelIDs) == 0 {
		return
	}
	keys := make([]string, 0, len(channelIDs))
	for _, id := range channelIDs {
		keys = append(keys, statsKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		logger.Warn("Stats cache invalidate failed", zap.Strings("channel_ids", channelIDs), zap.Error(err))
	}
}
