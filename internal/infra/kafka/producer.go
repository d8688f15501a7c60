package kafka

import (
	"context"
	"fmt"
	"time"

	"vidtube-go/internal/config"
	"vidtube-go/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// VideoEventType 视频变更类型
type VideoEventType string

const (
	VideoCreated        VideoEventType = "created"
	VideoUpdated        VideoEventType = "updated"
	VideoDeleted        VideoEventType = "deleted"
	VideoPublishToggled VideoEventType = "publish_toggled"
)

// VideoEvent 视频变更消息体，携带变更后的视频快照，供搜索索引同步使用
type VideoEvent struct {
	Type          VideoEventType `json:"type"`
	VideoID       string         `json:"videoId"`
	OwnerID       string         `json:"ownerId"`
	OwnerUsername string         `json:"ownerUsername"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	Thumbnail     string         `json:"thumbnail"`
	VideoFile     string         `json:"videoFile"`
	Duration      string         `json:"duration"`
	Views         int64          `json:"views"`
	IsPublished   bool           `json:"isPublished"`
	CreatedAt     time.Time      `json:"createdAt"`
	OccurredAt    time.Time      `json:"occurredAt"`
}

// Producer 视频事件生产者
type Producer struct {
	writer *kafka.Writer
	topic  string
}

// NewProducer 创建 Kafka 生产者，连接在首次写入时建立
func NewProducer(cfg *config.KafkaConfig) *Producer {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}

	logger.Info("Kafka producer initialized",
		zap.Strings("brokers", cfg.Brokers),
		zap.String("topic", cfg.Topic("video_events")),
	)

	return &Producer{writer: writer, topic: cfg.Topic("video_events")}
}

// PublishVideoEvent 发送视频事件，以视频 ID 作为 key 保证同一视频的事件有序
func (p *Producer) PublishVideoEvent(ctx context.Context, ev *VideoEvent) error {
	if ev.OccurredAt.IsZero() {
		ev.OccurredAt = time.Now()
	}

	payload, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("failed to marshal video event: %w", err)
	}

	msg := kafka.Message{
		Topic: p.topic,
		Key:   []byte(ev.VideoID),
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to send video event: %w", err)
	}

	logger.Debug("Video event sent",
		zap.String("video_id", ev.VideoID),
		zap.String("type", string(ev.Type)),
	)
	return nil
}

// Close 关闭生产者
func (p *Producer) Close() error {
	logger.Info("Kafka producer closed")
	return p.writer.Close()
}
