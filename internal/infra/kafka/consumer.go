package kafka

import (
	"context"
	"time"

	"vidtube-go/internal/config"
	"vidtube-go/pkg/logger"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// VideoEventHandler 处理单条视频事件
type VideoEventHandler func(ctx context.Context, ev *VideoEvent) error

// DecodeVideoEvent 解析消息体
func DecodeVideoEvent(value []byte) (*VideoEvent, error) {
	var ev VideoEvent
	if err := json.Unmarshal(value, &ev); err != nil {
		return nil, err
	}
	return &ev, nil
}

// ConsumeVideoEvents 消费视频事件（阻塞，ctx 取消后返回）。
// 处理失败只记录日志，不阻塞后续消息。
func ConsumeVideoEvents(ctx context.Context, cfg *config.KafkaConfig, handler VideoEventHandler) {
	topic := cfg.Topic("video_events")
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:        cfg.Brokers,
		Topic:          topic,
		GroupID:        cfg.GroupID,
		MinBytes:       1,
		MaxBytes:       10e6,
		CommitInterval: time.Second,
		StartOffset:    kafka.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			logger.Error("Failed to close kafka consumer", zap.Error(err))
		}
		logger.Info("Kafka video event consumer stopped")
	}()

	logger.Info("Kafka video event consumer started",
		zap.String("topic", topic),
		zap.String("group", cfg.GroupID),
	)

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Error("Failed to read kafka message", zap.Error(err))
			time.Sleep(time.Second)
			continue
		}

		ev, err := DecodeVideoEvent(msg.Value)
		if err != nil {
			logger.Error("Failed to unmarshal video event",
				zap.Error(err),
				zap.ByteString("value", msg.Value),
			)
			continue
		}

		if err := handler(ctx, ev); err != nil {
			logger.Error("Failed to handle video event",
				zap.String("video_id", ev.VideoID),
				zap.String("type", string(ev.Type)),
				zap.Error(err),
			)
		}
	}
}
