package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vidtube-go/internal/config"
	"vidtube-go/internal/infra/database"
	infraES "vidtube-go/internal/infra/elasticsearch"
	infraKafka "vidtube-go/internal/infra/kafka"
	"vidtube-go/internal/repository"
	"vidtube-go/internal/service"
	"vidtube-go/internal/worker"
	"vidtube-go/pkg/logger"

	"go.uber.org/zap"
)

// 搜索索引同步 worker：消费视频事件写入 Elasticsearch。
// 带 -reindex 启动时从数据库全量重建索引后退出。
func main() {
	configPath := flag.String("config", "configs/config.yaml", "config file path")
	reindex := flag.Bool("reindex", false, "rebuild the search index from the database and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	es, err := infraES.New(&cfg.Elasticsearch)
	if err != nil {
		logger.Fatal("Failed to init elasticsearch", zap.Error(err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))
		cancel()
	}()

	if err := es.EnsureVideosIndex(ctx); err != nil {
		logger.Fatal("Failed to init videos index", zap.Error(err))
	}

	if *reindex {
		runReindex(ctx, cfg, es)
		return
	}

	logger.Info("Search sync worker started",
		zap.String("topic", cfg.Kafka.Topic("video_events")),
		zap.String("group", cfg.Kafka.GroupID),
		zap.Strings("brokers", cfg.Kafka.Brokers),
	)
	infraKafka.ConsumeVideoEvents(ctx, &cfg.Kafka, worker.NewSearchSync(es).HandleVideoEvent)
	logger.Info("Search sync worker stopped")
}

func runReindex(ctx context.Context, cfg *config.Config, es *infraES.Client) {
	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close(db)

	search := service.NewSearchService(
		repository.NewVideoRepository(db),
		repository.NewUserRepository(db),
		es, es,
	)
	indexed, failed, err := search.Reindex(ctx)
	if err != nil {
		logger.Error("Reindex failed", zap.Int("indexed", indexed), zap.Int("failed", failed), zap.Error(err))
		return
	}
	logger.Info("Reindex completed", zap.Int("indexed", indexed), zap.Int("failed", failed))
}
