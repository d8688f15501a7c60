package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vidtube-go/internal/api/handler"
	"vidtube-go/internal/api/middleware"
	"vidtube-go/internal/api/router"
	"vidtube-go/internal/config"
	"vidtube-go/internal/infra/database"
	infraES "vidtube-go/internal/infra/elasticsearch"
	infraKafka "vidtube-go/internal/infra/kafka"
	infraMinio "vidtube-go/internal/infra/minio"
	infraRedis "vidtube-go/internal/infra/redis"
	"vidtube-go/internal/media"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"
	"vidtube-go/internal/service"
	"vidtube-go/pkg/logger"
	"vidtube-go/pkg/utils"

	_ "vidtube-go/api/openapi"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title VidTube API
// @version 1.0
// @description 视频分享平台 API 服务

// @contact.name API Support

// @host 127.0.0.1:8000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description 输入格式: Bearer {token}

func main() {
	// 加载配置文件
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 初始化日志系统
	if err := logger.Init(cfg.Log.Level, cfg.Log.Format, cfg.Log.Output, cfg.Log.FilePath); err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 初始化数据库
	db, err := database.Open(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to init database", zap.Error(err))
	}
	defer database.Close(db)

	if cfg.Database.AutoMigrate {
		if err := database.AutoMigrate(db, model.All()...); err != nil {
			logger.Fatal("Failed to auto migrate", zap.Error(err))
		}
	}

	// Redis 只用于统计缓存，连不上时不缓存
	var stats service.StatsCache = service.NopStatsCache{}
	if rdb, err := infraRedis.NewClient(&cfg.Redis); err != nil {
		logger.Warn("Redis unavailable, channel stats will not be cached", zap.Error(err))
	} else {
		defer rdb.Close()
		stats = infraRedis.NewStatsCache(rdb, cfg.Redis.StatsTTLDuration())
	}

	// 初始化MinIO
	host, err := infraMinio.New(&cfg.MinIO)
	if err != nil {
		logger.Fatal("Failed to init minio", zap.Error(err))
	}

	// 视频事件，未配置 broker 时不发送
	var events service.VideoEventPublisher = service.NopEventPublisher{}
	if len(cfg.Kafka.Brokers) > 0 {
		producer := infraKafka.NewProducer(&cfg.Kafka)
		defer producer.Close()
		events = producer
	}

	// Elasticsearch 可选，失败则搜索降级到 DB。
	// searcher/indexer 必须保持无类型 nil，service 靠 nil 判断是否可用。
	var (
		searcher service.VideoSearcher
		indexer  service.VideoIndexer
	)
	if es, err := infraES.New(&cfg.Elasticsearch); err != nil {
		logger.Warn("Elasticsearch init failed, search will fallback to DB", zap.Error(err))
	} else if err := es.EnsureVideosIndex(context.Background()); err != nil {
		logger.Warn("Elasticsearch index init failed, search will fallback to DB", zap.Error(err))
	} else {
		searcher, indexer = es, es
	}

	tokens := utils.NewTokenManager(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.ExpireDuration())

	// 初始化依赖（Repository -> Service -> Handler）
	userRepo := repository.NewUserRepository(db)
	videoRepo := repository.NewVideoRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	tweetRepo := repository.NewTweetRepository(db)
	subscriptionRepo := repository.NewSubscriptionRepository(db)
	playlistRepo := repository.NewPlaylistRepository(db)

	authService := service.NewAuthService(userRepo, host, tokens)
	userService := service.NewUserService(userRepo, host)
	channelService := service.NewChannelService(userRepo, videoRepo, playlistRepo, subscriptionRepo)
	dashboardService := service.NewDashboardService(userRepo, videoRepo, likeRepo, subscriptionRepo, stats)
	videoService := service.NewVideoService(videoRepo, userRepo, host, media.NewDurationProber(), events, stats)
	commentService := service.NewCommentService(commentRepo, videoRepo, userRepo)
	likeService := service.NewLikeService(likeRepo, videoRepo, commentRepo, tweetRepo, stats)
	tweetService := service.NewTweetService(tweetRepo, userRepo)
	playlistService := service.NewPlaylistService(playlistRepo, videoRepo, userRepo)
	subscriptionService := service.NewSubscriptionService(subscriptionRepo, userRepo, stats)
	searchService := service.NewSearchService(videoRepo, userRepo, searcher, indexer)

	upload := handler.UploadOptions{
		TempDir:       cfg.Upload.TempDir,
		MaxVideoBytes: cfg.Upload.MaxVideoBytes(),
		MaxImageBytes: cfg.Upload.MaxImageBytes(),
	}
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(authService, upload),
		User:         handler.NewUserHandler(userService, upload),
		Channel:      handler.NewChannelHandler(channelService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Video:        handler.NewVideoHandler(videoService, upload),
		Comment:      handler.NewCommentHandler(commentService),
		Like:         handler.NewLikeHandler(likeService),
		Tweet:        handler.NewTweetHandler(tweetService),
		Playlist:     handler.NewPlaylistHandler(playlistService),
		Subscription: handler.NewSubscriptionHandler(subscriptionService),
		Search:       handler.NewSearchHandler(searchService),
	}

	// 设置Gin模式
	gin.SetMode(cfg.App.Mode)

	// 创建Gin路由器（不使用默认中间件）
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Metrics())
	r.Use(middleware.Timeout(cfg.App.RequestTimeoutDuration()))

	// 注册基础路由
	r.GET("/healthz", healthCheckHandler(cfg, db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 注册业务路由
	router.Setup(r, handlers, tokens)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting application",
		zap.String("name", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("mode", cfg.App.Mode),
		zap.String("addr", addr),
	)
	logger.Info("Configuration loaded",
		zap.String("database", fmt.Sprintf("%s@%s:%d/%s", cfg.Database.User, cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)),
		zap.String("redis", cfg.Redis.Addr()),
		zap.String("minio", cfg.MinIO.Endpoint),
		zap.Strings("kafka", cfg.Kafka.Brokers),
		zap.Bool("search_index", searcher != nil),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 监听系统信号，优雅退出
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("Received signal, shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}
	logger.Info("Server stopped")
}

// healthCheckHandler 健康检查接口，数据库不可用时返回 503
func healthCheckHandler(cfg *config.Config, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Debug("Health check requested", zap.String("ip", c.ClientIP()))

		status, code := "ok", http.StatusOK
		if err := database.Ping(c.Request.Context(), db); err != nil {
			logger.Warn("Health check database ping failed", zap.Error(err))
			status, code = "degraded", http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status":    status,
			"timestamp": time.Now().Format(time.RFC3339),
			"service":   cfg.App.Name,
			"version":   cfg.App.Version,
			"mode":      cfg.App.Mode,
		})
	}
}
