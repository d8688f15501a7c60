package router

import (
	"vidtube-go/internal/api/handler"
	"vidtube-go/internal/api/middleware"

	"github.com/gin-gonic/gin"
)

// Handlers 所有业务 handler
type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Channel      *handler.ChannelHandler
	Dashboard    *handler.DashboardHandler
	Video        *handler.VideoHandler
	Comment      *handler.CommentHandler
	Like         *handler.LikeHandler
	Tweet        *handler.TweetHandler
	Playlist     *handler.PlaylistHandler
	Subscription *handler.SubscriptionHandler
	Search       *handler.SearchHandler
}

// Setup 注册所有业务路由
func Setup(r *gin.Engine, h *Handlers, tokens middleware.TokenParser) {
	v1 := r.Group("/api/v1")
	authRequired := middleware.AuthRequired(tokens)

	// --- 用户模块 ---
	users := v1.Group("/users")
	{
		users.POST("/register", h.Auth.Register)
		users.POST("/login", h.Auth.Login)

		me := users.Group("/me", authRequired)
		{
			me.GET("", h.User.Me)
			me.PATCH("", h.User.UpdateProfile)
			me.PATCH("/avatar", h.User.UpdateAvatar)
			me.PATCH("/cover-image", h.User.UpdateCoverImage)
		}
	}

	// --- 频道与看板 ---
	v1.GET("/channels/:userId", h.Channel.GetProfile)

	dashboard := v1.Group("/dashboard", authRequired)
	{
		dashboard.GET("/stats", h.Dashboard.Stats)
		dashboard.GET("/videos", h.Dashboard.Videos)
	}

	// --- 视频模块 ---
	videos := v1.Group("/videos")
	{
		// 公开接口，登录用户可以看到自己未公开的视频
		videos.GET("", h.Video.GetFeed)
		videos.GET("/:videoId", middleware.OptionalAuth(tokens), h.Video.GetByID)

		videosAuth := videos.Group("", authRequired)
		{
			videosAuth.POST("", h.Video.Publish)
			videosAuth.PATCH("/:videoId", h.Video.Update)
			videosAuth.DELETE("/:videoId", h.Video.Delete)
			videosAuth.PATCH("/toggle/publish/:videoId", h.Video.TogglePublish)
		}
	}

	// --- 评论模块 ---
	comments := v1.Group("/comments")
	{
		comments.GET("/:videoId", h.Comment.List)

		commentsAuth := comments.Group("", authRequired)
		{
			commentsAuth.POST("/:videoId", h.Comment.Create)
			commentsAuth.PATCH("/c/:commentId", h.Comment.Update)
			commentsAuth.DELETE("/c/:commentId", h.Comment.Delete)
		}
	}

	// --- 点赞模块 ---
	likes := v1.Group("/likes", authRequired)
	{
		likes.POST("/toggle/v/:videoId", h.Like.ToggleVideoLike)
		likes.POST("/toggle/c/:commentId", h.Like.ToggleCommentLike)
		likes.POST("/toggle/t/:tweetId", h.Like.ToggleTweetLike)
		likes.GET("/videos", h.Like.LikedVideos)
	}

	// --- 动态模块 ---
	tweets := v1.Group("/tweets")
	{
		tweets.GET("/user/:userId", h.Tweet.ListByUser)

		tweetsAuth := tweets.Group("", authRequired)
		{
			tweetsAuth.POST("", h.Tweet.Create)
			tweetsAuth.PATCH("/:tweetId", h.Tweet.Update)
			tweetsAuth.DELETE("/:tweetId", h.Tweet.Delete)
		}
	}

	// --- 播放列表模块 ---
	playlists := v1.Group("/playlists")
	{
		playlists.GET("/user/:userId", h.Playlist.ListByUser)

		playlistsAuth := playlists.Group("", authRequired)
		{
			playlistsAuth.POST("", h.Playlist.Create)
			playlistsAuth.GET("/:playlistId", h.Playlist.GetByID)
			playlistsAuth.PATCH("/:playlistId", h.Playlist.Update)
			playlistsAuth.DELETE("/:playlistId", h.Playlist.Delete)
			playlistsAuth.PATCH("/add/:videoId/:playlistId", h.Playlist.AddVideo)
			playlistsAuth.PATCH("/remove/:videoId/:playlistId", h.Playlist.RemoveVideo)
		}
	}

	// --- 订阅模块 ---
	subscriptions := v1.Group("/subscriptions", authRequired)
	{
		subscriptions.POST("/c/:channelId", h.Subscription.Toggle)
		subscriptions.GET("/c/:channelId", h.Subscription.Subscriptions)
		subscriptions.GET("/u/:channelId", h.Subscription.Subscribers)
	}

	// --- 搜索模块 ---
	v1.GET("/search/videos", h.Search.SearchVideos)
}
