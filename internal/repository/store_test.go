package repository_test

import (
	"context"
	"fmt"
	"testing"

	"vidtube-go/internal/infra/database"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openDB 返回一个已迁移的空库。默认是内存 SQLite，带 integration 标签时换成容器里的 PostgreSQL
var openDB = openSQLite

func openSQLite(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// 内存库只活在连接上，单连接同时避免 SQLite 的写锁冲突
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db, model.All()...))
	return db
}

type stores struct {
	users     *repository.UserRepository
	videos    *repository.VideoRepository
	comments  *repository.CommentRepository
	likes     *repository.LikeRepository
	tweets    *repository.TweetRepository
	subs      *repository.SubscriptionRepository
	playlists *repository.PlaylistRepository
}

func newStores(t *testing.T) *stores {
	db := openDB(t)
	return &stores{
		users:     repository.NewUserRepository(db),
		videos:    repository.NewVideoRepository(db),
		comments:  repository.NewCommentRepository(db),
		likes:     repository.NewLikeRepository(db),
		tweets:    repository.NewTweetRepository(db),
		subs:      repository.NewSubscriptionRepository(db),
		playlists: repository.NewPlaylistRepository(db),
	}
}

func (s *stores) addUser(t *testing.T, username string) *model.User {
	t.Helper()
	u := &model.User{Username: username, FullName: username, Password: "x"}
	require.NoError(t, s.users.Create(context.Background(), u))
	return u
}

// addVideo 未公开的视频先按公开写入再更新，is_published 带默认值，零值在 INSERT 时会被忽略
func (s *stores) addVideo(t *testing.T, ownerID, title string, published bool, seconds int64) *model.Video {
	t.Helper()
	ctx := context.Background()
	v := &model.Video{
		OwnerID:         ownerID,
		Title:           title,
		Description:     title + " description",
		VideoFile:       "http://media.test/vidtube/" + uuid.NewString(),
		Thumbnail:       "http://media.test/vidtube/" + uuid.NewString(),
		DurationSeconds: seconds,
		IsPublished:     true,
	}
	require.NoError(t, s.videos.Create(ctx, v))
	if !published {
		updated, err := s.videos.Update(ctx, v.ID, map[string]interface{}{"is_published": false})
		require.NoError(t, err)
		v = updated
	}
	return v
}
