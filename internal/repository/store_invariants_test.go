package repository_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"vidtube-go/internal/api/dto"
	"vidtube-go/internal/model"
	"vidtube-go/internal/repository"
	"vidtube-go/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestLikeRepository_DuplicateIsTranslated(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	alice := s.addUser(t, "alice")
	video := s.addVideo(t, alice.ID, "intro", true, 60)

	require.NoError(t, s.likes.Create(ctx, &model.Like{LikedBy: alice.ID, Target: model.VideoTarget(video.ID)}))

	err := s.likes.Create(ctx, &model.Like{LikedBy: alice.ID, Target: model.VideoTarget(video.ID)})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)

	// 同一个 ID 换一种目标类型是另一条边
	require.NoError(t, s.likes.Create(ctx, &model.Like{LikedBy: alice.ID, Target: model.CommentTarget(video.ID)}))

	like, err := s.likes.Find(ctx, alice.ID, model.VideoTarget(video.ID))
	require.NoError(t, err)
	deleted, err := s.likes.Delete(ctx, like.ID)
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = s.likes.Delete(ctx, like.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = s.likes.Find(ctx, alice.ID, model.VideoTarget(video.ID))
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestSubscriptionRepository_DuplicateIsTranslated(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	fan := s.addUser(t, "fan")
	channel := s.addUser(t, "channel")

	require.NoError(t, s.subs.Create(ctx, &model.Subscription{SubscriberID: fan.ID, ChannelID: channel.ID}))
	err := s.subs.Create(ctx, &model.Subscription{SubscriberID: fan.ID, ChannelID: channel.ID})
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)

	// 反方向是另一条边
	require.NoError(t, s.subs.Create(ctx, &model.Subscription{SubscriberID: channel.ID, ChannelID: fan.ID}))

	count, err := s.subs.CountByChannel(ctx, channel.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestPlaylistRepository_EntryIsUniquePerVideo(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	alice := s.addUser(t, "alice")
	video := s.addVideo(t, alice.ID, "intro", true, 60)
	playlist := &model.Playlist{OwnerID: alice.ID, Name: "mix", Description: "d"}
	require.NoError(t, s.playlists.Create(ctx, playlist))

	entry := func() *model.PlaylistEntry {
		return &model.PlaylistEntry{PlaylistID: playlist.ID, VideoID: video.ID, VideoFile: video.VideoFile, Title: video.Title, Channel: alice.Username}
	}
	require.NoError(t, s.playlists.AddEntry(ctx, entry()))
	err := s.playlists.AddEntry(ctx, entry())
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)

	got, err := s.playlists.GetByID(ctx, playlist.ID)
	require.NoError(t, err)
	require.Len(t, got.Videos, 1)
	assert.Equal(t, "intro", got.Videos[0].Title)

	removed, err := s.playlists.RemoveEntries(ctx, playlist.ID, video.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)
}

func TestVideoRepository_NeverListsUnpublished(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	alice := s.addUser(t, "alice")
	bob := s.addUser(t, "bob")
	s.addVideo(t, alice.ID, "go tips", true, 60)
	s.addVideo(t, alice.ID, "go draft", false, 60)
	s.addVideo(t, bob.ID, "rust tips", true, 60)
	s.addVideo(t, bob.ID, "rust draft", false, 60)

	filters := []repository.VideoFilter{
		{Limit: 10},
		{OwnerID: alice.ID, Limit: 10},
		{Query: "DRAFT", Limit: 10},
		{Query: "go", Order: repository.VideoOrder{Column: "views", Desc: true}, Limit: 10},
	}
	for _, f := range filters {
		videos, total, err := s.videos.ListPublished(ctx, f)
		require.NoError(t, err)
		assert.EqualValues(t, len(videos), total)
		for _, v := range videos {
			assert.True(t, v.IsPublished, "filter %+v returned %q", f, v.Title)
		}
	}

	videos, total, err := s.videos.ListPublished(ctx, repository.VideoFilter{Query: "TIPS", Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total, "query is case-insensitive")
	assert.Len(t, videos, 2)

	published, err := s.videos.ListByOwner(ctx, alice.ID, true, repository.VideoOrder{})
	require.NoError(t, err)
	require.Len(t, published, 1)
	assert.Equal(t, "go tips", published[0].Title)

	all, err := s.videos.ListByOwner(ctx, alice.ID, false, repository.VideoOrder{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestVideoRepository_SortByDuration(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	alice := s.addUser(t, "alice")
	s.addVideo(t, alice.ID, "1:02:03", true, 3723)
	s.addVideo(t, alice.ID, "9:59", true, 599)
	s.addVideo(t, alice.ID, "10:00", true, 600)

	titles := func(desc bool) []string {
		videos, _, err := s.videos.ListPublished(ctx, repository.VideoFilter{
			Order: repository.VideoOrder{Column: "duration_seconds", Desc: desc},
			Limit: 10,
		})
		require.NoError(t, err)
		out := make([]string, 0, len(videos))
		for _, v := range videos {
			out = append(out, v.Title)
		}
		return out
	}

	assert.Equal(t, []string{"9:59", "10:00", "1:02:03"}, titles(false))
	assert.Equal(t, []string{"1:02:03", "10:00", "9:59"}, titles(true))
}

func TestCommentRepository_ListByVideoPaging(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	alice := s.addUser(t, "alice")
	video := s.addVideo(t, alice.ID, "intro", true, 60)
	other := s.addVideo(t, alice.ID, "other", true, 60)

	for i := 0; i < 15; i++ {
		require.NoError(t, s.comments.Create(ctx, &model.Comment{OwnerID: alice.ID, VideoID: video.ID, Content: "nice"}))
	}
	require.NoError(t, s.comments.Create(ctx, &model.Comment{OwnerID: alice.ID, VideoID: other.ID, Content: "elsewhere"}))

	first, total, err := s.comments.ListByVideo(ctx, video.ID, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	assert.Len(t, first, 10)

	second, total, err := s.comments.ListByVideo(ctx, video.ID, 10, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 15, total)
	require.Len(t, second, 5)

	seen := map[string]bool{}
	for _, c := range append(first, second...) {
		assert.False(t, seen[c.ID], "comment %s listed twice", c.ID)
		seen[c.ID] = true
	}
}

func TestToggleVideoLike_ConcurrentOnRealStore(t *testing.T) {
	ctx := context.Background()
	s := newStores(t)
	owner := s.addUser(t, "owner")
	viewer := s.addUser(t, "viewer")
	video := s.addVideo(t, owner.ID, "intro", true, 60)
	svc := service.NewLikeService(s.likes, s.videos, s.comments, s.tweets, service.NopStatsCache{})

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.ToggleVideoLike(ctx, viewer.ID, video.ID); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Errorf("toggle failed: %v", err)
	}

	count, err := s.likes.CountByTargets(ctx, model.LikeKindVideo, []string{video.ID})
	require.NoError(t, err)
	assert.LessOrEqual(t, count, int64(1))

	// 之后的切换仍然严格交替
	data, err := svc.ToggleVideoLike(ctx, viewer.ID, video.ID)
	require.NoError(t, err)
	want := dto.ToggleAdded
	if count == 1 {
		want = dto.ToggleRemoved
	}
	assert.Equal(t, want, data.State)
}
