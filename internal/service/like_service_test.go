package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLikeScenario_ChannelStatsFollowToggles(t *testing.T) {
	ctx := context.Background()
	w := newWorld()
	u1 := w.addUser("u1")
	b := w.addUser("b")
	v1 := w.addVideo(u1.ID, "V1", true, 0)

	likes := w.likeService()
	dash := w.dashboardService()

	_, err := likes.ToggleVideoLike(ctx, b.ID, v1.ID)
	require.NoError(t, err)
	stats, err := dash.GetStats(ctx, u1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalLikes)

	_, err = likes.ToggleVideoLike(ctx, b.ID, v1.ID)
	require.NoError(t, err)
	stats, err = dash.GetStats(ctx, u1.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, stats.TotalLikes)
}

func TestGetLikedVideos(t *testing.T) {
	ctx := context.Background()
	w := newWorld()
	owner := w.addUser("owner")
	me := w.addUser("me")
	other := w.addUser("other")
	first := w.addVideo(owner.ID, "first", true, 0)
	second := w.addVideo(owner.ID, "second", true, 0)
	gone := w.addVideo(owner.ID, "gone", true, 0)
	svc := w.likeService()

	for _, step := range []struct{ actor, video string }{
		{me.ID, second.ID},
		{me.ID, first.ID},
		{me.ID, gone.ID},
		{other.ID, first.ID},
	} {
		_, err := svc.ToggleVideoLike(ctx, step.actor, step.video)
		require.NoError(t, err)
	}
	require.NoError(t, w.videos.Delete(ctx, gone.ID))

	liked, err := svc.GetLikedVideos(ctx, me.ID)
	require.NoError(t, err)
	require.Len(t, liked, 2)
	assert.Equal(t, second.ID, liked[0].VideoID)
	assert.Equal(t, first.ID, liked[1].VideoID)
	assert.Equal(t, "first", liked[1].Title)

	// likeCount 只统计自己的点赞：其他用户也点赞了 first，但这里仍然是 1
	assert.EqualValues(t, 1, liked[1].LikeCount)
}

func TestGetLikedVideos_Empty(t *testing.T) {
	w := newWorld()
	me := w.addUser("me")

	liked, err := w.likeService().GetLikedVideos(context.Background(), me.ID)
	require.NoError(t, err)
	assert.NotNil(t, liked)
	assert.Empty(t, liked)
}
