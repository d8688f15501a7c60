package service

import (
	"context"
	"testing"

	"vidtube-go/internal/api/dto"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProfile_MalformedIDIsNotFound(t *testing.T) {
	w := newWorld()
	profile, err := w.channelService().GetProfile(context.Background(), "deadbeef", "")
	assert.Nil(t, profile)
	assert.ErrorIs(t, err, ErrChannelNotFound)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestGetProfile_UnknownUser(t *testing.T) {
	w := newWorld()
	_, err := w.channelService().GetProfile(context.Background(), uuid.NewString(), "")
	assert.ErrorIs(t, err, ErrChannelNotFound)
}

func TestGetProfile(t *testing.T) {
	ctx := context.Background()
	w := newWorld()
	owner := w.addUser("owner")
	fan := w.addUser("fan")
	a := w.addVideo(owner.ID, "a", true, 5)
	b := w.addVideo(owner.ID, "b", true, 50)
	w.addVideo(owner.ID, "hidden", false, 500)
	c := w.addVideo(owner.ID, "c", true, 20)

	_, err := w.subscriptionService().Toggle(ctx, fan.ID, owner.ID)
	require.NoError(t, err)
	_, err = w.playlistService().Create(ctx, owner.ID, &dto.PlaylistRequest{Name: "mix", Description: "best of"})
	require.NoError(t, err)

	svc := w.channelService()
	ids := func(videos []dto.ChannelVideo) []string {
		out := make([]string, 0, len(videos))
		for _, v := range videos {
			out = append(out, v.ID)
		}
		return out
	}

	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{a.ID, b.ID, c.ID}},
		{"popular", []string{b.ID, c.ID, a.ID}},
		{"latest", []string{c.ID, b.ID, a.ID}},
		{"oldest", []string{a.ID, b.ID, c.ID}},
		{"unknown", []string{a.ID, b.ID, c.ID}},
	}
	for _, tt := range tests {
		t.Run("filter="+tt.filter, func(t *testing.T) {
			profile, err := svc.GetProfile(ctx, owner.ID, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(profile.Videos))
			assert.Equal(t, "owner", profile.Username)
			assert.EqualValues(t, 1, profile.SubscriberCount)
			require.Len(t, profile.Playlists, 1)
			assert.Equal(t, "mix", profile.Playlists[0].Name)
		})
	}
}
